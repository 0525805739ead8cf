package union

import (
	"fmt"
	"iter"

	"github.com/hupe1980/raggo/core"
	"github.com/hupe1980/raggo/dtype"
	"github.com/hupe1980/raggo/ragged"
	"github.com/hupe1980/raggo/slicing"
)

// Union is a tagged-union container: element i is drawn from
// contents[tags[i]] at the local position index[i], so a single array can
// interleave elements of heterogeneous sub-arrays.
//
// Attribute setters validate locally and eagerly; the cross-structure
// invariants (tag range, index range against the selected content) are
// checked lazily by Validate before the first read after any mutation, and
// the result is cached until the next mutation.
type Union struct {
	tags     []int64
	index    []int64
	contents []core.Array

	validated bool
}

var _ core.Array = (*Union)(nil)

// New builds a union container from explicit tags, index and contents.
// Cross-structure consistency is not checked here; it surfaces on the first
// read or explicit Validate call.
func New(tags, index []int64, contents []core.Array) (*Union, error) {
	u := &Union{}
	if err := u.SetTags(tags); err != nil {
		return nil, err
	}
	if err := u.SetIndex(index); err != nil {
		return nil, err
	}
	if err := u.SetContents(contents); err != nil {
		return nil, err
	}
	return u, nil
}

// FromTags builds a union container from a tag assignment alone, deriving
// the index by per-tag sequential enumeration: positions carrying the same
// tag receive local offsets 0, 1, 2, ... in order of appearance.
//
// Unlike New, FromTags fails immediately when the maximum tag has no content
// array.
func FromTags(tags []int64, contents []core.Array) (*Union, error) {
	u := &Union{}
	if err := u.SetTags(tags); err != nil {
		return nil, err
	}
	if err := u.SetContents(contents); err != nil {
		return nil, err
	}

	counters := make([]int64, len(contents))
	index := make([]int64, len(tags))
	for i, tag := range tags {
		if tag >= int64(len(contents)) {
			return nil, &core.ConstructionError{
				Reason: fmt.Sprintf("maximum tag is %d but there are only %d contents arrays", tag, len(contents)),
			}
		}
		index[i] = counters[tag]
		counters[tag]++
	}
	u.index = index
	u.validated = false
	return u, nil
}

// SetTags replaces the tag sequence. Tags must be non-negative; on failure
// the previous tags are left untouched.
func (u *Union) SetTags(tags []int64) error {
	for i, t := range tags {
		if t < 0 {
			return &core.ConstructionError{
				Reason: fmt.Sprintf("tags must be non-negative, tags[%d] is %d", i, t),
			}
		}
	}
	u.tags = tags
	u.validated = false
	return nil
}

// SetIndex replaces the index sequence. Index values must be non-negative;
// on failure the previous index is left untouched.
func (u *Union) SetIndex(index []int64) error {
	for i, v := range index {
		if v < 0 {
			return &core.ConstructionError{
				Reason: fmt.Sprintf("index must be non-negative, index[%d] is %d", i, v),
			}
		}
	}
	u.index = index
	u.validated = false
	return nil
}

// SetContents replaces the contents tuple, which must be non-empty; on
// failure the previous contents are left untouched.
func (u *Union) SetContents(contents []core.Array) error {
	if len(contents) == 0 {
		return &core.ConstructionError{Reason: "contents must be non-empty"}
	}
	u.contents = contents
	u.validated = false
	return nil
}

// Tags returns the tag sequence. The slice is shared, not copied.
func (u *Union) Tags() []int64 { return u.tags }

// Index returns the index sequence. The slice is shared, not copied.
func (u *Union) Index() []int64 { return u.index }

// Contents returns the contents tuple. The slice is shared, not copied.
func (u *Union) Contents() []core.Array { return u.contents }

// Len returns the number of elements, the length of the tag sequence.
func (u *Union) Len() int { return len(u.tags) }

// Kind returns the promoted element type of the contents under the fixed
// promotion lattice.
func (u *Union) Kind() dtype.Kind {
	kinds := make([]dtype.Kind, len(u.contents))
	for i, c := range u.contents {
		kinds[i] = c.Kind()
	}
	return dtype.Promote(kinds...)
}

// Shape returns the leading length, extended by the shared trailing shape of
// the contents when every content agrees on it and none is opaque.
func (u *Union) Shape() []int {
	if u.Kind() == dtype.KindObject {
		return []int{len(u.tags)}
	}
	first := u.contents[0].Shape()
	for _, c := range u.contents[1:] {
		if !shapeEqual(c.Shape(), first) {
			return []int{len(u.tags)}
		}
	}
	out := []int{len(u.tags)}
	return append(out, first[1:]...)
}

// Validate checks the cross-structure invariants and caches success, so
// repeated reads skip re-validation until the next mutation. Checks run in a
// fixed order: dimensionality, tag range, index range; the first violation
// found is returned.
func (u *Union) Validate() error {
	if u.validated {
		return nil
	}

	if len(u.index) < len(u.tags) {
		return &core.ValidityError{
			Reason: fmt.Sprintf("tags length (%d) must be less than or equal to index length (%d)", len(u.tags), len(u.index)),
		}
	}

	for i, tag := range u.tags {
		if tag >= int64(len(u.contents)) {
			return &core.ValidityError{
				Reason: fmt.Sprintf("tags[%d] is %d but there are only %d contents arrays", i, tag, len(u.contents)),
			}
		}
	}

	for i, tag := range u.tags {
		if u.index[i] >= int64(u.contents[tag].Len()) {
			return &core.ValidityError{
				Reason: fmt.Sprintf("index[%d] is %d but contents[%d] has only %d elements", i, u.index[i], tag, u.contents[tag].Len()),
			}
		}
	}

	u.validated = true
	return nil
}

// Get reads the element at position i, composed with any remaining index
// terms: the selected content is entered at the element's local position and
// the tail is applied through the same recursive engine ragged containers
// use. Negative positions are offset by the length.
func (u *Union) Get(i int64, tail ...slicing.Term) (any, error) {
	if err := u.Validate(); err != nil {
		return nil, err
	}

	n := int64(len(u.tags))
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return nil, &core.IndexError{Index: i, Length: n}
	}

	terms := append([]slicing.Term{slicing.At(u.index[j])}, tail...)
	return ragged.Apply(u.contents[u.tags[j]], terms...)
}

// GetValue reads the element at position i as a scalar. It fails when the
// selected content is not a flat buffer.
func (u *Union) GetValue(i int64) (dtype.Value, error) {
	out, err := u.Get(i)
	if err != nil {
		return dtype.Value{}, err
	}
	v, ok := out.(dtype.Value)
	if !ok {
		return dtype.Value{}, &core.IndexError{
			Index:  i,
			Length: int64(len(u.tags)),
			Reason: "element is not a scalar",
		}
	}
	return v, nil
}

// Values returns an iterator over the elements in order, validating lazily
// on first use. Iteration stops early when an element fails to resolve.
func (u *Union) Values() iter.Seq2[int, any] {
	return func(yield func(int, any) bool) {
		for i := 0; i < len(u.tags); i++ {
			v, err := u.Get(int64(i))
			if err != nil {
				return
			}
			if !yield(i, v) {
				return
			}
		}
	}
}

// String renders the container structure for debugging.
func (u *Union) String() string {
	return fmt.Sprintf("union[%d elements, %d contents, kind %s]", len(u.tags), len(u.contents), u.Kind())
}

// Columns returns the ordered intersection of the contents' column sets,
// preserving the order of the first content's columns and dropping any name
// absent from a later content. Contents that are not record-like contribute
// no columns, collapsing the intersection to nil.
func (u *Union) Columns() []string {
	return intersectColumns(u.contents, core.Columnar.Columns)
}

// AllColumns is Columns over the full (nested) column sets.
func (u *Union) AllColumns() []string {
	return intersectColumns(u.contents, core.Columnar.AllColumns)
}

func intersectColumns(contents []core.Array, get func(core.Columnar) []string) []string {
	var out []string
	for i, content := range contents {
		col, ok := content.(core.Columnar)
		if !ok {
			return nil
		}
		if i == 0 {
			out = append([]string(nil), get(col)...)
			continue
		}
		present := make(map[string]bool)
		for _, name := range get(col) {
			present[name] = true
		}
		kept := out[:0]
		for _, name := range out {
			if present[name] {
				kept = append(kept, name)
			}
		}
		out = kept
	}
	return out
}

func shapeEqual(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
