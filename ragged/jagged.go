package ragged

import (
	"fmt"
	"strings"

	"github.com/hupe1980/raggo/buffer"
	"github.com/hupe1980/raggo/core"
	"github.com/hupe1980/raggo/dtype"
)

// Jagged is a ragged container: a pair of offset sequences over shared
// content. Row i denotes content[starts[i]:stops[i]), so rows may differ in
// length and may overlap or be empty.
//
// A Jagged is an immutable view. Indexing produces new containers sharing
// the underlying content; nothing is mutated in place. Offset violations
// (starts beyond stops, stops beyond the content length) are not checked at
// construction; they surface through the engine's bounds checks at lookup
// time.
type Jagged struct {
	starts, stops []int64
	content       core.Array
}

var _ core.Array = (*Jagged)(nil)

// New builds a ragged container from offset sequences and shared content.
// The offset sequences must have equal length; content may be a flat buffer
// or another container.
func New(starts, stops []int64, content core.Array) (*Jagged, error) {
	if len(starts) != len(stops) {
		return nil, &core.ConstructionError{
			Reason: fmt.Sprintf("starts length (%d) does not match stops length (%d)", len(starts), len(stops)),
		}
	}
	return &Jagged{starts: starts, stops: stops, content: content}, nil
}

// FromCounts builds a ragged container whose rows are contiguous runs of the
// given lengths over the content.
func FromCounts(counts []int64, content core.Array) (*Jagged, error) {
	starts := make([]int64, len(counts))
	stops := make([]int64, len(counts))
	var off int64
	for i, c := range counts {
		if c < 0 {
			return nil, &core.ConstructionError{
				Reason: fmt.Sprintf("counts[%d] is negative (%d)", i, c),
			}
		}
		starts[i] = off
		off += c
		stops[i] = off
	}
	return &Jagged{starts: starts, stops: stops, content: content}, nil
}

// Len returns the number of rows.
func (j *Jagged) Len() int { return len(j.starts) }

// Kind returns KindObject: elements of a ragged container are rows, not
// scalars from a single rectangular buffer.
func (j *Jagged) Kind() dtype.Kind { return dtype.KindObject }

// Shape returns the shape up to the leading axis; row lengths differ, so no
// further rectangular extent is known.
func (j *Jagged) Shape() []int { return []int{len(j.starts)} }

// Starts returns the row start offsets. The slice is shared, not copied.
func (j *Jagged) Starts() []int64 { return j.starts }

// Stops returns the row stop offsets. The slice is shared, not copied.
func (j *Jagged) Stops() []int64 { return j.stops }

// Content returns the shared content array.
func (j *Jagged) Content() core.Array { return j.content }

// Counts returns the per-row lengths.
func (j *Jagged) Counts() []int64 {
	out := make([]int64, len(j.starts))
	for i := range j.starts {
		out[i] = j.stops[i] - j.starts[i]
	}
	return out
}

// Row returns row i as a view over the shared content.
func (j *Jagged) Row(i int) (core.Array, error) {
	n := len(j.starts)
	k := i
	if k < 0 {
		k += n
	}
	if k < 0 || k >= n {
		return nil, &core.IndexError{Index: int64(i), Length: int64(n)}
	}
	start, stop := j.starts[k], j.stops[k]
	if start > stop || stop > int64(j.content.Len()) {
		return nil, &core.IndexError{
			Index:  stop,
			Length: int64(j.content.Len()),
			Reason: fmt.Sprintf("row %d offsets are inconsistent with the content", k),
		}
	}
	return windowArray(j.content, start, stop), nil
}

// String renders the row structure for debugging.
func (j *Jagged) String() string {
	var sb strings.Builder
	sb.WriteString("jagged[")
	for i := range j.starts {
		if i > 0 {
			sb.WriteString(" ")
		}
		fmt.Fprintf(&sb, "%d:%d", j.starts[i], j.stops[i])
	}
	fmt.Fprintf(&sb, "] over %d elements", j.content.Len())
	return sb.String()
}

// rowTake selects rows by absolute row positions, sharing the content.
func (j *Jagged) rowTake(idx []int64) (*Jagged, error) {
	n := int64(len(j.starts))
	starts := make([]int64, len(idx))
	stops := make([]int64, len(idx))
	for k, i := range idx {
		if i < 0 || i >= n {
			return nil, &core.IndexError{Index: i, Length: n}
		}
		starts[k] = j.starts[i]
		stops[k] = j.stops[i]
	}
	return &Jagged{starts: starts, stops: stops, content: j.content}, nil
}

// takeArray selects positions from an array: rows of a ragged container,
// elements of a flat buffer.
func takeArray(a core.Array, idx []int64) (core.Array, error) {
	switch t := a.(type) {
	case *Jagged:
		return t.rowTake(idx)
	case buffer.Buffer:
		return t.Take(idx)
	default:
		return nil, &core.UnsupportedError{Op: fmt.Sprintf("gather through %T", a)}
	}
}

// windowArray returns the contiguous range [start:stop) of an array as a
// shared view.
func windowArray(a core.Array, start, stop int64) core.Array {
	switch t := a.(type) {
	case *Jagged:
		return &Jagged{starts: t.starts[start:stop], stops: t.stops[start:stop], content: t.content}
	case buffer.Buffer:
		return t.Window(start, stop)
	default:
		return a
	}
}
