package ragged

import (
	"fmt"

	"github.com/hupe1980/raggo/buffer"
	"github.com/hupe1980/raggo/core"
	"github.com/hupe1980/raggo/dtype"
	"github.com/hupe1980/raggo/slicing"
)

// Apply evaluates a multi-term index expression against an array, producing
// the result a dense rectangular array indexed the same way would produce.
// The result is a core.Array, or a dtype.Value when the expression consumes
// every dimension.
//
// The expression is normalized once (masks to positions, bare integers and
// length-1 index arrays broadcast to the common array length), the target is
// wrapped as a single synthetic row so the row-oriented engine can treat the
// outermost dimension uniformly, and the wrapper is stripped from the result.
func Apply(a core.Array, terms ...slicing.Term) (any, error) {
	if len(terms) == 0 {
		return a, nil
	}

	norm := slicing.NormalizeTerms(terms)
	wrap := &Jagged{starts: []int64{0}, stops: []int64{int64(a.Len())}, content: a}

	fake, err := getitemNext(wrap, norm, nil)
	if err != nil {
		return nil, err
	}

	switch f := fake.(type) {
	case buffer.Buffer:
		v, err := f.Value(0)
		if err != nil {
			return nil, err
		}
		return v, nil
	case *Jagged:
		return windowArray(f.content, f.starts[0], f.stops[len(f.stops)-1]), nil
	default:
		return nil, &core.UnsupportedError{Op: fmt.Sprintf("unwrap %T", fake)}
	}
}

// GetItem evaluates a multi-term index expression against the container.
// See Apply.
func (j *Jagged) GetItem(terms ...slicing.Term) (any, error) {
	return Apply(j, terms...)
}

// GetValue evaluates an expression that consumes every dimension and returns
// the scalar element it selects.
func (j *Jagged) GetValue(terms ...slicing.Term) (dtype.Value, error) {
	out, err := Apply(j, terms...)
	if err != nil {
		return dtype.Value{}, err
	}
	v, ok := out.(dtype.Value)
	if !ok {
		return dtype.Value{}, &core.IndexError{
			Index:  int64(len(terms)),
			Length: int64(len(terms)),
			Reason: "expression does not resolve to a single element",
		}
	}
	return v, nil
}

// getitemNext consumes one index term per recursion level. The advanced
// context is nil until the first integer-array term establishes it; from
// then on it records, per flattened output position, which entry of the
// previous advanced index produced it.
func getitemNext(a core.Array, terms []slicing.Term, advanced []int64) (core.Array, error) {
	if len(terms) == 0 {
		return a, nil
	}

	arr, ok := a.(*Jagged)
	if !ok {
		buf, ok := a.(buffer.Buffer)
		if !ok {
			return nil, &core.UnsupportedError{Op: fmt.Sprintf("index through %T", a)}
		}
		return applyFlat(buf, terms)
	}

	head, tail := terms[0], terms[1:]
	switch h := head.(type) {
	case slicing.At:
		return getitemInteger(arr, int64(h), tail, advanced)
	case slicing.Range:
		return getitemRange(arr, h, tail, advanced)
	case slicing.Pick:
		if advanced == nil {
			return getitemPickOuter(arr, h, tail)
		}
		return getitemPickVectorized(arr, h, tail, advanced)
	default:
		return nil, &core.UnsupportedError{Op: fmt.Sprintf("index term %T", head)}
	}
}

// getitemInteger resolves an integer term: the same in-row position for every
// row. A position at or beyond a row's stop (or before its start) fails.
func getitemInteger(arr *Jagged, head int64, tail []slicing.Term, advanced []int64) (core.Array, error) {
	index := make([]int64, len(arr.starts))
	for i := range arr.starts {
		j := arr.starts[i] + head
		if j >= arr.stops[i] || j < arr.starts[i] {
			return nil, &core.IndexError{
				Index:  head,
				Length: arr.stops[i] - arr.starts[i],
				Reason: fmt.Sprintf("integer index beyond the bounds of row %d", i),
			}
		}
		index[i] = j
	}

	next, err := takeArray(arr.content, index)
	if err != nil {
		return nil, err
	}
	return getitemNext(next, tail, advanced)
}

// getitemRange resolves a slice term per row, using each row's own length
// for normalization. The produced positions form the next ragged level; an
// already-set advanced context is re-expanded so every produced position
// inherits its source row's context value.
func getitemRange(arr *Jagged, head slicing.Range, tail []slicing.Term, advanced []int64) (core.Array, error) {
	starts := make([]int64, len(arr.starts))
	stops := make([]int64, len(arr.starts))
	index := make([]int64, 0, len(arr.starts))

	for i := range arr.starts {
		length := arr.stops[i] - arr.starts[i]
		a, b, c, err := head.Normalize(length)
		if err != nil {
			return nil, err
		}

		starts[i] = int64(len(index))
		if c > 0 {
			for j := a; j < b; j += c {
				index = append(index, arr.starts[i]+j)
			}
		} else {
			for j := a; j > b; j += c {
				index = append(index, arr.starts[i]+j)
			}
		}
		stops[i] = int64(len(index))
	}

	content, err := takeArray(arr.content, index)
	if err != nil {
		return nil, err
	}
	next, err := getitemNext(content, tail, spreadAdvanced(starts, stops, advanced))
	if err != nil {
		return nil, err
	}
	return &Jagged{starts: starts, stops: stops, content: next}, nil
}

// getitemPickOuter resolves an integer-array term with no advanced context:
// one full sweep of the index array per row (outer semantics). The produced
// positions establish the advanced context, recording per position which
// entry of the term produced it.
func getitemPickOuter(arr *Jagged, head slicing.Pick, tail []slicing.Term) (core.Array, error) {
	rows := len(arr.starts)
	starts := make([]int64, rows)
	stops := make([]int64, rows)
	index := make([]int64, 0, rows*len(head))
	nextAdvanced := make([]int64, 0, rows*len(head))

	for i := range arr.starts {
		length := arr.stops[i] - arr.starts[i]
		starts[i] = int64(len(index))
		for j, raw := range head {
			norm := raw
			if norm < 0 {
				norm += length
			}
			if norm < 0 || norm >= length {
				return nil, &core.IndexError{
					Index:  raw,
					Length: length,
					Reason: fmt.Sprintf("index array entry out of range for row %d", i),
				}
			}
			index = append(index, arr.starts[i]+norm)
			nextAdvanced = append(nextAdvanced, int64(j))
		}
		stops[i] = int64(len(index))
	}

	content, err := takeArray(arr.content, index)
	if err != nil {
		return nil, err
	}
	next, err := getitemNext(content, tail, nextAdvanced)
	if err != nil {
		return nil, err
	}
	return &Jagged{starts: starts, stops: stops, content: next}, nil
}

// getitemPickVectorized resolves an integer-array term under a set advanced
// context: each row looks up the term entry its context value names, pairing
// one-to-one with the advanced index already in flight (vectorized
// semantics). The context is refreshed to the identity over the output.
func getitemPickVectorized(arr *Jagged, head slicing.Pick, tail []slicing.Term, advanced []int64) (core.Array, error) {
	if len(advanced) != len(arr.starts) {
		return nil, &core.IndexError{
			Index:  int64(len(advanced)),
			Length: int64(len(arr.starts)),
			Reason: "advanced index length does not match the row count",
		}
	}

	index := make([]int64, len(advanced))
	nextAdvanced := make([]int64, len(advanced))
	for i := range advanced {
		length := arr.stops[i] - arr.starts[i]
		if advanced[i] >= int64(len(head)) {
			return nil, &core.IndexError{
				Index:  advanced[i],
				Length: int64(len(head)),
				Reason: "advanced index lengths do not match",
			}
		}
		norm := head[advanced[i]]
		if norm < 0 {
			norm += length
		}
		if norm < 0 || norm >= length {
			return nil, &core.IndexError{
				Index:  head[advanced[i]],
				Length: length,
				Reason: fmt.Sprintf("index array entry out of range for row %d", i),
			}
		}
		index[i] = arr.starts[i] + norm
		nextAdvanced[i] = int64(i)
	}

	next, err := takeArray(arr.content, index)
	if err != nil {
		return nil, err
	}
	return getitemNext(next, tail, nextAdvanced)
}

// spreadAdvanced re-expands an advanced context across the positions each
// row produced: context entries are replicated per row by that row's
// produced-position count. A nil context stays nil.
func spreadAdvanced(starts, stops []int64, advanced []int64) []int64 {
	if advanced == nil {
		return nil
	}
	var total int64
	for i := range starts {
		total += stops[i] - starts[i]
	}
	out := make([]int64, 0, total)
	for i := range starts {
		for k := starts[i]; k < stops[i]; k++ {
			out = append(out, advanced[i])
		}
	}
	return out
}

// applyFlat delegates the remaining terms to the flat buffer's native
// indexing. A flat buffer has a single dimension, so at most one term can
// still be consumed here.
func applyFlat(buf buffer.Buffer, terms []slicing.Term) (core.Array, error) {
	if len(terms) == 0 {
		return buf, nil
	}
	if len(terms) > 1 {
		return nil, &core.IndexError{
			Index:  int64(len(terms)),
			Length: 1,
			Reason: "too many index terms for a flat buffer",
		}
	}

	switch h := terms[0].(type) {
	case slicing.At:
		n := int64(buf.Len())
		j := int64(h)
		if j < 0 {
			j += n
		}
		if j < 0 || j >= n {
			return nil, &core.IndexError{Index: int64(h), Length: n}
		}
		return buf.Window(j, j+1), nil
	case slicing.Range:
		return buf.Slice(h)
	case slicing.Pick:
		return buf.Take(h)
	default:
		return nil, &core.UnsupportedError{Op: fmt.Sprintf("index term %T", terms[0])}
	}
}
