package ragged_test

import (
	"errors"

	"github.com/hupe1980/raggo/slicing"
)

// This file holds an independent reference implementation of dense-array
// advanced indexing over nested slices. It exists only to check the engine:
// the engine must produce, element for element, what a dense rectangular
// array indexed the same way produces.
//
// The reference follows the dense rules directly: with no array-valued term,
// indexing is plain recursive selection; otherwise every array-valued term
// (integers broadcast to arrays) pairs up positionally, and the combined
// array dimension lands in place of the first array term when the array
// terms are adjacent, or in front of all sliced dimensions when a slice
// separates them.

var (
	errRefTooMany  = errors.New("reference: too many indices")
	errRefBounds   = errors.New("reference: index out of range")
	errRefMismatch = errors.New("reference: advanced index length mismatch")
)

// makeDense builds a nested []any representation of a dense rectangular
// array of the given shape filled with 0..n-1 in row-major order, matching
// testutil.Regular.
func makeDense(shape []int) any {
	var build func(off int64, shape []int) any
	build = func(off int64, shape []int) any {
		if len(shape) == 1 {
			out := make([]any, shape[0])
			for i := range out {
				out[i] = off + int64(i)
			}
			return out
		}
		stride := int64(1)
		for _, s := range shape[1:] {
			stride *= int64(s)
		}
		out := make([]any, shape[0])
		for i := range out {
			out[i] = build(off+int64(i)*stride, shape[1:])
		}
		return out
	}
	return build(0, shape)
}

func slicePositions(r slicing.Range, length int64) ([]int64, error) {
	a, b, c, err := r.Normalize(length)
	if err != nil {
		return nil, err
	}
	out := make([]int64, 0, slicing.Count(a, b, c))
	if c > 0 {
		for j := a; j < b; j += c {
			out = append(out, j)
		}
	} else {
		for j := a; j > b; j += c {
			out = append(out, j)
		}
	}
	return out, nil
}

func refPick(data any, coords []int64) any {
	for _, c := range coords {
		data = data.([]any)[c]
	}
	return data
}

func refBasic(data any, terms []slicing.Term) (any, error) {
	if len(terms) == 0 {
		return data, nil
	}
	d := data.([]any)
	switch h := terms[0].(type) {
	case slicing.At:
		j := int64(h)
		if j < 0 {
			j += int64(len(d))
		}
		if j < 0 || j >= int64(len(d)) {
			return nil, errRefBounds
		}
		return refBasic(d[j], terms[1:])
	case slicing.Range:
		pos, err := slicePositions(h, int64(len(d)))
		if err != nil {
			return nil, err
		}
		out := make([]any, len(pos))
		for i, p := range pos {
			sub, err := refBasic(d[p], terms[1:])
			if err != nil {
				return nil, err
			}
			out[i] = sub
		}
		return out, nil
	default:
		return nil, errRefTooMany
	}
}

// refIndex applies an index expression to a dense nested array with dense
// reference semantics.
func refIndex(data any, shape []int, terms []slicing.Term) (any, error) {
	if len(terms) > len(shape) {
		return nil, errRefTooMany
	}

	var n int64
	for _, t := range terms {
		switch h := t.(type) {
		case *slicing.Mask:
			if c := h.TrueCount(); c > n {
				n = c
			}
		case slicing.Pick:
			if int64(len(h)) > n {
				n = int64(len(h))
			}
		}
	}
	norm := make([]slicing.Term, len(terms))
	for i, t := range terms {
		switch h := t.(type) {
		case *slicing.Mask:
			norm[i] = h.Positions()
		case slicing.At:
			if n != 0 {
				pick := make(slicing.Pick, n)
				for j := range pick {
					pick[j] = int64(h)
				}
				norm[i] = pick
			} else {
				norm[i] = h
			}
		case slicing.Pick:
			if int64(len(h)) == 1 && n > 1 {
				pick := make(slicing.Pick, n)
				for j := range pick {
					pick[j] = h[0]
				}
				norm[i] = pick
			} else {
				norm[i] = h
			}
		default:
			norm[i] = t
		}
	}

	var arrPos, slicePos []int
	for i, t := range norm {
		switch t.(type) {
		case slicing.Pick:
			arrPos = append(arrPos, i)
		case slicing.Range:
			slicePos = append(slicePos, i)
		}
	}

	if len(arrPos) == 0 {
		return refBasic(data, norm)
	}

	// normalize and bounds-check every array term
	for _, i := range arrPos {
		h := norm[i].(slicing.Pick)
		if int64(len(h)) != n {
			return nil, errRefMismatch
		}
		vals := make(slicing.Pick, len(h))
		for k, v := range h {
			vv := v
			if vv < 0 {
				vv += int64(shape[i])
			}
			if vv < 0 || vv >= int64(shape[i]) {
				return nil, errRefBounds
			}
			vals[k] = vv
		}
		norm[i] = vals
	}

	contiguous := arrPos[len(arrPos)-1]-arrPos[0] == len(arrPos)-1

	sliceRanges := make(map[int][]int64)
	for _, i := range slicePos {
		pos, err := slicePositions(norm[i].(slicing.Range), int64(shape[i]))
		if err != nil {
			return nil, err
		}
		sliceRanges[i] = pos
	}

	// output dimension order: -1 marks the combined array dimension,
	// otherwise the term position of a slice
	var dims []int
	if contiguous {
		for _, i := range slicePos {
			if i < arrPos[0] {
				dims = append(dims, i)
			}
		}
		dims = append(dims, -1)
		for _, i := range slicePos {
			if i > arrPos[len(arrPos)-1] {
				dims = append(dims, i)
			}
		}
	} else {
		dims = append(dims, -1)
		dims = append(dims, slicePos...)
	}

	assign := make(map[int]int64)
	var build func(d int) any
	build = func(d int) any {
		if d == len(dims) {
			coords := make([]int64, len(norm))
			for i, t := range norm {
				switch h := t.(type) {
				case slicing.Pick:
					coords[i] = h[assign[-1]]
				default:
					coords[i] = sliceRanges[i][assign[i]]
				}
			}
			return refPick(data, coords)
		}
		if dims[d] == -1 {
			out := make([]any, n)
			for k := int64(0); k < n; k++ {
				assign[-1] = k
				out[k] = build(d + 1)
			}
			return out
		}
		r := sliceRanges[dims[d]]
		out := make([]any, len(r))
		for k := range r {
			assign[dims[d]] = int64(k)
			out[k] = build(d + 1)
		}
		return out
	}
	return build(0), nil
}
