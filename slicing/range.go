package slicing

import (
	"fmt"

	"github.com/hupe1980/raggo/core"
)

// Range is a 3-term slice descriptor with optional start, stop and step,
// carrying dense-array slice semantics: out-of-range bounds clip silently,
// negative bounds are offset by the dimension length, and a negative step
// walks the dimension backwards. A zero step is an error at normalization.
type Range struct {
	start, stop, step int64
	hasStart, hasStop bool
	hasStep           bool
}

func (Range) isTerm() {}

// All returns the full-dimension slice, equivalent to [:].
func All() Range { return Range{} }

// Span returns the slice [start:stop].
func Span(start, stop int64) Range {
	return Range{start: start, stop: stop, hasStart: true, hasStop: true}
}

// SpanStep returns the slice [start:stop:step].
func SpanStep(start, stop, step int64) Range {
	return Range{start: start, stop: stop, step: step, hasStart: true, hasStop: true, hasStep: true}
}

// From returns the slice [start:].
func From(start int64) Range {
	return Range{start: start, hasStart: true}
}

// To returns the slice [:stop].
func To(stop int64) Range {
	return Range{stop: stop, hasStop: true}
}

// FromStep returns the slice [start::step].
func FromStep(start, step int64) Range {
	return Range{start: start, step: step, hasStart: true, hasStep: true}
}

// StepBy returns the slice [::step].
func StepBy(step int64) Range {
	return Range{step: step, hasStep: true}
}

// String renders the slice in start:stop:step notation.
func (r Range) String() string {
	s := ""
	if r.hasStart {
		s += fmt.Sprintf("%d", r.start)
	}
	s += ":"
	if r.hasStop {
		s += fmt.Sprintf("%d", r.stop)
	}
	if r.hasStep {
		s += fmt.Sprintf(":%d", r.step)
	}
	return s
}

// Normalize resolves the range against a dimension of the given length,
// returning concrete start, stop and step such that iterating
// start, start+step, ... while the position is before stop (after it, for
// negative steps) enumerates exactly the selected positions.
//
// Missing bounds default per the step direction, negative bounds are offset
// by length, and out-of-range bounds clip into the valid window instead of
// failing. The only error case is a zero step.
func (r Range) Normalize(length int64) (start, stop, step int64, err error) {
	step = 1
	if r.hasStep {
		step = r.step
	}
	if step == 0 {
		return 0, 0, 0, &core.IndexError{Reason: "slice step cannot be zero"}
	}

	switch {
	case !r.hasStart && step > 0:
		start = 0
	case !r.hasStart:
		start = length - 1
	default:
		start = r.start
		if start < 0 {
			start += length
		}
	}

	switch {
	case !r.hasStop && step > 0:
		stop = length
	case !r.hasStop:
		stop = -1
	default:
		stop = r.stop
		if stop < 0 {
			stop += length
		}
	}

	if step > 0 {
		if stop <= start {
			start, stop = 0, 0
		}
		if start < 0 {
			start = 0
		} else if start > length {
			start = length
		}
		if stop < 0 {
			stop = 0
		} else if stop > length {
			stop = length
		}
	} else {
		if start <= stop {
			start, stop = 0, 0
		}
		if start < -1 {
			start = -1
		} else if start >= length {
			start = length - 1
		}
		if stop < -1 {
			stop = -1
		} else if stop >= length {
			stop = length - 1
		}
	}

	return start, stop, step, nil
}

// Count returns the number of positions the normalized range produces.
func Count(start, stop, step int64) int64 {
	if step > 0 {
		if stop <= start {
			return 0
		}
		return (stop - start + step - 1) / step
	}
	if start <= stop {
		return 0
	}
	return (start - stop - step - 1) / -step
}
