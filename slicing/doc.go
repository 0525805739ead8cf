// Package slicing defines the index terms understood by the raggo indexing
// engine and the dense-array normalization rules they follow.
//
// An index expression is an ordered sequence of terms, one per structural
// dimension:
//
//	At(2)                        // integer position
//	Span(2, 4)                   // slice [2:4]
//	StepBy(-1)                   // slice [::-1]
//	Pick{2, 0, 0}                // integer-array (fancy) index
//	MaskOf(true, false, true)    // boolean mask
//
// Range normalization follows dense-array slice rules exactly: missing
// bounds default by step direction, negative bounds are offset by the
// dimension length, and out-of-range bounds clip silently. Masks are backed
// by roaring bitmaps and convert to their true positions before the engine
// runs.
package slicing
