// Package raggo provides a columnar representation for irregular data:
// ragged (jagged) arrays whose rows vary in length, and tagged-union arrays
// whose elements come from heterogeneous sub-arrays selected by a per-element
// tag, together with an indexing engine that applies multi-dimensional index
// expressions to those structures with dense-array advanced-indexing
// semantics.
//
// # Quick Start
//
// Build a ragged container over a flat buffer and index it:
//
//	content, _ := ragged.FromCounts([]int64{2, 0, 3}, buffer.Of[int64](1, 2, 3, 4, 5))
//	out, _ := content.GetItem(slicing.At(2), slicing.Span(1, 3))
//
// Index expressions mix integers, slices, boolean masks and integer arrays:
//
//	out, _ := arr.GetItem(slicing.Pick{2, 0, 0}, slicing.All(), slicing.MaskOf(true, false, true, true))
//
// Interleave heterogeneous contents with a union container:
//
//	u, _ := union.FromTags([]int64{0, 1, 0}, []core.Array{
//	    buffer.Of[int64](10, 20),
//	    buffer.Of[float64](99),
//	})
//	v, _ := u.GetValue(1) // 99
//
// The Indexer facade adds structured logging and metrics around these
// operations:
//
//	ix := raggo.New(raggo.WithLogger(raggo.NewTextLogger(slog.LevelDebug)))
//	out, err := ix.Index(ctx, arr, slicing.At(2))
//
// # Semantics
//
// Indexing a ragged container produces exactly what a dense rectangular
// array indexed the same way would produce, element for element, without
// materializing the dense array. The first integer-array (or boolean-mask)
// term in an expression broadcasts independently per row; subsequent
// array-valued terms pair up with it one-to-one, mirroring dense-array
// fancy-indexing composition.
//
// Containers are immutable views: indexing shares the underlying buffers,
// and attribute replacement is the only mutation. Readers of an already
// validated, unmutated container are safe to run concurrently; setters and
// the lazy validity cache are not thread-safe.
package raggo
