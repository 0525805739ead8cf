// Package ragged provides the ragged (jagged) container and the recursive
// indexing engine shared by all raggo containers.
//
// A Jagged stores rows of differing lengths as a pair of offset sequences
// over shared flat content. The engine applies multi-dimensional index
// expressions (integers, slices, boolean masks, integer arrays, in any
// combination and order) to that structure, reproducing element-for-element
// the advanced-indexing semantics of dense rectangular arrays: the first
// array-valued term broadcasts independently per row, and subsequent
// array-valued terms pair up with it positionally through a threaded
// advanced-index context.
package ragged
