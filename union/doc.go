// Package union provides the tagged-union container: an array whose elements
// are drawn from K heterogeneous sub-arrays, selected per element by a tag
// and a content-local offset.
//
// The element type of a union is the least upper bound of its contents'
// element types under the dtype promotion lattice. Cross-structure validity
// (every tag naming an existing content, every offset within that content)
// is checked lazily before the first read and cached until the next
// mutation.
package union
