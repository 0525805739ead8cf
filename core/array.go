package core

import "github.com/hupe1980/raggo/dtype"

// Array is the common surface of every raggo container: flat buffers, ragged
// containers and union containers all implement it.
//
// Arrays are value-like views over shared buffers. Indexing never mutates an
// array; it produces a new view or copy.
type Array interface {
	// Len returns the length of the leading axis.
	Len() int

	// Kind returns the element type, KindObject when elements are not drawn
	// from a single rectangular buffer.
	Kind() dtype.Kind

	// Shape returns the rectangular shape as far as it is known. For ragged
	// structure the shape stops at the leading axis.
	Shape() []int
}

// Columnar is implemented by record-like contents that expose named columns.
// Union containers use it to compute the ordered column intersection across
// their contents; non-record contents simply do not implement it.
type Columnar interface {
	// Columns returns the directly accessible column names, in order.
	Columns() []string

	// AllColumns returns all column names including nested ones, in order.
	AllColumns() []string
}
