// Package dtype defines the closed set of element types supported by raggo
// containers, the promotion lattice over that set, and a small typed scalar
// Value used when single elements are read out of a buffer.
//
// # Kinds
//
// Element types form a fixed enumeration: bool, the signed and unsigned
// integer widths up to 64 bits, float32/float64, complex64/complex128, and
// an opaque object kind for anything outside the numeric lattice.
//
// # Promotion
//
// Promote computes the least upper bound of a set of kinds:
//
//	dtype.Promote(dtype.KindInt8, dtype.KindInt8)      // KindInt8
//	dtype.Promote(dtype.KindInt32, dtype.KindFloat64)  // KindFloat64
//	dtype.Promote(dtype.KindInt8, dtype.KindObject)    // KindObject
package dtype
