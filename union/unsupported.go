package union

import (
	"github.com/hupe1980/raggo/core"
	"github.com/hupe1980/raggo/slicing"
)

// The operations below are defined contract points that deliberately fail:
// the union representation does not specify a meaningful behavior for them,
// and guessing one would silently degrade instead of surfacing the gap.
// Every method returns an error unwrapping to core.ErrUnsupported.

// Slice rejects a slice-valued leading index into the union.
func (u *Union) Slice(slicing.Range) (core.Array, error) {
	return nil, &core.UnsupportedError{Op: "slice a union at the leading axis"}
}

// Take rejects an array-valued leading index into the union.
func (u *Union) Take(slicing.Pick) (core.Array, error) {
	return nil, &core.UnsupportedError{Op: "gather a union at the leading axis"}
}

// Select rejects a mask-valued leading index into the union.
func (u *Union) Select(*slicing.Mask) (core.Array, error) {
	return nil, &core.UnsupportedError{Op: "mask a union at the leading axis"}
}

// SetColumn rejects column assignment through the union.
func (u *Union) SetColumn(string, core.Array) error {
	return &core.UnsupportedError{Op: "assign a column through a union"}
}

// DeleteColumn rejects column deletion through the union.
func (u *Union) DeleteColumn(string) error {
	return &core.UnsupportedError{Op: "delete a column through a union"}
}

// Elementwise rejects elementwise-operator dispatch on the union.
func (u *Union) Elementwise(op string, _ ...core.Array) (core.Array, error) {
	return nil, &core.UnsupportedError{Op: "elementwise " + op + " on a union"}
}

// Concat rejects union concatenation.
func (u *Union) Concat(...*Union) (*Union, error) {
	return nil, &core.UnsupportedError{Op: "concatenate unions"}
}

// Any rejects the any reduction.
func (u *Union) Any() (bool, error) {
	return false, &core.UnsupportedError{Op: "reduce a union with any"}
}

// All rejects the all reduction.
func (u *Union) All() (bool, error) {
	return false, &core.UnsupportedError{Op: "reduce a union with all"}
}

// Copy rejects the shallow-copy constructor.
func (u *Union) Copy() (*Union, error) {
	return nil, &core.UnsupportedError{Op: "copy a union"}
}

// EmptyLike rejects the empty-like constructor.
func (u *Union) EmptyLike() (*Union, error) {
	return nil, &core.UnsupportedError{Op: "construct empty-like from a union"}
}

// ZerosLike rejects the zeros-like constructor.
func (u *Union) ZerosLike() (*Union, error) {
	return nil, &core.UnsupportedError{Op: "construct zeros-like from a union"}
}

// OnesLike rejects the ones-like constructor.
func (u *Union) OnesLike() (*Union, error) {
	return nil, &core.UnsupportedError{Op: "construct ones-like from a union"}
}
