package core

import (
	"errors"
	"fmt"
)

var (
	// ErrConstruction is the category sentinel for malformed container
	// construction: negative tags or indexes, an empty contents tuple, or a
	// maximum tag exceeding the content count.
	ErrConstruction = errors.New("invalid construction")

	// ErrValidity is the category sentinel for cross-structure consistency
	// violations discovered at lazy validation.
	ErrValidity = errors.New("validity check failed")

	// ErrIndex is the category sentinel for out-of-range index terms.
	ErrIndex = errors.New("index out of range")

	// ErrUnsupported is the category sentinel for operations that are defined
	// contract points but deliberately not implemented: union slicing,
	// column assignment, elementwise dispatch, concatenation and reductions.
	ErrUnsupported = errors.New("operation not supported")
)

// ConstructionError indicates malformed attributes at construction time.
//
// It unwraps to ErrConstruction.
type ConstructionError struct {
	Reason string
}

func (e *ConstructionError) Error() string {
	return fmt.Sprintf("invalid construction: %s", e.Reason)
}

func (e *ConstructionError) Unwrap() error { return ErrConstruction }

// ValidityError indicates a cross-structure consistency violation found by
// lazy validation, such as a tag referencing a missing content array.
//
// It unwraps to ErrValidity.
type ValidityError struct {
	Reason string
}

func (e *ValidityError) Error() string {
	return fmt.Sprintf("validity check failed: %s", e.Reason)
}

func (e *ValidityError) Unwrap() error { return ErrValidity }

// IndexError indicates an index term that cannot be resolved: an integer
// beyond a row's span, an index-array entry out of range after normalization,
// or an advanced-index length mismatch.
//
// It unwraps to ErrIndex.
type IndexError struct {
	Index  int64
	Length int64
	Reason string
}

func (e *IndexError) Error() string {
	if e.Reason != "" {
		return fmt.Sprintf("index %d out of range for length %d: %s", e.Index, e.Length, e.Reason)
	}
	return fmt.Sprintf("index %d out of range for length %d", e.Index, e.Length)
}

func (e *IndexError) Unwrap() error { return ErrIndex }

// UnsupportedError identifies which deliberately unimplemented operation was
// invoked.
//
// It unwraps to ErrUnsupported.
type UnsupportedError struct {
	Op string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("%s: operation not supported", e.Op)
}

func (e *UnsupportedError) Unwrap() error { return ErrUnsupported }
