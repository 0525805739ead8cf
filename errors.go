package raggo

import "github.com/hupe1980/raggo/core"

// The error taxonomy is defined in the core package; the aliases below keep
// errors.Is / errors.As checks available without importing core directly.
var (
	// ErrConstruction categorizes malformed container construction.
	ErrConstruction = core.ErrConstruction

	// ErrValidity categorizes cross-structure consistency violations found
	// by lazy validation.
	ErrValidity = core.ErrValidity

	// ErrIndex categorizes out-of-range index terms.
	ErrIndex = core.ErrIndex

	// ErrUnsupported categorizes deliberately unimplemented contract points.
	ErrUnsupported = core.ErrUnsupported
)

// ConstructionError indicates malformed attributes at construction time.
type ConstructionError = core.ConstructionError

// ValidityError indicates a cross-structure consistency violation.
type ValidityError = core.ValidityError

// IndexError indicates an index term that cannot be resolved.
type IndexError = core.IndexError

// UnsupportedError identifies a deliberately unimplemented operation.
type UnsupportedError = core.UnsupportedError
