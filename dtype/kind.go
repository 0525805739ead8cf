package dtype

// Kind identifies the element type of a flat buffer, or the promoted element
// type of a union over heterogeneous contents.
type Kind uint8

const (
	// KindInvalid represents an invalid kind.
	KindInvalid Kind = iota
	// KindBool represents a boolean element type.
	KindBool
	// KindInt8 represents an 8-bit signed integer element type.
	KindInt8
	// KindUint8 represents an 8-bit unsigned integer element type.
	KindUint8
	// KindInt16 represents a 16-bit signed integer element type.
	KindInt16
	// KindUint16 represents a 16-bit unsigned integer element type.
	KindUint16
	// KindInt32 represents a 32-bit signed integer element type.
	KindInt32
	// KindUint32 represents a 32-bit unsigned integer element type.
	KindUint32
	// KindInt64 represents a 64-bit signed integer element type.
	KindInt64
	// KindUint64 represents a 64-bit unsigned integer element type.
	KindUint64
	// KindFloat32 represents a 32-bit floating point element type.
	KindFloat32
	// KindFloat64 represents a 64-bit floating point element type.
	KindFloat64
	// KindComplex64 represents a 64-bit complex element type.
	KindComplex64
	// KindComplex128 represents a 128-bit complex element type.
	KindComplex128
	// KindObject is the opaque element type. It is produced whenever a set of
	// contents falls outside the numeric promotion lattice, for example when a
	// content is itself a ragged container.
	KindObject
)

// String returns a human-readable name for the kind.
func (k Kind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt8:
		return "int8"
	case KindUint8:
		return "uint8"
	case KindInt16:
		return "int16"
	case KindUint16:
		return "uint16"
	case KindInt32:
		return "int32"
	case KindUint32:
		return "uint32"
	case KindInt64:
		return "int64"
	case KindUint64:
		return "uint64"
	case KindFloat32:
		return "float32"
	case KindFloat64:
		return "float64"
	case KindComplex64:
		return "complex64"
	case KindComplex128:
		return "complex128"
	case KindObject:
		return "object"
	default:
		return "invalid"
	}
}

// Size returns the element size in bytes, or 0 for KindObject and KindInvalid.
func (k Kind) Size() int {
	switch k {
	case KindBool, KindInt8, KindUint8:
		return 1
	case KindInt16, KindUint16:
		return 2
	case KindInt32, KindUint32, KindFloat32:
		return 4
	case KindInt64, KindUint64, KindFloat64, KindComplex64:
		return 8
	case KindComplex128:
		return 16
	default:
		return 0
	}
}

// IsSigned reports whether the kind is a signed integer type.
func (k Kind) IsSigned() bool {
	switch k {
	case KindInt8, KindInt16, KindInt32, KindInt64:
		return true
	default:
		return false
	}
}

// IsUnsigned reports whether the kind is an unsigned integer type.
func (k Kind) IsUnsigned() bool {
	switch k {
	case KindUint8, KindUint16, KindUint32, KindUint64:
		return true
	default:
		return false
	}
}

// IsInteger reports whether the kind is an integer type of either signedness.
func (k Kind) IsInteger() bool {
	return k.IsSigned() || k.IsUnsigned()
}

// IsFloat reports whether the kind is a floating point type.
func (k Kind) IsFloat() bool {
	return k == KindFloat32 || k == KindFloat64
}

// IsComplex reports whether the kind is a complex type.
func (k Kind) IsComplex() bool {
	return k == KindComplex64 || k == KindComplex128
}

// IsNumeric reports whether the kind participates in the numeric promotion
// lattice (integers, floats and complex; booleans excluded).
func (k Kind) IsNumeric() bool {
	return k.IsInteger() || k.IsFloat() || k.IsComplex()
}
