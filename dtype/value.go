package dtype

import "strconv"

// Value is a small typed scalar read out of a flat buffer or a union element.
//
// The representation is designed to make element comparison fast and
// predictable: no reflection and no fmt-based stringification.
type Value struct {
	Kind Kind
	I64  int64
	U64  uint64
	F64  float64
	C128 complex128
	B    bool
}

// Bool returns a boolean Value.
func Bool(v bool) Value { return Value{Kind: KindBool, B: v} }

// Int8 returns an int8 Value.
func Int8(v int8) Value { return Value{Kind: KindInt8, I64: int64(v)} }

// Uint8 returns a uint8 Value.
func Uint8(v uint8) Value { return Value{Kind: KindUint8, U64: uint64(v)} }

// Int16 returns an int16 Value.
func Int16(v int16) Value { return Value{Kind: KindInt16, I64: int64(v)} }

// Uint16 returns a uint16 Value.
func Uint16(v uint16) Value { return Value{Kind: KindUint16, U64: uint64(v)} }

// Int32 returns an int32 Value.
func Int32(v int32) Value { return Value{Kind: KindInt32, I64: int64(v)} }

// Uint32 returns a uint32 Value.
func Uint32(v uint32) Value { return Value{Kind: KindUint32, U64: uint64(v)} }

// Int64 returns an int64 Value.
func Int64(v int64) Value { return Value{Kind: KindInt64, I64: v} }

// Uint64 returns a uint64 Value.
func Uint64(v uint64) Value { return Value{Kind: KindUint64, U64: v} }

// Float32 returns a float32 Value.
func Float32(v float32) Value { return Value{Kind: KindFloat32, F64: float64(v)} }

// Float64 returns a float64 Value.
func Float64(v float64) Value { return Value{Kind: KindFloat64, F64: v} }

// Complex64 returns a complex64 Value.
func Complex64(v complex64) Value { return Value{Kind: KindComplex64, C128: complex128(v)} }

// Complex128 returns a complex128 Value.
func Complex128(v complex128) Value { return Value{Kind: KindComplex128, C128: v} }

// AsBool returns the boolean payload if the kind is KindBool.
func (v Value) AsBool() (bool, bool) {
	if v.Kind != KindBool {
		return false, false
	}
	return v.B, true
}

// AsInt64 returns the signed integer payload if the kind is a signed integer.
func (v Value) AsInt64() (int64, bool) {
	if !v.Kind.IsSigned() {
		return 0, false
	}
	return v.I64, true
}

// AsUint64 returns the unsigned integer payload if the kind is an unsigned
// integer.
func (v Value) AsUint64() (uint64, bool) {
	if !v.Kind.IsUnsigned() {
		return 0, false
	}
	return v.U64, true
}

// AsFloat64 returns the floating point payload if the kind is a float.
func (v Value) AsFloat64() (float64, bool) {
	if !v.Kind.IsFloat() {
		return 0, false
	}
	return v.F64, true
}

// AsComplex128 returns the complex payload if the kind is complex.
func (v Value) AsComplex128() (complex128, bool) {
	if !v.Kind.IsComplex() {
		return 0, false
	}
	return v.C128, true
}

// Equal reports whether two values have the same kind and payload.
func (v Value) Equal(other Value) bool {
	if v.Kind != other.Kind {
		return false
	}
	switch {
	case v.Kind == KindBool:
		return v.B == other.B
	case v.Kind.IsSigned():
		return v.I64 == other.I64
	case v.Kind.IsUnsigned():
		return v.U64 == other.U64
	case v.Kind.IsFloat():
		return v.F64 == other.F64
	case v.Kind.IsComplex():
		return v.C128 == other.C128
	default:
		return false
	}
}

// String returns a compact representation for debugging and log output.
func (v Value) String() string {
	switch {
	case v.Kind == KindBool:
		if v.B {
			return "true"
		}
		return "false"
	case v.Kind.IsSigned():
		return strconv.FormatInt(v.I64, 10)
	case v.Kind.IsUnsigned():
		return strconv.FormatUint(v.U64, 10)
	case v.Kind.IsFloat():
		return strconv.FormatFloat(v.F64, 'g', -1, 64)
	case v.Kind.IsComplex():
		return strconv.FormatComplex(v.C128, 'g', -1, 128)
	default:
		return "<" + v.Kind.String() + ">"
	}
}
