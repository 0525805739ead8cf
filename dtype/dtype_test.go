package dtype_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hupe1980/raggo/dtype"
)

func TestPromote(t *testing.T) {
	tests := []struct {
		name  string
		kinds []dtype.Kind
		want  dtype.Kind
	}{
		{"Empty", nil, dtype.KindInvalid},
		{"BoolOnly", []dtype.Kind{dtype.KindBool, dtype.KindBool}, dtype.KindBool},
		{"Int8Only", []dtype.Kind{dtype.KindInt8, dtype.KindInt8}, dtype.KindInt8},
		{"Uint8Only", []dtype.Kind{dtype.KindUint8}, dtype.KindUint8},
		{"Int8WithUint8", []dtype.Kind{dtype.KindInt8, dtype.KindUint8}, dtype.KindInt16},
		{"Uint8WithUint16", []dtype.Kind{dtype.KindUint8, dtype.KindUint16}, dtype.KindUint16},
		{"Int16WithUint16", []dtype.Kind{dtype.KindInt16, dtype.KindUint16}, dtype.KindInt32},
		{"Uint32Chain", []dtype.Kind{dtype.KindUint8, dtype.KindUint32}, dtype.KindUint32},
		{"Int32WithUint32", []dtype.Kind{dtype.KindInt32, dtype.KindUint32}, dtype.KindInt64},
		{"UnsignedOnlyWide", []dtype.Kind{dtype.KindUint32, dtype.KindUint64}, dtype.KindUint64},
		{"Float32Only", []dtype.Kind{dtype.KindFloat32, dtype.KindFloat32}, dtype.KindFloat32},
		{"Float32WithFloat64", []dtype.Kind{dtype.KindFloat32, dtype.KindFloat64}, dtype.KindFloat64},
		{"IntWithFloat", []dtype.Kind{dtype.KindInt32, dtype.KindFloat64}, dtype.KindFloat64},
		{"Int64WithUint64", []dtype.Kind{dtype.KindInt64, dtype.KindUint64}, dtype.KindFloat64},
		{"Complex64Only", []dtype.Kind{dtype.KindComplex64}, dtype.KindComplex64},
		{"Complex64With128", []dtype.Kind{dtype.KindComplex64, dtype.KindComplex128}, dtype.KindComplex128},
		{"IntWithComplex", []dtype.Kind{dtype.KindInt8, dtype.KindComplex64}, dtype.KindComplex128},
		{"FloatWithComplex", []dtype.Kind{dtype.KindFloat64, dtype.KindComplex128}, dtype.KindComplex128},
		{"BoolWithInt", []dtype.Kind{dtype.KindBool, dtype.KindInt8}, dtype.KindObject},
		{"ObjectAnywhere", []dtype.Kind{dtype.KindInt64, dtype.KindObject}, dtype.KindObject},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, dtype.Promote(tt.kinds...))
		})
	}
}

func TestPromoteCommutative(t *testing.T) {
	kinds := []dtype.Kind{
		dtype.KindBool, dtype.KindInt8, dtype.KindUint16, dtype.KindInt64,
		dtype.KindFloat32, dtype.KindComplex128, dtype.KindObject,
	}
	for _, a := range kinds {
		for _, b := range kinds {
			assert.Equal(t, dtype.Promote(a, b), dtype.Promote(b, a), "%s vs %s", a, b)
		}
	}
}

func TestKindPredicates(t *testing.T) {
	assert.True(t, dtype.KindInt16.IsSigned())
	assert.False(t, dtype.KindUint16.IsSigned())
	assert.True(t, dtype.KindUint64.IsUnsigned())
	assert.True(t, dtype.KindUint8.IsInteger())
	assert.True(t, dtype.KindFloat32.IsFloat())
	assert.True(t, dtype.KindComplex64.IsComplex())
	assert.True(t, dtype.KindFloat64.IsNumeric())
	assert.False(t, dtype.KindBool.IsNumeric())
	assert.False(t, dtype.KindObject.IsNumeric())

	assert.Equal(t, 1, dtype.KindBool.Size())
	assert.Equal(t, 2, dtype.KindUint16.Size())
	assert.Equal(t, 8, dtype.KindComplex64.Size())
	assert.Equal(t, 16, dtype.KindComplex128.Size())
	assert.Equal(t, 0, dtype.KindObject.Size())
}

func TestValueAccessors(t *testing.T) {
	i, ok := dtype.Int32(-7).AsInt64()
	assert.True(t, ok)
	assert.Equal(t, int64(-7), i)

	_, ok = dtype.Int32(-7).AsUint64()
	assert.False(t, ok)

	u, ok := dtype.Uint16(9).AsUint64()
	assert.True(t, ok)
	assert.Equal(t, uint64(9), u)

	f, ok := dtype.Float32(1.5).AsFloat64()
	assert.True(t, ok)
	assert.Equal(t, 1.5, f)

	c, ok := dtype.Complex128(2 + 3i).AsComplex128()
	assert.True(t, ok)
	assert.Equal(t, 2+3i, c)

	b, ok := dtype.Bool(true).AsBool()
	assert.True(t, ok)
	assert.True(t, b)
}

func TestValueEqual(t *testing.T) {
	assert.True(t, dtype.Int64(5).Equal(dtype.Int64(5)))
	assert.False(t, dtype.Int64(5).Equal(dtype.Int64(6)))
	assert.False(t, dtype.Int64(5).Equal(dtype.Int32(5)), "same payload, different kind")
	assert.True(t, dtype.Bool(false).Equal(dtype.Bool(false)))
	assert.False(t, dtype.Value{}.Equal(dtype.Value{}), "invalid values never compare equal")
}

func TestValueString(t *testing.T) {
	assert.Equal(t, "-3", dtype.Int8(-3).String())
	assert.Equal(t, "42", dtype.Uint64(42).String())
	assert.Equal(t, "1.5", dtype.Float64(1.5).String())
	assert.Equal(t, "true", dtype.Bool(true).String())
	assert.Equal(t, "<invalid>", dtype.Value{}.String())
	assert.Equal(t, "object", dtype.KindObject.String())
}
