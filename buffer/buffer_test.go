package buffer_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/raggo/buffer"
	"github.com/hupe1980/raggo/core"
	"github.com/hupe1980/raggo/dtype"
	"github.com/hupe1980/raggo/slicing"
)

func TestTypedBasics(t *testing.T) {
	b := buffer.Of[int32](10, 20, 30)
	assert.Equal(t, 3, b.Len())
	assert.Equal(t, dtype.KindInt32, b.Kind())
	assert.Equal(t, []int{3}, b.Shape())
	assert.Equal(t, []int32{10, 20, 30}, b.Data())
}

func TestTypedValue(t *testing.T) {
	b := buffer.Of[float64](1.5, 2.5, 3.5)

	v, err := b.Value(1)
	require.NoError(t, err)
	assert.Equal(t, dtype.Float64(2.5), v)

	v, err = b.Value(-1)
	require.NoError(t, err)
	assert.Equal(t, dtype.Float64(3.5), v)

	_, err = b.Value(3)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIndex)

	_, err = b.Value(-4)
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIndex)
}

func TestTypedWindowSharesStorage(t *testing.T) {
	data := []int64{1, 2, 3, 4, 5}
	b := buffer.New(data)

	w := b.Window(1, 4)
	assert.Equal(t, 3, w.Len())

	data[2] = 99
	v, err := w.Value(1)
	require.NoError(t, err)
	assert.Equal(t, dtype.Int64(99), v)
}

func TestTypedSlice(t *testing.T) {
	b := buffer.Of[int64](0, 1, 2, 3, 4, 5)

	tests := []struct {
		name string
		r    slicing.Range
		want []int64
	}{
		{"All", slicing.All(), []int64{0, 1, 2, 3, 4, 5}},
		{"Span", slicing.Span(1, 4), []int64{1, 2, 3}},
		{"Step", slicing.SpanStep(0, 6, 2), []int64{0, 2, 4}},
		{"NegativeStep", slicing.StepBy(-1), []int64{5, 4, 3, 2, 1, 0}},
		{"NegativeBounds", slicing.Span(-4, -1), []int64{2, 3, 4}},
		{"ClippedStop", slicing.Span(4, 100), []int64{4, 5}},
		{"EmptyCrossed", slicing.Span(4, 2), nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := b.Slice(tt.r)
			require.NoError(t, err)
			assert.True(t, buffer.New(tt.want).Equal(got), "got %v", got)
		})
	}

	_, err := b.Slice(slicing.StepBy(0))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIndex)
}

func TestTypedTake(t *testing.T) {
	b := buffer.Of[int64](10, 20, 30, 40)

	got, err := b.Take([]int64{3, 0, -1, 1})
	require.NoError(t, err)
	assert.True(t, buffer.Of[int64](40, 10, 40, 20).Equal(got))

	_, err = b.Take([]int64{4})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIndex)

	_, err = b.Take([]int64{-5})
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIndex)
}

func TestTypedSelect(t *testing.T) {
	b := buffer.Of[int64](10, 20, 30, 40)

	got, err := b.Select(slicing.MaskOf(true, false, false, true))
	require.NoError(t, err)
	assert.True(t, buffer.Of[int64](10, 40).Equal(got))

	_, err = b.Select(slicing.MaskOf(true, false))
	require.Error(t, err)
	assert.ErrorIs(t, err, core.ErrIndex)
}

func TestTypedEqual(t *testing.T) {
	assert.True(t, buffer.Of[int64](1, 2).Equal(buffer.Of[int64](1, 2)))
	assert.False(t, buffer.Of[int64](1, 2).Equal(buffer.Of[int64](1, 3)))
	assert.False(t, buffer.Of[int64](1, 2).Equal(buffer.Of[int64](1)))
	assert.False(t, buffer.Of[int64](1, 2).Equal(buffer.Of[int32](1, 2)), "kinds differ")
}

func TestTypedKinds(t *testing.T) {
	assert.Equal(t, dtype.KindBool, buffer.Of[bool](true).Kind())
	assert.Equal(t, dtype.KindUint16, buffer.Of[uint16](1).Kind())
	assert.Equal(t, dtype.KindComplex128, buffer.Of[complex128](1+2i).Kind())

	v, err := buffer.Of[complex64](3 + 4i).Value(0)
	require.NoError(t, err)
	c, ok := v.AsComplex128()
	require.True(t, ok)
	assert.Equal(t, complex128(complex64(3+4i)), c)
}
