package buffer

import (
	"github.com/hupe1980/raggo/core"
	"github.com/hupe1980/raggo/dtype"
	"github.com/hupe1980/raggo/slicing"
)

// Buffer is the flat-buffer primitive: a dense, typed, one-dimensional block
// of elements. It is the terminal structure of every ragged container and
// the only place elements are actually stored.
//
// A Buffer is never mutated in place; every operation returns a new view or
// copy over the same backing storage.
type Buffer interface {
	core.Array

	// Value reads the element at position i. Negative positions are offset
	// by the buffer length.
	Value(i int64) (dtype.Value, error)

	// Window returns the contiguous sub-buffer [start:stop) as a shared view.
	Window(start, stop int64) Buffer

	// Slice applies a 3-term slice descriptor with dense-array semantics and
	// returns the selected elements. Out-of-range bounds clip silently; the
	// only error case is a zero step.
	Slice(r slicing.Range) (Buffer, error)

	// Take gathers a copy of the elements at the given positions. Negative
	// positions are offset by the buffer length; positions out of range after
	// normalization fail with an IndexError.
	Take(idx []int64) (Buffer, error)

	// Select compacts the elements at the mask's true positions. The mask
	// length must match the buffer length.
	Select(m *slicing.Mask) (Buffer, error)

	// Equal reports elementwise equality with another buffer of the same
	// kind and length.
	Equal(other Buffer) bool
}

// Element is the closed set of Go types a Typed buffer can hold.
type Element interface {
	bool | int8 | uint8 | int16 | uint16 | int32 | uint32 |
		int64 | uint64 | float32 | float64 | complex64 | complex128
}

// Typed is the Buffer implementation over a plain Go slice.
type Typed[T Element] struct {
	data []T
	kind dtype.Kind
}

var _ Buffer = (*Typed[int64])(nil)

// New wraps a slice as a flat buffer. The slice is shared, not copied.
func New[T Element](data []T) *Typed[T] {
	return &Typed[T]{data: data, kind: kindOf[T]()}
}

// Of builds a flat buffer from explicit elements.
func Of[T Element](elems ...T) *Typed[T] {
	return New(elems)
}

// Data returns the backing slice.
func (b *Typed[T]) Data() []T { return b.data }

// Len returns the number of elements.
func (b *Typed[T]) Len() int { return len(b.data) }

// Kind returns the element type.
func (b *Typed[T]) Kind() dtype.Kind { return b.kind }

// Shape returns the one-dimensional shape.
func (b *Typed[T]) Shape() []int { return []int{len(b.data)} }

// Value reads the element at position i.
func (b *Typed[T]) Value(i int64) (dtype.Value, error) {
	n := int64(len(b.data))
	j := i
	if j < 0 {
		j += n
	}
	if j < 0 || j >= n {
		return dtype.Value{}, &core.IndexError{Index: i, Length: n}
	}
	return scalarOf(b.data[j]), nil
}

// Window returns the contiguous sub-buffer [start:stop) as a shared view.
func (b *Typed[T]) Window(start, stop int64) Buffer {
	return &Typed[T]{data: b.data[start:stop], kind: b.kind}
}

// Slice applies a 3-term slice descriptor with dense-array semantics.
func (b *Typed[T]) Slice(r slicing.Range) (Buffer, error) {
	start, stop, step, err := r.Normalize(int64(len(b.data)))
	if err != nil {
		return nil, err
	}
	if step == 1 {
		return b.Window(start, stop), nil
	}
	out := make([]T, 0, slicing.Count(start, stop, step))
	if step > 0 {
		for j := start; j < stop; j += step {
			out = append(out, b.data[j])
		}
	} else {
		for j := start; j > stop; j += step {
			out = append(out, b.data[j])
		}
	}
	return &Typed[T]{data: out, kind: b.kind}, nil
}

// Take gathers a copy of the elements at the given positions.
func (b *Typed[T]) Take(idx []int64) (Buffer, error) {
	n := int64(len(b.data))
	out := make([]T, len(idx))
	for k, i := range idx {
		j := i
		if j < 0 {
			j += n
		}
		if j < 0 || j >= n {
			return nil, &core.IndexError{Index: i, Length: n}
		}
		out[k] = b.data[j]
	}
	return &Typed[T]{data: out, kind: b.kind}, nil
}

// Select compacts the elements at the mask's true positions.
func (b *Typed[T]) Select(m *slicing.Mask) (Buffer, error) {
	if m.Len() != int64(len(b.data)) {
		return nil, &core.IndexError{
			Index:  m.Len(),
			Length: int64(len(b.data)),
			Reason: "mask length does not match buffer length",
		}
	}
	return b.Take(m.Positions())
}

// Equal reports elementwise equality with another buffer.
func (b *Typed[T]) Equal(other Buffer) bool {
	o, ok := other.(*Typed[T])
	if !ok || len(o.data) != len(b.data) {
		return false
	}
	for i := range b.data {
		if b.data[i] != o.data[i] {
			return false
		}
	}
	return true
}

func kindOf[T Element]() dtype.Kind {
	switch any(*new(T)).(type) {
	case bool:
		return dtype.KindBool
	case int8:
		return dtype.KindInt8
	case uint8:
		return dtype.KindUint8
	case int16:
		return dtype.KindInt16
	case uint16:
		return dtype.KindUint16
	case int32:
		return dtype.KindInt32
	case uint32:
		return dtype.KindUint32
	case int64:
		return dtype.KindInt64
	case uint64:
		return dtype.KindUint64
	case float32:
		return dtype.KindFloat32
	case float64:
		return dtype.KindFloat64
	case complex64:
		return dtype.KindComplex64
	case complex128:
		return dtype.KindComplex128
	default:
		return dtype.KindObject
	}
}

func scalarOf[T Element](v T) dtype.Value {
	switch x := any(v).(type) {
	case bool:
		return dtype.Bool(x)
	case int8:
		return dtype.Int8(x)
	case uint8:
		return dtype.Uint8(x)
	case int16:
		return dtype.Int16(x)
	case uint16:
		return dtype.Uint16(x)
	case int32:
		return dtype.Int32(x)
	case uint32:
		return dtype.Uint32(x)
	case int64:
		return dtype.Int64(x)
	case uint64:
		return dtype.Uint64(x)
	case float32:
		return dtype.Float32(x)
	case float64:
		return dtype.Float64(x)
	case complex64:
		return dtype.Complex64(x)
	case complex128:
		return dtype.Complex128(x)
	default:
		return dtype.Value{}
	}
}
