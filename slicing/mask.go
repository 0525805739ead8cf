package slicing

import (
	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/raggo/internal/conv"
)

// Mask is a boolean index term over a dimension of declared length, backed by
// a roaring bitmap. Before the recursive engine runs, a mask is converted to
// the Pick holding its true positions in ascending order.
type Mask struct {
	rb     *roaring.Bitmap
	length int64
}

func (*Mask) isTerm() {}

// NewMask creates an all-false mask over a dimension of the given length.
func NewMask(length int64) *Mask {
	return &Mask{rb: roaring.New(), length: length}
}

// MaskOf builds a mask from explicit bits, one per position.
func MaskOf(bits ...bool) *Mask {
	m := NewMask(int64(len(bits)))
	for i, b := range bits {
		if b {
			m.Set(int64(i))
		}
	}
	return m
}

// Set marks position i as selected. Out-of-range positions are ignored.
func (m *Mask) Set(i int64) {
	if i < 0 || i >= m.length {
		return
	}
	p, err := conv.Int64ToUint32(i)
	if err != nil {
		return
	}
	m.rb.Add(p)
}

// Unset clears position i.
func (m *Mask) Unset(i int64) {
	if i < 0 || i >= m.length {
		return
	}
	p, err := conv.Int64ToUint32(i)
	if err != nil {
		return
	}
	m.rb.Remove(p)
}

// Test reports whether position i is selected.
func (m *Mask) Test(i int64) bool {
	if i < 0 || i >= m.length {
		return false
	}
	p, err := conv.Int64ToUint32(i)
	if err != nil {
		return false
	}
	return m.rb.Contains(p)
}

// Len returns the declared dimension length.
func (m *Mask) Len() int64 { return m.length }

// TrueCount returns the number of selected positions.
func (m *Mask) TrueCount() int64 { return int64(m.rb.GetCardinality()) }

// Positions returns the selected positions in ascending order.
func (m *Mask) Positions() Pick {
	out := make(Pick, 0, m.rb.GetCardinality())
	it := m.rb.Iterator()
	for it.HasNext() {
		out = append(out, int64(it.Next()))
	}
	return out
}
