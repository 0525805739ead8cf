package testutil

import (
	"math/rand"
	"sync"

	"github.com/hupe1980/raggo/buffer"
	"github.com/hupe1980/raggo/core"
	"github.com/hupe1980/raggo/dtype"
	"github.com/hupe1980/raggo/ragged"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// RandomJagged generates a ragged container with the given number of rows,
// each of a random length up to maxRow, over a sequential int64 buffer.
func (r *RNG) RandomJagged(rows, maxRow int) *ragged.Jagged {
	counts := make([]int64, rows)
	var total int64
	for i := range counts {
		counts[i] = int64(r.Intn(maxRow + 1))
		total += counts[i]
	}
	data := make([]int64, total)
	for i := range data {
		data[i] = int64(i)
	}
	j, err := ragged.FromCounts(counts, buffer.New(data))
	if err != nil {
		panic(err)
	}
	return j
}

// Regular builds the nested ragged representation of a dense rectangular
// int64 array of the given shape, filled with sequential values 0..n-1 in
// row-major order.
func Regular(shape ...int) *ragged.Jagged {
	if len(shape) < 2 {
		panic("Regular requires rank >= 2")
	}
	total := 1
	for _, s := range shape {
		total *= s
	}
	data := make([]int64, total)
	for i := range data {
		data[i] = int64(i)
	}

	var content core.Array = buffer.New(data)
	// innermost dimension first
	for d := len(shape) - 2; d >= 0; d-- {
		rows := 1
		for _, s := range shape[:d+1] {
			rows *= s
		}
		counts := make([]int64, rows)
		for i := range counts {
			counts[i] = int64(shape[d+1])
		}
		j, err := ragged.FromCounts(counts, content)
		if err != nil {
			panic(err)
		}
		content = j
	}
	return content.(*ragged.Jagged)
}

// Nested converts an engine result into nested []any with int64 leaves, for
// structural comparison against reference results.
func Nested(v any) any {
	switch t := v.(type) {
	case dtype.Value:
		return t.I64
	case *buffer.Typed[int64]:
		out := make([]any, t.Len())
		for i, x := range t.Data() {
			out[i] = x
		}
		return out
	case *ragged.Jagged:
		out := make([]any, t.Len())
		for i := range out {
			row, err := t.Row(i)
			if err != nil {
				panic(err)
			}
			out[i] = Nested(row)
		}
		return out
	default:
		panic("unsupported result type")
	}
}
