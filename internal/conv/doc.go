// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking to prevent integer overflow when
// narrowing between integer types, as at the boundary between the engine's
// int64 positions and the bitmap's uint32 container space.
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, bounded counters), use direct type casts instead to avoid overhead.
package conv
