// Package testutil provides testing utilities for raggo.
//
// This package is intended for use in tests and benchmarks only.
// It provides helpers for generating random ragged containers, building the
// ragged representation of dense rectangular arrays, and converting engine
// results into nested slices for structural comparison.
package testutil
