// Package buffer provides the flat-buffer primitive underlying all raggo
// containers: a dense, typed, one-dimensional block of elements supporting
// native slicing, integer-array gathering and boolean-mask compaction.
//
// Buffers are immutable views: slicing shares the backing storage, gathering
// copies it, and nothing mutates a buffer in place.
package buffer
