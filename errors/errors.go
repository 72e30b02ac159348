// Package errors defines all exported error sentinels for the hamming library.
//
// This is the single source of truth for error values. The top-level hamming
// package, the simhash package and the internal packages import from here, so
// errors.Is checks work across package boundaries.
package errors

import "errors"

// Distance errors
var (
	ErrLengthMismatch = errors.New("hamming: sequences do not have equal length")
)

// Buffer errors
var (
	ErrInvalidWidth    = errors.New("hamming: unsupported element width (want 8, 16, 32 or 64 bits)")
	ErrUnalignedBuffer = errors.New("hamming: buffer length is not a multiple of the element width")
)

// Mapped file errors
var (
	ErrNotRegularFile = errors.New("hamming: not a regular file")
	ErrClosed         = errors.New("hamming: mapped file is closed")
)

// Fingerprint errors
var (
	ErrUnknownHasher = errors.New("hamming: unknown fingerprint hasher")
)
