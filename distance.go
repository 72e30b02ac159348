package hamming

import (
	"fmt"

	hammingerrors "github.com/SingingTree/hamming/errors"
	intbits "github.com/SingingTree/hamming/internal/bits"
)

// Unsigned is the constraint satisfied by the fixed-width unsigned integer
// types (8, 16, 32 and 64 bits, plus uint and uintptr) and any type whose
// underlying type is one of them.
type Unsigned = intbits.Unsigned

// Distance returns the element-wise Hamming distance between a and b: the
// number of positions i where a[i] != b[i].
//
// The sequences must have equal length. A mismatch returns an error wrapping
// ErrLengthMismatch; the shorter sequence is never compared as a prefix.
func Distance[T comparable](a, b []T) (uint64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	var distance uint64
	for i := range a {
		if a[i] != b[i] {
			distance++
		}
	}
	return distance, nil
}

// Bitwise returns the number of bit positions at which a and b differ,
// i.e. the population count of a ^ b. Both operands share the type T, so
// their widths are always equal.
func Bitwise[T Unsigned](a, b T) int {
	return intbits.OnesCount(a ^ b)
}

// BitwiseSlice returns the sum of Bitwise(a[i], b[i]) over all positions.
//
// The sequences must have equal length. A mismatch returns an error wrapping
// ErrLengthMismatch.
func BitwiseSlice[T Unsigned](a, b []T) (uint64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	var distance uint64
	for i := range a {
		distance += uint64(intbits.OnesCount(a[i] ^ b[i]))
	}
	return distance, nil
}

func lengthMismatch(a, b int) error {
	return fmt.Errorf("%w: %d != %d", hammingerrors.ErrLengthMismatch, a, b)
}
