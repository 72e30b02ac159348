// Package bits provides low-level bit counting primitives.
package bits

import (
	"encoding/binary"
	"math/bits"
)

// Unsigned is the set of fixed-width unsigned integer types.
type Unsigned interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint | ~uintptr
}

// OnesCount returns the number of set bits in x.
// Widening to uint64 zero-extends, so the count is exact for every width.
func OnesCount[T Unsigned](x T) int {
	return bits.OnesCount64(uint64(x))
}

// XorOnesCount returns the number of set bits in a ^ b over the first
// min(len(a), len(b)) bytes. Callers are expected to have checked lengths.
//
// Eight bytes are folded per step through little-endian word loads; the
// remaining tail is counted byte by byte.
func XorOnesCount(a, b []byte) uint64 {
	n := min(len(a), len(b))
	a, b = a[:n], b[:n]

	var count uint64
	for len(a) >= 8 {
		x := binary.LittleEndian.Uint64(a) ^ binary.LittleEndian.Uint64(b)
		count += uint64(bits.OnesCount64(x))
		a, b = a[8:], b[8:]
	}
	for i := range a {
		count += uint64(bits.OnesCount8(a[i] ^ b[i]))
	}
	return count
}
