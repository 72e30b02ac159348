// Package encoding decodes fixed-width little-endian words from byte buffers.
package encoding

import "encoding/binary"

// ReadWord reads a little-endian word of size bytes from buf.
// Optimized for the standard widths (1, 2, 4, 8 bytes).
// Precondition: len(buf) >= size and size <= 8.
func ReadWord(buf []byte, size int) uint64 {
	switch size {
	case 1:
		return uint64(buf[0])
	case 2:
		return uint64(binary.LittleEndian.Uint16(buf))
	case 4:
		return uint64(binary.LittleEndian.Uint32(buf))
	case 8:
		return binary.LittleEndian.Uint64(buf)
	default:
		var v uint64
		for i := range size {
			v |= uint64(buf[i]) << (i * 8)
		}
		return v
	}
}

// WordCount returns the number of complete size-byte words in a buffer of n
// bytes, and whether n is an exact multiple of size. A size below 1 yields
// (0, false).
func WordCount(n, size int) (int, bool) {
	if size < 1 {
		return 0, false
	}
	return n / size, n%size == 0
}
