package hamming

import (
	"fmt"

	hammingerrors "github.com/SingingTree/hamming/errors"
	intbits "github.com/SingingTree/hamming/internal/bits"
	"github.com/SingingTree/hamming/internal/encoding"
)

// Width is the bit width of the elements a raw byte buffer is read as.
type Width int

// Supported element widths.
const (
	Width8  Width = 8
	Width16 Width = 16
	Width32 Width = 32
	Width64 Width = 64
)

// Valid reports whether w is one of the supported widths.
func (w Width) Valid() bool {
	switch w {
	case Width8, Width16, Width32, Width64:
		return true
	}
	return false
}

// Size returns the element size in bytes.
func (w Width) Size() int {
	return int(w) / 8
}

// String returns the width as "<n>-bit".
func (w Width) String() string {
	return fmt.Sprintf("%d-bit", int(w))
}

// Bytes returns the bitwise Hamming distance between two byte slices.
// The result equals BitwiseSlice(a, b); it is computed eight bytes at a time.
func Bytes(a, b []byte) (uint64, error) {
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	return intbits.XorOnesCount(a, b), nil
}

// DistanceWidth reads a and b as little-endian sequences of w-bit words and
// returns their element-wise Hamming distance.
//
// Both buffers must have the same length, and that length must be a multiple
// of the word size.
func DistanceWidth(a, b []byte, w Width) (uint64, error) {
	n, err := checkBuffers(a, b, w)
	if err != nil {
		return 0, err
	}
	if w == Width8 {
		return Distance(a, b)
	}
	size := w.Size()
	var distance uint64
	for i := range n {
		off := i * size
		if encoding.ReadWord(a[off:], size) != encoding.ReadWord(b[off:], size) {
			distance++
		}
	}
	return distance, nil
}

// BitwiseWidth returns the bitwise Hamming distance of a and b read as w-bit
// words. The count does not depend on w, but the buffers are validated against
// it exactly as in DistanceWidth.
func BitwiseWidth(a, b []byte, w Width) (uint64, error) {
	if _, err := checkBuffers(a, b, w); err != nil {
		return 0, err
	}
	return intbits.XorOnesCount(a, b), nil
}

// checkBuffers validates a buffer pair against w and returns the word count.
func checkBuffers(a, b []byte, w Width) (int, error) {
	if !w.Valid() {
		return 0, fmt.Errorf("%w: %d", hammingerrors.ErrInvalidWidth, int(w))
	}
	if len(a) != len(b) {
		return 0, lengthMismatch(len(a), len(b))
	}
	n, aligned := encoding.WordCount(len(a), w.Size())
	if !aligned {
		return 0, fmt.Errorf("%w: %d bytes, %s words", hammingerrors.ErrUnalignedBuffer, len(a), w)
	}
	return n, nil
}
