// Package hamming computes Hamming distances between equal-length sequences
// of fixed-width unsigned integers.
//
// Two distances are provided: the element-wise distance counts the positions
// at which two sequences hold different values, and the bitwise distance
// counts the differing bits (the population count of a XOR b).
//
// # Basic Usage
//
// Element-wise distance:
//
//	d, err := hamming.Distance([]uint16{1, 2, 3}, []uint16{1, 5, 3})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(d) // 1
//
// Bitwise distance of two scalars or two sequences:
//
//	hamming.Bitwise(uint8(0b1010), uint8(0b0110)) // 2
//	d, err = hamming.BitwiseSlice([]uint32{1, 2}, []uint32{3, 2})
//	// d == 1
//
// Sequences of unequal length are rejected with an error wrapping
// errors.ErrLengthMismatch from github.com/SingingTree/hamming/errors; they are
// never truncated or padded.
//
// # Generic Dispatch
//
// Distance accepts any comparable element type. Bitwise and BitwiseSlice are
// generic over the Unsigned constraint, which covers uint8, uint16, uint32,
// uint64, uint and uintptr. There are no per-width specializations.
//
// # Package Structure
//
// The implementation is organized as follows:
//
//   - Distance engine: distance.go (Distance, Bitwise, BitwiseSlice), strings.go (Strings)
//   - Raw buffers: bytes.go (Bytes, Width, DistanceWidth, BitwiseWidth)
//   - Files: mapped.go (OpenMapped), compare.go (CompareFiles), compare_options.go
//   - Errors: errors/ (exported sentinels)
//   - Primitives: internal/bits/ (popcount), internal/encoding/ (word decoding)
//   - Fingerprints: simhash/ (SimHash over xxh3, xxhash or murmur3)
//   - Platform: madvise_*.go (OS-specific read-ahead hints)
package hamming
