package hamming

import (
	"encoding/binary"
	"hash/fnv"
	"math/rand/v2"
	"os"
	"path/filepath"
	"testing"
)

// Named seeds for deterministic reproduction.
const (
	testSeed1 = 0x1234567890ABCDEF
	testSeed2 = 0xFEDCBA9876543210
)

func newTestRNG(t testing.TB) *rand.Rand {
	t.Helper()
	h := fnv.New128a()
	h.Write([]byte(t.Name()))
	sum := h.Sum(nil)
	s1 := binary.LittleEndian.Uint64(sum[:8])
	s2 := binary.LittleEndian.Uint64(sum[8:])
	return rand.New(rand.NewPCG(testSeed1^s1, testSeed2^s2))
}

// fillFromRNG fills buf with pseudo-random bytes from rng.
func fillFromRNG(rng *rand.Rand, buf []byte) {
	for i := 0; i+8 <= len(buf); i += 8 {
		binary.LittleEndian.PutUint64(buf[i:], rng.Uint64())
	}
	if tail := len(buf) % 8; tail > 0 {
		v := rng.Uint64()
		start := len(buf) - tail
		for j := 0; j < tail; j++ {
			buf[start+j] = byte(v >> (j * 8))
		}
	}
}

// randomBytes returns n deterministic pseudo-random bytes.
func randomBytes(rng *rand.Rand, n int) []byte {
	buf := make([]byte, n)
	fillFromRNG(rng, buf)
	return buf
}

// flipBits returns a copy of buf with roughly one bit in every `every` flipped.
func flipBits(rng *rand.Rand, buf []byte, every int) []byte {
	out := append([]byte(nil), buf...)
	for i := range out {
		for bit := range 8 {
			if rng.IntN(every) == 0 {
				out[i] ^= 1 << bit
			}
		}
	}
	return out
}

// writeTempFile writes data to a new file in a per-test temp directory.
func writeTempFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

// naiveBitwise counts differing bits one bit at a time.
func naiveBitwise(a, b []byte) uint64 {
	var d uint64
	for i := range a {
		x := a[i] ^ b[i]
		for ; x != 0; x >>= 1 {
			d += uint64(x & 1)
		}
	}
	return d
}
