package hamming

import (
	"fmt"
	"testing"
)

func BenchmarkBytes(b *testing.B) {
	for _, n := range []int{64, 4096, 1 << 20} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			rng := newTestRNG(b)
			x, y := randomBytes(rng, n), randomBytes(rng, n)
			b.SetBytes(int64(n))
			b.ReportAllocs()
			for b.Loop() {
				if _, err := Bytes(x, y); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkBitwiseSliceUint8(b *testing.B) {
	const n = 4096
	rng := newTestRNG(b)
	x, y := randomBytes(rng, n), randomBytes(rng, n)
	b.SetBytes(n)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := BitwiseSlice(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBitwiseSliceUint64(b *testing.B) {
	const n = 512
	rng := newTestRNG(b)
	x, y := make([]uint64, n), make([]uint64, n)
	for i := range x {
		x[i], y[i] = rng.Uint64(), rng.Uint64()
	}
	b.SetBytes(n * 8)
	b.ReportAllocs()
	for b.Loop() {
		if _, err := BitwiseSlice(x, y); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDistanceWidth(b *testing.B) {
	const n = 4096
	rng := newTestRNG(b)
	x := randomBytes(rng, n)
	y := flipBits(rng, x, 64)
	for _, w := range []Width{Width8, Width16, Width32, Width64} {
		b.Run(w.String(), func(b *testing.B) {
			b.SetBytes(n)
			b.ReportAllocs()
			for b.Loop() {
				if _, err := DistanceWidth(x, y, w); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}
