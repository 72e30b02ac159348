package simhash

import (
	"fmt"

	hammingerrors "github.com/SingingTree/hamming/errors"
	"github.com/cespare/xxhash/v2"
	"github.com/spaolacci/murmur3"
	"github.com/zeebo/xxh3"
)

// Hasher identifies the 64-bit hash function applied to each token.
type Hasher uint8

const (
	// HasherXXH3 uses XXH3-64 (github.com/zeebo/xxh3). This is the default.
	HasherXXH3 Hasher = iota
	// HasherXXHash uses XXH64 (github.com/cespare/xxhash/v2).
	HasherXXHash
	// HasherMurmur3 uses MurmurHash3 x64 (github.com/spaolacci/murmur3).
	// Only the low 32 bits of the seed are used.
	HasherMurmur3
)

// String returns the name accepted by ParseHasher.
func (h Hasher) String() string {
	switch h {
	case HasherXXH3:
		return "xxh3"
	case HasherXXHash:
		return "xxhash"
	case HasherMurmur3:
		return "murmur3"
	default:
		return fmt.Sprintf("Hasher(%d)", uint8(h))
	}
}

// ParseHasher maps a hasher name ("xxh3", "xxhash", "murmur3") to its Hasher.
func ParseHasher(name string) (Hasher, error) {
	switch name {
	case "xxh3":
		return HasherXXH3, nil
	case "xxhash":
		return HasherXXHash, nil
	case "murmur3":
		return HasherMurmur3, nil
	default:
		return 0, fmt.Errorf("%w: %q", hammingerrors.ErrUnknownHasher, name)
	}
}

// tokenHasher hashes tokens with a fixed seed.
type tokenHasher interface {
	sum64(token []byte) uint64
}

func newTokenHasher(h Hasher, seed uint64) (tokenHasher, error) {
	switch h {
	case HasherXXH3:
		return xxh3Hasher{seed: seed}, nil
	case HasherXXHash:
		return &xxhashHasher{seed: seed, d: xxhash.NewWithSeed(seed)}, nil
	case HasherMurmur3:
		return murmur3Hasher{seed: uint32(seed)}, nil
	default:
		return nil, fmt.Errorf("%w: %s", hammingerrors.ErrUnknownHasher, h)
	}
}

type xxh3Hasher struct{ seed uint64 }

func (x xxh3Hasher) sum64(token []byte) uint64 {
	return xxh3.HashSeed(token, x.seed)
}

// xxhashHasher reuses one digest across tokens.
type xxhashHasher struct {
	seed uint64
	d    *xxhash.Digest
}

func (x *xxhashHasher) sum64(token []byte) uint64 {
	x.d.ResetWithSeed(x.seed)
	_, _ = x.d.Write(token) // Digest.Write never fails
	return x.d.Sum64()
}

type murmur3Hasher struct{ seed uint32 }

func (m murmur3Hasher) sum64(token []byte) uint64 {
	return murmur3.Sum64WithSeed(token, m.seed)
}
