// Package simhash computes 64-bit SimHash fingerprints of token streams.
//
// Similar inputs produce fingerprints that differ in few bit positions, so
// the bitwise Hamming distance between two fingerprints approximates how
// different the inputs are:
//
//	a, _ := simhash.Fingerprint(simhash.Fields("the quick brown fox"))
//	b, _ := simhash.Fingerprint(simhash.Fields("the quick brown dog"))
//	if simhash.Similar(a, b, 8) {
//	    fmt.Println("near duplicate")
//	}
package simhash

import (
	"strings"

	"github.com/SingingTree/hamming"
)

// Builder accumulates weighted token votes into a fingerprint.
// A Builder is not safe for concurrent use.
type Builder struct {
	hash  tokenHasher
	votes [64]int64
}

// New returns a Builder configured by opts.
// It fails with ErrUnknownHasher if WithHasher was given an unknown Hasher.
func New(opts ...Option) (*Builder, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	h, err := newTokenHasher(cfg.hasher, cfg.seed)
	if err != nil {
		return nil, err
	}
	return &Builder{hash: h}, nil
}

// Add adds token with weight 1.
func (b *Builder) Add(token []byte) {
	b.AddWeighted(token, 1)
}

// AddWeighted adds token with the given weight. Each bit of the token hash
// votes +weight when set and -weight when clear.
func (b *Builder) AddWeighted(token []byte, weight int64) {
	h := b.hash.sum64(token)
	for i := range b.votes {
		if h&(1<<i) != 0 {
			b.votes[i] += weight
		} else {
			b.votes[i] -= weight
		}
	}
}

// Sum returns the fingerprint: bit i is set iff its vote total is positive.
// An empty Builder sums to 0.
func (b *Builder) Sum() uint64 {
	var fp uint64
	for i, v := range b.votes {
		if v > 0 {
			fp |= 1 << i
		}
	}
	return fp
}

// Reset clears all votes, keeping the hasher configuration.
func (b *Builder) Reset() {
	b.votes = [64]int64{}
}

// Fingerprint returns the fingerprint of tokens, each with weight 1.
func Fingerprint(tokens [][]byte, opts ...Option) (uint64, error) {
	b, err := New(opts...)
	if err != nil {
		return 0, err
	}
	for _, tok := range tokens {
		b.Add(tok)
	}
	return b.Sum(), nil
}

// Distance returns the number of differing bits between two fingerprints.
func Distance(a, b uint64) int {
	return hamming.Bitwise(a, b)
}

// Similar reports whether a and b differ in at most threshold bits.
func Similar(a, b uint64, threshold int) bool {
	return Distance(a, b) <= threshold
}

// Fields splits s on white space into tokens.
func Fields(s string) [][]byte {
	fields := strings.Fields(s)
	tokens := make([][]byte, len(fields))
	for i, f := range fields {
		tokens[i] = []byte(f)
	}
	return tokens
}

// Shingles splits s into overlapping k-rune tokens: "abcd" with k=3 gives
// "abc", "bcd". A string shorter than k is returned as a single token, an
// empty string yields no tokens, and k < 1 is treated as 1.
func Shingles(s string, k int) [][]byte {
	if s == "" {
		return nil
	}
	k = max(k, 1)

	// byte offset of every rune start, plus len(s)
	offsets := make([]int, 0, len(s)+1)
	for i := range s {
		offsets = append(offsets, i)
	}
	runes := len(offsets)
	offsets = append(offsets, len(s))

	if runes <= k {
		return [][]byte{[]byte(s)}
	}
	tokens := make([][]byte, 0, runes-k+1)
	for i := 0; i+k <= runes; i++ {
		tokens = append(tokens, []byte(s[offsets[i]:offsets[i+k]]))
	}
	return tokens
}
