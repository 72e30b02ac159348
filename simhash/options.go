package simhash

// Option is a functional option for configuring a Builder.
type Option func(*config)

type config struct {
	hasher Hasher
	seed   uint64
}

func defaultConfig() *config {
	return &config{
		hasher: HasherXXH3,
	}
}

// WithHasher sets the token hash function.
// Default is HasherXXH3.
func WithHasher(h Hasher) Option {
	return func(c *config) {
		c.hasher = h
	}
}

// WithSeed sets the token hash seed. Fingerprints are only comparable when
// they were built with the same hasher and seed.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}
