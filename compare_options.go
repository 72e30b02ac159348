package hamming

// defaultChunkSize is how many bytes CompareFiles scans between context checks.
// Must be a multiple of the largest word size (8 bytes).
const defaultChunkSize = 1 << 20

// CompareOption is a functional option for configuring CompareFiles.
type CompareOption func(*compareConfig)

type compareConfig struct {
	width     Width
	chunkSize int
}

func defaultCompareConfig() *compareConfig {
	return &compareConfig{
		width:     Width8,
		chunkSize: defaultChunkSize,
	}
}

// WithWidth sets the element width the files are read as.
// Default is Width8 (byte-wise element comparison).
func WithWidth(w Width) CompareOption {
	return func(c *compareConfig) {
		c.width = w
	}
}

// withChunkSize overrides the scan chunk size. Test hook; n is rounded down
// to a multiple of 8 and never below 8.
func withChunkSize(n int) CompareOption {
	return func(c *compareConfig) {
		c.chunkSize = max(n&^7, 8)
	}
}
