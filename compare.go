package hamming

import (
	"context"
	"errors"
	"fmt"

	hammingerrors "github.com/SingingTree/hamming/errors"
	"golang.org/x/sync/errgroup"
)

// Result holds the outcome of comparing two files.
type Result struct {
	Size      int    // size of each file in bytes
	Width     Width  // element width the files were read as
	Elements  uint64 // number of Width-sized elements in each file
	Differing uint64 // element-wise Hamming distance
	Bits      uint64 // bitwise Hamming distance
}

// CompareFiles memory-maps the files at pathA and pathB and computes both
// their element-wise and bitwise Hamming distance.
//
// The files must have the same size (ErrLengthMismatch) and that size must
// be a multiple of the configured width (ErrUnalignedBuffer). The scan runs
// in chunks and stops with ctx.Err() once ctx is cancelled. Both mappings are
// released before CompareFiles returns.
//
// Example:
//
//	res, err := hamming.CompareFiles(ctx, "a.bin", "b.bin", hamming.WithWidth(hamming.Width32))
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Printf("%d of %d words differ (%d bits)\n", res.Differing, res.Elements, res.Bits)
func CompareFiles(ctx context.Context, pathA, pathB string, opts ...CompareOption) (res Result, err error) {
	cfg := defaultCompareConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	if !cfg.width.Valid() {
		return Result{}, fmt.Errorf("%w: %d", hammingerrors.ErrInvalidWidth, int(cfg.width))
	}

	var ma, mb *Mapped
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		ma, err = openMappedContext(gctx, pathA)
		return err
	})
	g.Go(func() error {
		var err error
		mb, err = openMappedContext(gctx, pathB)
		return err
	})
	waitErr := g.Wait()
	defer func() {
		err = errors.Join(err, closeMapped(ma), closeMapped(mb))
	}()
	if waitErr != nil {
		return Result{}, waitErr
	}

	a, err := ma.Bytes()
	if err != nil {
		return Result{}, err
	}
	b, err := mb.Bytes()
	if err != nil {
		return Result{}, err
	}
	return compareBuffers(ctx, a, b, cfg)
}

// compareBuffers scans a and b chunk by chunk, checking ctx between chunks.
func compareBuffers(ctx context.Context, a, b []byte, cfg *compareConfig) (Result, error) {
	n, err := checkBuffers(a, b, cfg.width)
	if err != nil {
		return Result{}, err
	}
	res := Result{
		Size:     len(a),
		Width:    cfg.width,
		Elements: uint64(n),
	}
	for off := 0; off < len(a); off += cfg.chunkSize {
		select {
		case <-ctx.Done():
			return Result{}, ctx.Err()
		default:
		}
		end := min(off+cfg.chunkSize, len(a))
		// chunkSize is a multiple of 8, so every chunk stays word-aligned.
		differing, err := DistanceWidth(a[off:end], b[off:end], cfg.width)
		if err != nil {
			return Result{}, err
		}
		bits, err := Bytes(a[off:end], b[off:end])
		if err != nil {
			return Result{}, err
		}
		res.Differing += differing
		res.Bits += bits
	}
	return res, nil
}

func openMappedContext(ctx context.Context, path string) (*Mapped, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return OpenMapped(path)
}

func closeMapped(m *Mapped) error {
	if m == nil {
		return nil
	}
	return m.Close()
}
