// Hamdist prints the Hamming distance between two files, two strings or the
// SimHash fingerprints of two text files.
//
// Usage:
//
//	go run ./cmd/hamdist [-width 8|16|32|64] FILE_A FILE_B
//	go run ./cmd/hamdist -strings A B
//	go run ./cmd/hamdist -simhash [-hasher xxh3] [-shingle 0] [-seed 0] FILE_A FILE_B
//
// Flags:
//
//	-width     Element width in bits for file comparison (default: 8)
//	-strings   Compare the two arguments as strings, rune by rune
//	-simhash   Compare SimHash fingerprints of the two text files
//	-hasher    Token hasher: xxh3, xxhash or murmur3 (default: xxh3)
//	-shingle   Rune k-gram size for tokens; 0 splits on white space (default: 0)
//	-seed      Token hash seed (default: 0)
//
// Exit status is 0 on success, 1 if the comparison fails and 2 on bad usage.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/SingingTree/hamming"
	"github.com/SingingTree/hamming/simhash"
)

const (
	exitOK    = 0
	exitFail  = 1
	exitUsage = 2
)

// errUsage marks errors caused by bad flags or arguments.
var errUsage = errors.New("usage")

type options struct {
	width   int
	strings bool
	simhash bool
	hasher  string
	shingle int
	seed    uint64
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("hamdist", flag.ContinueOnError)
	fs.SetOutput(stderr)
	var opts options
	fs.IntVar(&opts.width, "width", 8, "element width in bits for file comparison (8, 16, 32, 64)")
	fs.BoolVar(&opts.strings, "strings", false, "compare the two arguments as strings, rune by rune")
	fs.BoolVar(&opts.simhash, "simhash", false, "compare SimHash fingerprints of the two text files")
	fs.StringVar(&opts.hasher, "hasher", "xxh3", "token hasher: xxh3, xxhash or murmur3")
	fs.IntVar(&opts.shingle, "shingle", 0, "rune k-gram size for tokens; 0 splits on white space")
	fs.Uint64Var(&opts.seed, "seed", 0, "token hash seed")
	if err := fs.Parse(args); err != nil {
		return exitUsage
	}
	if fs.NArg() != 2 {
		fmt.Fprintln(stderr, "hamdist: expected exactly two arguments")
		fs.Usage()
		return exitUsage
	}
	a, b := fs.Arg(0), fs.Arg(1)

	var err error
	switch {
	case opts.strings && opts.simhash:
		err = fmt.Errorf("%w: -strings and -simhash are mutually exclusive", errUsage)
	case opts.strings:
		err = compareStrings(stdout, a, b)
	case opts.simhash:
		err = compareSimhash(stdout, a, b, opts)
	default:
		err = compareFiles(ctx, stdout, a, b, opts)
	}
	if err != nil {
		fmt.Fprintf(stderr, "hamdist: %v\n", err)
		if errors.Is(err, errUsage) {
			return exitUsage
		}
		return exitFail
	}
	return exitOK
}

func compareStrings(w io.Writer, a, b string) error {
	d, err := hamming.Strings(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "distance: %d\n", d)
	return nil
}

func compareFiles(ctx context.Context, w io.Writer, pathA, pathB string, opts options) error {
	width := hamming.Width(opts.width)
	if !width.Valid() {
		return fmt.Errorf("%w: -width must be 8, 16, 32 or 64, got %d", errUsage, opts.width)
	}
	res, err := hamming.CompareFiles(ctx, pathA, pathB, hamming.WithWidth(width))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "size:      %d bytes\n", res.Size)
	fmt.Fprintf(w, "elements:  %d (%s)\n", res.Elements, res.Width)
	fmt.Fprintf(w, "differing: %d\n", res.Differing)
	fmt.Fprintf(w, "bits:      %d\n", res.Bits)
	return nil
}

func compareSimhash(w io.Writer, pathA, pathB string, opts options) error {
	hasher, err := simhash.ParseHasher(opts.hasher)
	if err != nil {
		return fmt.Errorf("%w: %w", errUsage, err)
	}
	if opts.shingle < 0 {
		return fmt.Errorf("%w: -shingle must not be negative, got %d", errUsage, opts.shingle)
	}
	fa, err := fingerprintFile(pathA, opts.shingle, simhash.WithHasher(hasher), simhash.WithSeed(opts.seed))
	if err != nil {
		return err
	}
	fb, err := fingerprintFile(pathB, opts.shingle, simhash.WithHasher(hasher), simhash.WithSeed(opts.seed))
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%016x  %s\n", fa, pathA)
	fmt.Fprintf(w, "%016x  %s\n", fb, pathB)
	fmt.Fprintf(w, "distance: %d\n", simhash.Distance(fa, fb))
	return nil
}

func fingerprintFile(path string, shingle int, opts ...simhash.Option) (uint64, error) {
	m, err := hamming.OpenMapped(path)
	if err != nil {
		return 0, err
	}
	defer m.Close()
	data, err := m.Bytes()
	if err != nil {
		return 0, err
	}
	text := string(data)

	var tokens [][]byte
	if shingle == 0 {
		tokens = simhash.Fields(text)
	} else {
		tokens = simhash.Shingles(text, shingle)
	}
	return simhash.Fingerprint(tokens, opts...)
}
