package hamming

import "unicode/utf8"

// Strings returns the Hamming distance between two strings compared by
// Unicode code point. Both strings must contain the same number of runes;
// their byte lengths may differ.
//
// Invalid UTF-8 decodes to utf8.RuneError one byte at a time, so two
// distinct invalid bytes at the same position compare equal.
func Strings(a, b string) (uint64, error) {
	na, nb := utf8.RuneCountInString(a), utf8.RuneCountInString(b)
	if na != nb {
		return 0, lengthMismatch(na, nb)
	}
	var distance uint64
	for len(a) > 0 {
		ra, sa := utf8.DecodeRuneInString(a)
		rb, sb := utf8.DecodeRuneInString(b)
		if ra != rb {
			distance++
		}
		a, b = a[sa:], b[sb:]
	}
	return distance, nil
}
