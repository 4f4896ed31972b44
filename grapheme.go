package slate

import (
	"iter"
	"unicode/utf8"

	"github.com/rivo/uniseg"
)

// Graphemes yields the grapheme clusters of s paired with their display
// width in columns (0, 1 or 2). The sequence is lazy and can be ranged
// over more than once.
//
// Single-byte ASCII takes a fast path; everything else goes through
// uniseg's cluster segmentation and east-asian width tables. Control
// characters yield width 0 - callers that write to a buffer filter them
// out entirely.
func Graphemes(s string) iter.Seq2[string, int] {
	return func(yield func(string, int) bool) {
		// Each range starts from the full string; consuming s itself
		// would make the sequence single-use.
		rem := s
		for len(rem) > 0 {
			if c := rem[0]; c < utf8.RuneSelf {
				// An ASCII byte followed by a non-ASCII byte may still be
				// part of a multi-rune cluster (e.g. "e" + combining
				// acute), so the fast path only applies when the next
				// byte is ASCII too.
				if len(rem) == 1 || rem[1] < utf8.RuneSelf {
					if !yield(rem[:1], asciiWidth(c)) {
						return
					}
					rem = rem[1:]
					continue
				}
			}
			cluster, rest, width, _ := uniseg.FirstGraphemeClusterInString(rem, -1)
			if !yield(cluster, width) {
				return
			}
			rem = rest
		}
	}
}

// asciiWidth returns the column width of a single ASCII byte.
func asciiWidth(c byte) int {
	if c < 0x20 || c == 0x7f {
		return 0
	}
	return 1
}

// isControl reports whether the cluster is a bare control character.
// Control characters are filtered from buffer writes rather than stored.
func isControl(cluster string) bool {
	if len(cluster) == 0 {
		return true
	}
	r, size := utf8.DecodeRuneInString(cluster)
	return size == len(cluster) && (r < 0x20 || r == 0x7f)
}

// StringWidth returns the total display width of s in columns.
func StringWidth(s string) int {
	total := 0
	for _, w := range Graphemes(s) {
		total += w
	}
	return total
}
