package builder

import (
	"fmt"
	"strconv"
)

// IDFn generates a node identifier from its zero-based index. It must be
// pure: the same idx always yields the same string.
type IDFn func(idx int) string

// DefaultIDFn returns "n" plus the decimal index: 0→"n0", 42→"n42".
func DefaultIDFn(idx int) string {
	return "n" + strconv.Itoa(idx)
}

// LetterIDFn returns the uppercase Latin letter for idx in [0, 25]: 0→"A",
// 25→"Z". Handy for small hand-checked fixtures. Panics outside the range.
func LetterIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic(fmt.Sprintf("builder: LetterIDFn idx must be in [0,25], got %d", idx))
	}
	return string('A' + rune(idx))
}

// PrefixIDFn returns prefix plus the decimal index, e.g. PrefixIDFn("v") maps
// 3 to "v3". Panics on negative idx.
func PrefixIDFn(prefix string) IDFn {
	return func(idx int) string {
		if idx < 0 {
			panic(fmt.Sprintf("builder: PrefixIDFn idx must be >= 0, got %d", idx))
		}
		return prefix + strconv.Itoa(idx)
	}
}

// WithLetterIDs sets the ID scheme to LetterIDFn.
func WithLetterIDs() BuilderOption {
	return WithIDScheme(LetterIDFn)
}
