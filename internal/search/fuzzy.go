package search

import (
	"unicode/utf8"

	"github.com/agnivade/levenshtein"
)

// score is the normalized edit distance between two tokens: 0 for identical,
// 1 for nothing in common. Dividing by the longer token keeps a one-letter
// typo in a six-letter word (~0.17) under the default threshold while an
// unrelated word stays far above it.
func score(a, b string) float64 {
	la := utf8.RuneCountInString(a)
	lb := utf8.RuneCountInString(b)
	longest := la
	if lb > longest {
		longest = lb
	}
	if longest == 0 {
		return 0
	}
	return float64(levenshtein.ComputeDistance(a, b)) / float64(longest)
}
