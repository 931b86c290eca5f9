package knn

import "github.com/agext/levenshtein"

// Levenshtein returns the edit distance between a and b: the minimum number
// of single-character insertions, deletions and substitutions turning one
// into the other. Characters are compared as runes and case-sensitively.
func Levenshtein(a, b string) int {
	return levenshtein.Distance(a, b, nil)
}

// AbsDiff is the distance between two points on a line.
func AbsDiff(a, b int) int {
	if a > b {
		return a - b
	}
	return b - a
}
