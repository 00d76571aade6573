package search

import (
	"strings"

	"golang.org/x/text/cases"
)

// folder applies full Unicode case folding. A folding Caser is stateless
// and safe for concurrent use.
var folder = cases.Fold()

// Fold returns the case-folded form of s used for case-insensitive
// comparison.
func Fold(s string) string {
	return folder.String(s)
}

// Search returns, in order, every non-empty line of corpus that contains
// pattern as a substring.
func Search(pattern, corpus string) []string {
	return scanLines(corpus, func(line string) bool {
		return strings.Contains(line, pattern)
	})
}

// SearchCaseInsensitive is Search with both pattern and line case-folded
// before the containment test. Returned lines keep their original case.
func SearchCaseInsensitive(pattern, corpus string) []string {
	return searchFolded(Fold(pattern), corpus)
}

// searchFolded expects an already folded pattern.
func searchFolded(folded, corpus string) []string {
	return scanLines(corpus, func(line string) bool {
		return strings.Contains(Fold(line), folded)
	})
}
