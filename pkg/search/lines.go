package search

import (
	"iter"
	"strings"
)

// Lines yields the lines of corpus split on '\n'. The separator is removed
// but a trailing '\r' is kept. A final newline does not produce an extra
// empty line.
func Lines(corpus string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(corpus) {
			if !yield(strings.TrimSuffix(line, "\n")) {
				return
			}
		}
	}
}

// scanLines returns the non-empty lines of corpus for which keep is true.
// Empty lines are never passed to keep.
func scanLines(corpus string, keep func(line string) bool) []string {
	var out []string
	for line := range Lines(corpus) {
		if line != "" && keep(line) {
			out = append(out, line)
		}
	}
	return out
}
