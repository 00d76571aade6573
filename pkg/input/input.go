// Package input loads whole corpora from files or standard input.
package input

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// StdinName names the corpus read from standard input.
const StdinName = "(standard input)"

// Source is one fully materialized corpus.
type Source struct {
	Name    string
	Content string
}

// ReadFile loads the whole file at path.
func ReadFile(path string) (Source, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Source{}, fmt.Errorf("reading %s: %w", path, err)
	}
	return Source{Name: path, Content: string(data)}, nil
}

// ReadStdin loads everything readable from r.
func ReadStdin(r io.Reader) (Source, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return Source{}, fmt.Errorf("reading standard input: %w", err)
	}
	return Source{Name: StdinName, Content: string(data)}, nil
}

// IsPiped reports whether f is connected to something other than a
// terminal, such as a pipe or a redirected file.
func IsPiped(f *os.File) bool {
	if f == nil {
		return false
	}
	return !term.IsTerminal(int(f.Fd()))
}
