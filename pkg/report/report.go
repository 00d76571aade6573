// Package report writes search results and diagnostics.
package report

import (
	"fmt"
	"io"

	"github.com/praetorian-inc/minigrep/pkg/search"
)

// Printer writes results to Out in input order.
type Printer struct {
	Out io.Writer

	// Count prints the number of fragments instead of the fragments.
	Count bool

	// Headers prints "name:" before each result and a blank line between
	// results. Set it when more than one file is searched.
	Headers bool
}

// Print writes one result as the i-th of total.
func (p *Printer) Print(r search.Result, i, total int) error {
	if p.Headers {
		if _, err := fmt.Fprintf(p.Out, "%s:\n", r.Source); err != nil {
			return err
		}
	}

	if p.Count {
		if _, err := fmt.Fprintln(p.Out, len(r.Fragments)); err != nil {
			return err
		}
	} else {
		for _, fragment := range r.Fragments {
			if _, err := fmt.Fprintln(p.Out, fragment); err != nil {
				return err
			}
		}
	}

	if p.Headers && i != total-1 {
		if _, err := fmt.Fprintln(p.Out); err != nil {
			return err
		}
	}
	return nil
}

// PrintAll writes every result in order.
func (p *Printer) PrintAll(results []search.Result) error {
	for i, r := range results {
		if err := p.Print(r, i, len(results)); err != nil {
			return fmt.Errorf("writing results for %s: %w", r.Source, err)
		}
	}
	return nil
}
