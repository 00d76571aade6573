package search

import "github.com/praetorian-inc/minigrep/pkg/prefilter"

// Strategy is a search algorithm selected once from a Query and applied to
// any number of corpora. Strategies are immutable and safe for concurrent
// use.
type Strategy interface {
	// Mode reports which algorithm the strategy runs.
	Mode() Mode

	// Find returns the matched fragments of corpus in discovery order.
	// Literal strategies never return an error.
	Find(corpus string) ([]string, error)
}

// NewStrategy selects the algorithm for q. In regex mode the pattern is
// compiled here, so an invalid pattern is reported as a *PatternError
// before any corpus is read.
func NewStrategy(q Query) (Strategy, error) {
	switch q.Mode() {
	case ModeRegex:
		re, err := compileRegex(q.Pattern, q.Engine)
		if err != nil {
			return nil, err
		}
		return &regexStrategy{pattern: q.Pattern, re: re}, nil
	case ModeLiteral:
		return &literalStrategy{
			pattern: q.Pattern,
			pf:      prefilter.New(q.Pattern, false),
		}, nil
	default:
		pf := prefilter.New(q.Pattern, true)
		return &literalStrategy{
			pattern: pf.Keyword(),
			fold:    true,
			pf:      pf,
		}, nil
	}
}

type literalStrategy struct {
	pattern string // folded when fold is set
	fold    bool
	pf      *prefilter.Prefilter
}

func (s *literalStrategy) Mode() Mode {
	if s.fold {
		return ModeLiteralFold
	}
	return ModeLiteral
}

func (s *literalStrategy) Find(corpus string) ([]string, error) {
	if !s.pf.MayContain([]byte(corpus)) {
		return nil, nil
	}
	if s.fold {
		return searchFolded(s.pattern, corpus), nil
	}
	return Search(s.pattern, corpus), nil
}

type regexStrategy struct {
	pattern string
	re      compiledRegex
}

func (s *regexStrategy) Mode() Mode { return ModeRegex }

func (s *regexStrategy) Find(corpus string) ([]string, error) {
	return regexFragments(s.re, s.pattern, corpus)
}
