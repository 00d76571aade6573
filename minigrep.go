// Package minigrep provides line-oriented text search.
//
// A Searcher selects one of three strategies from its options: a
// case-sensitive literal search (the default), a case-insensitive literal
// search, or a regular expression search that returns every whole match and
// capture group.
//
// # Basic Usage
//
//	searcher, err := minigrep.NewSearcher("duct")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	lines, err := searcher.Search("Rust:\nsafe, fast, productive.")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	for _, line := range lines {
//	    fmt.Println(line)
//	}
//
// # Regular Expressions
//
// An invalid pattern is reported by NewSearcher as an error that matches
// ErrInvalidPattern:
//
//	searcher, err := minigrep.NewSearcher(`(\w+)@(\w+)`, minigrep.WithRegex())
//	if errors.Is(err, minigrep.ErrInvalidPattern) {
//	    // report and exit
//	}
package minigrep

import (
	"context"
	"fmt"
	"runtime"

	"github.com/praetorian-inc/minigrep/pkg/input"
	"github.com/praetorian-inc/minigrep/pkg/search"
	"golang.org/x/sync/errgroup"
)

// Re-export commonly used types for convenience.
type (
	// Result holds the fragments found in one named corpus.
	Result = search.Result

	// Engine selects the regular expression implementation.
	Engine = search.Engine

	// PatternError reports a regular expression that failed to compile.
	PatternError = search.PatternError
)

// Re-export engines and sentinel errors.
const (
	EngineRE2       = search.EngineRE2
	EngineBacktrack = search.EngineBacktrack
)

var ErrInvalidPattern = search.ErrInvalidPattern

// Searcher applies one search strategy to any number of corpora.
// It is safe for concurrent use.
type Searcher struct {
	strategy search.Strategy
	config   *searcherConfig
}

// searcherConfig holds searcher configuration.
type searcherConfig struct {
	query search.Query
	jobs  int
}

// Option configures a Searcher.
type Option func(*searcherConfig)

// WithIgnoreCase makes literal searches case-insensitive. It has no effect
// on regex searches; use an inline (?i) flag there.
func WithIgnoreCase() Option {
	return func(c *searcherConfig) {
		c.query.CaseSensitive = false
	}
}

// WithCaseSensitive sets literal case sensitivity explicitly.
func WithCaseSensitive(sensitive bool) Option {
	return func(c *searcherConfig) {
		c.query.CaseSensitive = sensitive
	}
}

// WithRegex interprets the pattern as a regular expression.
func WithRegex() Option {
	return func(c *searcherConfig) {
		c.query.Regex = true
	}
}

// WithEngine selects the regular expression engine. Default is EngineRE2.
func WithEngine(engine Engine) Option {
	return func(c *searcherConfig) {
		c.query.Engine = engine
	}
}

// WithJobs bounds how many files SearchFiles reads and searches at once.
// Default is GOMAXPROCS.
func WithJobs(jobs int) Option {
	return func(c *searcherConfig) {
		c.jobs = jobs
	}
}

// NewSearcher creates a Searcher for pattern.
//
// By default, the searcher:
//   - Performs a case-sensitive literal search
//   - Uses the RE2 engine when WithRegex is given
//   - Searches up to GOMAXPROCS files concurrently
func NewSearcher(pattern string, opts ...Option) (*Searcher, error) {
	config := &searcherConfig{
		query: search.Query{
			Pattern:       pattern,
			CaseSensitive: true,
			Engine:        search.EngineRE2,
		},
		jobs: runtime.GOMAXPROCS(0),
	}

	for _, opt := range opts {
		opt(config)
	}

	if config.jobs < 1 {
		config.jobs = 1
	}

	strategy, err := search.NewStrategy(config.query)
	if err != nil {
		return nil, err
	}

	return &Searcher{
		strategy: strategy,
		config:   config,
	}, nil
}

// Mode reports the selected strategy.
func (s *Searcher) Mode() search.Mode {
	return s.strategy.Mode()
}

// Search returns the fragments of corpus in discovery order.
func (s *Searcher) Search(corpus string) ([]string, error) {
	return s.strategy.Find(corpus)
}

// SearchSource searches one loaded corpus.
func (s *Searcher) SearchSource(src input.Source) (Result, error) {
	fragments, err := s.strategy.Find(src.Content)
	if err != nil {
		return Result{Source: src.Name}, fmt.Errorf("searching %s: %w", src.Name, err)
	}
	return Result{Source: src.Name, Fragments: fragments}, nil
}

// SearchFiles reads and searches paths concurrently and returns their
// results in the order of paths.
//
// If a file cannot be read or searched, SearchFiles returns the results of
// the files before it together with the error of the first failing file in
// path order. Files after it may or may not have been searched; their
// results are discarded.
func (s *Searcher) SearchFiles(ctx context.Context, paths []string) ([]Result, error) {
	results := make([]Result, len(paths))
	errs := make([]error, len(paths))

	var g errgroup.Group
	g.SetLimit(s.config.jobs)

	for i, path := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				errs[i] = err
				return nil
			}

			src, err := input.ReadFile(path)
			if err != nil {
				errs[i] = err
				return nil
			}

			results[i], errs[i] = s.SearchSource(src)
			return nil
		})
	}

	// Per-file errors are kept in errs so earlier files are never cancelled
	_ = g.Wait()

	for i, err := range errs {
		if err != nil {
			return results[:i], err
		}
	}
	return results, nil
}
