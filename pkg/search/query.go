// Package search implements the line-oriented matching strategies used by
// minigrep: case-sensitive literal, case-insensitive literal and regular
// expression sub-match extraction.
package search

import "fmt"

// Mode identifies which of the three scanning algorithms a Strategy runs.
type Mode int

const (
	ModeLiteral     Mode = iota // case-sensitive substring containment
	ModeLiteralFold             // case-folded substring containment
	ModeRegex                   // regex whole-match and capture group extraction
)

func (m Mode) String() string {
	switch m {
	case ModeLiteral:
		return "literal"
	case ModeLiteralFold:
		return "literal-fold"
	case ModeRegex:
		return "regex"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// Engine selects the regular expression implementation used in ModeRegex.
type Engine string

const (
	// EngineRE2 uses the Go standard library (RE2 syntax, linear time).
	EngineRE2 Engine = "re2"

	// EngineBacktrack uses regexp2 (Perl/.NET syntax: lookaround,
	// backreferences). Matching is bounded by MatchTimeout.
	EngineBacktrack Engine = "backtrack"
)

// ParseEngine converts a user-supplied engine name into an Engine.
// The empty string selects EngineRE2.
func ParseEngine(name string) (Engine, error) {
	switch Engine(name) {
	case "", EngineRE2:
		return EngineRE2, nil
	case EngineBacktrack:
		return EngineBacktrack, nil
	default:
		return "", fmt.Errorf("unknown regex engine %q (want %q or %q)", name, EngineRE2, EngineBacktrack)
	}
}

// Query is the immutable description of one search.
type Query struct {
	Pattern       string // literal text or regex source
	CaseSensitive bool   // ignored when Regex is set
	Regex         bool
	Engine        Engine // regex engine; zero value means EngineRE2
}

// Mode reports which algorithm the query selects. Regex takes precedence
// over the case-sensitivity flag.
func (q Query) Mode() Mode {
	switch {
	case q.Regex:
		return ModeRegex
	case q.CaseSensitive:
		return ModeLiteral
	default:
		return ModeLiteralFold
	}
}

// Result holds the fragments found in one named corpus.
type Result struct {
	Source    string
	Fragments []string
}
