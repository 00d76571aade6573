package search

import (
	"errors"
	"fmt"
)

// ErrInvalidPattern is matched by every *PatternError via errors.Is.
var ErrInvalidPattern = errors.New("invalid regex pattern")

// PatternError reports a regular expression that failed to compile.
type PatternError struct {
	Pattern string
	Engine  Engine
	Err     error
}

func (e *PatternError) Error() string {
	return fmt.Sprintf("invalid regex pattern %q (%s engine): %v", e.Pattern, e.Engine, e.Err)
}

func (e *PatternError) Unwrap() error { return e.Err }

// Is lets errors.Is(err, ErrInvalidPattern) succeed.
func (e *PatternError) Is(target error) bool { return target == ErrInvalidPattern }

// MatchError reports a failure while running a compiled pattern, such as a
// backtracking engine timeout.
type MatchError struct {
	Pattern string
	Line    int // 1-indexed line of the corpus being matched
	Err     error
}

func (e *MatchError) Error() string {
	return fmt.Sprintf("matching %q on line %d: %v", e.Pattern, e.Line, e.Err)
}

func (e *MatchError) Unwrap() error { return e.Err }
