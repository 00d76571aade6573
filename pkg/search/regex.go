package search

import (
	"regexp"
	"time"

	"github.com/dlclark/regexp2"
)

// MatchTimeout bounds a single backtracking match attempt.
const MatchTimeout = 5 * time.Second

// compiledRegex appends the fragments of one line to dst.
//
// For every non-overlapping match, left to right, the whole match comes
// first followed by each capturing group in order. Groups that did not
// participate and empty texts are skipped.
type compiledRegex interface {
	appendFragments(dst []string, line string) ([]string, error)
}

// RegexSearch compiles pattern with the RE2 engine and returns every
// non-empty whole-match and capture-group fragment found in corpus.
// An invalid pattern yields a *PatternError and no result.
func RegexSearch(pattern, corpus string) ([]string, error) {
	re, err := compileRegex(pattern, EngineRE2)
	if err != nil {
		return nil, err
	}
	return regexFragments(re, pattern, corpus)
}

func compileRegex(pattern string, engine Engine) (compiledRegex, error) {
	switch engine {
	case "", EngineRE2:
		re, err := regexp.Compile(pattern)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Engine: EngineRE2, Err: err}
		}
		return re2Regex{re: re}, nil
	case EngineBacktrack:
		re, err := regexp2.Compile(pattern, regexp2.None)
		if err != nil {
			return nil, &PatternError{Pattern: pattern, Engine: EngineBacktrack, Err: err}
		}
		// Set timeout to prevent catastrophic backtracking
		re.MatchTimeout = MatchTimeout
		return backtrackRegex{re: re}, nil
	default:
		_, err := ParseEngine(string(engine))
		return nil, err
	}
}

func regexFragments(re compiledRegex, pattern, corpus string) ([]string, error) {
	var (
		out []string
		err error
	)
	n := 0
	for line := range Lines(corpus) {
		n++
		out, err = re.appendFragments(out, line)
		if err != nil {
			return nil, &MatchError{Pattern: pattern, Line: n, Err: err}
		}
	}
	return out, nil
}

type re2Regex struct {
	re *regexp.Regexp
}

func (r re2Regex) appendFragments(dst []string, line string) ([]string, error) {
	for _, loc := range r.re.FindAllStringSubmatchIndex(line, -1) {
		// loc holds start/end pairs; index 0 is the whole match, -1 marks
		// a group that did not participate.
		for i := 0; i+1 < len(loc); i += 2 {
			start, end := loc[i], loc[i+1]
			if start < 0 || end <= start {
				continue
			}
			dst = append(dst, line[start:end])
		}
	}
	return dst, nil
}

type backtrackRegex struct {
	re *regexp2.Regexp
}

func (r backtrackRegex) appendFragments(dst []string, line string) ([]string, error) {
	match, err := r.re.FindStringMatch(line)
	for err == nil && match != nil {
		for _, group := range match.Groups() {
			if len(group.Captures) == 0 || group.Length == 0 {
				continue
			}
			dst = append(dst, group.String())
		}
		match, err = r.re.FindNextMatch(match)
	}
	return dst, err
}
