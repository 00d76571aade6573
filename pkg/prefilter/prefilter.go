package prefilter

import (
	"github.com/cloudflare/ahocorasick"
	"golang.org/x/text/cases"
)

// Prefilter uses Aho-Corasick to reject content that cannot contain a
// literal keyword before it is split into lines.
type Prefilter struct {
	matcher *ahocorasick.Matcher
	keyword string
	fold    bool
}

// New creates a prefilter for keyword. When fold is true the keyword and
// the scanned content are compared in full Unicode case-folded form.
func New(keyword string, fold bool) *Prefilter {
	if fold {
		keyword = cases.Fold().String(keyword)
	}
	pf := &Prefilter{
		keyword: keyword,
		fold:    fold,
	}

	// An empty keyword matches everything; no automaton needed
	if keyword != "" {
		pf.matcher = ahocorasick.NewStringMatcher([]string{keyword})
	}

	return pf
}

// Keyword returns the keyword as compared, folded if the prefilter folds.
func (pf *Prefilter) Keyword() string {
	return pf.keyword
}

// MayContain reports whether content contains the keyword anywhere.
// A false result guarantees that no line of content can match.
func (pf *Prefilter) MayContain(content []byte) bool {
	if pf.matcher == nil {
		return true
	}
	if pf.fold {
		content = cases.Fold().Bytes(content)
	}
	return len(pf.matcher.Match(content)) > 0
}
