package prefilter

import (
	"github.com/coregx/ahocorasick"

	"github.com/coregx/ngrep/literal"
)

// AhoCorasick is a multi-literal prefilter backed by an Aho-Corasick
// automaton. It is used for alternations of two or more literals,
// where repeated substring scans would re-walk the haystack per
// literal.
//
// It always reports IsComplete false, even for a complete sequence:
// the automaton's tie-break between same-start literals need not agree
// with the engine's pattern-priority order, so its hits are
// candidates, never spans.
type AhoCorasick struct {
	auto *ahocorasick.Automaton
}

// NewAhoCorasick builds the automaton over the sequence's literals.
// Returns nil if the automaton cannot be built; the caller falls back
// to the bare engine.
func NewAhoCorasick(seq *literal.Seq) Prefilter {
	builder := ahocorasick.NewBuilder()
	for i := 0; i < seq.Len(); i++ {
		builder.AddPattern(seq.Get(i).Bytes)
	}
	auto, err := builder.Build()
	if err != nil {
		return nil
	}
	return &AhoCorasick{auto: auto}
}

// Find returns the start of the first literal occurrence at or after
// start, or -1.
func (a *AhoCorasick) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	m := a.auto.Find(haystack, start)
	if m == nil {
		return -1
	}
	return m.Start
}

// IsComplete always reports false; see the type comment.
func (a *AhoCorasick) IsComplete() bool {
	return false
}
