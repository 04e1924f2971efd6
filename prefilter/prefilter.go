// Package prefilter provides fast candidate rejection for the search
// loop using literals extracted from the pattern.
//
// A prefilter answers one question cheaply: can this line possibly
// match? A line with no candidate position is skipped without running
// the simulator. When the extracted literals cover the whole pattern,
// a single-literal prefilter's hit is itself the match.
package prefilter

import (
	"github.com/coregx/ngrep/literal"
)

// Prefilter finds candidate match positions ahead of the full engine.
type Prefilter interface {
	// Find returns the index of the first candidate at or after start,
	// or -1 if the haystack cannot match.
	Find(haystack []byte, start int) int

	// IsComplete reports whether a candidate is a guaranteed match, so
	// the engine may skip verification.
	IsComplete() bool
}

// Builder selects a prefilter implementation for a literal sequence.
type Builder struct {
	seq *literal.Seq
}

// NewBuilder creates a builder over the given sequence, which may be nil.
func NewBuilder(seq *literal.Seq) *Builder {
	return &Builder{seq: seq}
}

// Build returns the best prefilter for the sequence, or nil when there
// is nothing to filter on:
//
//   - one literal: substring search
//   - several literals: an Aho-Corasick automaton over all of them
func (b *Builder) Build() Prefilter {
	if b.seq.IsEmpty() {
		return nil
	}
	if b.seq.Len() == 1 {
		lit := b.seq.Get(0)
		return NewMemmem(lit.Bytes, lit.Complete)
	}
	return NewAhoCorasick(b.seq)
}
