// Package ngrep provides a line-oriented regex matcher built on a
// Thompson NFA with capture-group and backreference semantics.
//
// The engine is deliberately small: patterns are byte-oriented, with
// literals, '.', '^', '$', bracket expressions (no ranges), \d, \w,
// capture groups, backreferences (\1..\9), alternation and the *, +, ?
// quantifiers. Matching never backtracks: all paths through the NFA
// advance in lock step, so runtime is bounded by the configuration
// fan-out rather than the shape of the input.
//
// Basic usage:
//
//	re, err := ngrep.Compile(`(cat|dog)s?`)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	start, end, ok := re.Find([]byte("I like cats"))
//	// start == 7, end == 11, ok == true
//
// Patterns made of plain literals are handled by a prefilter first: a
// single literal is resolved by substring search without the
// simulator, and an alternation of literals lets an Aho-Corasick
// automaton reject lines, with the simulator finding the span on the
// lines it lets through.
package ngrep

import (
	"bytes"

	"github.com/coregx/ngrep/literal"
	"github.com/coregx/ngrep/nfa"
	"github.com/coregx/ngrep/prefilter"
)

// Regex is a compiled pattern.
//
// A Regex is not safe for concurrent use: the simulator reuses its
// configuration sets between calls. Compile one per goroutine; the
// underlying NFA is shared and immutable.
type Regex struct {
	pattern string
	nfa     *nfa.NFA
	vm      *nfa.PikeVM
	pf      prefilter.Prefilter

	// exact is set when the whole pattern is one literal; Find then
	// resolves spans without running the simulator.
	exact []byte
}

// Compile compiles a pattern.
func Compile(pattern string) (*Regex, error) {
	n, err := nfa.Compile(pattern)
	if err != nil {
		return nil, err
	}
	re := &Regex{
		pattern: pattern,
		nfa:     n,
		vm:      nfa.NewPikeVM(n),
		pf:      prefilter.NewBuilder(literal.Extract(pattern)).Build(),
	}
	if m, ok := re.pf.(*prefilter.Memmem); ok && m.IsComplete() {
		re.exact = m.Needle()
	}
	return re, nil
}

// MustCompile compiles a pattern and panics if it fails. Useful for
// patterns known to be valid at program start.
func MustCompile(pattern string) *Regex {
	re, err := Compile(pattern)
	if err != nil {
		panic("ngrep: Compile(`" + pattern + "`): " + err.Error())
	}
	return re
}

// String returns the source pattern.
func (re *Regex) String() string {
	return re.pattern
}

// GroupCount returns the number of capture groups in the pattern.
func (re *Regex) GroupCount() int {
	return re.nfa.GroupCount()
}

// Match reports whether the pattern matches anywhere in line.
func (re *Regex) Match(line []byte) bool {
	_, _, ok := re.Find(line)
	return ok
}

// Find returns the span of the first match in line, leftmost-first:
// the leftmost starting position, and among matches starting there,
// the one preferred by pattern priority (greedy quantifiers, left
// alternative first). The span is half-open byte offsets; an empty
// match yields start == end.
func (re *Regex) Find(line []byte) (start, end int, ok bool) {
	if re.exact != nil {
		idx := bytes.Index(line, re.exact)
		if idx < 0 {
			return 0, 0, false
		}
		return idx, idx + len(re.exact), true
	}
	if re.pf != nil && re.pf.Find(line, 0) < 0 {
		return 0, 0, false
	}
	return re.vm.Find(line)
}

// Stats returns the simulator counters accumulated by this Regex.
// Lines resolved by the literal bypass never touch the simulator and
// do not appear here.
func (re *Regex) Stats() nfa.Stats {
	return re.vm.Stats()
}
