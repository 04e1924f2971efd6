package nfa

import (
	"encoding/binary"

	"github.com/coregx/ngrep/internal/conv"
	"github.com/coregx/ngrep/internal/sparse"
)

// Stats holds simulation counters, accumulated across searches until
// ResetStats. The search layer surfaces them behind --profile.
type Stats struct {
	// Steps is the number of byte steps executed.
	Steps uint64

	// Configs is the total number of configurations visited across all
	// steps.
	Configs uint64

	// MaxActive is the high-water mark of concurrent configurations.
	MaxActive uint64
}

// config is one live computation path: an NFA state plus the capture
// snapshot accumulated along the path, tagged with the text position
// the path was seeded at.
type config struct {
	state StateID
	start int
	caps  *Captures
}

// PikeVM simulates an NFA over a text by maintaining a set of active
// configurations, in the style of Pike's VM: all paths advance in lock
// step, one input byte at a time, so no backtracking ever happens.
//
// Configurations are deduplicated per generation on (state, capture
// snapshot), which bounds fan-out for patterns that are merely
// nondeterministic. Backreference-amplified patterns can still grow
// the set superlinearly; the compiler's state budget does not bound
// that, and the simulator does not abort.
//
// A PikeVM is not safe for concurrent use; the compiled NFA it runs is
// read-only and may be shared across instances.
type PikeVM struct {
	nfa *NFA

	// Configuration sets for the current and next generation. Queue
	// order is priority order: epsilon closure emits primary outputs
	// first, and earlier-seeded cohorts sit earlier in the set.
	curr, next []config

	// seen deduplicates (state, snapshot) pairs within one generation.
	seen map[string]struct{}

	// visited guards each epsilon-closure call against Split cycles.
	// It is cleared per call; it is not the per-generation dedup.
	visited *sparse.Set

	keyBuf []byte
	stats  Stats
}

// NewPikeVM creates a simulator for the given compiled NFA.
func NewPikeVM(n *NFA) *PikeVM {
	capacity := n.States()
	if capacity < 16 {
		capacity = 16
	}
	return &PikeVM{
		nfa:     n,
		curr:    make([]config, 0, capacity),
		next:    make([]config, 0, capacity),
		seen:    make(map[string]struct{}, capacity),
		visited: sparse.NewSet(conv.IntToUint32(n.States())),
	}
}

// Stats returns the counters accumulated so far.
func (p *PikeVM) Stats() Stats {
	return p.stats
}

// ResetStats zeroes the accumulated counters.
func (p *PikeVM) ResetStats() {
	p.stats = Stats{}
}

// Match reports whether the pattern matches anywhere in text.
func (p *PikeVM) Match(text []byte) bool {
	_, _, ok := p.Find(text)
	return ok
}

// Find runs the NFA over text and returns the span of the first match,
// with leftmost-first semantics.
//
// The search is unanchored unless the pattern begins with '^': a fresh
// configuration cohort is seeded at every position and all cohorts
// advance together. The queue is kept in priority order — earlier
// cohorts first, and within a cohort, consuming (primary) paths before
// skipping (alternative) ones — so the first accepting configuration
// found is the best match so far. Recording it discards every
// lower-priority configuration; the higher-priority survivors keep
// stepping and may extend the recorded span, which is what makes
// quantifiers greedy. The search ends when no configuration can extend
// the recorded match, or at end of text.
func (p *PikeVM) Find(text []byte) (start, end int, ok bool) {
	anchored := p.nfa.AnchoredStart()
	seed := p.nfa.SeedStart()

	p.curr = p.curr[:0]
	p.clearGeneration()

	matched := false
	mStart, mEnd := 0, 0

	for i := 0; ; i++ {
		// Once a match is recorded, later seeds cannot beat it: they
		// start strictly to the right.
		if !matched && (i == 0 || !anchored) {
			p.closureInto(&p.curr, seed, newCaptures(p.nfa.GroupCount()), i)
		}
		if n := uint64(len(p.curr)); n > p.stats.MaxActive {
			p.stats.MaxActive = n
		}
		for j, c := range p.curr {
			if p.nfa.State(c.state).Kind() == StateAccept {
				matched, mStart, mEnd = true, c.start, i
				p.curr = p.curr[:j]
				break
			}
		}
		if len(p.curr) == 0 {
			if matched {
				return mStart, mEnd, true
			}
			if anchored {
				// Anchored search with no live path cannot recover.
				break
			}
		}
		if i == len(text) {
			break
		}

		p.stats.Steps++
		p.stats.Configs += uint64(len(p.curr))
		b := text[i]
		p.next = p.next[:0]
		p.clearGeneration()
		for _, c := range p.curr {
			p.step(c, b)
		}
		p.curr, p.next = p.next, p.curr
	}

	// Terminal closure: '$' assertions expand once the whole text has
	// been consumed; every other configuration carries over unchanged.
	// An accept here outranks the recorded match — it comes from a
	// higher-priority path, or the recorded match would have ended the
	// loop already.
	p.next = p.next[:0]
	p.clearGeneration()
	for _, c := range p.curr {
		s := p.nfa.State(c.state)
		if s.Kind() == StateAnchorEnd {
			p.closureInto(&p.next, s.Out(), c.caps, c.start)
		} else {
			p.add(&p.next, c)
		}
	}
	for _, c := range p.next {
		if p.nfa.State(c.state).Kind() == StateAccept {
			return c.start, len(text), true
		}
	}
	if matched {
		return mStart, mEnd, true
	}
	return 0, 0, false
}

// step advances one configuration over input byte b, emitting the
// epsilon closure of its successor into the next generation. A
// configuration that cannot consume b is dropped; that is ordinary
// control flow, not an error.
func (p *PikeVM) step(c config, b byte) {
	s := p.nfa.State(c.state)
	switch s.Kind() {
	case StateLiteral:
		if s.Byte() == b {
			p.advance(c, s, b)
		}
	case StateAnyByte:
		p.advance(c, s, b)
	case StateDigit:
		if isDigit(b) {
			p.advance(c, s, b)
		}
	case StateWord:
		if isWord(b) {
			p.advance(c, s, b)
		}
	case StateClassIn:
		if s.InSet(b) {
			p.advance(c, s, b)
		}
	case StateClassNotIn:
		if !s.InSet(b) {
			p.advance(c, s, b)
		}
	case StateBackref:
		p.stepBackref(c, s, b)
	default:
		// Assertions, Split and Accept never consume input.
	}
}

// advance consumes b: the byte is appended to every open capture
// group, then the closure of the successor joins the next generation.
func (p *PikeVM) advance(c config, s *State, b byte) {
	caps := c.caps.clone()
	caps.appendByte(b)
	p.closureInto(&p.next, s.Out(), caps, c.start)
}

// stepBackref advances a backreference state one byte. The referenced
// text is matched online: the configuration re-emits itself until the
// whole captured sequence has been consumed, then proceeds past the
// state. A reference to a group that never captured anything (or an
// empty capture) kills the path.
//
// Consumed bytes are appended to every group still open on the path,
// including the referenced group itself if it is somehow still open;
// that re-entry can lengthen the referenced text mid-match. It is
// nonstandard, but it is the engine's defined behavior.
func (p *PikeVM) stepBackref(c config, s *State, b byte) {
	group := s.Group()
	if group == 0 || int(group) > c.caps.groupCount() {
		return
	}
	captured := c.caps.Text(group)
	if len(captured) == 0 {
		return
	}
	pos := c.caps.refPos(group)
	if pos >= len(captured) || captured[pos] != b {
		return
	}
	caps := c.caps.clone()
	if pos+1 == len(captured) {
		caps.setRefPos(group, 0)
		caps.appendByte(b)
		p.closureInto(&p.next, s.Out(), caps, c.start)
		return
	}
	caps.setRefPos(group, pos+1)
	caps.appendByte(b)
	p.add(&p.next, config{state: c.state, start: c.start, caps: caps})
}

// closureInto emits the epsilon closure of state id into list,
// carrying caps. Group markers on the way update the snapshot; Split
// states fan out primary-first. The visited set is local to this call.
func (p *PikeVM) closureInto(list *[]config, id StateID, caps *Captures, start int) {
	p.visited.Clear()
	p.closure(list, id, caps, start)
}

func (p *PikeVM) closure(list *[]config, id StateID, caps *Captures, start int) {
	if id == InvalidState || p.visited.Contains(uint32(id)) {
		return
	}
	p.visited.Insert(uint32(id))

	s := p.nfa.State(id)
	if g := s.GroupOpen(); g != 0 {
		caps = caps.withOpen(g)
	}
	if g := s.GroupClose(); g != 0 {
		caps = caps.withClose(g)
	}
	if s.Kind() == StateSplit {
		p.closure(list, s.Out(), caps, start)
		p.closure(list, s.Out1(), caps, start)
		return
	}
	p.add(list, config{state: id, start: start, caps: caps})
}

// add appends c to list unless an equal (state, snapshot) pair already
// joined the current generation.
func (p *PikeVM) add(list *[]config, c config) {
	p.keyBuf = binary.BigEndian.AppendUint32(p.keyBuf[:0], uint32(c.state))
	p.keyBuf = c.caps.appendKey(p.keyBuf)
	if _, dup := p.seen[string(p.keyBuf)]; dup {
		return
	}
	p.seen[string(p.keyBuf)] = struct{}{}
	*list = append(*list, c)
}

func (p *PikeVM) clearGeneration() {
	clear(p.seen)
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

func isWord(b byte) bool {
	return isDigit(b) || (b >= 'a' && b <= 'z') || (b >= 'A' && b <= 'Z') || b == '_'
}
