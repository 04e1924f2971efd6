// Package nfa implements the regex engine behind ngrep: a pattern
// parser, a Thompson NFA, and a configuration-set simulator with
// capture-group and online backreference semantics.
//
// The NFA is stored as an arena of states indexed by StateID. States
// are immutable after compilation, so a compiled NFA may be shared by
// any number of simulators.
package nfa

import (
	"fmt"
)

// StateID uniquely identifies an NFA state within its arena.
type StateID uint32

// InvalidState marks an unassigned successor slot. During parsing,
// fragments carry slots still set to InvalidState ("dangling outputs");
// compilation patches every one of them before the NFA is returned.
const InvalidState StateID = 0xFFFFFFFF

// StateKind identifies the type of an NFA state and determines which
// transitions are valid from it.
type StateKind uint8

const (
	// StateAccept is the accepting state. Reaching it means the input
	// consumed so far is a match.
	StateAccept StateKind = iota

	// StateLiteral consumes exactly one input byte equal to Byte().
	StateLiteral

	// StateAnyByte consumes any single input byte.
	StateAnyByte

	// StateDigit consumes one byte in '0'..'9'.
	StateDigit

	// StateWord consumes one byte in '0'..'9', 'a'..'z', 'A'..'Z' or '_'.
	StateWord

	// StateClassIn consumes one byte contained in the state's byte set.
	StateClassIn

	// StateClassNotIn consumes one byte not contained in the byte set.
	StateClassNotIn

	// StateAnchorStart asserts the beginning of the input text. It is
	// meaningful only as the outermost start state; the simulator seeds
	// past it and anchors the search at position zero.
	StateAnchorStart

	// StateAnchorEnd asserts the end of the input text. It never
	// consumes a byte; the simulator expands it during the terminal
	// closure after the last byte.
	StateAnchorEnd

	// StateBackref consumes the byte sequence previously captured by
	// group Group(), one byte per step.
	StateBackref

	// StateSplit is the only epsilon-transition producer: it forwards
	// to both Out and Out1 without consuming input. Split states also
	// carry the capture-group open/close markers.
	StateSplit
)

// String returns a human-readable representation of the StateKind.
func (k StateKind) String() string {
	switch k {
	case StateAccept:
		return "Accept"
	case StateLiteral:
		return "Literal"
	case StateAnyByte:
		return "AnyByte"
	case StateDigit:
		return "Digit"
	case StateWord:
		return "Word"
	case StateClassIn:
		return "ClassIn"
	case StateClassNotIn:
		return "ClassNotIn"
	case StateAnchorStart:
		return "AnchorStart"
	case StateAnchorEnd:
		return "AnchorEnd"
	case StateBackref:
		return "Backref"
	case StateSplit:
		return "Split"
	default:
		return fmt.Sprintf("Unknown(%d)", k)
	}
}

// byteSet is a 256-bit membership set for bracket expressions.
type byteSet [4]uint64

func (s *byteSet) add(b byte) {
	s[b>>6] |= 1 << (b & 63)
}

func (s *byteSet) contains(b byte) bool {
	return s[b>>6]&(1<<(b&63)) != 0
}

// State is a single NFA state. The state's kind determines which
// fields are meaningful.
type State struct {
	id   StateID
	kind StateKind

	// For Literal: the byte to match.
	b byte

	// For ClassIn/ClassNotIn: the byte membership set.
	set byteSet

	// For Backref: the referenced capture group (1-based).
	group uint32

	// Successors. out is the primary transition; out1 is used only by
	// Split states.
	out, out1 StateID

	// Capture-group markers, carried only on Split states. Zero means
	// no marker; group ids are 1-based.
	groupOpen  uint32
	groupClose uint32
}

// ID returns the state's identifier.
func (s *State) ID() StateID { return s.id }

// Kind returns the state's type.
func (s *State) Kind() StateKind { return s.kind }

// Byte returns the literal byte for Literal states.
func (s *State) Byte() byte { return s.b }

// InSet reports whether b is a member of the state's byte set.
// Only meaningful for ClassIn/ClassNotIn states.
func (s *State) InSet(b byte) bool { return s.set.contains(b) }

// Group returns the referenced capture group for Backref states (1-based).
func (s *State) Group() uint32 { return s.group }

// Out returns the primary successor.
func (s *State) Out() StateID { return s.out }

// Out1 returns the alternative successor (Split states only).
func (s *State) Out1() StateID { return s.out1 }

// GroupOpen returns the capture group opened on entry to this state,
// or zero if none.
func (s *State) GroupOpen() uint32 { return s.groupOpen }

// GroupClose returns the capture group closed on entry to this state,
// or zero if none.
func (s *State) GroupClose() uint32 { return s.groupClose }

// NFA is a compiled pattern: an immutable arena of states plus the
// start state and capture-group metadata.
type NFA struct {
	states     []State
	start      StateID
	groupCount int
}

// State returns the state with the given id. The returned pointer is
// into the arena; callers must not mutate it.
func (n *NFA) State(id StateID) *State {
	return &n.states[id]
}

// States returns the number of states in the arena.
func (n *NFA) States() int {
	return len(n.states)
}

// Start returns the compiled start state.
func (n *NFA) Start() StateID {
	return n.start
}

// GroupCount returns the number of capture groups in the pattern.
func (n *NFA) GroupCount() int {
	return n.groupCount
}

// AnchoredStart reports whether the pattern begins with '^'. Anchored
// searches are seeded only at position zero.
func (n *NFA) AnchoredStart() bool {
	return n.states[n.start].kind == StateAnchorStart
}

// SeedStart returns the state the simulator seeds from: the start
// state itself, or its successor when the pattern begins with '^'
// (the anchor is consumed at position zero).
func (n *NFA) SeedStart() StateID {
	if n.AnchoredStart() {
		return n.states[n.start].out
	}
	return n.start
}
