package nfa

// outSlot names one unassigned successor pointer: the primary or
// alternative output of a state. Fragments collect slots; Patch
// assigns them.
type outSlot struct {
	state StateID
	alt   bool
}

// Fragment is a partially assembled NFA subgraph: a start state plus
// the list of dangling output slots inside it. Fragments exist only
// during parsing.
type Fragment struct {
	start StateID
	out   []outSlot
}

// Start returns the fragment's entry state.
func (f Fragment) Start() StateID { return f.start }

// Builder constructs NFA states in an arena. The parser drives it;
// Finish seals the arena into an immutable NFA.
type Builder struct {
	states []State
}

// NewBuilder creates a builder with a small initial arena.
func NewBuilder() *Builder {
	return &Builder{states: make([]State, 0, 16)}
}

func (b *Builder) add(s State) StateID {
	id := StateID(len(b.states))
	s.id = id
	s.out = InvalidState
	s.out1 = InvalidState
	b.states = append(b.states, s)
	return id
}

// AddLiteral adds a state consuming exactly the byte c.
func (b *Builder) AddLiteral(c byte) StateID {
	return b.add(State{kind: StateLiteral, b: c})
}

// AddAnyByte adds a state consuming any single byte.
func (b *Builder) AddAnyByte() StateID {
	return b.add(State{kind: StateAnyByte})
}

// AddDigit adds a state consuming one decimal digit.
func (b *Builder) AddDigit() StateID {
	return b.add(State{kind: StateDigit})
}

// AddWord adds a state consuming one word byte.
func (b *Builder) AddWord() StateID {
	return b.add(State{kind: StateWord})
}

// AddClass adds a bracket-expression state over the listed bytes.
// When negated is true the state consumes any byte not in the list.
func (b *Builder) AddClass(bytes []byte, negated bool) StateID {
	kind := StateClassIn
	if negated {
		kind = StateClassNotIn
	}
	s := State{kind: kind}
	for _, c := range bytes {
		s.set.add(c)
	}
	return b.add(s)
}

// AddAnchorStart adds a '^' assertion state.
func (b *Builder) AddAnchorStart() StateID {
	return b.add(State{kind: StateAnchorStart})
}

// AddAnchorEnd adds a '$' assertion state.
func (b *Builder) AddAnchorEnd() StateID {
	return b.add(State{kind: StateAnchorEnd})
}

// AddBackref adds a state matching the text captured by group (1-based).
func (b *Builder) AddBackref(group uint32) StateID {
	return b.add(State{kind: StateBackref, group: group})
}

// AddSplit adds an epsilon state forwarding to both out and out1.
// Either successor may be InvalidState and patched later.
func (b *Builder) AddSplit(out, out1 StateID) StateID {
	id := b.add(State{kind: StateSplit})
	b.states[id].out = out
	b.states[id].out1 = out1
	return id
}

// AddGroupOpen adds a Split carrying the open marker for a capture group.
func (b *Builder) AddGroupOpen(group uint32) StateID {
	return b.add(State{kind: StateSplit, groupOpen: group})
}

// AddGroupClose adds a Split carrying the close marker for a capture group.
func (b *Builder) AddGroupClose(group uint32) StateID {
	return b.add(State{kind: StateSplit, groupClose: group})
}

// AddAccept adds the accepting state.
func (b *Builder) AddAccept() StateID {
	return b.add(State{kind: StateAccept})
}

// Patch assigns every dangling output in slots to point at target.
func (b *Builder) Patch(slots []outSlot, target StateID) {
	for _, slot := range slots {
		if slot.alt {
			b.states[slot.state].out1 = target
		} else {
			b.states[slot.state].out = target
		}
	}
}

// SetOut assigns the primary successor of a state directly.
func (b *Builder) SetOut(id, target StateID) {
	b.states[id].out = target
}

// primarySlot and altSlot name the two outputs of a state as dangling slots.
func primarySlot(id StateID) outSlot { return outSlot{state: id} }
func altSlot(id StateID) outSlot     { return outSlot{state: id, alt: true} }

// Finish seals the arena into an NFA with the given start state and
// capture-group count. The builder must not be reused afterwards.
func (b *Builder) Finish(start StateID, groupCount int) *NFA {
	return &NFA{
		states:     b.states,
		start:      start,
		groupCount: groupCount,
	}
}
