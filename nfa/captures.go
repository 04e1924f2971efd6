package nfa

import (
	"encoding/binary"
)

// Captures is the per-configuration capture snapshot: the text
// assembled so far for each group, whether the group is currently open
// on this path, and the in-progress offset for backreference matching.
//
// Snapshots follow a clone-before-write discipline: a *Captures that
// has been emitted into a configuration set is never mutated. The
// withOpen/withClose helpers return modified copies; appendByte
// mutates and is only called on a copy the caller just made.
type Captures struct {
	text   [][]byte
	active []bool
	refpos []int
}

// noCaptures is the shared snapshot for group-free patterns. It is
// never written to, so every configuration can alias it.
var noCaptures = &Captures{}

func newCaptures(groups int) *Captures {
	if groups == 0 {
		return noCaptures
	}
	return &Captures{
		text:   make([][]byte, groups),
		active: make([]bool, groups),
		refpos: make([]int, groups),
	}
}

func (c *Captures) groupCount() int { return len(c.text) }

func (c *Captures) clone() *Captures {
	if len(c.text) == 0 {
		return c
	}
	nc := &Captures{
		text:   make([][]byte, len(c.text)),
		active: append([]bool(nil), c.active...),
		refpos: append([]int(nil), c.refpos...),
	}
	for i, t := range c.text {
		if len(t) > 0 {
			nc.text[i] = append([]byte(nil), t...)
		}
	}
	return nc
}

// withOpen returns a copy with the group opened: captured text reset
// to empty and the group marked active.
func (c *Captures) withOpen(group uint32) *Captures {
	nc := c.clone()
	nc.text[group-1] = nil
	nc.active[group-1] = true
	return nc
}

// withClose returns a copy with the group closed. The captured text is
// kept for backreference resolution.
func (c *Captures) withClose(group uint32) *Captures {
	nc := c.clone()
	nc.active[group-1] = false
	return nc
}

// appendByte appends b to every group currently open on this path.
// The caller must own c exclusively.
func (c *Captures) appendByte(b byte) {
	for i, open := range c.active {
		if open {
			c.text[i] = append(c.text[i], b)
		}
	}
}

// Text returns the bytes captured so far by group (1-based), or nil
// when the group is out of range or was never opened.
func (c *Captures) Text(group uint32) []byte {
	if group == 0 || int(group) > len(c.text) {
		return nil
	}
	return c.text[group-1]
}

func (c *Captures) refPos(group uint32) int {
	return c.refpos[group-1]
}

func (c *Captures) setRefPos(group uint32, pos int) {
	c.refpos[group-1] = pos
}

// appendKey appends a stable byte encoding of the snapshot to buf.
// Two snapshots encode equal iff they are equal field-for-field, which
// is what configuration deduplication keys on.
func (c *Captures) appendKey(buf []byte) []byte {
	for i := range c.text {
		flag := byte(0)
		if c.active[i] {
			flag = 1
		}
		buf = append(buf, flag)
		buf = binary.AppendUvarint(buf, uint64(c.refpos[i]))
		buf = binary.AppendUvarint(buf, uint64(len(c.text[i])))
		buf = append(buf, c.text[i]...)
	}
	return buf
}
