package nfa

import (
	"bytes"
	"testing"
)

func TestCaptures_SharedEmpty(t *testing.T) {
	c := newCaptures(0)
	if c != noCaptures {
		t.Error("group-free snapshot should be the shared instance")
	}
	if c.clone() != c {
		t.Error("cloning the shared snapshot should not allocate")
	}
	// Appending with no groups open is a no-op on the shared value.
	c.appendByte('x')
	if len(c.text) != 0 {
		t.Error("shared snapshot was mutated")
	}
}

func TestCaptures_OpenAppendClose(t *testing.T) {
	base := newCaptures(2)

	opened := base.withOpen(1)
	if opened == base {
		t.Fatal("withOpen must return a copy")
	}
	opened.appendByte('a')
	opened.appendByte('b')

	if got := opened.Text(1); !bytes.Equal(got, []byte("ab")) {
		t.Errorf("Text(1) = %q, want %q", got, "ab")
	}
	if got := opened.Text(2); got != nil {
		t.Errorf("Text(2) = %q, want nil", got)
	}
	if base.Text(1) != nil {
		t.Error("base snapshot was mutated through the copy")
	}

	closed := opened.withClose(1)
	closed.appendByte('c')
	if got := closed.Text(1); !bytes.Equal(got, []byte("ab")) {
		t.Errorf("closed group grew: Text(1) = %q", got)
	}
	if got := opened.Text(1); !bytes.Equal(got, []byte("ab")) {
		t.Errorf("withClose mutated its receiver: Text(1) = %q", got)
	}
}

func TestCaptures_ReopenResets(t *testing.T) {
	c := newCaptures(1).withOpen(1)
	c.appendByte('a')
	reopened := c.withOpen(1)
	if got := reopened.Text(1); len(got) != 0 {
		t.Errorf("reopened group kept text %q", got)
	}
}

func TestCaptures_CloneIsolation(t *testing.T) {
	c := newCaptures(1).withOpen(1)
	c.appendByte('x')

	d := c.clone()
	d.appendByte('y')
	d.setRefPos(1, 1)

	if got := c.Text(1); !bytes.Equal(got, []byte("x")) {
		t.Errorf("clone aliased text: %q", got)
	}
	if c.refPos(1) != 0 {
		t.Error("clone aliased refpos")
	}
}

func TestCaptures_KeyDistinguishesSnapshots(t *testing.T) {
	a := newCaptures(2).withOpen(1)
	a.appendByte('x')

	same := newCaptures(2).withOpen(1)
	same.appendByte('x')

	differentText := newCaptures(2).withOpen(1)
	differentText.appendByte('y')

	differentState := a.withClose(1)

	key := func(c *Captures) string { return string(c.appendKey(nil)) }

	if key(a) != key(same) {
		t.Error("equal snapshots produced different keys")
	}
	if key(a) == key(differentText) {
		t.Error("different captured text produced equal keys")
	}
	if key(a) == key(differentState) {
		t.Error("different active flags produced equal keys")
	}

	withPos := same.clone()
	withPos.setRefPos(1, 1)
	if key(a) == key(withPos) {
		t.Error("different backref positions produced equal keys")
	}
}
