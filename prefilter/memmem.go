package prefilter

import (
	"bytes"
)

// Memmem is a single-substring prefilter.
type Memmem struct {
	needle   []byte
	complete bool
}

// NewMemmem creates a prefilter that finds occurrences of needle.
func NewMemmem(needle []byte, complete bool) *Memmem {
	return &Memmem{needle: needle, complete: complete}
}

// Find returns the first occurrence of the needle at or after start.
func (m *Memmem) Find(haystack []byte, start int) int {
	if start > len(haystack) {
		return -1
	}
	idx := bytes.Index(haystack[start:], m.needle)
	if idx < 0 {
		return -1
	}
	return start + idx
}

// IsComplete reports whether the needle is the entire pattern.
func (m *Memmem) IsComplete() bool {
	return m.complete
}

// Needle returns the literal this prefilter searches for.
func (m *Memmem) Needle() []byte {
	return m.needle
}
