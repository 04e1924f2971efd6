// Package literal extracts literal byte sequences from patterns.
//
// The extraction feeds prefilter construction: a line that does not
// contain any of the extracted literals cannot match the pattern, so
// the simulator never has to see it. When the literals cover the whole
// pattern, finding one IS the match.
package literal

// Literal is one literal byte sequence a match must contain. Complete
// means the literal is an entire alternative of the pattern, so an
// occurrence is a match by itself rather than just a candidate.
type Literal struct {
	Bytes    []byte
	Complete bool
}

// Len returns the length of the literal in bytes.
func (l Literal) Len() int {
	return len(l.Bytes)
}

// Seq is a set of alternative literals extracted from one pattern.
type Seq struct {
	lits     []Literal
	complete bool
}

// NewSeq builds a sequence from the given literals. The sequence is
// complete when every literal is.
func NewSeq(lits []Literal) *Seq {
	complete := len(lits) > 0
	for _, l := range lits {
		if !l.Complete {
			complete = false
			break
		}
	}
	return &Seq{lits: lits, complete: complete}
}

// Len returns the number of literals.
func (s *Seq) Len() int {
	return len(s.lits)
}

// Get returns the i-th literal.
func (s *Seq) Get(i int) Literal {
	return s.lits[i]
}

// IsEmpty reports whether the sequence holds no literals.
func (s *Seq) IsEmpty() bool {
	return s == nil || len(s.lits) == 0
}

// Complete reports whether the literals cover the whole pattern, i.e.
// matching any one of them is matching the pattern.
func (s *Seq) Complete() bool {
	return s != nil && s.complete
}
