package literal

import (
	"strings"
)

// Extract derives a literal sequence from a pattern under the engine's
// grammar. It is best-effort: a nil result just means no prefilter.
//
// Two shapes are recognized:
//
//   - An alternation whose every top-level branch is a plain literal
//     ("foo|bar|baz") yields a complete sequence, one literal per branch.
//   - Any other pattern without a top-level '|' yields its required
//     literal prefix, the run of plain bytes before the first
//     metacharacter, if there is one. A trailing byte made optional by
//     '*' or '?' is excluded.
//
// Patterns containing groups are not analyzed: parentheses change what
// "top level" means, and the prefix of "(ab|cd)x" is not a prefix of
// every match.
func Extract(pattern string) *Seq {
	if pattern == "" || strings.IndexByte(pattern, '(') >= 0 {
		return nil
	}

	branches, ok := splitAlternation(pattern)
	if !ok {
		return nil
	}
	if len(branches) > 1 {
		lits := make([]Literal, 0, len(branches))
		for _, br := range branches {
			bytes, ok := plainLiteral(br)
			if !ok {
				return nil
			}
			lits = append(lits, Literal{Bytes: bytes, Complete: true})
		}
		return NewSeq(lits)
	}

	prefix, complete := literalPrefix(pattern)
	if len(prefix) == 0 {
		return nil
	}
	return NewSeq([]Literal{{Bytes: prefix, Complete: complete}})
}

// splitAlternation splits the pattern at top-level '|' bytes, skipping
// escapes and bracket expressions. It fails on an unterminated escape
// or bracket; the parser will produce the real error.
func splitAlternation(pattern string) ([]string, bool) {
	var branches []string
	start := 0
	inBracket := false
	for i := 0; i < len(pattern); i++ {
		switch c := pattern[i]; {
		case inBracket:
			if c == ']' {
				inBracket = false
			}
		case c == '\\':
			if i+1 >= len(pattern) {
				return nil, false
			}
			i++
		case c == '[':
			inBracket = true
		case c == '|':
			branches = append(branches, pattern[start:i])
			start = i + 1
		}
	}
	if inBracket {
		return nil, false
	}
	return append(branches, pattern[start:]), true
}

// plainLiteral unescapes a branch that consists solely of literal
// bytes. Any metacharacter or class escape makes it fail.
func plainLiteral(branch string) ([]byte, bool) {
	if branch == "" {
		return nil, false
	}
	var out []byte
	for i := 0; i < len(branch); i++ {
		switch c := branch[i]; c {
		case '.', '^', '$', '[', ']', '(', ')', '*', '+', '?':
			return nil, false
		case '\\':
			if i+1 >= len(branch) {
				return nil, false
			}
			e := branch[i+1]
			if e == 'd' || e == 'w' || (e >= '0' && e <= '9') {
				return nil, false
			}
			out = append(out, e)
			i++
		default:
			out = append(out, c)
		}
	}
	return out, true
}

// literalPrefix collects the run of plain bytes every match must start
// with. It reports complete=true when the run is the entire pattern.
func literalPrefix(pattern string) ([]byte, bool) {
	var prefix []byte
	i := 0
	anchored := false
	if pattern[0] == '^' {
		anchored = true
		i = 1
	}
	for i < len(pattern) {
		c := pattern[i]
		switch c {
		case '.', '[', '(', ')', ']', '^', '$', '|':
			return prefix, false
		case '*', '?':
			// The preceding byte is optional; it cannot be required.
			if len(prefix) > 0 {
				prefix = prefix[:len(prefix)-1]
			}
			return prefix, false
		case '+':
			// The preceding byte stays; what repeats after it is not
			// contiguous with the prefix.
			return prefix, false
		case '\\':
			if i+1 >= len(pattern) {
				return prefix, false
			}
			e := pattern[i+1]
			if e == 'd' || e == 'w' || (e >= '0' && e <= '9') {
				return prefix, false
			}
			// An escaped literal may still be quantified away.
			if i+2 < len(pattern) && (pattern[i+2] == '*' || pattern[i+2] == '?') {
				return prefix, false
			}
			prefix = append(prefix, e)
			i += 2
		default:
			// A quantifier after this byte makes it optional (or breaks
			// contiguity); stop before including it in that case.
			if i+1 < len(pattern) && (pattern[i+1] == '*' || pattern[i+1] == '?') {
				return prefix, false
			}
			prefix = append(prefix, c)
			i++
		}
	}
	return prefix, !anchored
}
