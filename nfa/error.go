package nfa

import (
	"errors"
	"fmt"
)

// Common pattern errors. SyntaxError wraps one of these with the
// position at which parsing failed.
var (
	// ErrSyntax is a generic pattern syntax error.
	ErrSyntax = errors.New("syntax error in pattern")

	// ErrUnexpectedEOF indicates the pattern ended where more input was required.
	ErrUnexpectedEOF = errors.New("unexpected end of pattern")

	// ErrTrailingEscape indicates the pattern ended with a bare '\'.
	ErrTrailingEscape = errors.New("unexpected end of pattern after '\\'")

	// ErrUnclosedBracket indicates a '[' with no matching ']'.
	ErrUnclosedBracket = errors.New("unclosed bracket expression")

	// ErrUnclosedGroup indicates a '(' with no matching ')'.
	ErrUnclosedGroup = errors.New("expected ')' to close group")

	// ErrUnmatchedParen indicates a ')' with no matching '('.
	ErrUnmatchedParen = errors.New("unmatched ')'")

	// ErrUnmatchedBracket indicates a ']' with no matching '['.
	ErrUnmatchedBracket = errors.New("unmatched ']'")

	// ErrStackedQuantifier indicates a quantifier applied to a quantifier
	// (e.g. "a**"), which this engine rejects at parse time.
	ErrStackedQuantifier = errors.New("quantifier follows quantifier")

	// ErrTooComplex indicates the compiled NFA exceeded the configured
	// state budget.
	ErrTooComplex = errors.New("pattern too complex")
)

// SyntaxError reports a pattern that failed to parse, with the byte
// offset at which the parser gave up.
type SyntaxError struct {
	Pattern string
	Pos     int
	Err     error
}

// Error implements the error interface.
func (e *SyntaxError) Error() string {
	return fmt.Sprintf("regex syntax error at offset %d in %q: %v", e.Pos, e.Pattern, e.Err)
}

// Unwrap returns the underlying error so callers can match sentinels
// with errors.Is.
func (e *SyntaxError) Unwrap() error {
	return e.Err
}
