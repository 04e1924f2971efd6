package nfa

import (
	"errors"
	"testing"
)

func TestParser_SyntaxErrors(t *testing.T) {
	tests := []struct {
		name    string
		pattern string
		wantErr error
	}{
		{"empty group operand", "()", ErrSyntax},
		{"empty alternation branch", "(|a)", ErrSyntax},
		{"trailing alternation", "a|", ErrUnexpectedEOF},
		{"bare open group", "(", ErrUnexpectedEOF},
		{"unclosed group", "(a", ErrUnclosedGroup},
		{"unclosed nested group", "(a(b)", ErrUnclosedGroup},
		{"stray close paren", "a)", ErrUnmatchedParen},
		{"leading close paren", ")", ErrUnmatchedParen},
		{"stray close bracket", "a]", ErrUnmatchedBracket},
		{"leading close bracket", "]", ErrUnmatchedBracket},
		{"unclosed bracket", "[abc", ErrUnclosedBracket},
		{"unclosed negated bracket", "[^", ErrUnclosedBracket},
		{"trailing backslash", `a\`, ErrTrailingEscape},
		{"stacked star", "a**", ErrStackedQuantifier},
		{"stacked plus", "a+*", ErrStackedQuantifier},
		{"stacked optional", "a?+", ErrStackedQuantifier},
		{"stacked on group", "(ab)*?", ErrStackedQuantifier},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.pattern)
			if err == nil {
				t.Fatalf("Compile(%q) succeeded, want error %v", tt.pattern, tt.wantErr)
			}
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
			}
			var syntaxErr *SyntaxError
			if !errors.As(err, &syntaxErr) {
				t.Errorf("Compile(%q) error is not a *SyntaxError: %v", tt.pattern, err)
			} else if syntaxErr.Pattern != tt.pattern {
				t.Errorf("SyntaxError.Pattern = %q, want %q", syntaxErr.Pattern, tt.pattern)
			}
		})
	}
}

func TestParser_ValidPatterns(t *testing.T) {
	patterns := []string{
		"a",
		"abc",
		"a|b|c",
		"a*b+c?",
		"(a)(b)(c)",
		"((a|b)c)*",
		"[abc][^xyz]",
		"[]",
		`\d\w\.\\`,
		`(\w+) \1`,
		"^start.*end$",
		"*leading star is a literal",
	}

	for _, pattern := range patterns {
		if _, err := Compile(pattern); err != nil {
			t.Errorf("Compile(%q) failed: %v", pattern, err)
		}
	}
}

// TestParser_GroupNumbering checks that groups are numbered in parse
// order of '(' and that the count resets between compilations.
func TestParser_GroupNumbering(t *testing.T) {
	tests := []struct {
		pattern string
		want    int
	}{
		{"", 0},
		{"abc", 0},
		{"(a)", 1},
		{"(a)(b)", 2},
		{"(a(b(c)))", 3},
		{"(a|b)(c)*", 2},
	}

	for _, tt := range tests {
		n := mustCompile(t, tt.pattern)
		if got := n.GroupCount(); got != tt.want {
			t.Errorf("GroupCount(%q) = %d, want %d", tt.pattern, got, tt.want)
		}
	}

	// The counter is per-compilation, not per-process: compiling a
	// grouped pattern twice yields the same numbering, observable via
	// backreference resolution.
	for i := 0; i < 2; i++ {
		vm := NewPikeVM(mustCompile(t, `(x)\1`))
		if !vm.Match([]byte("xx")) {
			t.Fatalf("compilation %d: (x)\\1 should match xx", i)
		}
	}
}

// TestParser_QuantifierWiring spot-checks the Thompson constructions
// through observable matching rather than graph introspection.
func TestParser_QuantifierWiring(t *testing.T) {
	tests := []struct {
		pattern string
		yes, no string
	}{
		{"ab?c", "ac", "abbc"},
		{"ab*c", "abbbc", "adc"},
		{"ab+c", "abbc", "ac"},
		{"(ab)+", "abab", "ba"},
		{"(a|b)*c", "abbac", "abba"},
	}

	for _, tt := range tests {
		vm := NewPikeVM(mustCompile(t, tt.pattern))
		if !vm.Match([]byte(tt.yes)) {
			t.Errorf("%q should match %q", tt.pattern, tt.yes)
		}
		if vm.Match([]byte(tt.no)) {
			t.Errorf("%q should not match %q", tt.pattern, tt.no)
		}
	}
}
