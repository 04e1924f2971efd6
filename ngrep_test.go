package ngrep

import (
	"errors"
	"testing"

	"github.com/coregx/ngrep/nfa"
)

func compile(t *testing.T, pattern string) *Regex {
	t.Helper()
	re, err := Compile(pattern)
	if err != nil {
		t.Fatalf("Compile(%q) failed: %v", pattern, err)
	}
	return re
}

func TestCompile_Errors(t *testing.T) {
	tests := []struct {
		pattern string
		wantErr error
	}{
		{"(a", nfa.ErrUnclosedGroup},
		{"[a", nfa.ErrUnclosedBracket},
		{"a)", nfa.ErrUnmatchedParen},
		{`a\`, nfa.ErrTrailingEscape},
		{"a**", nfa.ErrStackedQuantifier},
	}

	for _, tt := range tests {
		_, err := Compile(tt.pattern)
		if !errors.Is(err, tt.wantErr) {
			t.Errorf("Compile(%q) error = %v, want %v", tt.pattern, err, tt.wantErr)
		}
	}
}

// TestFind_AllEnginePaths covers every dispatch path with its own
// cases: the exact-literal bypass, the substring and Aho-Corasick
// prefilters, and the bare simulator.
func TestFind_AllEnginePaths(t *testing.T) {
	tests := []struct {
		name      string
		pattern   string
		line      string
		wantStart int
		wantEnd   int
		wantOK    bool
	}{
		// Exact-literal bypass.
		{"literal hit", "cat", "the cat sat", 4, 7, true},
		{"literal miss", "cat", "the dog sat", 0, 0, false},
		{"literal leftmost", "ab", "xabab", 1, 3, true},

		// Aho-Corasick reject then simulator span.
		{"alternation hit", "cat|dog", "hot dog", 4, 7, true},
		{"alternation miss", "cat|dog", "goldfish", 0, 0, false},

		// Prefix prefilter then simulator.
		{"prefix prefilter hit", `price \d`, "the price 42", 4, 11, true},
		{"prefix prefilter miss", `price \d`, "the cost 42", 0, 0, false},
		{"prefix rejects early", `price \d`, "no digits follow", 0, 0, false},

		// Bare simulator (no literals to extract).
		{"simulator only", `\d\d`, "a42", 1, 3, true},
		{"empty pattern", "", "x", 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			re := compile(t, tt.pattern)
			start, end, ok := re.Find([]byte(tt.line))
			if ok != tt.wantOK || start != tt.wantStart || end != tt.wantEnd {
				t.Errorf("Find(%q, %q) = (%d, %d, %v), want (%d, %d, %v)",
					tt.pattern, tt.line, start, end, ok, tt.wantStart, tt.wantEnd, tt.wantOK)
			}
			if got := re.Match([]byte(tt.line)); got != tt.wantOK {
				t.Errorf("Match(%q, %q) = %v, want %v", tt.pattern, tt.line, got, tt.wantOK)
			}
		})
	}
}

// TestFind_BypassAgreesWithSimulator cross-checks the literal bypass
// against a simulator compiled from the same pattern.
func TestFind_BypassAgreesWithSimulator(t *testing.T) {
	lines := []string{"", "needle", "a needle here", "nee", "needleneedle", "xneedle"}

	re := compile(t, "needle")
	vm := nfa.NewPikeVM(nfa.MustCompile("needle"))

	for _, line := range lines {
		s1, e1, ok1 := re.Find([]byte(line))
		s2, e2, ok2 := vm.Find([]byte(line))
		if s1 != s2 || e1 != e2 || ok1 != ok2 {
			t.Errorf("line %q: bypass gave (%d, %d, %v), simulator (%d, %d, %v)",
				line, s1, e1, ok1, s2, e2, ok2)
		}
	}
}

func TestRegex_Accessors(t *testing.T) {
	re := compile(t, "(a)(b(c))")
	if got := re.String(); got != "(a)(b(c))" {
		t.Errorf("String() = %q", got)
	}
	if got := re.GroupCount(); got != 3 {
		t.Errorf("GroupCount() = %d, want 3", got)
	}
}

func TestRegex_Stats(t *testing.T) {
	// The literal bypass never touches the simulator.
	lit := compile(t, "cat")
	lit.Match([]byte("the cat sat"))
	if got := lit.Stats(); got != (nfa.Stats{}) {
		t.Errorf("literal bypass accumulated stats: %+v", got)
	}

	// A simulated pattern does.
	sim := compile(t, `\d+`)
	sim.Match([]byte("abc123"))
	if got := sim.Stats(); got.Steps == 0 {
		t.Error("simulator recorded no steps")
	}
}

func TestMustCompile_Panics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("MustCompile of an invalid pattern did not panic")
		}
	}()
	MustCompile("[")
}
