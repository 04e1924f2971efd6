package nfa

import (
	"strings"
)

// CompilerConfig configures NFA compilation behavior.
type CompilerConfig struct {
	// MaxStates bounds the size of the compiled arena. Compilation
	// fails with ErrTooComplex when the pattern needs more states.
	// Default: 4096.
	MaxStates int
}

// DefaultCompilerConfig returns a compiler configuration with sensible defaults.
func DefaultCompilerConfig() CompilerConfig {
	return CompilerConfig{
		MaxStates: 4096,
	}
}

// Compiler compiles patterns into Thompson NFAs.
type Compiler struct {
	config CompilerConfig
}

// NewCompiler creates a compiler with the given configuration.
func NewCompiler(config CompilerConfig) *Compiler {
	if config.MaxStates == 0 {
		config.MaxStates = DefaultCompilerConfig().MaxStates
	}
	return &Compiler{config: config}
}

// Compile compiles pattern with the default configuration.
func Compile(pattern string) (*NFA, error) {
	return NewCompiler(DefaultCompilerConfig()).Compile(pattern)
}

// Compile compiles a pattern into an immutable NFA.
//
// The empty pattern compiles to a bare accepting state, which matches
// the empty string at any position. Otherwise the full pattern is
// parsed, trailing input is rejected, and every dangling output of the
// resulting fragment is patched to the accepting state.
func (c *Compiler) Compile(pattern string) (*NFA, error) {
	b := NewBuilder()

	if pattern == "" {
		accept := b.AddAccept()
		return b.Finish(accept, 0), nil
	}

	p := &parser{b: b, pattern: pattern}
	frag, err := p.parseAlternate()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		switch p.peek() {
		case ')':
			return nil, p.syntaxErr(p.pos, ErrUnmatchedParen)
		case ']':
			return nil, p.syntaxErr(p.pos, ErrUnmatchedBracket)
		default:
			return nil, p.syntaxErr(p.pos, ErrSyntax)
		}
	}

	accept := b.AddAccept()
	b.Patch(frag.out, accept)

	if len(b.states) > c.config.MaxStates {
		return nil, &SyntaxError{Pattern: pattern, Pos: 0, Err: ErrTooComplex}
	}
	return b.Finish(frag.start, p.groups), nil
}

// MustCompile compiles pattern and panics on error. Intended for
// patterns known to be valid at program start.
func MustCompile(pattern string) *NFA {
	n, err := Compile(pattern)
	if err != nil {
		panic("nfa: Compile(" + quote(pattern) + "): " + err.Error())
	}
	return n
}

func quote(s string) string {
	var sb strings.Builder
	sb.WriteByte('`')
	sb.WriteString(s)
	sb.WriteByte('`')
	return sb.String()
}
