package grep

import (
	"fmt"
	"io"

	"github.com/coregx/ngrep/nfa"
)

// Profiler accumulates per-run counters for --profile. The simulator
// tracks its own step and configuration counts; the search loop counts
// lines here.
type Profiler struct {
	Lines uint64
}

// AddLine records one processed input line.
func (p *Profiler) AddLine() {
	p.Lines++
}

// WriteSummary emits the counter block to the diagnostic stream after
// all input has been processed.
func (p *Profiler) WriteSummary(w io.Writer, stats nfa.Stats) {
	fmt.Fprintf(w, "\n[Regex Profiler Summary]\n")
	fmt.Fprintf(w, "  Lines processed       : %d\n", p.Lines)
	fmt.Fprintf(w, "  Total simulation steps: %d\n", stats.Steps)
	fmt.Fprintf(w, "  Total states visited  : %d\n", stats.Configs)
	fmt.Fprintf(w, "  Max active states     : %d\n", stats.MaxActive)
}
