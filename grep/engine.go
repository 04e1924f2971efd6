// Package grep drives the ngrep engine over files and streams: it
// resolves the search targets, matches line by line, and reports
// matches and diagnostics the way the command-line tool presents them.
package grep

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/coregx/ngrep"
)

// Options configures one search run.
type Options struct {
	// Pattern is the regex to search for. Must be non-empty; the CLI
	// validates that before calling Run.
	Pattern string

	// Recursive walks directories given as paths. With no paths at
	// all, recursive mode searches the current directory.
	Recursive bool

	// Color enables ANSI highlighting of the matched span. The CLI
	// resolves --color=auto to a concrete value before calling Run.
	Color bool

	// Profile emits simulator counters to Stderr after processing.
	Profile bool

	// Paths are the positional arguments. Empty and non-recursive
	// means read Stdin.
	Paths []string

	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Exit codes for Run.
const (
	ExitMatch   = 0
	ExitNoMatch = 1
)

// Run executes a full search and returns the process exit code: 0 when
// at least one line matched, 1 otherwise (including a pattern that
// fails to compile, which is reported to Stderr). Run does not
// validate the options; an empty Pattern matches every line.
func Run(opts Options) int {
	re, err := ngrep.Compile(opts.Pattern)
	if err != nil {
		fmt.Fprintf(opts.Stderr, "Regex parsing error: %v\n", err)
		return ExitNoMatch
	}

	searcher := NewSearcher(re, NewPrinter(opts.Stdout, opts.Color))
	found := false

	paths := opts.Paths
	if opts.Recursive && len(paths) == 0 {
		paths = []string{"."}
	}

	if len(paths) == 0 {
		if searcher.SearchReader("", opts.Stdin) {
			found = true
		}
	} else {
		files := CollectFiles(paths, opts.Recursive, opts.Stderr)
		withPrefix := len(files) > 1
		for _, file := range files {
			f, err := os.Open(file)
			if err != nil {
				fmt.Fprintf(opts.Stderr, "Error: Could not open file %s\n", file)
				continue
			}
			name := ""
			if withPrefix {
				name = file
			}
			if searcher.SearchReader(name, f) {
				found = true
			}
			f.Close()
		}
	}

	if opts.Profile {
		searcher.Profiler().WriteSummary(opts.Stderr, re.Stats())
	}
	if found {
		return ExitMatch
	}
	return ExitNoMatch
}

// Searcher matches lines from readers against one compiled pattern and
// prints the hits.
type Searcher struct {
	re      *ngrep.Regex
	printer *Printer
	prof    Profiler
}

// NewSearcher creates a searcher over the compiled pattern.
func NewSearcher(re *ngrep.Regex, printer *Printer) *Searcher {
	return &Searcher{re: re, printer: printer}
}

// Profiler returns the line counters accumulated so far.
func (s *Searcher) Profiler() *Profiler {
	return &s.prof
}

// SearchReader scans r line by line, printing each matching line with
// the given path prefix (none when path is empty). It reports whether
// any line matched. Lines are reported in input order; within a line
// the leftmost match span is highlighted.
func (s *Searcher) SearchReader(path string, r io.Reader) bool {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1<<20)

	found := false
	for scanner.Scan() {
		line := scanner.Bytes()
		s.prof.AddLine()
		start, end, ok := s.re.Find(line)
		if !ok {
			continue
		}
		s.printer.PrintMatch(path, line, start, end)
		found = true
	}
	return found
}
