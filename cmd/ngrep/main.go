// Command ngrep searches input lines for an extended regex pattern.
//
// Usage:
//
//	ngrep [-r] -E pattern [--color=always|never|auto] [--profile] [file ...]
//
// With no files (and no -r), standard input is searched. Exit status
// is 0 when at least one line matched and 1 otherwise; argument and
// pattern errors also exit 1 and are reported on standard error.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coregx/ngrep/grep"
)

const usage = "Usage: ngrep [-r] -E pattern [--color=always|never|auto] [--profile] [file ...]"

type cliArgs struct {
	pattern   string
	foundE    bool
	recursive bool
	color     string
	profile   bool
	paths     []string
}

func parseArgs(args []string) (cliArgs, error) {
	a := cliArgs{color: "auto"}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		switch {
		case arg == "-E":
			a.foundE = true
			i++
			if i >= len(args) {
				return a, errors.New("-E requires a pattern argument")
			}
			a.pattern = args[i]
		case arg == "-r":
			a.recursive = true
		case strings.HasPrefix(arg, "--color="):
			v := strings.TrimPrefix(arg, "--color=")
			switch v {
			case "always", "never", "auto":
				a.color = v
			default:
				return a, fmt.Errorf("invalid --color value: %q", v)
			}
		case arg == "--profile":
			a.profile = true
		default:
			a.paths = append(a.paths, arg)
		}
	}
	return a, nil
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 1
	}
	a, err := parseArgs(args)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}
	if !a.foundE {
		fmt.Fprintln(stderr, "Error: Expected -E followed by a pattern.")
		return 1
	}
	if a.pattern == "" {
		fmt.Fprintln(stderr, "Error: Pattern cannot be empty.")
		return 1
	}

	color := false
	switch a.color {
	case "always":
		color = true
	case "never":
		color = false
	case "auto":
		if f, ok := stdout.(*os.File); ok {
			color = isTerminal(f)
		}
	}

	return grep.Run(grep.Options{
		Pattern:   a.pattern,
		Recursive: a.recursive,
		Color:     color,
		Profile:   a.profile,
		Paths:     a.paths,
		Stdin:     stdin,
		Stdout:    stdout,
		Stderr:    stderr,
	})
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}
