package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/reusee/dscope"
	"github.com/reusee/tally/cmds"
	"github.com/reusee/tally/debugs"
	"github.com/reusee/tally/logs"
	"github.com/reusee/tally/modes"
	"github.com/reusee/tally/tallylang"
	"golang.org/x/term"
)

var (
	exprs  = cmds.Collect[string]("-e")
	doRepl = cmds.Switch("-repl")
	doTap  = cmds.Switch("-tap")
)

const Theory = `
# Theory of cmd/tally

tally evaluates sum expressions from four places, in a fixed order: -e
arguments, expression files, piped stdin, then an interactive repl. A bare
argument names a file when one exists at that path, and is an expression
otherwise.

1. Values go to stdout, diagnostics go to stderr. A bad input renders as the
message, the offending line, and a caret, so the output stays scriptable
while errors stay readable.
2. File results carry the file name prefix; -e and stdin results are bare
values. A script consuming a batch can match results to inputs, a pipe gets
just the number.
3. Files evaluate concurrently, bounded by max_jobs. Results print in input
order regardless of completion order.
4. Every evaluation runs under its own log span. A failure names its span, so
the log records of the failing evaluation can be pulled without guessing.
5. The repl starts only when stdin is a terminal and no other input was
given, or when -repl forces it. tally in a pipeline never blocks waiting for
a human.
6. Any failed input makes the exit status nonzero, after all inputs have been
tried. Batch callers get the full damage report in one run.
`

func main() {
	cmds.Execute(os.Args[1:])
	ctx := context.Background()

	scope := dscope.New(
		new(Module),
		modes.ForProduction(),
	)

	scope.Call(func(
		logger logs.Logger,
		evaluate Evaluate,
		evaluateAll EvaluateAll,
		runRepl RunRepl,
		tap debugs.Tap,
	) {
		stdin := readStdin()

		logger.DebugContext(ctx, "inputs",
			"exprs", len(*exprs),
			"files", len(files),
			"stdin", len(stdin),
		)

		var failed bool
		var values []int64

		report := func(value int64, err error) {
			if err != nil {
				fmt.Fprintln(os.Stderr, tallylang.Annotate(err))
				failed = true
				return
			}
			values = append(values, value)
			fmt.Println(value)
		}

		for _, expr := range *exprs {
			value, err := evaluate(ctx, tallylang.NewSource("-e", expr))
			report(value, err)
		}

		for _, result := range evaluateAll(ctx, files) {
			if result.Err != nil {
				fmt.Fprintln(os.Stderr, tallylang.Annotate(result.Err))
				failed = true
				continue
			}
			values = append(values, result.Value)
			fmt.Printf("%s: %d\n", result.Path, result.Value)
		}

		if input := strings.TrimSpace(string(stdin)); input != "" {
			value, err := evaluate(ctx, tallylang.NewSource("stdin", input))
			report(value, err)
		}

		if *doTap {
			tap(ctx, "main", map[string]any{
				"exprs":  *exprs,
				"files":  files,
				"stdin":  string(stdin),
				"values": values,
			})
		}

		hasInput := len(*exprs) > 0 || len(files) > 0 || len(stdin) > 0
		if *doRepl || (!hasInput && term.IsTerminal(int(os.Stdin.Fd()))) {
			if err := runRepl(ctx); err != nil {
				logger.Error("repl", "error", err)
				failed = true
			}
		}

		if failed {
			os.Exit(1)
		}
	})
}

func readStdin() []byte {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		return nil
	}
	content, err := io.ReadAll(os.Stdin)
	ce(err)
	return content
}
