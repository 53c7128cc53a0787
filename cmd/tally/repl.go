package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/reusee/tally/debugs"
	"github.com/reusee/tally/logs"
	"github.com/reusee/tally/tallyconfigs"
	"github.com/reusee/tally/tallylang"
)

type RunRepl func(ctx context.Context) error

func (Module) RunRepl(
	logger logs.Logger,
	prompt tallyconfigs.ReplPrompt,
	historyFile tallyconfigs.ReplHistoryFile,
	tap debugs.Tap,
) RunRepl {
	return func(ctx context.Context) (err error) {
		defer he(&err)

		rl, err := readline.NewEx(&readline.Config{
			Prompt:      string(prompt),
			HistoryFile: string(historyFile),
		})
		ce(err)
		defer rl.Close()

		logger.DebugContext(ctx, "repl",
			"history", string(historyFile),
		)

		var lastTokens []tallylang.Token
		var lastValue int64

		for {
			line, err := rl.Readline()
			if err != nil { // Ctrl-C or Ctrl-D
				return nil
			}
			line = strings.TrimSpace(line)
			if line == "" {
				continue
			}

			switch {

			case line == "/tap":
				rendered := make([]string, len(lastTokens))
				for i, token := range lastTokens {
					rendered[i] = token.String()
				}
				tap(ctx, "repl", map[string]any{
					"tokens": rendered,
					"value":  lastValue,
				})
				continue

			case strings.HasPrefix(line, "/tokens "):
				tokens, err := tallylang.Lex(strings.TrimPrefix(line, "/tokens "))
				if err != nil {
					fmt.Fprintln(os.Stderr, tallylang.Annotate(err))
					continue
				}
				for _, token := range tokens {
					fmt.Printf("%s at %s\n", token, token.Pos)
				}
				continue

			}

			tokens, err := tallylang.Lex(line)
			if err != nil {
				fmt.Fprintln(os.Stderr, tallylang.Annotate(err))
				continue
			}
			value, err := tallylang.Parse(tokens)
			if err != nil {
				fmt.Fprintln(os.Stderr, tallylang.Annotate(err))
				continue
			}
			lastTokens, lastValue = tokens, value
			fmt.Println(value)
		}
	}
}
