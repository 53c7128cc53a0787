package cmds

import (
	"fmt"
	"os"
)

var GlobalExecutor = NewExecutor()

func Define(name string, command *Command) {
	GlobalExecutor.Define(name, command)
}

func OnUnknown(fn func(arg string) error) {
	GlobalExecutor.OnUnknown(fn)
}

// Execute runs args against the global executor, exiting the process on a
// bad command line.
func Execute(args []string) {
	if err := GlobalExecutor.Execute(args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
