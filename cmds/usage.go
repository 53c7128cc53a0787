package cmds

import (
	"fmt"
	"io"
	"maps"
	"os"
	"slices"
	"strings"
)

func (p *Executor) PrintUsage() {
	p.FprintUsage(os.Stdout)
}

func (p *Executor) FprintUsage(w io.Writer) {
	fprintCommands(w, p.commands, 0)
}

func fprintCommands(w io.Writer, commands map[string]*Command, depth int) {
	// aliases share the command value, print them on one line
	names := make(map[*Command][]string)
	for name, command := range commands {
		names[command] = append(names[command], name)
	}

	printed := make(map[*Command]bool)
	indent := strings.Repeat("    ", depth)
	for _, name := range slices.Sorted(maps.Keys(commands)) {
		command := commands[name]
		if command == nil || printed[command] {
			continue
		}
		printed[command] = true

		aliases := names[command]
		slices.Sort(aliases)
		fmt.Fprintf(w, "%s%s", indent, strings.Join(aliases, " | "))
		if command.Description != "" {
			fmt.Fprintf(w, "\n%s    %s", indent, command.Description)
		}
		fmt.Fprintln(w)

		if len(command.Subs) > 0 {
			fprintCommands(w, command.Subs, depth+1)
		}
	}
}
