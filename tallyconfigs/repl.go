package tallyconfigs

import (
	"os"
	"path/filepath"

	"github.com/reusee/tally/cmds"
	"github.com/reusee/tally/configs"
	"github.com/reusee/tally/vars"
)

type ReplPrompt string

var promptFlag = cmds.Var[string]("-prompt")

func (Module) ReplPrompt(
	loader configs.Loader,
) ReplPrompt {
	return ReplPrompt(vars.FirstNonZero(
		*promptFlag,
		configs.First[string](loader, "repl_prompt"),
		"tally> ",
	))
}

// ReplHistoryFile is where the repl persists input history. Empty disables
// persistence.
type ReplHistoryFile string

var historyFlag = cmds.Var[string]("-history")

func (Module) ReplHistoryFile(
	loader configs.Loader,
) ReplHistoryFile {
	if *historyFlag != "" {
		return ReplHistoryFile(*historyFlag)
	}

	// a present but empty repl_history disables history, so decode
	// through a pointer to tell empty from absent
	var configured *string
	if err := loader.AssignFirst("repl_history", &configured); err == nil {
		return ReplHistoryFile(vars.DerefOrZero(configured))
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return ReplHistoryFile(filepath.Join(home, ".tally_history"))
}
