package tallyconfigs

import (
	"runtime"

	"github.com/reusee/tally/cmds"
	"github.com/reusee/tally/configs"
	"github.com/reusee/tally/vars"
)

// MaxJobs bounds how many inputs are evaluated concurrently.
type MaxJobs int

var maxJobsFlag = cmds.Var[int]("-max-jobs")

func (Module) MaxJobs(
	loader configs.Loader,
) MaxJobs {
	n := vars.FirstNonZero(
		*maxJobsFlag,
		configs.First[int](loader, "max_jobs"),
		runtime.NumCPU(),
	)
	if n < 1 {
		n = 1
	}
	return MaxJobs(n)
}
