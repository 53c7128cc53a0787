package debugs

import (
	"github.com/reusee/dscope"
	"github.com/reusee/tally/logs"
)

type Module struct {
	dscope.Module
	Logs logs.Module
}
