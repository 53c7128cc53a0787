package modes

import (
	"os"
	"strings"
	"testing"

	"github.com/reusee/dscope"
)

type ModuleForProduction struct {
	dscope.Module
}

func ForProduction() ModuleForProduction {
	return ModuleForProduction{}
}

func (ModuleForProduction) T() *testing.T {
	return nil
}

func (ModuleForProduction) Mode() Mode {
	switch strings.ToLower(os.Getenv("TALLY_MODE")) {
	case "development", "dev":
		return ModeDevelopment
	}
	return ModeProduction
}
