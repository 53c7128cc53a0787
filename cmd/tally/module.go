package main

import (
	"github.com/reusee/dscope"
	"github.com/reusee/e5"
	"github.com/reusee/tally/debugs"
	"github.com/reusee/tally/tallyconfigs"
)

type Module struct {
	dscope.Module
	Configs tallyconfigs.Module
	Debugs  debugs.Module
}

var (
	ce = e5.Check.With(e5.WrapStacktrace)
	he = e5.Handle
)
