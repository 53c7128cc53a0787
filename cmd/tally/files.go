package main

import (
	"os"
	"path/filepath"

	"github.com/reusee/tally/cmds"
)

var files []string

func init() {
	// a bare argument names a file when one exists at that path, and is
	// an expression otherwise
	cmds.OnUnknown(func(arg string) error {
		if info, err := os.Stat(arg); err == nil && !info.IsDir() {
			files = append(files, arg)
			return nil
		}
		*exprs = append(*exprs, arg)
		return nil
	})

	cmds.Define("-file", cmds.Func(func(pattern string) {
		paths, err := filepath.Glob(pattern)
		if err != nil {
			// not a pattern, take it verbatim
			files = append(files, pattern)
			return
		}
		for _, path := range paths {
			info, err := os.Stat(path)
			if err != nil {
				continue
			}
			if info.IsDir() {
				continue
			}
			files = append(files, path)
		}
	}).Desc("add matching expression files"))
}
