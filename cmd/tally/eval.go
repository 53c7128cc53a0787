package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/gabriel-vasile/mimetype"
	"github.com/reusee/tally/logs"
	"github.com/reusee/tally/syncs"
	"github.com/reusee/tally/tallyconfigs"
	"github.com/reusee/tally/tallylang"
)

// Evaluate runs one source under a fresh span.
type Evaluate func(ctx context.Context, source *tallylang.Source) (int64, error)

func (Module) Evaluate(
	logger logs.Logger,
	newSpan logs.NewSpan,
) Evaluate {
	return func(ctx context.Context, source *tallylang.Source) (_ int64, err error) {
		ctx, _ = newSpan(ctx, "")
		defer func() {
			err = logs.WrapSpan(ctx, err)
		}()
		logger.DebugContext(ctx, "evaluate",
			"source", source.Name,
			"len", len(source.Content),
		)
		return tallylang.Evaluate(source)
	}
}

// EvaluateFile reads and evaluates one expression file.
type EvaluateFile func(ctx context.Context, path string) (int64, error)

func (Module) EvaluateFile(
	evaluate Evaluate,
) EvaluateFile {
	return func(ctx context.Context, path string) (_ int64, err error) {
		defer he(&err)
		content, err := os.ReadFile(path)
		ce(err)
		if !isTextContent(content) {
			return 0, fmt.Errorf("not a text file: %s", path)
		}
		// surrounding whitespace comes from the file format, not the
		// expression
		source := tallylang.NewSource(path, strings.TrimSpace(string(content)))
		return evaluate(ctx, source)
	}
}

type FileResult struct {
	Path  string
	Value int64
	Err   error
}

// EvaluateAll evaluates the files concurrently, bounded by MaxJobs, and
// returns results in input order.
type EvaluateAll func(ctx context.Context, paths []string) []FileResult

func (Module) EvaluateAll(
	evaluateFile EvaluateFile,
	maxJobs tallyconfigs.MaxJobs,
	newSpan logs.NewSpan,
) EvaluateAll {
	return func(ctx context.Context, paths []string) []FileResult {
		if len(paths) > 1 {
			// group the per-file spans
			ctx, _ = newSpan(ctx, "")
		}
		results := make([]FileResult, len(paths))
		sem := syncs.NewSemaphore(int(maxJobs))
		var wg sync.WaitGroup
		for i, path := range paths {
			wg.Add(1)
			go func() {
				defer wg.Done()
				sem.Acquire()
				defer sem.Release()
				value, err := evaluateFile(ctx, path)
				results[i] = FileResult{
					Path:  path,
					Value: value,
					Err:   err,
				}
			}()
		}
		wg.Wait()
		return results
	}
}

func isTextContent(content []byte) bool {
	for t := mimetype.Detect(content); t != nil; t = t.Parent() {
		if t.Is("text/plain") {
			return true
		}
	}
	return false
}
