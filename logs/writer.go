package logs

import (
	"io"
	"os"
)

// Writer is the terminal log sink. Tests fork the scope with a buffer to
// capture records.
type Writer io.Writer

func (Module) Writer() Writer {
	return os.Stderr
}
