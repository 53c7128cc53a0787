package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan attaches the context's Span to err so the failure can be matched
// against the log records of the same operation.
func WrapSpan(ctx context.Context, err error) error {
	if err == nil {
		return nil
	}
	v := ctx.Value(SpanKey)
	if v == nil {
		return err
	}
	return errors.Join(err, fmt.Errorf("span: %s", v.(Span)))
}
