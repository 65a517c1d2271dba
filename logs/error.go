package logs

import (
	"context"
	"errors"
	"fmt"
)

// WrapSpan tags err with the span of ctx so a failure printed to the user can
// be matched with its log records.
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
