package platform

import (
	"context"
)

var defaultTimeout = GetAsDuration("CONTEXT_TIMEOUT", "2s")

func ContextTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, defaultTimeout)
}
