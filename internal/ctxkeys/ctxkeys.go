package ctxkeys

import "context"

// contextKey is the key type for values stored in a context.
type contextKey string

const (
	batchIDKey contextKey = "batch_id"
	sourceKey  contextKey = "source"
)

// WithBatchID tags ctx with the id of the batch a request belongs to.
func WithBatchID(ctx context.Context, batchID string) context.Context {
	return context.WithValue(ctx, batchIDKey, batchID)
}

// BatchID returns the batch id, if any.
func BatchID(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(batchIDKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// WithSource records which entry point issued a request, such as a CLI command name.
func WithSource(ctx context.Context, source string) context.Context {
	return context.WithValue(ctx, sourceKey, source)
}

// Source returns the request source, if any.
func Source(ctx context.Context) (string, bool) {
	v, ok := ctx.Value(sourceKey).(string)
	if !ok || v == "" {
		return "", false
	}
	return v, true
}
