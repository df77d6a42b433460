package logger

import (
	"context"

	"github.com/google/uuid"
)

type ctxKey int

const traceKey ctxKey = 1

// SetTraceID stores the trace id in the context.
func SetTraceID(ctx context.Context, traceID uuid.UUID) context.Context {
	return context.WithValue(ctx, traceKey, traceID)
}

// GetTraceID returns the trace id from the context. The zero UUID is
// returned when none was set.
func GetTraceID(ctx context.Context) uuid.UUID {
	v, ok := ctx.Value(traceKey).(uuid.UUID)
	if !ok {
		return uuid.UUID{}
	}

	return v
}
