package eino

import (
	"context"
	"strings"
)

type taskKey struct{}

// WithTask labels chat model calls made with ctx.
func WithTask(ctx context.Context, task string) context.Context {
	if t := strings.TrimSpace(task); t != "" {
		return context.WithValue(ctx, taskKey{}, t)
	}
	return ctx
}

// TaskFromContext returns the task label, or "unknown".
func TaskFromContext(ctx context.Context) string {
	if ctx == nil {
		return "unknown"
	}
	if s, ok := ctx.Value(taskKey{}).(string); ok && s != "" {
		return s
	}
	return "unknown"
}
