package log

import "context"

// Logger is the ctx-first logging interface used across the service.
// Implementations are safe for concurrent use.
type Logger interface {
	Debug(ctx context.Context, arg ...any)
	Debugf(ctx context.Context, template string, arg ...any)
	Info(ctx context.Context, arg ...any)
	Infof(ctx context.Context, template string, arg ...any)
	Warn(ctx context.Context, arg ...any)
	Warnf(ctx context.Context, template string, arg ...any)
	Error(ctx context.Context, arg ...any)
	Errorf(ctx context.Context, template string, arg ...any)
	DPanic(ctx context.Context, arg ...any)
	DPanicf(ctx context.Context, template string, arg ...any)
	Panic(ctx context.Context, arg ...any)
	Panicf(ctx context.Context, template string, arg ...any)
	Fatal(ctx context.Context, arg ...any)
	Fatalf(ctx context.Context, template string, arg ...any)
}

type ctxKey struct{}

// WithFields attaches key/value pairs that every log line written with the
// returned context will carry.
func WithFields(ctx context.Context, kv ...any) context.Context {
	existing, _ := ctx.Value(ctxKey{}).([]any)
	fields := make([]any, 0, len(existing)+len(kv))
	fields = append(fields, existing...)
	fields = append(fields, kv...)
	return context.WithValue(ctx, ctxKey{}, fields)
}

func fieldsFrom(ctx context.Context) []any {
	if ctx == nil {
		return nil
	}
	fields, _ := ctx.Value(ctxKey{}).([]any)
	return fields
}
