package logging

import "context"

type requestIDKey struct{}

// RequestIDKey is the attribute name under which loggers report the id set
// with WithRequestID.
const RequestIDKey = "request_id"

// WithRequestID returns a copy of ctx carrying the correlation id of an
// outbound call. Every entry logged with that ctx includes it.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the id stored by WithRequestID, or "".
func RequestID(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// withContextFields appends the request id held by ctx, if any, to args.
func withContextFields(ctx context.Context, args []any) []any {
	if id := RequestID(ctx); id != "" {
		return append(args, RequestIDKey, id)
	}
	return args
}
