package context

import "context"

type contextKey string

const (
	requestIDKey contextKey = "observability_request_id"
	operatorKey  contextKey = "observability_operator"
)

func WithRequestID(ctx context.Context, requestID string) context.Context {
	if ctx == nil || requestID == "" {
		return ctx
	}
	return context.WithValue(ctx, requestIDKey, requestID)
}

func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(requestIDKey).(string)
	return value
}

func WithOperator(ctx context.Context, operator string) context.Context {
	if ctx == nil || operator == "" {
		return ctx
	}
	return context.WithValue(ctx, operatorKey, operator)
}

func OperatorFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	value, _ := ctx.Value(operatorKey).(string)
	return value
}
