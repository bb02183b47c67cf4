package ctxmeta

import (
	"context"

	"go.opentelemetry.io/otel/trace"
)

// TraceIDFromContext — trace_id активного спана; без трейсинга спан невалиден и вернётся false.
func TraceIDFromContext(ctx context.Context) (string, bool) {
	sc := spanContext(ctx)
	if !sc.IsValid() {
		return "", false
	}
	return sc.TraceID().String(), true
}

func SpanIDFromContext(ctx context.Context) (string, bool) {
	sc := spanContext(ctx)
	if !sc.IsValid() {
		return "", false
	}
	return sc.SpanID().String(), true
}

func spanContext(ctx context.Context) trace.SpanContext {
	if ctx == nil {
		return trace.SpanContext{}
	}
	return trace.SpanFromContext(ctx).SpanContext()
}
