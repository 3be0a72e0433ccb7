package usecase

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"
)

var usecaseTracer = otel.Tracer("esports-club/internal/usecase")
var usecaseNoopSpan = trace.SpanFromContext(context.Background())

// startUsecaseSpan only opens a child span; untraced callers get a no-op span.
func startUsecaseSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	if strings.TrimSpace(name) == "" {
		return ctx, usecaseNoopSpan
	}
	if !trace.SpanFromContext(ctx).SpanContext().IsValid() {
		return ctx, usecaseNoopSpan
	}
	return usecaseTracer.Start(ctx, name)
}
