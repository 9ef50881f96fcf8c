package observe

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Tracer is the corekit tracer instance.
// Uses the global OTel tracer provider.
var tracer = otel.Tracer("corekit")

// StartApplySpan starts a span covering one catalog application.
//
// The span uses the global OTel tracer provider. Configure the provider
// before calling this function:
//
//	import "go.opentelemetry.io/otel"
//	otel.SetTracerProvider(yourProvider)
func StartApplySpan(ctx context.Context, factoryName, applyID string) (context.Context, trace.Span) {
	return tracer.Start(ctx, "corekit.catalog.apply",
		trace.WithAttributes(
			attribute.String("factory", factoryName),
			attribute.String("apply.id", applyID),
		),
		trace.WithSpanKind(trace.SpanKindInternal),
	)
}

// EndSpanWithError completes a span, optionally recording an error.
func EndSpanWithError(span trace.Span, err error) {
	if span == nil {
		return
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}
