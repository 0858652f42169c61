package analytics

import (
	"context"
	"log"
	"os"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

// OTelTracker records each event as a zero-length span named
// "analytics.<action>" with folio.analytics.* attributes.
type OTelTracker struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

var _ Tracker = (*OTelTracker)(nil)

// NewOTelTracker creates a tracker exporting over OTLP/HTTP when
// OTEL_EXPORTER_OTLP_ENDPOINT is set. Returns Nop when it is not.
func NewOTelTracker(ctx context.Context) (Tracker, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return Nop{}, nil
	}

	exporter, err := otlptracehttp.New(ctx,
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	)
	if err != nil {
		return nil, err
	}

	serviceName := os.Getenv("OTEL_SERVICE_NAME")
	if serviceName == "" {
		serviceName = "folio"
	}
	res := resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceNameKey.String(serviceName),
	)
	return NewOTelTrackerWithProvider(sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
	)), nil
}

// NewOTelTrackerWithProvider records spans through an existing provider.
func NewOTelTrackerWithProvider(p *sdktrace.TracerProvider) *OTelTracker {
	return &OTelTracker{provider: p, tracer: p.Tracer("folio/analytics")}
}

// Track implements Tracker. The span is handed to the batcher, so the
// call returns without waiting on the network.
func (t *OTelTracker) Track(e Event) {
	if t == nil {
		return
	}
	_, span := t.tracer.Start(context.Background(), "analytics."+e.Action,
		oteltrace.WithSpanKind(oteltrace.SpanKindInternal),
		oteltrace.WithAttributes(
			attribute.String("folio.analytics.action", e.Action),
			attribute.String("folio.analytics.category", e.Category),
			attribute.String("folio.analytics.label", e.Label),
		),
	)
	span.End()
}

// Shutdown flushes pending spans.
func (t *OTelTracker) Shutdown(ctx context.Context) error {
	if t == nil {
		return nil
	}
	if err := t.provider.Shutdown(ctx); err != nil {
		log.Printf("analytics: shutdown: %v", err)
		return err
	}
	return nil
}

// Shutdown flushes tr if it buffers spans.
func Shutdown(ctx context.Context, tr Tracker) error {
	if o, ok := tr.(*OTelTracker); ok {
		return o.Shutdown(ctx)
	}
	return nil
}
