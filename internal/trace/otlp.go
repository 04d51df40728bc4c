package trace

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.4.0"
	oteltrace "go.opentelemetry.io/otel/trace"
)

const (
	defaultServiceName = "quickpanel"
	tracerName         = "quickpanel/panel"
)

// OTLPExporter sends panel transitions to an OTLP/HTTP collector as spans.
// A nil *OTLPExporter is valid and exports nothing.
type OTLPExporter struct {
	provider *sdktrace.TracerProvider
	tracer   oteltrace.Tracer
}

// NewOTLPExporter returns nil, nil when OTEL_EXPORTER_OTLP_ENDPOINT is unset.
// The endpoint may be host:port or a full http(s) URL.
func NewOTLPExporter(ctx context.Context) (*OTLPExporter, error) {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		return nil, nil
	}

	exporter, err := otlptracehttp.New(ctx, endpointOptions(endpoint)...)
	if err != nil {
		return nil, fmt.Errorf("otlp exporter %s: %w", endpoint, err)
	}

	provider := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(serviceResource()),
	)
	return newExporter(provider), nil
}

// endpointOptions picks URL or host:port configuration. Bare host:port
// endpoints are local collectors and use plain HTTP.
func endpointOptions(endpoint string) []otlptracehttp.Option {
	if strings.HasPrefix(endpoint, "http://") || strings.HasPrefix(endpoint, "https://") {
		return []otlptracehttp.Option{otlptracehttp.WithEndpointURL(endpoint)}
	}
	return []otlptracehttp.Option{
		otlptracehttp.WithEndpoint(endpoint),
		otlptracehttp.WithInsecure(),
	}
}

func serviceResource() *resource.Resource {
	name := os.Getenv("OTEL_SERVICE_NAME")
	if name == "" {
		name = defaultServiceName
	}
	return resource.NewWithAttributes(semconv.SchemaURL, semconv.ServiceNameKey.String(name))
}

func newExporter(provider *sdktrace.TracerProvider) *OTLPExporter {
	return &OTLPExporter{provider: provider, tracer: provider.Tracer(tracerName)}
}

// ExportTransition emits t as a zero-length span named panel.<trigger> in
// the session's trace and returns the span ID the SDK assigned. A nil
// exporter returns "".
func (e *OTLPExporter) ExportTransition(ctx context.Context, t Transition) (string, error) {
	if e == nil {
		return "", nil
	}
	traceID, err := oteltrace.TraceIDFromHex(t.TraceID)
	if err != nil {
		return "", fmt.Errorf("trace id %q: %w", t.TraceID, err)
	}
	parent := oteltrace.ContextWithSpanContext(ctx, oteltrace.NewSpanContext(oteltrace.SpanContextConfig{
		TraceID:    traceID,
		TraceFlags: oteltrace.FlagsSampled,
	}))

	_, span := e.tracer.Start(parent, "panel."+t.Trigger,
		oteltrace.WithTimestamp(t.Timestamp),
		oteltrace.WithAttributes(transitionAttributes(t)...),
	)
	span.End(oteltrace.WithTimestamp(t.Timestamp))
	return span.SpanContext().SpanID().String(), nil
}

func transitionAttributes(t Transition) []attribute.KeyValue {
	attrs := make([]attribute.KeyValue, 0, 3+len(t.Attributes))
	attrs = append(attrs,
		attribute.String("quickpanel.mode.from", t.From),
		attribute.String("quickpanel.mode.to", t.To),
		attribute.Bool("quickpanel.mode.changed", t.Changed()),
	)
	for k, v := range t.Attributes {
		attrs = append(attrs, attribute.String("quickpanel."+k, v))
	}
	return attrs
}

// Shutdown flushes pending spans. Safe on a nil exporter.
func (e *OTLPExporter) Shutdown(ctx context.Context) error {
	if e == nil {
		return nil
	}
	return e.provider.Shutdown(ctx)
}
