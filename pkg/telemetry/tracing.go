package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

// Default tracer name.
const defaultTracerName = "vattr"

// TracingConfig configures span creation.
type TracingConfig struct {
	// TracerName is the name of the tracer (default: "vattr").
	TracerName string

	// Provider is the tracer provider.
	// Default: the global provider from otel.GetTracerProvider.
	Provider trace.TracerProvider

	// Attributes are added to every span.
	Attributes []attribute.KeyValue
}

// TracingOption configures span creation.
type TracingOption func(*TracingConfig)

// WithTracerName sets the tracer name.
func WithTracerName(name string) TracingOption {
	return func(c *TracingConfig) {
		c.TracerName = name
	}
}

// WithTracerProvider sets the tracer provider.
func WithTracerProvider(tp trace.TracerProvider) TracingOption {
	return func(c *TracingConfig) {
		c.Provider = tp
	}
}

// WithAttributes adds attributes to every span.
func WithAttributes(attrs ...attribute.KeyValue) TracingOption {
	return func(c *TracingConfig) {
		c.Attributes = append(c.Attributes, attrs...)
	}
}

// Tracer starts spans around render, diff and dispatch. A nil *Tracer
// starts spans from the global provider.
type Tracer struct {
	tracer trace.Tracer
	attrs  []attribute.KeyValue
}

// NewTracer creates a Tracer.
func NewTracer(opts ...TracingOption) *Tracer {
	config := TracingConfig{TracerName: defaultTracerName}
	for _, opt := range opts {
		opt(&config)
	}

	provider := config.Provider
	if provider == nil {
		provider = otel.GetTracerProvider()
	}

	return &Tracer{
		tracer: provider.Tracer(config.TracerName),
		attrs:  config.Attributes,
	}
}

// Start begins a span named "vattr.<op>".
func (t *Tracer) Start(ctx context.Context, op string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	if ctx == nil {
		ctx = context.Background()
	}

	tracer := otel.Tracer(defaultTracerName)
	var base []attribute.KeyValue
	if t != nil {
		tracer = t.tracer
		base = t.attrs
	}

	all := make([]attribute.KeyValue, 0, len(base)+len(attrs))
	all = append(all, base...)
	all = append(all, attrs...)

	return tracer.Start(ctx, "vattr."+op,
		trace.WithSpanKind(trace.SpanKindInternal),
		trace.WithAttributes(all...),
	)
}

// End records err on span, if any, and ends it.
func End(span trace.Span, err error) {
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

// SpanFromContext returns the current span, or a non-recording span.
func SpanFromContext(ctx context.Context) trace.Span {
	if ctx == nil {
		return trace.SpanFromContext(context.Background())
	}
	return trace.SpanFromContext(ctx)
}
