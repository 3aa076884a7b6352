// Package telemetry provides Prometheus metrics and OpenTelemetry tracing
// for rendering, diffing and event dispatch.
//
// Both Metrics and Tracer are optional: a nil *Metrics records nothing and a
// nil *Tracer starts no-op spans, so callers never need to guard them.
//
//	m := telemetry.NewMetrics(telemetry.WithRegistry(reg))
//	tr := telemetry.NewTracer(telemetry.WithTracerName("my-app"))
//
//	r := render.NewRenderer[Event, Msg](render.RendererConfig{
//	    Metrics: m,
//	    Tracer:  tr,
//	})
package telemetry
