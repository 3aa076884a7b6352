package telemetry

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// MetricsConfig configures the Prometheus collectors.
type MetricsConfig struct {
	// Namespace is the metrics namespace (default: "vattr").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for durations.
	// Default: prometheus.DefBuckets
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// MetricsOption configures the Prometheus collectors.
type MetricsOption func(*MetricsConfig)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) MetricsOption {
	return func(c *MetricsConfig) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) MetricsOption {
	return func(c *MetricsConfig) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the histogram buckets.
func WithBuckets(buckets []float64) MetricsOption {
	return func(c *MetricsConfig) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) MetricsOption {
	return func(c *MetricsConfig) {
		c.Registry = registry
	}
}

func defaultMetricsConfig() MetricsConfig {
	return MetricsConfig{
		Namespace: "vattr",
		Buckets:   prometheus.DefBuckets,
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Metrics holds the Prometheus collectors. All methods are safe on a nil
// receiver.
type Metrics struct {
	rendersTotal       *prometheus.CounterVec
	renderDuration     prometheus.Histogram
	attributesRendered *prometheus.CounterVec
	patchesTotal       *prometheus.CounterVec
	eventsDispatched   *prometheus.CounterVec
}

// NewMetrics creates and registers the collectors.
//
// Metrics collected:
//   - vattr_renders_total: Counter of renders by status
//   - vattr_render_duration_seconds: Histogram of render duration
//   - vattr_attributes_rendered_total: Counter of attributes visited by kind
//   - vattr_patches_total: Counter of patches produced by op
//   - vattr_events_dispatched_total: Counter of dispatched events by type and status
//
// Registering twice against the same registry panics, as with promauto.
func NewMetrics(opts ...MetricsOption) *Metrics {
	config := defaultMetricsConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Metrics{
		rendersTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "renders_total",
			Help:        "Total number of node trees rendered to HTML",
			ConstLabels: config.ConstLabels,
		}, []string{"status"}),

		renderDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "render_duration_seconds",
			Help:        "Render duration in seconds",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		attributesRendered: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "attributes_rendered_total",
			Help:        "Total number of attributes visited during rendering by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),

		patchesTotal: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patches_total",
			Help:        "Total number of patches produced by op",
			ConstLabels: config.ConstLabels,
		}, []string{"op"}),

		eventsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "events_dispatched_total",
			Help:        "Total number of events dispatched to callbacks",
			ConstLabels: config.ConstLabels,
		}, []string{"type", "status"}),
	}
}

// ObserveRender records one render and its duration.
func (m *Metrics) ObserveRender(d time.Duration, err error) {
	if m == nil {
		return
	}
	status := "success"
	if err != nil {
		status = "error"
	}
	m.rendersTotal.WithLabelValues(status).Inc()
	m.renderDuration.Observe(d.Seconds())
}

// AddAttributes records n attributes of the given kind.
func (m *Metrics) AddAttributes(kind string, n int) {
	if m == nil || n <= 0 {
		return
	}
	m.attributesRendered.WithLabelValues(kind).Add(float64(n))
}

// AddPatch records one patch with the given op name.
func (m *Metrics) AddPatch(op string) {
	if m == nil {
		return
	}
	m.patchesTotal.WithLabelValues(op).Inc()
}

// ObserveDispatch records an event dispatch. handled is false when no
// listener was bound for the target.
func (m *Metrics) ObserveDispatch(eventType string, handled bool) {
	if m == nil {
		return
	}
	status := "handled"
	if !handled {
		status = "unhandled"
	}
	m.eventsDispatched.WithLabelValues(eventType, status).Inc()
}
