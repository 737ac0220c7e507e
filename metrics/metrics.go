// Package metrics reports attribute dispatch activity to Prometheus.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/heathj/htmlattrs/spec"
)

// Config configures the collector.
type Config struct {
	// Namespace is the metrics namespace (default: "htmlattrs").
	Namespace string

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collector.
type Option func(*Config)

func WithNamespace(namespace string) Option {
	return func(c *Config) { c.Namespace = namespace }
}

func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) { c.Registry = registry }
}

// Collector implements spec.Instrumentation.
type Collector struct {
	attrsDispatched   *prometheus.CounterVec
	handlersBound     *prometheus.CounterVec
	handlersCompiled  *prometheus.CounterVec
	customAttrRejects prometheus.Counter
}

var _ spec.Instrumentation = (*Collector)(nil)

func New(opts ...Option) *Collector {
	config := Config{
		Namespace: "htmlattrs",
		Registry:  prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)

	return &Collector{
		attrsDispatched: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "attributes_dispatched_total",
			Help:      "Attribute writes run through an element's hook chain",
		}, []string{"element_type"}),

		handlersBound: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "event_handlers_bound_total",
			Help:      "Event handler sources registered from content attributes",
		}, []string{"event"}),

		handlersCompiled: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "event_handlers_compiled_total",
			Help:      "Lazy event handler compilations by result",
		}, []string{"result"}),

		customAttrRejects: factory.NewCounter(prometheus.CounterOpts{
			Namespace: config.Namespace,
			Name:      "custom_attributes_rejected_total",
			Help:      "Dataset writes rejected with SyntaxError",
		}),
	}
}

func (c *Collector) AttributeDispatched(t spec.ElementType, localName string) {
	c.attrsDispatched.WithLabelValues(t.String()).Inc()
}

func (c *Collector) HandlerBound(eventType string) {
	c.handlersBound.WithLabelValues(eventType).Inc()
}

func (c *Collector) HandlerCompiled(eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	c.handlersCompiled.WithLabelValues(result).Inc()
}

func (c *Collector) CustomAttrRejected(key string) {
	c.customAttrRejects.Inc()
}
