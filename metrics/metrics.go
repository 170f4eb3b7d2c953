/*
Package metrics exports Prometheus metrics for the style engine.

A Collector is an observer for reconcile.Engine:

	c := metrics.New(metrics.WithRegistry(reg))
	engine := reconcile.New(reconcile.WithObserver(c))

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package metrics

import (
	"github.com/npillmayer/restyle/dom/reconcile"
	"github.com/npillmayer/restyle/dom/style"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the metrics of a Collector.
type Config struct {
	Namespace   string            // default "restyle"
	Subsystem   string            // default "engine"
	ConstLabels prometheus.Labels // added to all metrics
	Buckets     []float64         // buckets for patch sizes
	Registry    prometheus.Registerer
}

// Option configures a Collector.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithRegistry sets the Prometheus registry. Default is
// prometheus.DefaultRegisterer.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "restyle",
		Subsystem: "engine",
		Buckets:   prometheus.ExponentialBuckets(1, 2, 8),
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Collector counts render passes, patched properties and diagnostics.
// It implements reconcile.Observer and is safe for concurrent use.
type Collector struct {
	passes      *prometheus.CounterVec
	properties  *prometheus.CounterVec
	resets      prometheus.Counter
	patchSize   *prometheus.HistogramVec
	diagnostics *prometheus.CounterVec
}

// New creates a collector and registers its metrics.
// Registering twice with the same registry panics.
func New(opts ...Option) *Collector {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}
	factory := promauto.With(config.Registry)
	return &Collector{
		passes: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "passes_total",
			Help:        "Total number of style passes, by kind of pass",
			ConstLabels: config.ConstLabels,
		}, []string{"pass"}),
		properties: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patched_properties_total",
			Help:        "Total number of style properties in patches, by kind of pass",
			ConstLabels: config.ConstLabels,
		}, []string{"pass"}),
		resets: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "resets_total",
			Help:        "Total number of properties reset because they no longer apply",
			ConstLabels: config.ConstLabels,
		}),
		patchSize: factory.NewHistogramVec(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "patch_size",
			Help:        "Number of properties per patch",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}, []string{"pass"}),
		diagnostics: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "diagnostics_total",
			Help:        "Total number of style diagnostics, by kind",
			ConstLabels: config.ConstLabels,
		}, []string{"kind"}),
	}
}

// Patched is part of interface reconcile.Observer.
func (c *Collector) Patched(pass reconcile.Pass, patch style.Map, resets int) {
	label := pass.String()
	c.passes.WithLabelValues(label).Inc()
	c.properties.WithLabelValues(label).Add(float64(len(patch)))
	c.patchSize.WithLabelValues(label).Observe(float64(len(patch)))
	if resets > 0 {
		c.resets.Add(float64(resets))
	}
}

// Diagnosed is part of interface reconcile.Observer.
func (c *Collector) Diagnosed(d reconcile.Diagnostic) {
	c.diagnostics.WithLabelValues(d.Kind.String()).Inc()
}

var _ reconcile.Observer = &Collector{}
