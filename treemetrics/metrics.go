// Package treemetrics exports route table activity as Prometheus metrics.
//
//	reg := prometheus.NewRegistry()
//	table := tree.NewTable(root, tree.WithObserver(treemetrics.New(treemetrics.WithRegistry(reg))))
package treemetrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Config configures the collectors.
type Config struct {
	// Namespace is the metrics namespace (default: "pathtree").
	Namespace string

	// Subsystem is the metrics subsystem (default: "").
	Subsystem string

	// ConstLabels are constant labels added to all metrics.
	ConstLabels prometheus.Labels

	// Buckets are the histogram buckets for match duration.
	// Default: exponential from 100ns to ~0.4ms.
	Buckets []float64

	// Registry is the Prometheus registry to use.
	// Default: prometheus.DefaultRegisterer
	Registry prometheus.Registerer
}

// Option configures the collectors.
type Option func(*Config)

// WithNamespace sets the metrics namespace.
func WithNamespace(namespace string) Option {
	return func(c *Config) {
		c.Namespace = namespace
	}
}

// WithSubsystem sets the metrics subsystem.
func WithSubsystem(subsystem string) Option {
	return func(c *Config) {
		c.Subsystem = subsystem
	}
}

// WithConstLabels sets constant labels for all metrics.
func WithConstLabels(labels prometheus.Labels) Option {
	return func(c *Config) {
		c.ConstLabels = labels
	}
}

// WithBuckets sets the match duration histogram buckets.
func WithBuckets(buckets []float64) Option {
	return func(c *Config) {
		c.Buckets = buckets
	}
}

// WithRegistry sets the Prometheus registry.
func WithRegistry(registry prometheus.Registerer) Option {
	return func(c *Config) {
		c.Registry = registry
	}
}

func defaultConfig() Config {
	return Config{
		Namespace: "pathtree",
		Buckets:   prometheus.ExponentialBuckets(1e-7, 4, 7),
		Registry:  prometheus.DefaultRegisterer,
	}
}

// Observer records match and update events. It implements tree.Observer.
type Observer struct {
	matches       *prometheus.CounterVec
	matchDuration prometheus.Histogram
	updates       prometheus.Counter
	routes        prometheus.Gauge
}

// New registers the collectors and returns an observer feeding them.
// It panics if the collectors are already registered, like promauto.
func New(opts ...Option) *Observer {
	config := defaultConfig()
	for _, opt := range opts {
		opt(&config)
	}

	factory := promauto.With(config.Registry)

	return &Observer{
		matches: factory.NewCounterVec(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "matches_total",
			Help:        "Total number of route matches by result",
			ConstLabels: config.ConstLabels,
		}, []string{"result"}),

		matchDuration: factory.NewHistogram(prometheus.HistogramOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "match_duration_seconds",
			Help:        "Route match duration in seconds, handler included",
			ConstLabels: config.ConstLabels,
			Buckets:     config.Buckets,
		}),

		updates: factory.NewCounter(prometheus.CounterOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "updates_total",
			Help:        "Total number of route table updates",
			ConstLabels: config.ConstLabels,
		}),

		routes: factory.NewGauge(prometheus.GaugeOpts{
			Namespace:   config.Namespace,
			Subsystem:   config.Subsystem,
			Name:        "routes",
			Help:        "Number of routes in the current table",
			ConstLabels: config.ConstLabels,
		}),
	}
}

// ObserveMatch records one match.
func (o *Observer) ObserveMatch(matched bool, elapsed time.Duration) {
	result := "miss"
	if matched {
		result = "hit"
	}
	o.matches.WithLabelValues(result).Inc()
	o.matchDuration.Observe(elapsed.Seconds())
}

// ObserveUpdate records a table update.
func (o *Observer) ObserveUpdate(routes int) {
	o.updates.Inc()
	o.routes.Set(float64(routes))
}
