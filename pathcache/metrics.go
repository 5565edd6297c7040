package pathcache

import "github.com/prometheus/client_golang/prometheus"

// metrics counts cache activity for one PathCache.
type metrics struct {
	hits          prometheus.Counter
	misses        prometheus.Counter
	evictions     prometheus.Counter
	invalidations prometheus.Counter
	entries       prometheus.Gauge
}

func newMetrics(namespace string) *metrics {
	return &metrics{
		hits: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pathcache",
			Name:      "hits_total",
			Help:      "Total path lookups answered from the cache",
		}),
		misses: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pathcache",
			Name:      "misses_total",
			Help:      "Total path lookups that ran a grid search",
		}),
		evictions: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pathcache",
			Name:      "evictions_total",
			Help:      "Total entries dropped to make room for a new path",
		}),
		invalidations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "pathcache",
			Name:      "invalidations_total",
			Help:      "Total entries dropped because their path lost a node",
		}),
		entries: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "pathcache",
			Name:      "entries",
			Help:      "Current number of cached paths",
		}),
	}
}

func (m *metrics) register(r prometheus.Registerer) {
	if r == nil {
		return
	}
	r.MustRegister(m.hits, m.misses, m.evictions, m.invalidations, m.entries)
}
