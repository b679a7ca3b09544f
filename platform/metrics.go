package platform

import "github.com/prometheus/client_golang/prometheus"

// SweepMetrics are the gauges a module's once-per-block deferred-work sweep
// reports: how many entries its queue held and how many it has settled.
// Grounded on the teacher's broad use of prometheus/client_golang across its
// observability package for per-subsystem gauges.
type SweepMetrics struct {
	QueueDepth   prometheus.Gauge
	SettledTotal prometheus.Counter
}

// NewSweepMetrics registers a module's queue-depth gauge and settled-count
// counter under lrp_<module>_sweep_*. Safe to call once per module at
// composition-root wiring time.
func NewSweepMetrics(reg prometheus.Registerer, module string) SweepMetrics {
	m := SweepMetrics{
		QueueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "lrp",
			Subsystem: module,
			Name:      "sweep_queue_depth",
			Help:      "Number of entries seen by the most recent deferred-work sweep.",
		}),
		SettledTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "lrp",
			Subsystem: module,
			Name:      "sweep_settled_total",
			Help:      "Cumulative number of entries settled by the deferred-work sweep.",
		}),
	}
	if reg != nil {
		reg.MustRegister(m.QueueDepth, m.SettledTotal)
	}
	return m
}
