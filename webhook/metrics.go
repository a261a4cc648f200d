package webhook

import "github.com/prometheus/client_golang/prometheus"

// Metrics holds the Prometheus collectors a Receiver reports to.
type Metrics struct {
	updatesTotal   *prometheus.CounterVec
	rejectedTotal  *prometheus.CounterVec
	handleDuration prometheus.Histogram
}

// NewMetrics creates webhook collectors and registers them with reg.
// Pass prometheus.DefaultRegisterer to use the default registry.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		updatesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgwire",
			Subsystem: "webhook",
			Name:      "updates_total",
			Help:      "Updates delivered to the handler, by update kind.",
		}, []string{"kind"}),
		rejectedTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "tgwire",
			Subsystem: "webhook",
			Name:      "rejected_total",
			Help:      "Requests rejected before dispatch, by reason.",
		}, []string{"reason"}),
		handleDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "tgwire",
			Subsystem: "webhook",
			Name:      "handle_duration_seconds",
			Help:      "Time spent in the update handler.",
			Buckets:   prometheus.DefBuckets,
		}),
	}
	reg.MustRegister(m.updatesTotal, m.rejectedTotal, m.handleDuration)
	return m
}
