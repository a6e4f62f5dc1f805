package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records per-operation request counts and latency. The registerer is
// supplied by the host application; a client library must not own a registry
// or serve an endpoint of its own.
type Metrics struct {
	requestsTotal *prometheus.CounterVec
	latencyMs     *prometheus.HistogramVec
}

func New(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		requestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "legiscan_requests_total",
			Help: "Total number of LegiScan API calls issued.",
		}, []string{"op", "outcome"}),
		latencyMs: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "legiscan_request_latency_ms",
			Help:    "LegiScan API call latency in milliseconds.",
			Buckets: []float64{5, 10, 25, 50, 100, 250, 500, 1000, 2000, 5000, 10000, 30000},
		}, []string{"op", "outcome"}),
	}
	reg.MustRegister(m.requestsTotal, m.latencyMs)
	return m
}

// ObserveRequest records one completed call. Outcome is "ok" or the failing
// error class (parameter, transport, decode, api, shape).
func (m *Metrics) ObserveRequest(op, outcome string, dur time.Duration) {
	if m == nil {
		return
	}
	m.requestsTotal.WithLabelValues(op, outcome).Inc()
	m.latencyMs.WithLabelValues(op, outcome).Observe(float64(dur.Milliseconds()))
}
