package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	BreakerOpens    prometheus.Counter
}

func New() *Metrics {
	return &Metrics{
		RequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "renalize_gateway_requests_total",
			Help: "Total gateway requests by endpoint and outcome",
		}, []string{"endpoint", "outcome"}),
		RequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "renalize_gateway_request_duration_seconds",
			Help:    "Latency of gateway requests by endpoint",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30},
		}, []string{"endpoint"}),
		BreakerOpens: promauto.NewCounter(prometheus.CounterOpts{
			Name: "renalize_gateway_breaker_opens_total",
			Help: "Times the backend circuit breaker opened",
		}),
	}
}

func (m *Metrics) ObserveRequest(endpoint, outcome string, elapsed time.Duration) {
	m.RequestsTotal.WithLabelValues(endpoint, outcome).Inc()
	m.RequestDuration.WithLabelValues(endpoint).Observe(elapsed.Seconds())
}

func (m *Metrics) IncrementBreakerOpens() {
	m.BreakerOpens.Inc()
}
