package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	VerificationsTotal   *prometheus.CounterVec
	VerificationDuration *prometheus.HistogramVec
}

func New() *Metrics {
	return &Metrics{
		VerificationsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "renalize_kyc_verifications_total",
			Help: "KYC verification pipeline runs by document kind and outcome",
		}, []string{"kind", "outcome"}),
		VerificationDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "renalize_kyc_verification_duration_seconds",
			Help:    "End-to-end latency of the upload-verify pipeline by kind",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}, []string{"kind"}),
	}
}

func (m *Metrics) ObserveVerification(kind, outcome string, elapsed time.Duration) {
	m.VerificationsTotal.WithLabelValues(kind, outcome).Inc()
	m.VerificationDuration.WithLabelValues(kind).Observe(elapsed.Seconds())
}
