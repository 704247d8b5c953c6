package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	SubmissionsTotal   *prometheus.CounterVec
	SubmissionDuration prometheus.Histogram
	BatchSize          prometheus.Histogram
}

func New() *Metrics {
	return &Metrics{
		SubmissionsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "renalize_claim_submissions_total",
			Help: "Claim submissions by mode and outcome",
		}, []string{"mode", "outcome"}),
		SubmissionDuration: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "renalize_claim_submission_duration_seconds",
			Help:    "End-to-end latency of claim submissions",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),
		BatchSize: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "renalize_claim_batch_size",
			Help:    "Number of documents per batch submission",
			Buckets: []float64{1, 2, 3, 5, 8, 10},
		}),
	}
}

func (m *Metrics) ObserveSubmission(mode, outcome string, elapsed time.Duration) {
	m.SubmissionsTotal.WithLabelValues(mode, outcome).Inc()
	m.SubmissionDuration.Observe(elapsed.Seconds())
}

func (m *Metrics) ObserveBatchSize(n int) {
	m.BatchSize.Observe(float64(n))
}
