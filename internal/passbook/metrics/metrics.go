package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

type Metrics struct {
	RefreshesTotal *prometheus.CounterVec
	BillsVisible   prometheus.Gauge
}

func New() *Metrics {
	return &Metrics{
		RefreshesTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "renalize_passbook_refreshes_total",
			Help: "Bill history refreshes by outcome",
		}, []string{"outcome"}),
		BillsVisible: promauto.NewGauge(prometheus.GaugeOpts{
			Name: "renalize_passbook_bills_visible",
			Help: "Number of bills in the most recent successful refresh",
		}),
	}
}

func (m *Metrics) ObserveRefresh(outcome string, bills int) {
	m.RefreshesTotal.WithLabelValues(outcome).Inc()
	if outcome == "success" {
		m.BillsVisible.Set(float64(bills))
	}
}
