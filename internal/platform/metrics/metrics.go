// Package metrics aggregates every vertical's Prometheus metrics behind one
// constructor so command wiring registers them exactly once.
package metrics

import (
	claimsmetrics "renalize/internal/claims/metrics"
	gatewaymetrics "renalize/internal/gateway/metrics"
	kycmetrics "renalize/internal/kyc/metrics"
	passbookmetrics "renalize/internal/passbook/metrics"
)

// Metrics holds all registered collectors.
type Metrics struct {
	Gateway  *gatewaymetrics.Metrics
	KYC      *kycmetrics.Metrics
	Claims   *claimsmetrics.Metrics
	Passbook *passbookmetrics.Metrics
}

// New registers every collector on the default registry. Call once per
// process.
func New() *Metrics {
	return &Metrics{
		Gateway:  gatewaymetrics.New(),
		KYC:      kycmetrics.New(),
		Claims:   claimsmetrics.New(),
		Passbook: passbookmetrics.New(),
	}
}
