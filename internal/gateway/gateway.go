// Package gateway is the typed HTTP client for the Renalize reimbursement
// backend. Every request fetches a fresh bearer ID token before it leaves the
// process; nothing here caches credentials across calls.
package gateway

import (
	"context"

	api "renalize/contracts/api"
)

//go:generate mockgen -source=gateway.go -destination=mocks/mocks.go -package=mocks

// Gateway is the port the service layer consumes. The HTTP client implements
// it; tests substitute mocks.
type Gateway interface {
	VerifyKYC(ctx context.Context, req api.DocumentInput) (api.KYCDocumentResponse, error)
	AddPatient(ctx context.Context, req api.AddPatientRequest) error
	BillHistory(ctx context.Context) (api.BillHistoryResponse, error)
	VerifyClaim(ctx context.Context, req api.DocumentInput) (api.DocumentResponse, error)
	VerifyClaimBatch(ctx context.Context, req api.BatchDocumentInput) (api.DocumentResponse, error)
	Patient(ctx context.Context) (api.PatientDataResponse, error)
	Hospitals(ctx context.Context) ([]api.Hospital, error)
}
