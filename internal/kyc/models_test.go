package kyc_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"renalize/internal/blobstore"
	"renalize/internal/kyc"
)

// Stored objects are keyed on the backend's response attribute names, not the
// user-facing kind names.
func TestDocumentKind_StoragePathUsesAttributeKey(t *testing.T) {
	tests := []struct {
		kind kyc.DocumentKind
		path string
	}{
		{kyc.KindAadharFront, "patient_docs/user-1/kyc_docs/aadhar_front_data"},
		{kyc.KindAadharBack, "patient_docs/user-1/kyc_docs/aadhar_back_data"},
		{kyc.KindPAN, "patient_docs/user-1/kyc_docs/pan_data"},
		{kyc.KindBankPassbook, "patient_docs/user-1/kyc_docs/bank_account_data"},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.path, blobstore.KYCDocPath("user-1", tt.kind.PathKey()))
		})
	}
}
