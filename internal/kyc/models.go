// Package kyc implements the upload-verify pipeline: a document image goes to
// blob storage, the backend extracts its fields, and the verified values land
// in the local cache. The pipeline reports through the tri-state envelope and
// commits nothing on failure.
package kyc

import "renalize/internal/cache"

// DocumentKind identifies which KYC document is being verified. Each kind
// owns a storage path segment and a fixed set of cache keys; a successful
// verification writes exactly those keys and no others.
type DocumentKind int

const (
	KindAadharFront DocumentKind = iota
	KindAadharBack
	KindPAN
	KindBankPassbook
)

func (k DocumentKind) String() string {
	switch k {
	case KindAadharFront:
		return "aadhar_front"
	case KindAadharBack:
		return "aadhar_back"
	case KindPAN:
		return "pan_card"
	case KindBankPassbook:
		return "bank_passbook"
	default:
		return "unknown"
	}
}

// PathKey is the storage path segment for this kind. The backend keys the
// stored object on the same attribute name it returns in the verify response.
func (k DocumentKind) PathKey() string {
	switch k {
	case KindAadharFront:
		return "aadhar_front_data"
	case KindAadharBack:
		return "aadhar_back_data"
	case KindPAN:
		return "pan_data"
	case KindBankPassbook:
		return "bank_account_data"
	default:
		return "unknown"
	}
}

// CacheKeys lists the cache keys this kind writes on success.
func (k DocumentKind) CacheKeys() []string {
	switch k {
	case KindAadharFront:
		return []string{cache.KeyAadharNumber, cache.KeyAadharName, cache.KeyAadharDOB, cache.KeyGender}
	case KindAadharBack:
		return []string{cache.KeyAddressStreet, cache.KeyAddressCity, cache.KeyAddressState, cache.KeyAddressPincode}
	case KindPAN:
		return []string{cache.KeyPANNumber, cache.KeyPANName}
	case KindBankPassbook:
		return []string{cache.KeyAccountNumber, cache.KeyIFSCCode, cache.KeyBankName, cache.KeyBranchName, cache.KeyAccountHolderName}
	default:
		return nil
	}
}

// ParseKind maps a user-facing kind name to a DocumentKind.
func ParseKind(s string) (DocumentKind, bool) {
	switch s {
	case "aadhar_front", "aadhar-front":
		return KindAadharFront, true
	case "aadhar_back", "aadhar-back":
		return KindAadharBack, true
	case "pan", "pan_card", "pan-card":
		return KindPAN, true
	case "bank_passbook", "bank-passbook", "passbook":
		return KindBankPassbook, true
	default:
		return 0, false
	}
}
