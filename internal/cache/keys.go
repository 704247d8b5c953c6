package cache

// Fixed cache keys. These names are load-bearing: verified KYC fields are
// written and read back under exactly these keys, and registration assembles
// the patient profile from them.
const (
	KeyIsLoggedIn   = "logged_in"
	KeyUserToken    = "user_token"
	KeyMobileNumber = "mobile_number"

	KeyAadharNumber = "aadhar_number"
	KeyAadharName   = "aadhar_name"
	KeyAadharDOB    = "aadhar_dob"
	KeyGender       = "gender"

	KeyAddressStreet  = "address_street"
	KeyAddressCity    = "address_city"
	KeyAddressState   = "address_state"
	KeyAddressPincode = "address_pincode"

	KeyPANNumber = "pan_number"
	KeyPANName   = "pan_name"

	KeyAccountNumber     = "account_number"
	KeyIFSCCode          = "ifsc_code"
	KeyBankName          = "bank_name"
	KeyBranchName        = "branch_name"
	KeyAccountHolderName = "account_holder_name"

	KeyUHID = "uhid"

	// KeyPasscodeHash stores the bcrypt hash guarding local access to the
	// cached PII. It lives in the same store so logout wipes it too.
	KeyPasscodeHash = "passcode_hash"
)
