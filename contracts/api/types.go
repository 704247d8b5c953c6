// Package api holds the wire types for the Renalize reimbursement backend.
// The client gateway and the mock backend both build against these, so the
// request and response shapes cannot drift apart silently.
package api

// DocumentType tells the backend how to decode an uploaded document.
type DocumentType string

const (
	DocumentTypeImage DocumentType = "image"
	DocumentTypePDF   DocumentType = "pdf"
)

// Gender values accepted by the KYC extractor.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

// HealthCondition is the chronic-care program a patient enrolls under.
type HealthCondition string

const (
	ConditionChronicKidneyDisease HealthCondition = "chronic_kidney_disease"
	ConditionThalassemia          HealthCondition = "thalassemia"
)

// IncomeLevel brackets annual household income in lakhs.
type IncomeLevel string

const (
	IncomeLessThan2 IncomeLevel = "less_than_2"
	IncomeTwoToFive IncomeLevel = "2_to_5"
	IncomeFiveToTen IncomeLevel = "5_to_10"
	IncomeTenPlus   IncomeLevel = "10_plus"
)

// BillType classifies an expense-claim bill.
type BillType string

const (
	BillTypePharmacy     BillType = "pharmacy"
	BillTypeDischarge    BillType = "discharge"
	BillTypeConsultation BillType = "consultation"
)

// BillStatus is the server-side verification state of a bill.
type BillStatus string

const (
	BillStatusPending  BillStatus = "pending"
	BillStatusVerified BillStatus = "verified"
	BillStatusRejected BillStatus = "rejected"
)

// DocumentInput references an uploaded document by its storage URI.
type DocumentInput struct {
	FileURI      string       `json:"file_uri"`
	DocumentType DocumentType `json:"document_type"`
}

// BatchDocumentInput carries multiple documents for one claim. Order matters:
// the backend reports per-position feedback against this ordering.
type BatchDocumentInput struct {
	Documents []DocumentInput `json:"documents"`
}

// DocumentResponse is the aggregate outcome of claim verification. A false
// Status on a 200 response is a business-level rejection, not a transport error.
type DocumentResponse struct {
	Status bool `json:"status"`
}

// Address as printed on the back of an Aadhar card.
type Address struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	Pincode string `json:"pincode"`
}

// AadharFrontData holds fields extracted from the front of an Aadhar card.
type AadharFrontData struct {
	AadharNumber string `json:"aadhar_number"`
	Name         string `json:"name"`
	DateOfBirth  string `json:"date_of_birth"`
	Gender       Gender `json:"gender"`
}

// AadharBackData holds the address extracted from the back of an Aadhar card.
type AadharBackData struct {
	Address Address `json:"address"`
}

// PANData holds fields extracted from a PAN card.
type PANData struct {
	PANNumber string `json:"pan_number"`
	Name      string `json:"name"`
}

// BankAccountData holds fields extracted from a bank passbook or statement.
type BankAccountData struct {
	AccountNumber     string `json:"account_number"`
	IFSCCode          string `json:"ifsc_code"`
	BankName          string `json:"bank_name"`
	BranchName        string `json:"branch_name"`
	AccountHolderName string `json:"account_holder_name"`
}

// KYCDocumentResponse carries at most one populated sub-object, matching the
// kind of document that was submitted for verification.
type KYCDocumentResponse struct {
	AadharFrontData *AadharFrontData `json:"aadhar_front_data,omitempty"`
	AadharBackData  *AadharBackData  `json:"aadhar_back_data,omitempty"`
	PANData         *PANData         `json:"pan_data,omitempty"`
	BankAccountData *BankAccountData `json:"bank_account_data,omitempty"`
}

// AadharData is the merged front+back identity block sent at registration.
type AadharData struct {
	AadharNumber string  `json:"aadhar_number"`
	Name         string  `json:"name"`
	DateOfBirth  string  `json:"date_of_birth"`
	Gender       Gender  `json:"gender"`
	Address      Address `json:"address"`
}

// KYCData aggregates the verified identity documents for a patient.
type KYCData struct {
	AadharData      *AadharData      `json:"aadhar_data,omitempty"`
	PANData         *PANData         `json:"pan_data,omitempty"`
	BankAccountData *BankAccountData `json:"bank_account_data,omitempty"`
	IncomeLevel     IncomeLevel      `json:"income_level,omitempty"`
}

// AddPatientRequest registers the caller as a patient.
type AddPatientRequest struct {
	ContactNum                string          `json:"contact_num"`
	KYCData                   KYCData         `json:"kyc_data"`
	PrimaryDoctorName         string          `json:"primary_doctor_name"`
	PrimaryHealthcareProvider string          `json:"primary_healthcare_provider"`
	UHID                      string          `json:"uhid"`
	HealthCondition           HealthCondition `json:"health_condition"`
}

// AddPatientResponse acknowledges a registration.
type AddPatientResponse struct {
	Status    string `json:"status"`
	PatientID string `json:"patient_id"`
}

// PatientData is the server-authoritative patient record.
type PatientData struct {
	PatientID                 string          `json:"patient_id"`
	UHID                      string          `json:"uhid"`
	ContactNum                string          `json:"contact_num"`
	HealthCondition           HealthCondition `json:"health_condition"`
	PrimaryDoctorName         string          `json:"primary_doctor_name"`
	PrimaryHealthcareProvider string          `json:"primary_healthcare_provider"`
	KYCData                   KYCData         `json:"kyc_data"`
}

// PatientDataResponse wraps the patient record. A nil PatientData means the
// caller has not registered yet; that is a normal state, not an error.
type PatientDataResponse struct {
	PatientData *PatientData `json:"patient_data"`
}

// Bill is a server-owned expense-claim record. Clients never mutate bills.
type Bill struct {
	ID        string     `json:"id"`
	PatientID string     `json:"patient_id"`
	Amount    float64    `json:"amount"`
	Date      string     `json:"date"`
	Status    BillStatus `json:"status"`
	Reasoning string     `json:"reasoning"`
	Type      BillType   `json:"type"`
}

// BillHistoryResponse lists every bill filed by the caller.
type BillHistoryResponse struct {
	Bills []Bill `json:"bills"`
}

// Hospital is an empanelled hospital directory entry.
type Hospital struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	ContactNumber  string `json:"contact_number"`
	GoogleMapsLink string `json:"google_maps_link"`
	WebsiteLink    string `json:"website_link"`
}
