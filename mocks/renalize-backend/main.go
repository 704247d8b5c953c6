// Command renalize-backend is a development stand-in for the reimbursement
// API. It implements every endpoint the client calls, keeps state in memory,
// and extracts fixed KYC fields regardless of the uploaded image, so the full
// client flow can run without the real backend or a document extractor.
package main

import (
	"encoding/json"
	"flag"
	"log"
	"net/http"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/golang-jwt/jwt/v5"

	api "renalize/contracts/api"
)

func main() {
	addr := flag.String("addr", ":8000", "listen address")
	signingKey := flag.String("signing-key", "dev-secret-change-me", "HS256 key for minted ID tokens")
	flag.Parse()

	s := &server{
		signingKey: []byte(*signingKey),
		patients:   make(map[string]api.PatientData),
		bills:      make(map[string][]api.Bill),
	}

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Post("/token", s.handleToken)
	r.Post("/kyc/verify", s.handleKYCVerify)
	r.Post("/patient/add", s.handleAddPatient)
	r.Get("/patient", s.handleGetPatient)
	r.Get("/bills", s.handleBills)
	r.Post("/claim/verify", s.handleVerifyClaim)
	r.Post("/claim/verify-batch", s.handleVerifyClaimBatch)
	r.Get("/hospital", s.handleHospitals)

	log.Printf("renalize-backend listening on %s", *addr)
	log.Fatal(http.ListenAndServe(*addr, r))
}

type server struct {
	signingKey []byte

	mu       sync.Mutex
	patients map[string]api.PatientData
	bills    map[string][]api.Bill
	nextID   int
}

type tokenRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
}

type tokenResponse struct {
	IDToken string `json:"id_token"`
}

// handleToken exchanges any parseable refresh token for a short-lived ID
// token carrying the same uid.
func (s *server) handleToken(w http.ResponseWriter, r *http.Request) {
	var req tokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(req.RefreshToken, claims); err != nil {
		http.Error(w, "invalid refresh token", http.StatusUnauthorized)
		return
	}
	uid, _ := claims["uid"].(string)
	if uid == "" {
		uid, _ = claims["sub"].(string)
	}
	if uid == "" {
		http.Error(w, "token carries no uid", http.StatusUnauthorized)
		return
	}

	now := time.Now()
	idToken, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"uid": uid,
		"sub": uid,
		"iat": now.Unix(),
		"exp": now.Add(5 * time.Minute).Unix(),
	}).SignedString(s.signingKey)
	if err != nil {
		http.Error(w, "sign failed", http.StatusInternalServerError)
		return
	}
	writeJSON(w, tokenResponse{IDToken: idToken})
}

func (s *server) uid(r *http.Request) string {
	bearer := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")
	if bearer == "" {
		return ""
	}
	claims := jwt.MapClaims{}
	if _, err := jwt.NewParser().ParseWithClaims(bearer, claims, func(*jwt.Token) (any, error) {
		return s.signingKey, nil
	}); err != nil {
		return ""
	}
	if uid, _ := claims["uid"].(string); uid != "" {
		return uid
	}
	uid, _ := claims["sub"].(string)
	return uid
}

// handleKYCVerify classifies the document by its storage path and returns
// canned extracted fields for that kind.
func (s *server) handleKYCVerify(w http.ResponseWriter, r *http.Request) {
	if s.uid(r) == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req api.DocumentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	var resp api.KYCDocumentResponse
	switch {
	case strings.Contains(req.FileURI, "aadhar_front"):
		resp.AadharFrontData = &api.AadharFrontData{
			AadharNumber: "123456789012",
			Name:         "John Doe",
			DateOfBirth:  "2024-08-08",
			Gender:       api.GenderMale,
		}
	case strings.Contains(req.FileURI, "aadhar_back"):
		resp.AadharBackData = &api.AadharBackData{
			Address: api.Address{
				Street:  "12 MG Road",
				City:    "Pune",
				State:   "Maharashtra",
				Pincode: "411001",
			},
		}
	case strings.Contains(req.FileURI, "pan_data"):
		resp.PANData = &api.PANData{PANNumber: "ABCDE1234F", Name: "John Doe"}
	case strings.Contains(req.FileURI, "bank_account_data"):
		resp.BankAccountData = &api.BankAccountData{
			AccountNumber:     "000111222333",
			IFSCCode:          "HDFC0001234",
			BankName:          "HDFC Bank",
			BranchName:        "Pune Camp",
			AccountHolderName: "John Doe",
		}
	default:
		http.Error(w, "unclassifiable document", http.StatusBadRequest)
		return
	}
	writeJSON(w, resp)
}

func (s *server) handleAddPatient(w http.ResponseWriter, r *http.Request) {
	uid := s.uid(r)
	if uid == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req api.AddPatientRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	patientID := "p-" + uid
	s.patients[uid] = api.PatientData{
		PatientID:                 patientID,
		UHID:                      req.UHID,
		ContactNum:                req.ContactNum,
		HealthCondition:           req.HealthCondition,
		PrimaryDoctorName:         req.PrimaryDoctorName,
		PrimaryHealthcareProvider: req.PrimaryHealthcareProvider,
		KYCData:                   req.KYCData,
	}
	writeJSON(w, api.AddPatientResponse{Status: "ok", PatientID: patientID})
}

func (s *server) handleGetPatient(w http.ResponseWriter, r *http.Request) {
	uid := s.uid(r)
	if uid == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if patient, ok := s.patients[uid]; ok {
		writeJSON(w, api.PatientDataResponse{PatientData: &patient})
		return
	}
	writeJSON(w, api.PatientDataResponse{})
}

func (s *server) handleBills(w http.ResponseWriter, r *http.Request) {
	uid := s.uid(r)
	if uid == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	writeJSON(w, api.BillHistoryResponse{Bills: s.bills[uid]})
}

// handleVerifyClaim accepts every claim and files a pending bill for it.
func (s *server) handleVerifyClaim(w http.ResponseWriter, r *http.Request) {
	uid := s.uid(r)
	if uid == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req api.DocumentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	s.fileBills(uid, 1)
	writeJSON(w, api.DocumentResponse{Status: true})
}

func (s *server) handleVerifyClaimBatch(w http.ResponseWriter, r *http.Request) {
	uid := s.uid(r)
	if uid == "" {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	var req api.BatchDocumentInput
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	if len(req.Documents) == 0 {
		writeJSON(w, api.DocumentResponse{Status: false})
		return
	}

	s.fileBills(uid, len(req.Documents))
	writeJSON(w, api.DocumentResponse{Status: true})
}

func (s *server) fileBills(uid string, n int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := 0; i < n; i++ {
		s.nextID++
		s.bills[uid] = append(s.bills[uid], api.Bill{
			ID:        "b-" + strconv.Itoa(s.nextID),
			PatientID: "p-" + uid,
			Amount:    1200.50,
			Date:      time.Now().Format("2006-01-02"),
			Status:    api.BillStatusPending,
			Type:      api.BillTypePharmacy,
		})
	}
}

func (s *server) handleHospitals(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, []api.Hospital{
		{
			Name:          "City Hospital",
			Address:       "12 MG Road, Pune",
			ContactNumber: "020-12345678",
			WebsiteLink:   "https://cityhospital.example",
		},
		{
			Name:          "Rural Care Centre",
			Address:       "Main Street, Satara",
			ContactNumber: "02162-223344",
		},
	})
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}

