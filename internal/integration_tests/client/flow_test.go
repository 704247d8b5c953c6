package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "renalize/contracts/api"
	"renalize/internal/blobstore"
	"renalize/internal/cache"
	"renalize/internal/claims"
	"renalize/internal/gateway"
	"renalize/internal/kyc"
	"renalize/internal/patient"
	"renalize/internal/result"
	"renalize/internal/token"
)

// backend is an in-process reimbursement API with canned extraction data,
// close enough to the real contract to drive full client flows.
type backend struct {
	mu         sync.Mutex
	patients   map[string]api.PatientData
	billCount  int
	claimFails bool
}

func newBackend() *backend {
	return &backend{patients: make(map[string]api.PatientData)}
}

func (b *backend) router() http.Handler {
	r := chi.NewRouter()
	r.Post("/kyc/verify", func(w http.ResponseWriter, req *http.Request) {
		var in api.DocumentInput
		_ = json.NewDecoder(req.Body).Decode(&in)

		var resp api.KYCDocumentResponse
		switch {
		case strings.Contains(in.FileURI, "aadhar_front"):
			resp.AadharFrontData = &api.AadharFrontData{
				AadharNumber: "123456789012",
				Name:         "John Doe",
				DateOfBirth:  "2024-08-08",
				Gender:       api.GenderMale,
			}
		case strings.Contains(in.FileURI, "pan_data"):
			resp.PANData = &api.PANData{PANNumber: "ABCDE1234F", Name: "John Doe"}
		}
		writeJSON(w, resp)
	})
	r.Post("/patient/add", func(w http.ResponseWriter, req *http.Request) {
		var in api.AddPatientRequest
		_ = json.NewDecoder(req.Body).Decode(&in)
		b.mu.Lock()
		b.patients["user-1"] = api.PatientData{PatientID: "p-1", UHID: in.UHID, KYCData: in.KYCData}
		b.mu.Unlock()
		writeJSON(w, api.AddPatientResponse{Status: "ok", PatientID: "p-1"})
	})
	r.Get("/patient", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if p, ok := b.patients["user-1"]; ok {
			writeJSON(w, api.PatientDataResponse{PatientData: &p})
			return
		}
		writeJSON(w, api.PatientDataResponse{})
	})
	r.Post("/claim/verify", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		if b.claimFails {
			writeJSON(w, api.DocumentResponse{Status: false})
			return
		}
		b.billCount++
		writeJSON(w, api.DocumentResponse{Status: true})
	})
	r.Post("/claim/verify-batch", func(w http.ResponseWriter, req *http.Request) {
		var in api.BatchDocumentInput
		_ = json.NewDecoder(req.Body).Decode(&in)
		b.mu.Lock()
		b.billCount += len(in.Documents)
		b.mu.Unlock()
		writeJSON(w, api.DocumentResponse{Status: true})
	})
	r.Get("/bills", func(w http.ResponseWriter, _ *http.Request) {
		b.mu.Lock()
		defer b.mu.Unlock()
		bills := make([]api.Bill, b.billCount)
		for i := range bills {
			bills[i] = api.Bill{ID: "b-1", Status: api.BillStatusPending}
		}
		writeJSON(w, api.BillHistoryResponse{Bills: bills})
	})
	return r
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

type env struct {
	store    *cache.FileStore
	uploader *blobstore.MemoryUploader
	kyc      *kyc.Service
	claims   *claims.Service
	patient  *patient.Service
}

func newEnv(t *testing.T, b *backend) *env {
	t.Helper()

	server := httptest.NewServer(b.router())
	t.Cleanup(server.Close)

	store, err := cache.NewFile(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	tokens := token.NewSigner("it-secret", "renalize-dev", "renalize-api", "user-1")
	gw := gateway.NewClient(server.URL, tokens)
	uploader := blobstore.NewMemoryUploader("renalize-docs")

	return &env{
		store:    store,
		uploader: uploader,
		kyc:      kyc.New(uploader, gw, store, tokens),
		claims:   claims.New(uploader, gw, tokens),
		patient:  patient.New(gw, store, tokens),
	}
}

func TestKYCToRegistrationFlow(t *testing.T) {
	ctx := context.Background()
	e := newEnv(t, newBackend())

	r := result.Await(ctx, e.kyc.VerifyDocument(ctx, kyc.KindAadharFront, strings.NewReader("front")))
	require.True(t, r.IsSuccess())

	aadhar, err := e.store.GetString(ctx, cache.KeyAadharNumber)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", aadhar)

	dob, err := e.store.GetString(ctx, cache.KeyAadharDOB)
	require.NoError(t, err)
	assert.Equal(t, "2024-08-08", dob)

	r = result.Await(ctx, e.kyc.VerifyDocument(ctx, kyc.KindPAN, strings.NewReader("pan")))
	require.True(t, r.IsSuccess())

	require.NoError(t, e.store.PutString(ctx, cache.KeyMobileNumber, "9876543210"))

	reg := result.Await(ctx, e.patient.Register(ctx, patient.Registration{
		IncomeLevel:     api.IncomeTwoToFive,
		HealthCondition: api.ConditionChronicKidneyDisease,
		UHID:            "UH-42",
	}))
	require.True(t, reg.IsSuccess())

	fetched := result.Await(ctx, e.patient.Fetch(ctx))
	require.True(t, fetched.IsSuccess())
	data, ok := fetched.Value()
	require.True(t, ok)
	require.NotNil(t, data)
	assert.Equal(t, "UH-42", data.UHID)
	require.NotNil(t, data.KYCData.AadharData)
	assert.Equal(t, "123456789012", data.KYCData.AadharData.AadharNumber)
}

func TestClaimRejectionLeavesCacheUntouched(t *testing.T) {
	ctx := context.Background()
	b := newBackend()
	b.claimFails = true
	e := newEnv(t, b)

	require.NoError(t, e.store.PutString(ctx, cache.KeyAadharNumber, "123456789012"))

	r := result.Await(ctx, e.claims.Submit(ctx, claims.Document{
		Name:    "bill.jpg",
		Content: strings.NewReader("bill"),
	}))
	require.True(t, r.IsError())
	assert.Equal(t, "Failed to verify claim", r.Message())

	aadhar, err := e.store.GetString(ctx, cache.KeyAadharNumber)
	require.NoError(t, err)
	assert.Equal(t, "123456789012", aadhar)
}

func TestBatchVerifyNetworkFailure(t *testing.T) {
	ctx := context.Background()
	b := newBackend()

	server := httptest.NewServer(b.router())
	store, err := cache.NewFile(filepath.Join(t.TempDir(), "cache.json"))
	require.NoError(t, err)

	tokens := token.NewSigner("it-secret", "renalize-dev", "renalize-api", "user-1")
	gw := gateway.NewClient(server.URL, tokens,
		gateway.WithHTTPClient(&http.Client{Timeout: 2 * time.Second}))
	uploader := blobstore.NewMemoryUploader("renalize-docs")
	svc := claims.New(uploader, gw, tokens)

	// The backend dies between the uploads and the verify call.
	server.Close()

	stream := svc.SubmitBatch(ctx, []claims.Document{
		{Name: "a.jpg", Content: strings.NewReader("a")},
		{Name: "b.jpg", Content: strings.NewReader("b")},
	})

	var envelopes []result.Result[result.Unit]
	for r := range stream.Events() {
		envelopes = append(envelopes, r)
	}
	require.Len(t, envelopes, 2)
	assert.True(t, envelopes[0].IsLoading())
	assert.True(t, envelopes[1].IsError())
	assert.Equal(t, "Failed to verify claim", envelopes[1].Message())

	// Uploads happened; the claim did not.
	assert.Equal(t, 2, uploader.Len())
	snapshot, err := store.GetString(ctx, cache.KeyAadharNumber)
	require.NoError(t, err)
	assert.Empty(t, snapshot)
}
