package patient_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	api "renalize/contracts/api"
	"renalize/internal/cache"
	"renalize/internal/gateway/mocks"
	"renalize/internal/patient"
	"renalize/internal/result"
	"renalize/internal/token"
)

func devTokens() token.Source {
	return token.NewSigner("dev-secret", "renalize-dev", "renalize-api", "user-1")
}

func seededStore(t *testing.T, keys map[string]string) *cache.MemoryStore {
	t.Helper()
	store := cache.NewMemory()
	ctx := context.Background()
	for k, v := range keys {
		require.NoError(t, store.PutString(ctx, k, v))
	}
	return store
}

func fullKYCStore(t *testing.T) *cache.MemoryStore {
	return seededStore(t, map[string]string{
		cache.KeyMobileNumber:      "9876543210",
		cache.KeyAadharNumber:      "123456789012",
		cache.KeyAadharName:        "John Doe",
		cache.KeyAadharDOB:         "2024-08-08",
		cache.KeyGender:            "male",
		cache.KeyAddressStreet:     "12 MG Road",
		cache.KeyAddressCity:       "Pune",
		cache.KeyAddressState:      "Maharashtra",
		cache.KeyAddressPincode:    "411001",
		cache.KeyPANNumber:         "ABCDE1234F",
		cache.KeyPANName:           "John Doe",
		cache.KeyAccountNumber:     "000111222333",
		cache.KeyIFSCCode:          "HDFC0001234",
		cache.KeyBankName:          "HDFC Bank",
		cache.KeyBranchName:        "Pune Camp",
		cache.KeyAccountHolderName: "John Doe",
	})
}

func TestRegister_AssemblesProfileFromCache(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	var got api.AddPatientRequest
	gw.EXPECT().AddPatient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req api.AddPatientRequest) error {
			got = req
			return nil
		})

	store := fullKYCStore(t)
	svc := patient.New(gw, store, devTokens())

	ctx := context.Background()
	r := result.Await(ctx, svc.Register(ctx, patient.Registration{
		IncomeLevel:               api.IncomeTwoToFive,
		HealthCondition:           api.ConditionChronicKidneyDisease,
		PrimaryDoctorName:         "Dr. Rao",
		PrimaryHealthcareProvider: "City Hospital",
		UHID:                      "UH-42",
	}))
	require.True(t, r.IsSuccess())

	assert.Equal(t, "9876543210", got.ContactNum)
	assert.Equal(t, "UH-42", got.UHID)
	assert.Equal(t, api.ConditionChronicKidneyDisease, got.HealthCondition)
	assert.Equal(t, api.IncomeTwoToFive, got.KYCData.IncomeLevel)

	require.NotNil(t, got.KYCData.AadharData)
	assert.Equal(t, "123456789012", got.KYCData.AadharData.AadharNumber)
	assert.Equal(t, api.GenderMale, got.KYCData.AadharData.Gender)
	assert.Equal(t, "411001", got.KYCData.AadharData.Address.Pincode)

	require.NotNil(t, got.KYCData.PANData)
	assert.Equal(t, "ABCDE1234F", got.KYCData.PANData.PANNumber)

	require.NotNil(t, got.KYCData.BankAccountData)
	assert.Equal(t, "HDFC0001234", got.KYCData.BankAccountData.IFSCCode)

	// UHID is remembered locally after a successful registration.
	uhid, err := store.GetString(ctx, cache.KeyUHID)
	require.NoError(t, err)
	assert.Equal(t, "UH-42", uhid)
}

func TestRegister_OptionalBlocksOmittedWhenUnverified(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	var got api.AddPatientRequest
	gw.EXPECT().AddPatient(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, req api.AddPatientRequest) error {
			got = req
			return nil
		})

	// Aadhar verified, PAN and bank not yet.
	store := seededStore(t, map[string]string{
		cache.KeyMobileNumber: "9876543210",
		cache.KeyAadharNumber: "123456789012",
		cache.KeyAadharName:   "John Doe",
	})
	svc := patient.New(gw, store, devTokens())

	ctx := context.Background()
	r := result.Await(ctx, svc.Register(ctx, patient.Registration{UHID: "UH-42"}))
	require.True(t, r.IsSuccess())

	assert.NotNil(t, got.KYCData.AadharData)
	assert.Nil(t, got.KYCData.PANData)
	assert.Nil(t, got.KYCData.BankAccountData)
}

func TestRegister_RequiresAadhar(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	// Gateway must not be called without verified identity.

	store := seededStore(t, map[string]string{
		cache.KeyMobileNumber: "9876543210",
	})
	svc := patient.New(gw, store, devTokens())

	ctx := context.Background()
	r := result.Await(ctx, svc.Register(ctx, patient.Registration{UHID: "UH-42"}))

	require.True(t, r.IsError())
	assert.Equal(t, patient.ErrMsgRegisterFailed, r.Message())
}

func TestRegister_RequiresContactNumber(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)

	store := seededStore(t, map[string]string{
		cache.KeyAadharNumber: "123456789012",
	})
	svc := patient.New(gw, store, devTokens())

	ctx := context.Background()
	r := result.Await(ctx, svc.Register(ctx, patient.Registration{UHID: "UH-42"}))
	assert.True(t, r.IsError())
}

func TestRegister_GatewayFailureLeavesUHIDUnset(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().AddPatient(gomock.Any(), gomock.Any()).Return(assert.AnError)

	store := fullKYCStore(t)
	svc := patient.New(gw, store, devTokens())

	ctx := context.Background()
	r := result.Await(ctx, svc.Register(ctx, patient.Registration{UHID: "UH-42"}))
	require.True(t, r.IsError())

	uhid, err := store.GetString(ctx, cache.KeyUHID)
	require.NoError(t, err)
	assert.Empty(t, uhid)
}

func TestFetch_RegisteredPatient(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().Patient(gomock.Any()).Return(api.PatientDataResponse{
		PatientData: &api.PatientData{PatientID: "p-1", UHID: "UH-42"},
	}, nil)

	svc := patient.New(gw, cache.NewMemory(), devTokens())

	ctx := context.Background()
	r := result.Await(ctx, svc.Fetch(ctx))
	require.True(t, r.IsSuccess())

	data, ok := r.Value()
	require.True(t, ok)
	require.NotNil(t, data)
	assert.Equal(t, "p-1", data.PatientID)
}

func TestFetch_NullMeansUnregistered(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().Patient(gomock.Any()).Return(api.PatientDataResponse{}, nil)

	svc := patient.New(gw, cache.NewMemory(), devTokens())

	ctx := context.Background()
	r := result.Await(ctx, svc.Fetch(ctx))

	// Not registered is a Success carrying nil, never an Error.
	require.True(t, r.IsSuccess())
	data, ok := r.Value()
	require.True(t, ok)
	assert.Nil(t, data)
}

func TestFetch_TransportError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := mocks.NewMockGateway(ctrl)
	gw.EXPECT().Patient(gomock.Any()).Return(api.PatientDataResponse{}, assert.AnError)

	svc := patient.New(gw, cache.NewMemory(), devTokens())

	ctx := context.Background()
	r := result.Await(ctx, svc.Fetch(ctx))
	require.True(t, r.IsError())
	assert.Equal(t, patient.ErrMsgFetchFailed, r.Message())
}
