package state_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	api "renalize/contracts/api"
	"renalize/internal/kyc"
	"renalize/internal/result"
	"renalize/internal/state"
)

func TestKYCHolder_SuccessfulVerification(t *testing.T) {
	h := state.NewKYCHolder()
	assert.Equal(t, state.KYCIdle{}, h.Current())

	h.Select(kyc.KindAadharFront, "front.jpg")
	selected, ok := h.Current().(state.KYCSelected)
	require.True(t, ok)
	assert.Equal(t, "front.jpg", selected.FileName)

	stream := result.NewStream[result.Unit]()
	stream.Loading()
	stream.Succeed(result.Unit{})
	h.Bind(kyc.KindAadharFront, stream)

	assert.Equal(t, state.KYCVerified{Kind: kyc.KindAadharFront}, h.Current())
}

func TestKYCHolder_FailureClearsSelection(t *testing.T) {
	h := state.NewKYCHolder()
	h.Select(kyc.KindPAN, "pan.jpg")

	stream := result.NewStream[result.Unit]()
	stream.Loading()
	stream.Fail("Failed to verify KYC")
	h.Bind(kyc.KindPAN, stream)

	// The failed state carries no file reference; the pick is gone.
	failed, ok := h.Current().(state.KYCFailed)
	require.True(t, ok)
	assert.Equal(t, "Failed to verify KYC", failed.Message)

	_, stillSelected := h.Current().(state.KYCSelected)
	assert.False(t, stillSelected)
}

func TestKYCHolder_SubscribeSeesTransitions(t *testing.T) {
	h := state.NewKYCHolder()

	snapshots, cancel := h.Subscribe()
	defer cancel()

	assert.Equal(t, state.KYCIdle{}, <-snapshots)

	h.Select(kyc.KindAadharBack, "back.jpg")
	next := <-snapshots
	selected, ok := next.(state.KYCSelected)
	require.True(t, ok)
	assert.Equal(t, kyc.KindAadharBack, selected.Kind)
}

func TestKYCHolder_SlowSubscriberKeepsLatest(t *testing.T) {
	h := state.NewKYCHolder()

	snapshots, cancel := h.Subscribe()
	defer cancel()

	// Never drained between transitions: intermediate snapshots drop, the
	// latest survives.
	h.Select(kyc.KindPAN, "a.jpg")
	h.Select(kyc.KindPAN, "b.jpg")

	var last state.KYCState
	for len(snapshots) > 0 {
		last = <-snapshots
	}
	selected, ok := last.(state.KYCSelected)
	require.True(t, ok)
	assert.Equal(t, "b.jpg", selected.FileName)
}

func TestClaimHolder_BusinessRejection(t *testing.T) {
	h := state.NewClaimHolder()
	h.Select(api.BillTypePharmacy, "bill1.jpg", "bill2.jpg")

	stream := result.NewStream[result.Unit]()
	stream.Loading()
	stream.Fail("Failed to verify claim")
	h.Bind(stream)

	failed, ok := h.Current().(state.ClaimFailed)
	require.True(t, ok)
	assert.Equal(t, "Failed to verify claim", failed.Message)
}

func TestPassbookHolder_BindAndWatchApply(t *testing.T) {
	h := state.NewPassbookHolder()

	stream := result.NewStream[[]api.Bill]()
	stream.Loading()
	stream.Succeed([]api.Bill{{ID: "b-1"}})
	h.Bind(stream)

	loaded, ok := h.Current().(state.PassbookLoaded)
	require.True(t, ok)
	require.Len(t, loaded.Bills, 1)

	h.Apply([]api.Bill{{ID: "b-1"}, {ID: "b-2"}})
	loaded, ok = h.Current().(state.PassbookLoaded)
	require.True(t, ok)
	assert.Len(t, loaded.Bills, 2)
}

func TestProfileHolder_NilPatientMeansUnregistered(t *testing.T) {
	h := state.NewProfileHolder()

	stream := result.NewStream[*api.PatientData]()
	stream.Loading()
	stream.Succeed(nil)
	h.Bind(stream)

	assert.Equal(t, state.ProfileUnregistered{}, h.Current())
}

func TestProfileHolder_Registered(t *testing.T) {
	h := state.NewProfileHolder()

	stream := result.NewStream[*api.PatientData]()
	stream.Loading()
	stream.Succeed(&api.PatientData{PatientID: "p-1"})
	h.Bind(stream)

	registered, ok := h.Current().(state.ProfileRegistered)
	require.True(t, ok)
	assert.Equal(t, "p-1", registered.Patient.PatientID)
}
