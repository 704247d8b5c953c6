package state

import (
	api "renalize/contracts/api"
	"renalize/internal/result"
)

// ClaimState is the sealed state of the claim submission screen.
type ClaimState interface{ claimState() }

// ClaimIdle is the screen before any bill is picked.
type ClaimIdle struct{}

// ClaimSelected is one or more picked bill files tagged with a bill type.
type ClaimSelected struct {
	BillType  api.BillType
	FileNames []string
}

// ClaimSubmitting is an in-flight submission.
type ClaimSubmitting struct{}

// ClaimSubmitted is a fully accepted submission.
type ClaimSubmitted struct{}

// ClaimFailed carries the user-facing message; the picked files are cleared.
type ClaimFailed struct {
	Message string
}

func (ClaimIdle) claimState()       {}
func (ClaimSelected) claimState()   {}
func (ClaimSubmitting) claimState() {}
func (ClaimSubmitted) claimState()  {}
func (ClaimFailed) claimState()     {}

// ClaimHolder drives the claim submission screen.
type ClaimHolder struct {
	*holder[ClaimState]
}

func NewClaimHolder() *ClaimHolder {
	return &ClaimHolder{holder: newHolder[ClaimState](ClaimIdle{})}
}

// Select records the picked bills. Keeps the latest pick only.
func (h *ClaimHolder) Select(billType api.BillType, fileNames ...string) {
	h.set(ClaimSelected{BillType: billType, FileNames: fileNames})
}

// Bind consumes one submission stream and mirrors it into screen state.
func (h *ClaimHolder) Bind(stream *result.Stream[result.Unit]) {
	for r := range stream.Events() {
		switch {
		case r.IsLoading():
			h.set(ClaimSubmitting{})
		case r.IsSuccess():
			h.set(ClaimSubmitted{})
		case r.IsError():
			h.set(ClaimFailed{Message: r.Message()})
		}
	}
}
