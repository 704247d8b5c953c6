package state

import (
	"renalize/internal/kyc"
	"renalize/internal/result"
)

// KYCState is the sealed state of the KYC verification screen.
type KYCState interface{ kycState() }

// KYCIdle is the screen before any document is picked.
type KYCIdle struct{}

// KYCSelected is a picked document awaiting verification.
type KYCSelected struct {
	Kind     kyc.DocumentKind
	FileName string
}

// KYCVerifying is an in-flight verification.
type KYCVerifying struct {
	Kind kyc.DocumentKind
}

// KYCVerified is a completed verification for one kind.
type KYCVerified struct {
	Kind kyc.DocumentKind
}

// KYCFailed carries the user-facing message. The previously selected file
// reference is gone: the user picks again to retry.
type KYCFailed struct {
	Kind    kyc.DocumentKind
	Message string
}

func (KYCIdle) kycState()      {}
func (KYCSelected) kycState()  {}
func (KYCVerifying) kycState() {}
func (KYCVerified) kycState()  {}
func (KYCFailed) kycState()    {}

// KYCHolder drives the KYC screen.
type KYCHolder struct {
	*holder[KYCState]
}

func NewKYCHolder() *KYCHolder {
	return &KYCHolder{holder: newHolder[KYCState](KYCIdle{})}
}

// Select records the picked document.
func (h *KYCHolder) Select(kind kyc.DocumentKind, fileName string) {
	h.set(KYCSelected{Kind: kind, FileName: fileName})
}

// Bind consumes one verification stream and mirrors it into screen state. On
// failure the selection is cleared along with the transition to KYCFailed, so
// a retry always starts from a fresh pick.
func (h *KYCHolder) Bind(kind kyc.DocumentKind, stream *result.Stream[result.Unit]) {
	for r := range stream.Events() {
		switch {
		case r.IsLoading():
			h.set(KYCVerifying{Kind: kind})
		case r.IsSuccess():
			h.set(KYCVerified{Kind: kind})
		case r.IsError():
			h.set(KYCFailed{Kind: kind, Message: r.Message()})
		}
	}
}
