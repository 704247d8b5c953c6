package state

import (
	api "renalize/contracts/api"
	"renalize/internal/result"
)

// PassbookState is the sealed state of the bill history screen.
type PassbookState interface{ passbookState() }

type PassbookLoading struct{}

type PassbookLoaded struct {
	Bills []api.Bill
}

type PassbookFailed struct {
	Message string
}

func (PassbookLoading) passbookState() {}
func (PassbookLoaded) passbookState()  {}
func (PassbookFailed) passbookState()  {}

// PassbookHolder drives the bill history screen.
type PassbookHolder struct {
	*holder[PassbookState]
}

func NewPassbookHolder() *PassbookHolder {
	return &PassbookHolder{holder: newHolder[PassbookState](PassbookLoading{})}
}

// Bind consumes one history stream and mirrors it into screen state.
func (h *PassbookHolder) Bind(stream *result.Stream[[]api.Bill]) {
	for r := range stream.Events() {
		switch {
		case r.IsLoading():
			h.set(PassbookLoading{})
		case r.IsSuccess():
			bills, _ := r.Value()
			h.set(PassbookLoaded{Bills: bills})
		case r.IsError():
			h.set(PassbookFailed{Message: r.Message()})
		}
	}
}

// Apply replaces the bill list directly; watch mode feeds refreshes here.
func (h *PassbookHolder) Apply(bills []api.Bill) {
	h.set(PassbookLoaded{Bills: bills})
}
