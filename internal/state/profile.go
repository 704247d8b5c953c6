package state

import (
	api "renalize/contracts/api"
	"renalize/internal/result"
)

// ProfileState is the sealed state of the profile screen.
type ProfileState interface{ profileState() }

type ProfileLoading struct{}

// ProfileRegistered shows the server-authoritative record.
type ProfileRegistered struct {
	Patient api.PatientData
}

// ProfileUnregistered routes the user into the enrollment flow.
type ProfileUnregistered struct{}

type ProfileFailed struct {
	Message string
}

func (ProfileLoading) profileState()      {}
func (ProfileRegistered) profileState()   {}
func (ProfileUnregistered) profileState() {}
func (ProfileFailed) profileState()       {}

// ProfileHolder drives the profile screen.
type ProfileHolder struct {
	*holder[ProfileState]
}

func NewProfileHolder() *ProfileHolder {
	return &ProfileHolder{holder: newHolder[ProfileState](ProfileLoading{})}
}

// Bind consumes one fetch stream. A Success carrying nil maps to the
// unregistered variant, not a failure.
func (h *ProfileHolder) Bind(stream *result.Stream[*api.PatientData]) {
	for r := range stream.Events() {
		switch {
		case r.IsLoading():
			h.set(ProfileLoading{})
		case r.IsSuccess():
			data, _ := r.Value()
			if data == nil {
				h.set(ProfileUnregistered{})
				continue
			}
			h.set(ProfileRegistered{Patient: *data})
		case r.IsError():
			h.set(ProfileFailed{Message: r.Message()})
		}
	}
}
