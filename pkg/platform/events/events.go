// Package events records the operation trail of the client: KYC
// verifications, claim submissions, registrations, logins. Hosted kiosk
// deployments ship the trail to a Kafka topic for compliance review; the
// plain CLI runs with the noop publisher.
//
// Publishing is fail-open: a broker outage must never fail the user's
// operation, so Publish errors are logged and swallowed by callers.
package events

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Action identifies what the user did.
type Action string

const (
	ActionLogin           Action = "login"
	ActionLogout          Action = "logout"
	ActionKYCVerify       Action = "kyc_verify"
	ActionClaimSubmit     Action = "claim_submit"
	ActionClaimBatch      Action = "claim_submit_batch"
	ActionPatientRegister Action = "patient_register"
)

// Event is one entry in the operation trail.
type Event struct {
	ID      string            `json:"id"`
	UserID  string            `json:"user_id"`
	Action  Action            `json:"action"`
	Outcome string            `json:"outcome"`
	At      time.Time         `json:"at"`
	Detail  map[string]string `json:"detail,omitempty"`
}

// New builds an event with a fresh ID and timestamp.
func New(userID string, action Action, outcome string) Event {
	return Event{
		ID:      uuid.NewString(),
		UserID:  userID,
		Action:  action,
		Outcome: outcome,
		At:      time.Now().UTC(),
	}
}

// Publisher delivers events to wherever the trail lives.
type Publisher interface {
	Publish(ctx context.Context, event Event) error
	Close()
}

// NoopPublisher drops every event.
type NoopPublisher struct{}

func (NoopPublisher) Publish(context.Context, Event) error { return nil }
func (NoopPublisher) Close()                               {}

// MemoryPublisher records events in memory for tests.
type MemoryPublisher struct {
	mu     sync.Mutex
	events []Event
}

func NewMemoryPublisher() *MemoryPublisher {
	return &MemoryPublisher{}
}

func (p *MemoryPublisher) Publish(_ context.Context, event Event) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, event)
	return nil
}

func (p *MemoryPublisher) Close() {}

// Events returns a copy of everything published so far.
func (p *MemoryPublisher) Events() []Event {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]Event, len(p.events))
	copy(out, p.events)
	return out
}
