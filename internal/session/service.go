// Package session owns the login state of the client: the stored refresh
// token, the mobile number, the logged-in flag, and the wipe on logout.
package session

import (
	"context"
	"log/slog"

	"renalize/internal/cache"
	"renalize/internal/token"
	dErrors "renalize/pkg/domain-errors"
	"renalize/pkg/platform/events"
)

// Service manages the logged-in session in the local cache.
type Service struct {
	store  cache.Store
	logger *slog.Logger
	events events.Publisher
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithEventPublisher(p events.Publisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

func New(store cache.Store, opts ...Option) *Service {
	s := &Service{
		store:  store,
		logger: slog.Default(),
		events: events.NoopPublisher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Login stores the session token and mobile number and marks the session
// logged in. The token must at least parse as a JWT so the user id can be
// read back later; a garbage token is rejected up front instead of failing
// on the first gateway call.
func (s *Service) Login(ctx context.Context, mobileNumber, sessionToken string) error {
	if mobileNumber == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "mobile number is required")
	}
	uid, err := token.UserID(sessionToken)
	if err != nil {
		return dErrors.Wrap(err, dErrors.CodeInvalidInput, "session token is not a valid JWT")
	}

	if err := s.store.PutString(ctx, cache.KeyUserToken, sessionToken); err != nil {
		return err
	}
	if err := s.store.PutString(ctx, cache.KeyMobileNumber, mobileNumber); err != nil {
		return err
	}
	if err := s.store.PutBool(ctx, cache.KeyIsLoggedIn, true); err != nil {
		return err
	}

	s.publish(ctx, uid, events.ActionLogin)
	s.logger.Info("logged in", "uid", uid)
	return nil
}

// Logout wipes the entire cache: session, KYC fields, passcode hash,
// everything. The wipe is the whole point, so it runs even if reading the
// current uid for the trail fails.
func (s *Service) Logout(ctx context.Context) error {
	uid := s.currentUID(ctx)

	if err := s.store.Clear(ctx); err != nil {
		return err
	}

	s.publish(ctx, uid, events.ActionLogout)
	s.logger.Info("logged out")
	return nil
}

// LoggedIn reports whether a session is active.
func (s *Service) LoggedIn(ctx context.Context) (bool, error) {
	return s.store.GetBool(ctx, cache.KeyIsLoggedIn)
}

func (s *Service) currentUID(ctx context.Context) string {
	stored, err := s.store.GetString(ctx, cache.KeyUserToken)
	if err != nil || stored == "" {
		return ""
	}
	uid, err := token.UserID(stored)
	if err != nil {
		return ""
	}
	return uid
}

func (s *Service) publish(ctx context.Context, uid string, action events.Action) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, events.New(uid, action, "success")); err != nil {
		s.logger.Warn("event publish failed", "action", action, "error", err)
	}
}
