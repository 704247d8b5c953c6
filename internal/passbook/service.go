// Package passbook fetches the caller's expense-claim history and keeps it
// fresh for the long-running watch mode.
package passbook

import (
	"context"
	"log/slog"
	"time"

	api "renalize/contracts/api"
	"renalize/internal/gateway"
	"renalize/internal/passbook/metrics"
	"renalize/internal/result"
)

const ErrMsgHistoryFailed = "Failed to fetch bill history"

// Service reads bill history from the backend. Bills are server-owned; the
// client never mutates them.
type Service struct {
	gateway gateway.Gateway
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures the Service.
type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(s *Service) {
		s.metrics = m
	}
}

func New(gw gateway.Gateway, opts ...Option) *Service {
	s := &Service{
		gateway: gw,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// History fetches the full bill list once.
func (s *Service) History(ctx context.Context) *result.Stream[[]api.Bill] {
	return result.Run(ctx, ErrMsgHistoryFailed, func(ctx context.Context) ([]api.Bill, error) {
		return s.fetch(ctx)
	})
}

func (s *Service) fetch(ctx context.Context) ([]api.Bill, error) {
	resp, err := s.gateway.BillHistory(ctx)

	outcome := "success"
	if err != nil {
		outcome = "error"
		s.logger.Error("bill history fetch failed", "error", err)
	}
	if s.metrics != nil {
		s.metrics.ObserveRefresh(outcome, len(resp.Bills))
	}
	if err != nil {
		return nil, err
	}
	return resp.Bills, nil
}

// Watch polls bill history on the given interval and delivers each successful
// refresh on the returned channel. A failed refresh is logged and counted but
// does not stop the watcher; the next tick tries again. The channel closes
// when ctx is done.
func (s *Service) Watch(ctx context.Context, interval time.Duration) <-chan []api.Bill {
	updates := make(chan []api.Bill, 1)

	go func() {
		defer close(updates)

		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		// Immediate first refresh so watch mode never starts blank.
		s.refresh(ctx, updates)
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				s.refresh(ctx, updates)
			}
		}
	}()

	return updates
}

func (s *Service) refresh(ctx context.Context, updates chan<- []api.Bill) {
	bills, err := s.fetch(ctx)
	if err != nil {
		return
	}
	select {
	case updates <- bills:
	case <-ctx.Done():
	}
}
