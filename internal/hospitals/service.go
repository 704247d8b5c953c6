// Package hospitals fetches the empanelled hospital directory.
package hospitals

import (
	"context"
	"log/slog"

	api "renalize/contracts/api"
	"renalize/internal/gateway"
	"renalize/internal/result"
)

const ErrMsgListFailed = "Failed to fetch hospitals"

type Service struct {
	gateway gateway.Gateway
	logger  *slog.Logger
}

type Option func(*Service)

func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		s.logger = logger
	}
}

func New(gw gateway.Gateway, opts ...Option) *Service {
	s := &Service{gateway: gw, logger: slog.Default()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// List fetches the directory. The list is public data, so this works even
// before registration completes.
func (s *Service) List(ctx context.Context) *result.Stream[[]api.Hospital] {
	return result.Run(ctx, ErrMsgListFailed, func(ctx context.Context) ([]api.Hospital, error) {
		hospitals, err := s.gateway.Hospitals(ctx)
		if err != nil {
			s.logger.Error("hospital directory fetch failed", "error", err)
			return nil, err
		}
		return hospitals, nil
	})
}
