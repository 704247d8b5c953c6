// Package claims submits expense-claim bill documents: upload the images,
// then ask the backend to verify the claim. Multi-document claims upload in
// parallel but the verify request lists documents in the order the user chose
// them, so server-side feedback can be correlated back to the originals.
package claims

import (
	"context"
	"io"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	api "renalize/contracts/api"
	"renalize/internal/blobstore"
	"renalize/internal/claims/metrics"
	"renalize/internal/gateway"
	"renalize/internal/result"
	"renalize/internal/token"
	dErrors "renalize/pkg/domain-errors"
	"renalize/pkg/platform/events"
)

// ErrMsgClaimFailed is the one message the UI shows for any claim failure,
// including a business-level rejection (false status on a 200 response).
const ErrMsgClaimFailed = "Failed to verify claim"

// Document is one bill image picked by the user.
type Document struct {
	Name    string
	Content io.Reader
}

// Service submits claims against the reimbursement backend.
type Service struct {
	uploader blobstore.Uploader
	gateway  gateway.Gateway
	tokens   token.Source
	logger   *slog.Logger
	metrics  *metrics.Metrics
	events   events.Publisher
	now      func() time.Time
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

func WithEventPublisher(p events.Publisher) Option {
	return func(s *Service) {
		s.events = p
	}
}

// WithClock fixes the timestamp source. Tests use this to pin upload paths.
func WithClock(now func() time.Time) Option {
	return func(s *Service) {
		s.now = now
	}
}

// New wires the claim submission collaborators.
func New(uploader blobstore.Uploader, gw gateway.Gateway, tokens token.Source, opts ...Option) *Service {
	s := &Service{
		uploader: uploader,
		gateway:  gw,
		tokens:   tokens,
		logger:   slog.Default(),
		events:   events.NoopPublisher{},
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Submit uploads one bill document and verifies the claim.
func (s *Service) Submit(ctx context.Context, doc Document) *result.Stream[result.Unit] {
	return s.run(ctx, "single", events.ActionClaimSubmit, func(ctx context.Context, uid string) error {
		ref, err := s.uploader.Upload(ctx, doc.Content, blobstore.BillPath(uid, doc.Name, s.now()))
		if err != nil {
			return err
		}

		resp, err := s.gateway.VerifyClaim(ctx, api.DocumentInput{
			FileURI:      ref,
			DocumentType: api.DocumentTypeImage,
		})
		if err != nil {
			return err
		}
		if !resp.Status {
			return dErrors.New(dErrors.CodeRejected, "claim rejected by verifier")
		}
		return nil
	})
}

// SubmitBatch uploads every document in parallel, then verifies the claim as
// one batch. The request lists reference URLs in input order regardless of
// upload completion order. Any upload failure, or a false batch status, fails
// the whole submission; there is no partial commit.
func (s *Service) SubmitBatch(ctx context.Context, docs []Document) *result.Stream[result.Unit] {
	return s.run(ctx, "batch", events.ActionClaimBatch, func(ctx context.Context, uid string) error {
		if len(docs) == 0 {
			return dErrors.New(dErrors.CodeInvalidInput, "no documents selected")
		}
		if s.metrics != nil {
			s.metrics.ObserveBatchSize(len(docs))
		}

		// Slot results by index so the batch request preserves input order.
		refs := make([]string, len(docs))

		g, gctx := errgroup.WithContext(ctx)
		for i, doc := range docs {
			g.Go(func() error {
				// Each upload mints its own timestamp so same-named files
				// land on distinct paths.
				ref, err := s.uploader.Upload(gctx, doc.Content, blobstore.BillPath(uid, doc.Name, s.now()))
				if err != nil {
					return err
				}
				refs[i] = ref
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return err
		}

		inputs := make([]api.DocumentInput, len(refs))
		for i, ref := range refs {
			inputs[i] = api.DocumentInput{FileURI: ref, DocumentType: api.DocumentTypeImage}
		}

		resp, err := s.gateway.VerifyClaimBatch(ctx, api.BatchDocumentInput{Documents: inputs})
		if err != nil {
			return err
		}
		if !resp.Status {
			return dErrors.New(dErrors.CodeRejected, "batch rejected by verifier")
		}
		return nil
	})
}

func (s *Service) run(ctx context.Context, mode string, action events.Action, fn func(ctx context.Context, uid string) error) *result.Stream[result.Unit] {
	stream := result.NewStream[result.Unit]()
	stream.Loading()

	go func() {
		start := time.Now()

		uid, err := s.userID(ctx)
		if err == nil {
			err = fn(ctx, uid)
		}

		outcome := "success"
		if err != nil {
			outcome = "error"
			s.logger.Error("claim submission failed", "mode", mode, "error", err)
		}
		if s.metrics != nil {
			s.metrics.ObserveSubmission(mode, outcome, time.Since(start))
		}
		s.publish(ctx, uid, action, outcome)

		if err != nil {
			stream.Fail(ErrMsgClaimFailed)
			return
		}
		stream.Succeed(result.Unit{})
	}()

	return stream
}

func (s *Service) userID(ctx context.Context) (string, error) {
	idToken, err := s.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	return token.UserID(idToken)
}

func (s *Service) publish(ctx context.Context, uid string, action events.Action, outcome string) {
	if s.events == nil {
		return
	}
	if err := s.events.Publish(ctx, events.New(uid, action, outcome)); err != nil {
		s.logger.Warn("event publish failed", "action", action, "error", err)
	}
}
