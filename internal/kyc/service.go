package kyc

import (
	"context"
	"io"
	"log/slog"
	"time"

	api "renalize/contracts/api"
	"renalize/internal/blobstore"
	"renalize/internal/cache"
	"renalize/internal/gateway"
	"renalize/internal/kyc/metrics"
	"renalize/internal/result"
	"renalize/internal/token"
	dErrors "renalize/pkg/domain-errors"
	"renalize/pkg/platform/events"
)

// ErrMsgVerifyFailed is the one message the UI shows for any pipeline
// failure. The underlying cause goes to the log, never to the user.
const ErrMsgVerifyFailed = "Failed to verify KYC"

// Service runs the upload-verify pipeline for KYC documents.
type Service struct {
	uploader blobstore.Uploader
	gateway  gateway.Gateway
	store    cache.Store
	tokens   token.Source
	logger   *slog.Logger
	metrics  *metrics.Metrics
	events   events.Publisher
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

// New wires the pipeline's collaborators.
func New(uploader blobstore.Uploader, gw gateway.Gateway, store cache.Store, tokens token.Source, opts ...Option) *Service {
	s := &Service{
		uploader: uploader,
		gateway:  gw,
		store:    store,
		tokens:   tokens,
		logger:   slog.Default(),
		events:   events.NoopPublisher{},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// VerifyDocument runs the pipeline for one document: upload the image, ask
// the backend to extract its fields, then merge the extracted values into the
// cache. The returned stream emits Loading, then exactly one terminal
// envelope. A failure anywhere leaves the cache untouched.
func (s *Service) VerifyDocument(ctx context.Context, kind DocumentKind, doc io.Reader) *result.Stream[result.Unit] {
	stream := result.NewStream[result.Unit]()
	stream.Loading()

	go func() {
		start := time.Now()
		uid, err := s.verify(ctx, kind, doc)

		outcome := "success"
		if err != nil {
			outcome = "error"
			s.logger.Error("kyc verification failed",
				"kind", kind.String(),
				"error", err,
			)
		}
		if s.metrics != nil {
			s.metrics.ObserveVerification(kind.String(), outcome, time.Since(start))
		}
		s.publish(ctx, uid, kind, outcome)

		if err != nil {
			stream.Fail(ErrMsgVerifyFailed)
			return
		}
		stream.Succeed(result.Unit{})
	}()

	return stream
}

func (s *Service) verify(ctx context.Context, kind DocumentKind, doc io.Reader) (string, error) {
	idToken, err := s.tokens.Token(ctx)
	if err != nil {
		return "", err
	}
	uid, err := token.UserID(idToken)
	if err != nil {
		return "", err
	}

	ref, err := s.uploader.Upload(ctx, doc, blobstore.KYCDocPath(uid, kind.PathKey()))
	if err != nil {
		return uid, err
	}

	resp, err := s.gateway.VerifyKYC(ctx, api.DocumentInput{
		FileURI:      ref,
		DocumentType: api.DocumentTypeImage,
	})
	if err != nil {
		return uid, err
	}

	fields, err := extractFields(kind, resp)
	if err != nil {
		return uid, err
	}

	// All fields are in hand before the first write; cache writes only fail
	// for persistence errors, and a partial write is then surfaced as an
	// Error envelope like any other failure.
	for key, value := range fields {
		if err := s.store.PutString(ctx, key, value); err != nil {
			return uid, err
		}
	}
	return uid, nil
}

// extractFields dispatches on the document kind and returns the cache writes
// its sub-object maps to. A response missing the sub-object for the requested
// kind violates the backend contract and fails the operation; the previous
// behavior of trusting it to be present is exactly the crash this guards.
func extractFields(kind DocumentKind, resp api.KYCDocumentResponse) (map[string]string, error) {
	switch kind {
	case KindAadharFront:
		if resp.AadharFrontData == nil {
			return nil, missingSubObject("aadhar_front_data")
		}
		d := resp.AadharFrontData
		return map[string]string{
			cache.KeyAadharNumber: d.AadharNumber,
			cache.KeyAadharName:   d.Name,
			cache.KeyAadharDOB:    d.DateOfBirth,
			cache.KeyGender:       string(d.Gender),
		}, nil
	case KindAadharBack:
		if resp.AadharBackData == nil {
			return nil, missingSubObject("aadhar_back_data")
		}
		a := resp.AadharBackData.Address
		return map[string]string{
			cache.KeyAddressStreet:  a.Street,
			cache.KeyAddressCity:    a.City,
			cache.KeyAddressState:   a.State,
			cache.KeyAddressPincode: a.Pincode,
		}, nil
	case KindPAN:
		if resp.PANData == nil {
			return nil, missingSubObject("pan_data")
		}
		return map[string]string{
			cache.KeyPANNumber: resp.PANData.PANNumber,
			cache.KeyPANName:   resp.PANData.Name,
		}, nil
	case KindBankPassbook:
		if resp.BankAccountData == nil {
			return nil, missingSubObject("bank_account_data")
		}
		d := resp.BankAccountData
		return map[string]string{
			cache.KeyAccountNumber:     d.AccountNumber,
			cache.KeyIFSCCode:          d.IFSCCode,
			cache.KeyBankName:          d.BankName,
			cache.KeyBranchName:        d.BranchName,
			cache.KeyAccountHolderName: d.AccountHolderName,
		}, nil
	default:
		return nil, dErrors.Newf(dErrors.CodeInvalidInput, "unknown document kind %d", kind)
	}
}

func missingSubObject(name string) error {
	return dErrors.Newf(dErrors.CodeInvariantViolation, "verification response missing %s", name)
}

func (s *Service) publish(ctx context.Context, uid string, kind DocumentKind, outcome string) {
	if s.events == nil {
		return
	}
	event := events.New(uid, events.ActionKYCVerify, outcome)
	event.Detail = map[string]string{"kind": kind.String()}
	if err := s.events.Publish(ctx, event); err != nil {
		s.logger.Warn("event publish failed", "action", events.ActionKYCVerify, "error", err)
	}
}
