package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	api "renalize/contracts/api"
	"renalize/internal/gateway/metrics"
	"renalize/internal/token"
	dErrors "renalize/pkg/domain-errors"
	"renalize/pkg/platform/circuit"
)

const tracerName = "renalize/internal/gateway"

// Client talks HTTP to the reimbursement backend.
type Client struct {
	baseURL string
	tokens  token.Source
	http    *http.Client
	breaker *circuit.Breaker
	logger  *slog.Logger
	metrics *metrics.Metrics
	tracer  trace.Tracer
}

// Option configures a Client.
type Option func(*Client)

func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

func WithMetrics(m *metrics.Metrics) Option {
	return func(c *Client) {
		c.metrics = m
	}
}

func WithHTTPClient(h *http.Client) Option {
	return func(c *Client) {
		c.http = h
	}
}

// WithTimeout bounds each request round trip.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		if d > 0 {
			c.http.Timeout = d
		}
	}
}

func WithBreaker(b *circuit.Breaker) Option {
	return func(c *Client) {
		c.breaker = b
	}
}

// NewClient builds a gateway client for the backend at baseURL.
func NewClient(baseURL string, tokens token.Source, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		tokens:  tokens,
		http:    &http.Client{Timeout: 60 * time.Second},
		breaker: circuit.New("renalize-backend"),
		tracer:  otel.Tracer(tracerName),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) VerifyKYC(ctx context.Context, req api.DocumentInput) (api.KYCDocumentResponse, error) {
	var out api.KYCDocumentResponse
	err := c.do(ctx, http.MethodPost, "kyc/verify", req, &out)
	return out, err
}

func (c *Client) AddPatient(ctx context.Context, req api.AddPatientRequest) error {
	return c.do(ctx, http.MethodPost, "patient/add", req, nil)
}

func (c *Client) BillHistory(ctx context.Context) (api.BillHistoryResponse, error) {
	var out api.BillHistoryResponse
	err := c.do(ctx, http.MethodGet, "bills", nil, &out)
	return out, err
}

func (c *Client) VerifyClaim(ctx context.Context, req api.DocumentInput) (api.DocumentResponse, error) {
	var out api.DocumentResponse
	err := c.do(ctx, http.MethodPost, "claim/verify", req, &out)
	return out, err
}

func (c *Client) VerifyClaimBatch(ctx context.Context, req api.BatchDocumentInput) (api.DocumentResponse, error) {
	var out api.DocumentResponse
	err := c.do(ctx, http.MethodPost, "claim/verify-batch", req, &out)
	return out, err
}

func (c *Client) Patient(ctx context.Context) (api.PatientDataResponse, error) {
	var out api.PatientDataResponse
	err := c.do(ctx, http.MethodGet, "patient", nil, &out)
	return out, err
}

func (c *Client) Hospitals(ctx context.Context) ([]api.Hospital, error) {
	var out []api.Hospital
	err := c.do(ctx, http.MethodGet, "hospital", nil, &out)
	return out, err
}

// do runs one request: fresh token, JSON round trip, breaker bookkeeping.
func (c *Client) do(ctx context.Context, method, endpoint string, body, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "gateway."+endpoint, trace.WithAttributes(
		attribute.String("http.method", method),
		attribute.String("gateway.endpoint", endpoint),
	))
	defer span.End()

	start := time.Now()
	defer func() {
		outcome := "success"
		if err != nil {
			outcome = "error"
			span.SetStatus(codes.Error, err.Error())
		}
		if c.metrics != nil {
			c.metrics.ObserveRequest(endpoint, outcome, time.Since(start))
		}
	}()

	if c.breaker.IsOpen() {
		return dErrors.New(dErrors.CodeUnavailable, "backend circuit open")
	}

	idToken, err := c.tokens.Token(ctx)
	if err != nil {
		// Token failure counts against the operation, not the breaker; the
		// backend never saw the request.
		return fmt.Errorf("fetch request token: %w", err)
	}

	var reqBody io.Reader
	if body != nil {
		data, merr := json.Marshal(body)
		if merr != nil {
			return fmt.Errorf("encode %s request: %w", endpoint, merr)
		}
		reqBody = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+"/"+endpoint, reqBody)
	if err != nil {
		return fmt.Errorf("build %s request: %w", endpoint, err)
	}
	req.Header.Set("Authorization", "Bearer "+idToken)
	req.Header.Set("X-Request-ID", uuid.NewString())
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		c.recordFailure(endpoint)
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "backend unreachable")
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		c.recordSuccess()
		return dErrors.New(dErrors.CodeUnauthorized, "request rejected by backend")
	case resp.StatusCode == http.StatusNotFound:
		c.recordSuccess()
		return dErrors.New(dErrors.CodeNotFound, "resource not found")
	case resp.StatusCode >= http.StatusInternalServerError:
		c.recordFailure(endpoint)
		return dErrors.Newf(dErrors.CodeUnavailable, "backend returned %d", resp.StatusCode)
	case resp.StatusCode >= http.StatusBadRequest:
		c.recordSuccess()
		return dErrors.Newf(dErrors.CodeBadRequest, "backend rejected request with %d", resp.StatusCode)
	}

	c.recordSuccess()

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return dErrors.Wrap(err, dErrors.CodeInternal, "decode "+endpoint+" response")
	}
	return nil
}

func (c *Client) recordFailure(endpoint string) {
	_, change := c.breaker.RecordFailure()
	if change.Opened {
		if c.metrics != nil {
			c.metrics.IncrementBreakerOpens()
		}
		if c.logger != nil {
			c.logger.Warn("backend circuit opened", "endpoint", endpoint)
		}
	}
}

func (c *Client) recordSuccess() {
	_, change := c.breaker.RecordSuccess()
	if change.Closed && c.logger != nil {
		c.logger.Info("backend circuit closed")
	}
}
