package blobstore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"renalize/internal/token"
	dErrors "renalize/pkg/domain-errors"
)

// DefaultEndpoint is the public Firebase Storage upload endpoint.
const DefaultEndpoint = "https://firebasestorage.googleapis.com"

// FirebaseUploader uploads objects into a Firebase Storage bucket over its
// REST surface. Each upload authenticates with a fresh ID token, matching the
// gateway's per-request credential policy.
type FirebaseUploader struct {
	endpoint string
	bucket   string
	tokens   token.Source
	client   *http.Client
}

// FirebaseOption configures a FirebaseUploader.
type FirebaseOption func(*FirebaseUploader)

// WithEndpoint overrides the upload endpoint. Tests point this at a local
// server.
func WithEndpoint(endpoint string) FirebaseOption {
	return func(u *FirebaseUploader) {
		u.endpoint = endpoint
	}
}

// WithTimeout bounds each upload round trip.
func WithTimeout(d time.Duration) FirebaseOption {
	return func(u *FirebaseUploader) {
		if d > 0 {
			u.client.Timeout = d
		}
	}
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(client *http.Client) FirebaseOption {
	return func(u *FirebaseUploader) {
		u.client = client
	}
}

// NewFirebase creates an uploader bound to one bucket.
func NewFirebase(bucket string, tokens token.Source, opts ...FirebaseOption) *FirebaseUploader {
	u := &FirebaseUploader{
		endpoint: DefaultEndpoint,
		bucket:   bucket,
		tokens:   tokens,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Bucket returns the bucket this uploader writes to.
func (u *FirebaseUploader) Bucket() string {
	return u.bucket
}

func (u *FirebaseUploader) Upload(ctx context.Context, r io.Reader, objectPath string) (string, error) {
	idToken, err := u.tokens.Token(ctx)
	if err != nil {
		return "", fmt.Errorf("fetch upload token: %w", err)
	}

	uploadURL := fmt.Sprintf("%s/v0/b/%s/o?uploadType=media&name=%s",
		u.endpoint, u.bucket, url.QueryEscape(objectPath))

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uploadURL, r)
	if err != nil {
		return "", fmt.Errorf("build upload request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+idToken)
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := u.client.Do(req)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnavailable, "blob upload failed")
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		return "", dErrors.Newf(dErrors.CodeUnavailable, "blob upload returned %d", resp.StatusCode)
	}

	return Ref(u.bucket, objectPath), nil
}
