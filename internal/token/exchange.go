package token

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"renalize/internal/cache"
	dErrors "renalize/pkg/domain-errors"
	"renalize/pkg/platform/sentinel"
)

// ExchangeSource trades the persisted session token for a fresh ID token on
// every call. The session token comes out of the cache each time, so a logout
// in another part of the app immediately starves the gateway of credentials.
type ExchangeSource struct {
	endpoint string
	store    cache.Store
	client   *http.Client
}

// NewExchange builds an exchange source against the identity provider's
// refresh endpoint.
func NewExchange(endpoint string, store cache.Store) *ExchangeSource {
	return &ExchangeSource{
		endpoint: endpoint,
		store:    store,
		client:   &http.Client{Timeout: 15 * time.Second},
	}
}

type exchangeRequest struct {
	GrantType    string `json:"grant_type"`
	RefreshToken string `json:"refresh_token"`
}

type exchangeResponse struct {
	IDToken string `json:"id_token"`
}

func (s *ExchangeSource) Token(ctx context.Context) (string, error) {
	session, err := s.store.GetString(ctx, cache.KeyUserToken)
	if err != nil {
		return "", fmt.Errorf("read session token: %w", err)
	}
	if session == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, "not logged in")
	}

	body, err := json.Marshal(exchangeRequest{
		GrantType:    "refresh_token",
		RefreshToken: session,
	})
	if err != nil {
		return "", fmt.Errorf("encode token exchange: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("build token exchange request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnavailable, "token exchange failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return "", dErrors.Wrap(sentinel.ErrExpired, dErrors.CodeUnauthorized, "session token rejected")
	}
	if resp.StatusCode != http.StatusOK {
		return "", dErrors.Newf(dErrors.CodeUnavailable, "token exchange returned %d", resp.StatusCode)
	}

	var out exchangeResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeInternal, "decode token exchange response")
	}
	if out.IDToken == "" {
		return "", dErrors.New(dErrors.CodeInternal, "token exchange returned empty token")
	}
	return out.IDToken, nil
}
