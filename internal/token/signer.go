package token

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// SignerSource mints a short-lived HS256 ID token on every call. It backs
// development and test setups where no identity provider is running; the mock
// backend shares the signing key.
type SignerSource struct {
	signingKey []byte
	issuer     string
	audience   string
	uid        string
	ttl        time.Duration
}

// NewSigner builds a signer source for the given user.
func NewSigner(signingKey, issuer, audience, uid string) *SignerSource {
	return &SignerSource{
		signingKey: []byte(signingKey),
		issuer:     issuer,
		audience:   audience,
		uid:        uid,
		ttl:        5 * time.Minute,
	}
}

func (s *SignerSource) Token(_ context.Context) (string, error) {
	now := time.Now()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		UID: s.uid,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   s.uid,
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    s.issuer,
			Audience:  []string{s.audience},
			ID:        uuid.NewString(),
		},
	})
	return tok.SignedString(s.signingKey)
}
