// Package token supplies bearer ID tokens for the remote gateway. The gateway
// asks for a token before every outgoing request; sources must treat each call
// as a forced refresh and never hand back a token cached from a previous call.
package token

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	dErrors "renalize/pkg/domain-errors"
)

// Source yields a fresh bearer ID token. A failure here fails the request it
// was fetched for; there is no retry.
type Source interface {
	Token(ctx context.Context) (string, error)
}

// Claims are the ID-token claims the client cares about. The backend verifies
// signatures; the client only reads the subject to build storage paths.
type Claims struct {
	UID string `json:"uid"`
	jwt.RegisteredClaims
}

// UserID extracts the user identifier from an ID token without verifying the
// signature. Verification is the backend's job; a malformed token is still
// rejected.
func UserID(idToken string) (string, error) {
	parser := jwt.NewParser()
	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(idToken, claims); err != nil {
		return "", dErrors.Wrap(err, dErrors.CodeUnauthorized, "malformed ID token")
	}
	uid := claims.UID
	if uid == "" {
		uid = claims.Subject
	}
	if uid == "" {
		return "", dErrors.New(dErrors.CodeUnauthorized, "ID token carries no user identifier")
	}
	return uid, nil
}
