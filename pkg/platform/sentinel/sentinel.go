package sentinel

import "errors"

// Sentinel errors for infrastructure facts. Stores and transport layers
// return these (optionally wrapped) so services can translate them into coded
// domain errors.
//
// These represent factual states about resources, not validation failures:
// - ErrNotFound: entity does not exist in store
// - ErrExpired: session token no longer accepted by the identity provider
// - ErrInvalidState: stored data unusable for the requested operation
// - ErrUnavailable: backend or broker temporarily unreachable
//
// For validation errors (bad input, missing fields), use pkg/domain-errors
// directly.
var (
	ErrNotFound     = errors.New("not found")
	ErrExpired      = errors.New("expired")
	ErrInvalidState = errors.New("invalid state")
	ErrUnavailable  = errors.New("unavailable")
)
