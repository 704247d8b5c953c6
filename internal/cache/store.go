// Package cache is the persisted key-value store holding the session token,
// contact number, and previously verified KYC field values. It is injected
// into every service that needs it; nothing in this package is a singleton.
// Logout clears the whole store at once.
package cache

import "context"

// Store is a string/boolean key-value store. Reads of absent keys return the
// zero default ("" or false) and no error; errors are reserved for transport
// or persistence failures. Clear removes every entry atomically with respect
// to concurrent readers in the same process.
type Store interface {
	GetString(ctx context.Context, key string) (string, error)
	PutString(ctx context.Context, key, value string) error
	GetBool(ctx context.Context, key string) (bool, error)
	PutBool(ctx context.Context, key string, value bool) error
	Clear(ctx context.Context) error
}
