package cache

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	dErrors "renalize/pkg/domain-errors"
)

// The cache holds Aadhar and bank details in the clear, so local access is
// gated behind a device passcode. Only the bcrypt hash is stored; it lives in
// the same store as the data it guards and disappears with it on logout.

// SetPasscode hashes and stores the device passcode.
func SetPasscode(ctx context.Context, store Store, passcode string) error {
	if passcode == "" {
		return dErrors.New(dErrors.CodeInvalidInput, "passcode cannot be empty")
	}
	hashed, err := bcrypt.GenerateFromPassword([]byte(passcode), bcrypt.DefaultCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return dErrors.New(dErrors.CodeInvalidInput, "passcode is too long")
		}
		return fmt.Errorf("hash passcode: %w", err)
	}
	return store.PutString(ctx, KeyPasscodeHash, string(hashed))
}

// VerifyPasscode checks a passcode attempt against the stored hash. When no
// passcode has been set the cache is unlocked and any attempt passes.
func VerifyPasscode(ctx context.Context, store Store, passcode string) error {
	hash, err := store.GetString(ctx, KeyPasscodeHash)
	if err != nil {
		return err
	}
	if hash == "" {
		return nil
	}
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(passcode)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return dErrors.New(dErrors.CodeUnauthorized, "incorrect passcode")
		}
		return fmt.Errorf("verify passcode: %w", err)
	}
	return nil
}
