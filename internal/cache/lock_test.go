package cache_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renalize/internal/cache"
	dErrors "renalize/pkg/domain-errors"
)

func TestPasscode_SetAndVerify(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()

	require.NoError(t, cache.SetPasscode(ctx, store, "1947"))

	assert.NoError(t, cache.VerifyPasscode(ctx, store, "1947"))

	err := cache.VerifyPasscode(ctx, store, "0000")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))
}

func TestPasscode_EmptyRejected(t *testing.T) {
	err := cache.SetPasscode(context.Background(), cache.NewMemory(), "")
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
}

func TestPasscode_UnsetMeansUnlocked(t *testing.T) {
	assert.NoError(t, cache.VerifyPasscode(context.Background(), cache.NewMemory(), "anything"))
}

func TestPasscode_ClearedOnLogout(t *testing.T) {
	ctx := context.Background()
	store := cache.NewMemory()

	require.NoError(t, cache.SetPasscode(ctx, store, "1947"))
	require.NoError(t, store.Clear(ctx))

	// Hash is gone with the rest of the cache; store is unlocked again.
	assert.NoError(t, cache.VerifyPasscode(ctx, store, "wrong"))
}
