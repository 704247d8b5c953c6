package main

import (
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renalize/internal/cache"
	dErrors "renalize/pkg/domain-errors"
)

func flagCmd(t *testing.T, passcode string) *cobra.Command {
	t.Helper()
	cmd := &cobra.Command{}
	cmd.Flags().String("passcode", "", "")
	if passcode != "" {
		require.NoError(t, cmd.Flags().Set("passcode", passcode))
	}
	cmd.SetContext(context.Background())
	return cmd
}

func TestUnlock_OpenWhenNoPasscodeSet(t *testing.T) {
	a := &app{store: cache.NewMemory()}
	require.NoError(t, a.unlock(flagCmd(t, "")))
}

func TestUnlock_GatesCachedPII(t *testing.T) {
	store := cache.NewMemory()
	a := &app{store: store}
	require.NoError(t, cache.SetPasscode(context.Background(), store, "4311"))

	err := a.unlock(flagCmd(t, ""))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	err = a.unlock(flagCmd(t, "9999"))
	require.Error(t, err)
	assert.True(t, dErrors.HasCode(err, dErrors.CodeUnauthorized))

	require.NoError(t, a.unlock(flagCmd(t, "4311")))
}
