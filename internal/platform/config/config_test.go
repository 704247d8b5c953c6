package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"renalize/internal/platform/config"
)

func TestLoad_DefaultsWithoutFile(t *testing.T) {
	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8000", cfg.Backend.BaseURL)
	assert.Equal(t, "renalize-docs", cfg.Storage.Bucket)
	assert.Equal(t, "renalize.client.operations", cfg.Events.Topic)
	assert.Equal(t, 30*time.Second, cfg.Watch.Interval)
	assert.Empty(t, cfg.Cache.RedisURL)
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	contents := `
backend:
  base_url: https://api.renalize.example
storage:
  bucket: prod-docs
cache:
  redis_url: redis://localhost:6379/0
watch:
  interval: 5s
`
	require.NoError(t, os.WriteFile(filepath.Join(dir, "renalize.yaml"), []byte(contents), 0o600))

	cfg, err := config.Load(dir)
	require.NoError(t, err)

	assert.Equal(t, "https://api.renalize.example", cfg.Backend.BaseURL)
	assert.Equal(t, "prod-docs", cfg.Storage.Bucket)
	assert.Equal(t, "redis://localhost:6379/0", cfg.Cache.RedisURL)
	assert.Equal(t, 5*time.Second, cfg.Watch.Interval)
	// Untouched values keep their defaults.
	assert.Equal(t, "http://localhost:9099/token", cfg.Backend.TokenEndpoint)
}

func TestLoad_EnvOverride(t *testing.T) {
	t.Setenv("RENALIZE_STORAGE_BUCKET", "env-bucket")

	cfg, err := config.Load(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "env-bucket", cfg.Storage.Bucket)
}

func TestLoad_MalformedFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "renalize.yaml"), []byte("{not yaml"), 0o600))

	_, err := config.Load(dir)
	assert.Error(t, err)
}
