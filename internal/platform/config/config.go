// Package config loads client configuration from a config file and the
// environment so main stays lean. Every value has a working development
// default; a kiosk deployment overrides them via renalize.yaml or
// RENALIZE_* environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Config is the full client configuration.
type Config struct {
	Backend Backend `mapstructure:"backend"`
	Storage Storage `mapstructure:"storage"`
	Cache   Cache   `mapstructure:"cache"`
	Events  Events  `mapstructure:"events"`
	Metrics Metrics `mapstructure:"metrics"`
	Watch   Watch   `mapstructure:"watch"`
	Dev     Dev     `mapstructure:"dev"`
}

// Backend is the reimbursement API the gateway binds to.
type Backend struct {
	BaseURL       string        `mapstructure:"base_url"`
	TokenEndpoint string        `mapstructure:"token_endpoint"`
	Timeout       time.Duration `mapstructure:"timeout"`
}

// Storage is the blob store documents upload to.
type Storage struct {
	Bucket   string `mapstructure:"bucket"`
	Endpoint string `mapstructure:"endpoint"`
}

// Cache is the persisted local key-value store. Path backs the single-user
// file store; RedisURL switches shared-kiosk deployments to Redis.
type Cache struct {
	Path     string      `mapstructure:"path"`
	RedisURL string      `mapstructure:"redis_url"`
	Redis    RedisConfig `mapstructure:"redis"`
}

// RedisConfig tunes the Redis cache backend. Only read when RedisURL is set.
type RedisConfig struct {
	PoolSize     int           `mapstructure:"pool_size"`
	MinIdleConns int           `mapstructure:"min_idle_conns"`
	DialTimeout  time.Duration `mapstructure:"dial_timeout"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
}

// Events configures the operation-trail publisher. No brokers means the trail
// is off.
type Events struct {
	Brokers []string `mapstructure:"brokers"`
	Topic   string   `mapstructure:"topic"`
}

// Metrics is the /metrics listener used by watch mode.
type Metrics struct {
	Addr string `mapstructure:"addr"`
}

// Watch tunes the passbook watcher.
type Watch struct {
	Interval time.Duration `mapstructure:"interval"`
}

// Dev holds local-development shortcuts. A set UserID makes the client mint
// its own tokens instead of exchanging the stored session token.
type Dev struct {
	SigningKey string `mapstructure:"signing_key"`
	UserID     string `mapstructure:"user_id"`
}

// Load reads renalize.yaml from dir (falling back to the working directory
// and ~/.renalize) and overlays RENALIZE_* environment variables. A missing
// config file is fine; the defaults stand.
func Load(dir string) (Config, error) {
	v := viper.New()
	v.SetConfigName("renalize")
	v.SetConfigType("yaml")
	if dir != "" {
		v.AddConfigPath(dir)
	}
	v.AddConfigPath(".")
	v.AddConfigPath("$HOME/.renalize")

	v.SetEnvPrefix("RENALIZE")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("backend.base_url", "http://localhost:8000")
	v.SetDefault("backend.token_endpoint", "http://localhost:9099/token")
	v.SetDefault("backend.timeout", time.Minute)

	v.SetDefault("storage.bucket", "renalize-docs")
	v.SetDefault("storage.endpoint", "https://firebasestorage.googleapis.com")

	v.SetDefault("cache.path", "")
	v.SetDefault("cache.redis.pool_size", 10)
	v.SetDefault("cache.redis.min_idle_conns", 2)
	v.SetDefault("cache.redis.dial_timeout", 5*time.Second)
	v.SetDefault("cache.redis.read_timeout", 3*time.Second)
	v.SetDefault("cache.redis.write_timeout", 3*time.Second)

	v.SetDefault("events.topic", "renalize.client.operations")

	v.SetDefault("metrics.addr", ":9464")

	v.SetDefault("watch.interval", 30*time.Second)

	v.SetDefault("dev.signing_key", "dev-secret-change-me")
	v.SetDefault("dev.user_id", "")
}
