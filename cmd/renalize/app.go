package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"renalize/internal/blobstore"
	"renalize/internal/cache"
	"renalize/internal/claims"
	"renalize/internal/gateway"
	"renalize/internal/hospitals"
	"renalize/internal/kyc"
	"renalize/internal/passbook"
	"renalize/internal/patient"
	"renalize/internal/platform/config"
	"renalize/internal/platform/logger"
	"renalize/internal/platform/metrics"
	platformredis "renalize/internal/platform/redis"
	"renalize/internal/session"
	"renalize/internal/token"
	"renalize/pkg/platform/events"
)

// app wires every service from one loaded config. Commands build it in their
// RunE and defer Close.
type app struct {
	cfg     config.Config
	logger  *slog.Logger
	store   cache.Store
	tokens  token.Source
	gateway gateway.Gateway
	metrics *metrics.Metrics
	events  events.Publisher

	redis *platformredis.Client
}

func newApp(cmd *cobra.Command) (*app, error) {
	configDir, _ := cmd.Flags().GetString("config")
	verbose, _ := cmd.Flags().GetBool("verbose")

	cfg, err := config.Load(configDir)
	if err != nil {
		return nil, err
	}

	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	log := logger.New(level)
	slog.SetDefault(log)

	a := &app{cfg: cfg, logger: log}

	if err := a.initStore(); err != nil {
		return nil, err
	}
	a.initTokens()
	a.initEvents(cmd.Context())

	a.metrics = metrics.New()
	a.gateway = gateway.NewClient(cfg.Backend.BaseURL, a.tokens,
		gateway.WithLogger(log),
		gateway.WithMetrics(a.metrics.Gateway),
		gateway.WithTimeout(cfg.Backend.Timeout),
	)
	return a, nil
}

// unlock checks the --passcode flag against the stored hash. Commands that
// read or write cached PII call this before touching the store; when no
// passcode was ever set it is a no-op.
func (a *app) unlock(cmd *cobra.Command) error {
	passcode, _ := cmd.Flags().GetString("passcode")
	return cache.VerifyPasscode(cmd.Context(), a.store, passcode)
}

func (a *app) initStore() error {
	if a.cfg.Cache.RedisURL != "" {
		client, err := platformredis.New(a.cfg.Cache.RedisURL, a.cfg.Cache.Redis)
		if err != nil {
			return fmt.Errorf("connect cache redis: %w", err)
		}
		a.redis = client
		a.store = cache.NewRedis(client.Client)
		return nil
	}

	path := a.cfg.Cache.Path
	if path == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return err
		}
		path = filepath.Join(home, ".renalize", "cache.json")
	}
	store, err := cache.NewFile(path)
	if err != nil {
		return fmt.Errorf("open cache file: %w", err)
	}
	a.store = store
	return nil
}

func (a *app) initTokens() {
	if uid := a.cfg.Dev.UserID; uid != "" {
		a.tokens = token.NewSigner(a.cfg.Dev.SigningKey, "renalize-dev", "renalize-api", uid)
		return
	}
	a.tokens = token.NewExchange(a.cfg.Backend.TokenEndpoint, a.store)
}

func (a *app) initEvents(ctx context.Context) {
	if len(a.cfg.Events.Brokers) == 0 {
		a.events = events.NoopPublisher{}
		return
	}
	publisher, err := events.NewKafkaPublisher(ctx, a.cfg.Events.Brokers, a.cfg.Events.Topic)
	if err != nil {
		// The trail is fail-open; a broker outage never blocks the user.
		a.logger.Warn("event publisher unavailable", "error", err)
		a.events = events.NoopPublisher{}
		return
	}
	a.events = publisher
}

func (a *app) Close() {
	a.events.Close()
	if a.redis != nil {
		_ = a.redis.Close()
	}
}

func (a *app) uploader() blobstore.Uploader {
	return blobstore.NewFirebase(a.cfg.Storage.Bucket, a.tokens,
		blobstore.WithEndpoint(a.cfg.Storage.Endpoint),
		blobstore.WithTimeout(a.cfg.Backend.Timeout),
	)
}

func (a *app) sessionService() *session.Service {
	return session.New(a.store,
		session.WithLogger(a.logger),
		session.WithEventPublisher(a.events),
	)
}

func (a *app) kycService() *kyc.Service {
	return kyc.New(a.uploader(), a.gateway, a.store, a.tokens,
		kyc.WithLogger(a.logger),
		kyc.WithMetrics(a.metrics.KYC),
		kyc.WithEventPublisher(a.events),
	)
}

func (a *app) claimsService() *claims.Service {
	return claims.New(a.uploader(), a.gateway, a.tokens,
		claims.WithLogger(a.logger),
		claims.WithMetrics(a.metrics.Claims),
		claims.WithEventPublisher(a.events),
	)
}

func (a *app) patientService() *patient.Service {
	return patient.New(a.gateway, a.store, a.tokens,
		patient.WithLogger(a.logger),
		patient.WithEventPublisher(a.events),
	)
}

func (a *app) passbookService() *passbook.Service {
	return passbook.New(a.gateway,
		passbook.WithLogger(a.logger),
		passbook.WithMetrics(a.metrics.Passbook),
	)
}

func (a *app) hospitalsService() *hospitals.Service {
	return hospitals.New(a.gateway, hospitals.WithLogger(a.logger))
}
