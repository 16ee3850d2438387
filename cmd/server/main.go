package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/quizhost/quizhost/internal/api"
	"github.com/quizhost/quizhost/internal/factory"
	"github.com/quizhost/quizhost/internal/services/auth"
	redisstorage "github.com/quizhost/quizhost/internal/storage/redis"
)

// Specification is the server's environment configuration, under the
// QUIZHOST_ prefix
type Specification struct {
	Host string `default:"0.0.0.0"`
	Port int    `default:"8080"`

	Storage  string `default:"memory"`
	RedisURL string `envconfig:"REDIS_URL" default:"redis://localhost:6379/0"`
	BoltPath string `envconfig:"BOLT_PATH" default:"quizhost.db"`

	SessionDuration time.Duration `envconfig:"SESSION_DURATION" default:"24h"`

	// PackFiles are YAML question packs loaded into the catalog at boot
	PackFiles []string `envconfig:"PACK_FILES"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

func main() {
	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	var spec Specification
	if err := envconfig.Process("quizhost", &spec); err != nil {
		slog.Error("failed to process configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger := newLogger(spec.LogLevel)

	redisCfg := redisstorage.DefaultConfig()
	redisCfg.URL = spec.RedisURL

	app, err := factory.NewApp(factory.Config{
		StorageType: spec.Storage,
		RedisConfig: redisCfg,
		BoltPath:    spec.BoltPath,
		AuthConfig:  auth.Config{SessionDuration: spec.SessionDuration},
		Logger:      logger,
	})
	if err != nil {
		logger.Error("failed to build application", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer func() {
		if err := app.Close(); err != nil {
			logger.Error("failed to close storage", slog.String("error", err.Error()))
		}
	}()

	ctx := context.Background()
	for _, path := range spec.PackFiles {
		if _, err := app.CatalogService.LoadFromFile(ctx, path); err != nil {
			logger.Error("failed to load question pack",
				slog.String("path", path),
				slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	serverCfg := api.DefaultServerConfig()
	serverCfg.Host = spec.Host
	serverCfg.Port = spec.Port

	server := api.NewServer(serverCfg, app.Router(), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Start()
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil {
			logger.Error("server failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	case sig := <-sigCh:
		logger.Info("received signal", slog.String("signal", sig.String()))
		if err := server.Shutdown(ctx); err != nil {
			logger.Error("shutdown failed", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	logger.Info("server stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: lvl,
	}))
}
