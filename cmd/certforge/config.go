package main

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/dmitrymomot/certforge/pkg/logger"
	"github.com/dmitrymomot/certforge/pkg/storage"
)

// Config is the process configuration, read from the environment.
type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"text"`

	// AssetsDir resolves relative image paths. Empty means the directory of
	// the layout file.
	AssetsDir      string `env:"CERTFORGE_ASSETS_DIR"`
	AssetCacheSize int    `env:"CERTFORGE_ASSET_CACHE_SIZE" envDefault:"32"`
	MaxAssetSize   int64  `env:"CERTFORGE_MAX_ASSET_SIZE" envDefault:"33554432"`

	Storage storage.Config
	Sentry  logger.SentryConfig
}

// loadConfig loads the given .env files, skipping missing ones, and parses
// the environment into a Config. Variables already set in the environment
// win over .env values.
func loadConfig(envFiles ...string) (Config, error) {
	for _, f := range envFiles {
		if f == "" {
			continue
		}
		if err := godotenv.Load(f); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	if cfg.AssetCacheSize < 0 {
		return Config{}, fmt.Errorf("CERTFORGE_ASSET_CACHE_SIZE must not be negative, got %d", cfg.AssetCacheSize)
	}
	if cfg.MaxAssetSize <= 0 {
		return Config{}, fmt.Errorf("CERTFORGE_MAX_ASSET_SIZE must be positive, got %d", cfg.MaxAssetSize)
	}
	return cfg, nil
}

// newLogger builds the process logger writing to w, with Sentry when a DSN
// is configured.
func (c Config) newLogger(w io.Writer) *slog.Logger {
	return logger.NewWithSentry(c.Sentry,
		logger.WithOutput(w),
		logger.WithFormat(logger.Format(c.LogFormat)),
		logger.WithLevel(logger.ParseLevel(c.LogLevel)),
		logger.WithExtractors(logger.RunIDExtractor),
	)
}
