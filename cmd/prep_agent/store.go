package main

import (
	"context"
	"fmt"
	"os"

	"github.com/iamkaran-ai/kodnest-premium-app/internal/config"
	"github.com/iamkaran-ai/kodnest-premium-app/internal/history"
)

var (
	configPath string
	storePath  string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to JSON config file")
	rootCmd.PersistentFlags().StringVar(&storePath, "store", "", "Path to the file-backed history store")
}

// loadConfig merges the optional config file with flag and environment
// defaults.
func loadConfig() (config.Config, error) {
	cfg := config.Config{}
	if configPath != "" {
		loaded, err := config.LoadConfig(configPath)
		if err != nil {
			return cfg, err
		}
		cfg = *loaded
	}

	cfg = cfg.MergeWithDefaults(config.Config{
		StorePath:   config.DefaultStorePath(),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		Port:        8080,
	})
	if storePath != "" {
		cfg.StorePath = storePath
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// openStore opens the history store: PostgreSQL when DATABASE_URL is
// configured, a JSON file otherwise. The returned closer releases the
// backend and may be nil-safe invoked once.
func openStore(ctx context.Context, cfg config.Config) (*history.Store, func(), error) {
	if cfg.DatabaseURL != "" {
		kv, err := history.ConnectPostgres(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open postgres store: %w", err)
		}
		return history.NewStore(kv), kv.Close, nil
	}

	kv, err := history.NewFileKV(cfg.StorePath)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open file store: %w", err)
	}
	return history.NewStore(kv), func() {}, nil
}
