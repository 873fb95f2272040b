package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"

	"diecast/internal/registry"
	"diecast/internal/service"
)

// openRegistry builds the registry adapter selected by configuration.
// SQLite is the default so the tool works offline out of the box.
func openRegistry(ctx context.Context) (service.Registry, error) {
	backend := viper.GetString("registry.backend")

	switch backend {
	case "sqlite", "":
		dbPath := viper.GetString("registry.sqlite.path")
		if dbPath == "" {
			home, err := os.UserHomeDir()
			if err != nil {
				return nil, fmt.Errorf("failed to get home directory: %w", err)
			}
			dbPath = filepath.Join(home, ".local", "share", "diecast", "registry.db")
		}
		store, err := registry.NewSQLite(dbPath)
		if err != nil {
			return nil, fmt.Errorf("failed to open local registry: %w", err)
		}
		if err := store.Migrate(ctx); err != nil {
			_ = store.Close()
			return nil, err
		}
		return store, nil

	case "http":
		baseURL := viper.GetString("registry.http.url")
		if baseURL == "" {
			return nil, fmt.Errorf("registry.http.url is required for the http backend")
		}
		return registry.NewHTTP(registry.ClientOpts{
			BaseURL: baseURL,
			Auth:    viper.GetString("registry.http.auth"),
		}), nil

	case "memory":
		return registry.NewMemory(), nil

	default:
		return nil, fmt.Errorf("unknown registry backend: %s", backend)
	}
}
