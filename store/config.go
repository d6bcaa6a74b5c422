package store

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config holds Cloud Datastore connection settings.
type Config struct {
	// ProjectID is the Google Cloud project to query. Required.
	ProjectID string `env:"DATASTORE_PROJECT_ID"`

	// DatabaseID selects a named database within the project. Empty means
	// the default database.
	DatabaseID string `env:"DATASTORE_DATABASE_ID"`

	// Namespace scopes queries to a Datastore namespace. Empty means the
	// default namespace.
	Namespace string `env:"DATASTORE_NAMESPACE"`

	// EmulatorHost, when set, points the client at a local emulator
	// (host:port) instead of the live service. Credentials are skipped.
	EmulatorHost string `env:"DATASTORE_EMULATOR_HOST"`
}

// LoadConfig reads configuration from environment variables.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse datastore config: %w", err)
	}
	return cfg, nil
}

// Validate checks that all required configuration values are present.
func (c Config) Validate() error {
	if c.ProjectID == "" {
		return errors.New("DATASTORE_PROJECT_ID is required")
	}
	return nil
}
