package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// Load builds a Config by layering defaults, optional file, and env vars.
// Order of precedence (low -> high):
//  1. defaults (New())
//  2. file (YAML) if HACKVENTO_CONFIG is set
//  3. env (prefix HACKVENTO_)
func Load(ctx context.Context) (*Config, error) {
	base := New()

	k := koanf.New(".")

	if path := os.Getenv("HACKVENTO_CONFIG"); path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
		}
	}

	// Environment variables: HACKVENTO_ADDR, HACKVENTO_STORE_BACKEND, ...
	// Keys map flat: HACKVENTO_STORE_BACKEND -> store_backend, matching the
	// koanf tags on the struct.
	envProvider := env.Provider("HACKVENTO_", ".", func(s string) string {
		s = strings.ToLower(s)
		return strings.TrimPrefix(s, "hackvento_")
	})
	if err := k.Load(envProvider, nil); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	cfg := *base
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrLoadConfig, err)
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch {
	case c.Addr == "":
		return fmt.Errorf("%w: addr must not be empty", ErrInvalidConfig)
	case c.StoreBackend != BackendFile && c.StoreBackend != BackendPostgres:
		return fmt.Errorf("%w: unknown store_backend %q", ErrInvalidConfig, c.StoreBackend)
	case c.StoreBackend == BackendFile && c.ScoreFile == "":
		return fmt.Errorf("%w: score_file must not be empty", ErrInvalidConfig)
	case c.StoreBackend == BackendPostgres && c.PostgresDSN == "":
		return fmt.Errorf("%w: postgres_dsn required for postgres backend", ErrInvalidConfig)
	case c.SessionSecret == "":
		return fmt.Errorf("%w: session_secret must be set", ErrInvalidConfig)
	case c.AdminKey == "":
		return fmt.Errorf("%w: admin_key must be set", ErrInvalidConfig)
	case c.SessionTTLMinutes <= 0:
		return fmt.Errorf("%w: session_ttl_minutes must be positive", ErrInvalidConfig)
	}
	return nil
}
