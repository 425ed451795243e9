package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	HTTPAddr string `env:"JANUS_HTTP_ADDR" envDefault:":8080"`

	Env    string `env:"JANUS_ENV" envDefault:"dev"` // "dev" | "prod"
	DBPath string `env:"JANUS_DB_PATH" envDefault:"./data/janus.db"`

	TokenSecret string        `env:"JANUS_TOKEN_SECRET"`
	TokenTTL    time.Duration `env:"JANUS_TOKEN_TTL" envDefault:"1h"`
}

// devSecret keeps local development working without exported secrets.
// Load refuses to fall back to it outside dev.
const devSecret = "janus-dev-secret"

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Env = strings.ToLower(cfg.Env)
	if cfg.Env != "dev" && cfg.Env != "prod" {
		// fail-soft: treat unknown as dev
		cfg.Env = "dev"
	}

	if cfg.TokenSecret == "" {
		if cfg.Env == "prod" {
			return Config{}, fmt.Errorf("JANUS_TOKEN_SECRET is required when JANUS_ENV=prod")
		}
		cfg.TokenSecret = devSecret
	}

	return cfg, nil
}
