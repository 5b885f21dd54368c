package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Auth backend selection. A deployment uses exactly one verification
// strategy; mixing them per-request is not supported.
const (
	AuthBackendHMAC     = "hmac"
	AuthBackendIdentity = "identity"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Auth    AuthConfig
	Catalog CatalogConfig
	CORS    CORSConfig
	Mongo   MongoConfig
	Redis   RedisConfig
}

type AuthConfig struct {
	Backend     string        `env:"AUTH_BACKEND, default=hmac"`
	JWTSecret   string        `env:"JWT_SECRET"`
	TokenTTL    time.Duration `env:"TOKEN_TTL, default=24h"`
	IdentityURL string        `env:"IDENTITY_URL"`
	IdentityKey string        `env:"IDENTITY_SERVICE_KEY"`
}

type CatalogConfig struct {
	// File optionally points at a YAML catalog definition replacing the
	// built-in tracks.
	File string `env:"CATALOG_FILE"`
}

type CORSConfig struct {
	Origins []string `env:"CORS_ORIGINS, default=*"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=members"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig and
// validates backend-specific requirements.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	switch cfg.Auth.Backend {
	case AuthBackendHMAC:
		if cfg.Auth.JWTSecret == "" {
			return nil, fmt.Errorf("config: JWT_SECRET is required for the hmac auth backend")
		}
	case AuthBackendIdentity:
		if cfg.Auth.IdentityURL == "" || cfg.Auth.IdentityKey == "" {
			return nil, fmt.Errorf("config: IDENTITY_URL and IDENTITY_SERVICE_KEY are required for the identity auth backend")
		}
	default:
		return nil, fmt.Errorf("config: unknown auth backend %q", cfg.Auth.Backend)
	}

	return &cfg, nil
}
