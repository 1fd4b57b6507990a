package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=3000"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret enables signature verification of the backend-issued
	// bearer token. When empty only the expiry claim is inspected.
	JWTSecret string `env:"JWT_SECRET"`

	// AdminURL is where ADMIN identities are redirected; the admin portal
	// is a separate application.
	AdminURL string `env:"ADMIN_URL, default=/admin"`

	Backend BackendConfig
	Session SessionConfig
	Redis   RedisConfig

	// RegistrationTTL bounds how long a requested verification code stays
	// redeemable on our side before the attempt is treated as abandoned.
	RegistrationTTL time.Duration `env:"REGISTRATION_TTL, default=15m"`

	// CatalogCacheTTL bounds catalog staleness.
	CatalogCacheTTL time.Duration `env:"CATALOG_CACHE_TTL, default=5m"`
}

type BackendConfig struct {
	BaseURL string        `env:"BACKEND_BASE_URL, default=http://localhost:8080"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT,  default=10s"`
}

type SessionConfig struct {
	TTL    time.Duration `env:"SESSION_TTL,    default=168h"`
	Secure bool          `env:"COOKIE_SECURE,  default=false"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
