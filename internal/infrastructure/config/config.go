package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is a semicolon-separated allow-list. Empty means
	// allow-any, which is only acceptable in development.
	CORSOrigins []string `env:"CORS_ALLOWED_ORIGINS, delimiter=;"`

	JWT       JWTConfig
	Auth      AuthConfig
	Mongo     MongoConfig
	Redis     RedisConfig
	RateLimit RateLimitConfig
}

// JWTConfig is the token signing surface. Secret, issuer and audience are
// required; their absence is a fatal startup error (re-checked by the
// issuer at first use as well).
type JWTConfig struct {
	Secret        string `env:"JWT_SECRET"`
	Issuer        string `env:"JWT_ISSUER"`
	Audience      string `env:"JWT_AUDIENCE"`
	ExpireMinutes int    `env:"JWT_TOKEN_EXPIRE_MINUTES, default=180"`
}

type AuthConfig struct {
	// HashScheme selects the password digest: "md5" (legacy-compatible
	// default) or "bcrypt" for fresh deployments.
	HashScheme string `env:"AUTH_HASH_SCHEME, default=md5"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=echart_dentnu"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// RateLimitConfig holds the fixed-window admission policies per endpoint
// class. Limits are requests per window, keyed by client IP.
type RateLimitConfig struct {
	ReadLimit     int `env:"RATE_READ_LIMIT,     default=100"`
	WriteLimit    int `env:"RATE_WRITE_LIMIT,    default=30"`
	LoginLimit    int `env:"RATE_LOGIN_LIMIT,    default=5"`
	WindowSeconds int `env:"RATE_WINDOW_SECONDS, default=60"`
}

// Load reads configuration from environment variables using go-envconfig
// and fails fast on missing required values.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWT.Secret == "" || cfg.JWT.Issuer == "" || cfg.JWT.Audience == "" {
		return nil, fmt.Errorf("config: JWT_SECRET, JWT_ISSUER and JWT_AUDIENCE must be set")
	}
	return &cfg, nil
}

// IsDevelopment reports whether the service runs in its development profile.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}
