package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Client holds configuration for the portal CLI and the API gateway.
type Client struct {
	// BaseURL is the origin of the job-portal backend. Paths passed to the
	// gateway are appended to it verbatim.
	BaseURL string        `env:"PORTAL_API_URL, default=https://api.jobhive.app"`
	Timeout time.Duration `env:"PORTAL_TIMEOUT, default=30s"`

	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Redis   RedisConfig
}

// SessionConfig selects and parameterises the durable session storage.
type SessionConfig struct {
	// Backend is one of: file, redis, memory.
	Backend string `env:"SESSION_BACKEND, default=file"`
	// Dir is the directory holding the session file. Defaults to
	// ~/.jobhive when empty.
	Dir string `env:"SESSION_DIR"`
	// Key is an optional hex-encoded 32-byte key enabling at-rest
	// encryption of the session file.
	Key string `env:"SESSION_KEY"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Mock holds configuration for the portal-mock development backend.
type Mock struct {
	Port      string        `env:"PORT,       default=8000"`
	JWTSecret string        `env:"JWT_SECRET, default=dev-only-secret"`
	TokenTTL  time.Duration `env:"TOKEN_TTL,  default=24h"`
	LogLevel  string        `env:"LOG_LEVEL,  default=info"`
}

// LoadClient reads the CLI configuration from environment variables.
func LoadClient(ctx context.Context) (*Client, error) {
	var cfg Client
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// LoadMock reads the mock-backend configuration from environment variables.
func LoadMock(ctx context.Context) (*Mock, error) {
	var cfg Mock
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
