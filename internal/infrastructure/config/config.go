package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"
)

// Config is the process-wide configuration, loaded once at startup and
// passed by reference to the components that need it.
type Config struct {
	Port     string `env:"PORT,     default=8080"`
	Env      string `env:"ENV,      default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// CORSOrigins is the comma-separated list of origins allowed to call
	// the API from a browser.
	CORSOrigins []string `env:"CORS_ORIGINS, default=http://localhost:3000,http://localhost:3001"`

	Auth  AuthConfig
	MySQL MySQLConfig
	Redis RedisConfig
}

// AuthConfig holds the token signing configuration. The process refuses to
// start without a secret.
type AuthConfig struct {
	SecretKey string `env:"AUTH_SECRET_KEY, required"`
	Algorithm string `env:"AUTH_ALGORITHM,  default=HS256"`
}

type MySQLConfig struct {
	// DSN in go-sql-driver format, e.g.
	// user:pass@tcp(localhost:3306)/blog?charset=utf8mb4&parseTime=True
	DSN string `env:"DATABASE_URL, required"`
}

// RedisConfig configures the rate-limit store. Rate limiting is disabled
// when Addr is empty.
type RedisConfig struct {
	Addr string `env:"REDIS_ADDR"`
	DB   int    `env:"REDIS_DB, default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
