package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,       default=8080"`
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	StaticDir string `env:"STATIC_DIR, default=web/static"`

	Mongo   MongoConfig
	Redis   RedisConfig
	Session SessionConfig
	Seed    SeedConfig
}

type MongoConfig struct {
	URI      string        `env:"MONGO_URI,     default=mongodb://localhost:27017"`
	Database string        `env:"MONGO_DB,      default=coffeeshop"`
	Timeout  time.Duration `env:"MONGO_TIMEOUT, default=10s"`
}

type RedisConfig struct {
	Addr    string        `env:"REDIS_ADDR,    default=localhost:6379"`
	DB      int           `env:"REDIS_DB,      default=0"`
	Timeout time.Duration `env:"REDIS_TIMEOUT, default=5s"`
}

type SessionConfig struct {
	TTL        time.Duration `env:"SESSION_TTL,          default=30m"`
	CookieName string        `env:"SESSION_COOKIE_NAME,  default=coffeeshop_session"`
	// MaxPerUser is advisory: logins above the cap are logged, not blocked.
	MaxPerUser int64 `env:"SESSION_MAX_PER_USER, default=1"`
}

// SeedConfig carries the default account credentials. The defaults exist
// for local development; deployments must override the passwords.
type SeedConfig struct {
	AdminUsername string `env:"SEED_ADMIN_USERNAME, default=admin"`
	AdminPassword string `env:"SEED_ADMIN_PASSWORD, default=admin123"`
	StaffUsername string `env:"SEED_STAFF_USERNAME, default=staff"`
	StaffPassword string `env:"SEED_STAFF_PASSWORD, default=staff123"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
