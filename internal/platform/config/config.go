package config

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

// Config agrupa toda la configuración del proceso (env vars).
type Config struct {
	Port     string `env:"PORT, default=8080"`
	Env      string `env:"ENV, default=production"`
	AppName  string `env:"APP_NAME, default=pet-wellness-web"`
	LogLevel string `env:"LOG_LEVEL, default=info"`
	// text|json
	LogFormat string `env:"LOG_FORMAT, default=text"`

	Backend BackendConfig
	Session SessionConfig

	Postgres PostgresConfig
	Redis    RedisConfig
}

type BackendConfig struct {
	URL     string        `env:"BACKEND_URL, default=https://vercel-backend-eta-five.vercel.app/api"`
	Timeout time.Duration `env:"BACKEND_TIMEOUT, default=10s"`
}

type SessionConfig struct {
	// memory | redis | postgres
	Store  string        `env:"SESSION_STORE, default=memory"`
	Secret string        `env:"SESSION_SECRET"`
	TTL    time.Duration `env:"SESSION_TTL, default=720h"`
	Secure bool          `env:"COOKIE_SECURE, default=false"`
}

type PostgresConfig struct {
	DSN string `env:"DB_DSN"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB, default=0"`
}

const (
	StoreMemory   = "memory"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Load lee .env (solo en dev) y luego el entorno.
func Load(ctx context.Context) (*Config, error) {
	if env := strings.ToLower(os.Getenv("ENV")); env == "dev" || env == "development" {
		_ = godotenv.Load()
	}
	return LoadWith(ctx, envconfig.OsLookuper())
}

// LoadWith permite inyectar un Lookuper (tests).
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) IsDev() bool {
	e := strings.ToLower(strings.TrimSpace(c.Env))
	return e == "dev" || e == "development"
}

func (c *Config) validate() error {
	switch c.Session.Store {
	case StoreMemory:
	case StoreRedis:
		if strings.TrimSpace(c.Redis.Addr) == "" {
			return fmt.Errorf("config: REDIS_ADDR is required for SESSION_STORE=redis")
		}
	case StorePostgres:
		if strings.TrimSpace(c.Postgres.DSN) == "" {
			return fmt.Errorf("config: DB_DSN is required for SESSION_STORE=postgres")
		}
	default:
		return fmt.Errorf("config: unknown SESSION_STORE %q", c.Session.Store)
	}

	// Solo con ENV=dev|development explícito se tolera un secreto fijo.
	if strings.TrimSpace(c.Session.Secret) == "" {
		if !c.IsDev() {
			return fmt.Errorf("config: SESSION_SECRET is required outside development")
		}
		c.Session.Secret = "dev-session-secret"
	}
	return nil
}
