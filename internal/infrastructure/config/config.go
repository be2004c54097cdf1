package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	Session SessionConfig
	Backend BackendConfig
	Market  MarketConfig
	Mongo   MongoConfig
	Redis   RedisConfig
	Audit   AuditConfig
}

// SessionConfig drives the browser-profile cookie, the credential store and
// the access gates.
type SessionConfig struct {
	Secret         string        `env:"SESSION_SECRET, required"`
	LoginPath      string        `env:"LOGIN_PATH,      default=/login"`
	SecureCookies  bool          `env:"SECURE_COOKIES,  default=false"`
	CredentialsTTL time.Duration `env:"CREDENTIALS_TTL, default=24h"`
	GateTimeout    time.Duration `env:"GATE_TIMEOUT,    default=10s"`
}

type BackendConfig struct {
	APIURL            string        `env:"BACKEND_API_URL,    default=http://localhost:8000/api/v1"`
	AuthURL           string        `env:"BACKEND_AUTH_URL,   default=http://localhost:8000/api/v1/auth"`
	Timeout           time.Duration `env:"BACKEND_TIMEOUT,    default=15s"`
	ValidationTimeout time.Duration `env:"VALIDATION_TIMEOUT, default=5s"`
}

type MarketConfig struct {
	PriceURL    string        `env:"PRICE_API_URL,    default=https://api.coinbase.com/v2"`
	ExchangeURL string        `env:"EXCHANGE_API_URL, default=https://api.exchange.coinbase.com"`
	Timeout     time.Duration `env:"PRICE_TIMEOUT,    default=5s"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=wallet_dashboard"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR,     default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,       default=0"`
}

type AuditConfig struct {
	Workers   int           `env:"AUDIT_WORKERS,   default=4"`
	Retention time.Duration `env:"AUDIT_RETENTION, default=720h"`
}

// IsDevelopment reports whether human-friendly logging should be used.
func (c *Config) IsDevelopment() bool {
	return c.Env == "development"
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	cfg, err := LoadWith(context.Background(), envconfig.OsLookuper())
	if err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return cfg
}

// LoadWith resolves the configuration from an arbitrary lookuper.
func LoadWith(ctx context.Context, l envconfig.Lookuper) (*Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return nil, err
	}
	if cfg.Session.GateTimeout < cfg.Backend.ValidationTimeout {
		return nil, fmt.Errorf("GATE_TIMEOUT (%s) must not be shorter than VALIDATION_TIMEOUT (%s)",
			cfg.Session.GateTimeout, cfg.Backend.ValidationTimeout)
	}
	return &cfg, nil
}
