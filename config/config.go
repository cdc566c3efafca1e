package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Store drivers.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

// Config holds the process configuration.
type Config struct {
	Port        string `env:"PORT" envDefault:"3000"`
	BindAddress string `env:"BIND_ADDRESS" envDefault:"127.0.0.1"`

	StoreDriver string `env:"STORE_DRIVER" envDefault:"sqlite"`
	SQLitePath  string `env:"SQLITE_PATH" envDefault:"prospera.db"`
	DatabaseURL string `env:"DATABASE_URL"`

	GeminiAPIKey  string        `env:"GEMINI_API_KEY"`
	APIKey        string        `env:"API_KEY"`
	AdviceModel   string        `env:"ADVICE_MODEL" envDefault:"gemini-3-flash-preview"`
	AdviceTimeout time.Duration `env:"ADVICE_TIMEOUT" envDefault:"10s"`
}

// Load reads an optional .env file and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file loaded, continuing with system environment variables")
	}
	return Parse()
}

// Parse reads the configuration from the environment only.
func Parse() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	switch c.StoreDriver {
	case DriverSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("SQLITE_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres driver")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("unknown STORE_DRIVER %q", c.StoreDriver)
	}
	if c.AdviceTimeout <= 0 {
		return fmt.Errorf("ADVICE_TIMEOUT must be positive")
	}
	return nil
}

// AdviceKey returns the advice credential, preferring GEMINI_API_KEY.
func (c Config) AdviceKey() string {
	if c.GeminiAPIKey != "" {
		return c.GeminiAPIKey
	}
	return c.APIKey
}

// ListenAddr is the bridge listen address.
func (c Config) ListenAddr() string {
	return c.BindAddress + ":" + c.Port
}
