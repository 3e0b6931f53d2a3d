package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/goliatone/go-errors"
	"github.com/joho/godotenv"
)

// DefaultSessionTTL is how long issued session tokens and their cookies
// stay valid.
const DefaultSessionTTL = 14 * 24 * time.Hour

// Config holds process-wide settings, read once at startup and treated as
// immutable afterwards. The signing key is injected into the token codec
// from here; nothing reads the environment at request time.
type Config struct {
	Port        string
	DatabaseDSN string
	SigningKey  string
	SessionTTL  time.Duration
	Environment string
}

// Load reads configuration from the environment, optionally seeded from a
// .env file. A missing signing key is a fatal configuration error, not a
// request error: Load fails and the process should exit.
func Load() (*Config, error) {
	loadEnvFile()

	ttl, err := getEnvAsDuration("SESSION_TTL", DefaultSessionTTL)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnv("PORT", "3000"),
		DatabaseDSN: getEnv("DATABASE_DSN", "file:ticklist.db?cache=shared&mode=rwc"),
		SigningKey:  getEnv("JWT_SECRET_KEY", ""),
		SessionTTL:  ttl,
		Environment: getEnv("APP_ENV", "development"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks the settings no deployment can run without.
func (c *Config) Validate() error {
	if c.SigningKey == "" {
		return errors.New("JWT_SECRET_KEY is not defined", errors.CategoryBadInput)
	}

	if c.SessionTTL <= 0 {
		return errors.New("SESSION_TTL must be positive", errors.CategoryBadInput)
	}

	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + c.Port
}

func loadEnvFile() {
	if err := godotenv.Load(".env"); err == nil {
		return
	}

	cwd, err := os.Getwd()
	if err != nil {
		return
	}

	parent := filepath.Dir(cwd)
	if parent == "" || parent == cwd {
		return
	}

	_ = godotenv.Load(filepath.Join(parent, ".env"))
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvAsDuration(key string, defaultValue time.Duration) (time.Duration, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue, nil
	}
	value, err := time.ParseDuration(raw)
	if err != nil {
		return 0, errors.Wrap(err, errors.CategoryBadInput, key+" is not a valid duration")
	}
	return value, nil
}
