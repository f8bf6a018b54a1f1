package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

const EnvProduction = "production"

type Config struct {
	AppEnv  string `env:"APP_ENV" default:"development"`
	AppName string `env:"APP_NAME" default:"dairy-records"`
	Port    string `env:"PORT" default:"8080"`

	// Vacío => storage in-memory.
	DBDSN string `env:"DB_DSN"`

	LogLevel  string `env:"LOG_LEVEL" default:"info"`
	LogFormat string `env:"LOG_FORMAT" default:"text"`

	AuthBaseURL string        `env:"AUTH_BASE_URL"`
	AuthAPIKey  string        `env:"AUTH_API_KEY"`
	AuthTimeout time.Duration `env:"AUTH_TIMEOUT" default:"5s"`

	CurrencySymbol string `env:"CURRENCY_SYMBOL" default:"$"`

	ReadTimeout     time.Duration `env:"READ_TIMEOUT" default:"5s"`
	WriteTimeout    time.Duration `env:"WRITE_TIMEOUT" default:"30s"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" default:"10s"`
}

// Load lee .env (si existe) y luego el entorno.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Addr() string {
	return ":" + strings.TrimPrefix(c.Port, ":")
}

func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.AppEnv, EnvProduction)
}

func validate(cfg *Config) error {
	if strings.TrimSpace(cfg.Port) == "" {
		return errors.New("PORT is required")
	}
	if cfg.AuthBaseURL != "" && cfg.AuthAPIKey == "" {
		return errors.New("AUTH_API_KEY is required when AUTH_BASE_URL is set")
	}
	if cfg.IsProduction() {
		required := map[string]string{
			"AUTH_BASE_URL": cfg.AuthBaseURL,
			"DB_DSN":        cfg.DBDSN,
		}
		for name, value := range required {
			if strings.TrimSpace(value) == "" {
				return fmt.Errorf("%s is required in production", name)
			}
		}
	}
	if cfg.AuthTimeout <= 0 || cfg.ReadTimeout <= 0 || cfg.WriteTimeout <= 0 {
		return errors.New("timeouts must be positive")
	}
	return nil
}
