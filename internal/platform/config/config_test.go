package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	unsetEnv(t, "APP_ENV", "PORT", "DB_DSN", "AUTH_BASE_URL", "AUTH_API_KEY", "CURRENCY_SYMBOL", "AUTH_TIMEOUT", "WRITE_TIMEOUT")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "development", cfg.AppEnv)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "$", cfg.CurrencySymbol)
	assert.Equal(t, 5*time.Second, cfg.AuthTimeout)
	assert.Equal(t, 30*time.Second, cfg.WriteTimeout)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_Overrides(t *testing.T) {
	unsetEnv(t, "APP_ENV", "AUTH_BASE_URL", "AUTH_API_KEY")
	t.Setenv("PORT", "9090")
	t.Setenv("CURRENCY_SYMBOL", "₹")
	t.Setenv("WRITE_TIMEOUT", "1m")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr())
	assert.Equal(t, "₹", cfg.CurrencySymbol)
	assert.Equal(t, time.Minute, cfg.WriteTimeout)
}

func TestValidate(t *testing.T) {
	base := func() Config {
		return Config{
			AppEnv:       "development",
			Port:         "8080",
			AuthTimeout:  time.Second,
			ReadTimeout:  time.Second,
			WriteTimeout: time.Second,
		}
	}

	t.Run("auth url without key", func(t *testing.T) {
		cfg := base()
		cfg.AuthBaseURL = "http://issuer"
		assert.ErrorContains(t, validate(&cfg), "AUTH_API_KEY")
	})

	t.Run("production requires db and issuer", func(t *testing.T) {
		cfg := base()
		cfg.AppEnv = "production"
		assert.Error(t, validate(&cfg))

		cfg.AuthBaseURL = "http://issuer"
		cfg.AuthAPIKey = "k"
		cfg.DBDSN = "postgres://localhost/dairy"
		assert.NoError(t, validate(&cfg))
	})

	t.Run("non positive timeout", func(t *testing.T) {
		cfg := base()
		cfg.ReadTimeout = 0
		assert.Error(t, validate(&cfg))
	})
}

// unsetEnv borra variables y las restaura al terminar el test.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}
