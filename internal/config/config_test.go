package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func validConfig() *Config {
	return &Config{
		Environment:       "development",
		ServerPort:        "8000",
		RequestTimeout:    15 * time.Second,
		DatabaseURL:       "postgres://hr:hr@localhost:5432/hr_dashboard",
		JWTSecret:         "a-long-enough-test-secret",
		JWTAccessTTL:      30 * time.Minute,
		JWTRefreshTTL:     168 * time.Hour,
		BcryptCost:        12,
		SeedAdminPassword: "admin123",
	}
}

func TestConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("accepts a complete config", func(t *testing.T) {
		require.NoError(t, validConfig().Validate())
	})

	t.Run("requires database url", func(t *testing.T) {
		cfg := validConfig()
		cfg.DatabaseURL = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("requires signing secret", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = ""
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects placeholder secrets", func(t *testing.T) {
		for _, secret := range []string{"secret", "changeme", "your-super-secret-key", "Dev-Secret"} {
			cfg := validConfig()
			cfg.JWTSecret = secret
			require.Error(t, cfg.Validate(), "secret %q must be rejected", secret)
		}
	})

	t.Run("rejects short secrets", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTSecret = "too-short"
		require.Error(t, cfg.Validate())
	})

	t.Run("refresh ttl must exceed access ttl", func(t *testing.T) {
		cfg := validConfig()
		cfg.JWTRefreshTTL = cfg.JWTAccessTTL
		require.Error(t, cfg.Validate())
	})

	t.Run("rejects default admin password in production", func(t *testing.T) {
		cfg := validConfig()
		cfg.Environment = "production"
		require.Error(t, cfg.Validate())

		cfg.SeedAdminPassword = "something-else-entirely"
		require.NoError(t, cfg.Validate())
	})

	t.Run("bounds bcrypt cost", func(t *testing.T) {
		cfg := validConfig()
		cfg.BcryptCost = 4
		require.Error(t, cfg.Validate())

		cfg.BcryptCost = 31
		require.Error(t, cfg.Validate())
	})
}
