package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"TELEGRAM_TOKEN", "DB_DSN", "ENV", "LOG_LEVEL", "MIGRATIONS_PATH", "STATS_INTERVAL"} {
		t.Setenv(key, "")
	}
}

func TestFromEnv(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TELEGRAM_TOKEN", "123:abc")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.Equal(t, "123:abc", cfg.TelegramToken)
		assert.Equal(t, "development", cfg.Environment)
		assert.Equal(t, "info", cfg.LogLevel)
		assert.Equal(t, "migrations", cfg.MigrationsPath)
		assert.Equal(t, time.Hour, cfg.StatsInterval)
		assert.False(t, cfg.UseDatabase())
	})

	t.Run("Overrides", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("TELEGRAM_TOKEN", "123:abc")
		t.Setenv("DB_DSN", "postgres://docspot@localhost/docspot")
		t.Setenv("ENV", "production")
		t.Setenv("LOG_LEVEL", "debug")
		t.Setenv("MIGRATIONS_PATH", "/app/migrations")
		t.Setenv("STATS_INTERVAL", "15m")

		cfg, err := FromEnv()
		require.NoError(t, err)
		assert.True(t, cfg.UseDatabase())
		assert.Equal(t, "production", cfg.Environment)
		assert.Equal(t, "debug", cfg.LogLevel)
		assert.Equal(t, "/app/migrations", cfg.MigrationsPath)
		assert.Equal(t, 15*time.Minute, cfg.StatsInterval)
	})

	t.Run("Missing token", func(t *testing.T) {
		clearEnv(t)

		_, err := FromEnv()
		assert.ErrorContains(t, err, "TELEGRAM_TOKEN")
	})

	t.Run("Bad stats interval", func(t *testing.T) {
		for _, raw := range []string{"soon", "-5m", "0s"} {
			t.Run(raw, func(t *testing.T) {
				clearEnv(t)
				t.Setenv("TELEGRAM_TOKEN", "123:abc")
				t.Setenv("STATS_INTERVAL", raw)

				_, err := FromEnv()
				assert.ErrorContains(t, err, "STATS_INTERVAL")
			})
		}
	})
}
