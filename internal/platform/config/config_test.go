package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://localhost/venues?sslmode=disable")
		t.Setenv("JWT_SECRET", "dev-secret")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "development", cfg.App.Env)
		assert.Equal(t, "8080", cfg.App.Port)
		assert.Equal(t, 25, cfg.Database.MaxOpenConns)
		assert.Equal(t, 24*time.Hour, cfg.JWT.TTL)
		assert.Equal(t, time.Minute, cfg.Analytics.CacheTTL)
		assert.Equal(t, []string{"*"}, cfg.HTTP.CORSAllowedOrigins)
		assert.True(t, cfg.Database.AutoMigrate)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://db/venues")
		t.Setenv("JWT_SECRET", "dev-secret")
		t.Setenv("APP_PORT", "9090")
		t.Setenv("JWT_TTL", "2h")
		t.Setenv("CORS_ALLOWED_ORIGINS", "https://cms.example.com, https://partner.example.com")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.App.Port)
		assert.Equal(t, 2*time.Hour, cfg.JWT.TTL)
		assert.Equal(t, []string{"https://cms.example.com", "https://partner.example.com"}, cfg.HTTP.CORSAllowedOrigins)
	})

	t.Run("requires database url", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "")
		t.Setenv("JWT_SECRET", "dev-secret")

		_, err := Load()
		assert.ErrorContains(t, err, "DATABASE_URL")
	})

	t.Run("rejects short production secret", func(t *testing.T) {
		t.Setenv("DATABASE_URL", "postgres://db/venues")
		t.Setenv("APP_ENV", "production")
		t.Setenv("JWT_SECRET", "short")

		_, err := Load()
		assert.ErrorContains(t, err, "at least 32")
	})
}
