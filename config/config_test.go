package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("APP_PASSPHRASE", "둘만의-암호")
	t.Setenv("JWT_SECRET", "test-secret")
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.ServerHost)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, "5432", cfg.DBPort)
	assert.Equal(t, "matjip", cfg.DBName)
	assert.Equal(t, "disable", cfg.DBSSLMode)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 720*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"http://localhost:3000"}, cfg.CORSOrigins)
}

func TestLoadOverrides(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("SESSION_TTL_HOURS", "24")
	t.Setenv("CORS_ORIGIN", "https://matjip.example.com")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, 24*time.Hour, cfg.SessionTTL)
	assert.Equal(t, []string{"https://matjip.example.com"}, cfg.CORSOrigins)
}

func TestLoadRequiresPassphrase(t *testing.T) {
	t.Setenv("APP_PASSPHRASE", "")
	t.Setenv("JWT_SECRET", "test-secret")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "APP_PASSPHRASE")
}

func TestLoadRequiresJWTSecret(t *testing.T) {
	t.Setenv("APP_PASSPHRASE", "둘만의-암호")
	t.Setenv("JWT_SECRET", "")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JWT_SECRET")
}

func TestLoadRejectsBadRedisDB(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("REDIS_DB", "not-a-number")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "REDIS_DB")
}

func TestLoadRejectsBadSessionTTL(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SESSION_TTL_HOURS", "soon")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL_HOURS")
}
