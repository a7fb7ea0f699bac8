package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_RequiresSecret(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "")

	_, err := Load()
	assert.ErrorIs(t, err, ErrMissingJWTSecret)
}

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL", "")
	t.Setenv("APP_PORT", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 7*24*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "0.0.0.0:3030", cfg.App.Addr())
	assert.Equal(t, 16*1024, cfg.App.BodyLimitBytes)
}

func TestLoad_TokenTTL(t *testing.T) {
	t.Setenv("AUTH_JWT_SECRET", "test-secret")
	t.Setenv("AUTH_TOKEN_TTL", "60s")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, time.Minute, cfg.Auth.TokenTTL)

	t.Setenv("AUTH_TOKEN_TTL", "soon")
	_, err = Load()
	assert.Error(t, err)

	t.Setenv("AUTH_TOKEN_TTL", "-1h")
	_, err = Load()
	assert.Error(t, err)
}
