package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_LoadsSampleConfig(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.NotZero(t, cfg.HTTP.Port)
	require.NotNil(t, cfg.Postgres)
	assert.NotEmpty(t, cfg.Postgres.Host)
	require.NotNil(t, cfg.Auth)
	assert.NotEmpty(t, cfg.Auth.CookieName)
}

func TestNew_EnvOverridesFile(t *testing.T) {
	t.Setenv("HTTP_PORT", "9999")
	t.Setenv("AUTH_SECRET", "env-secret")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9999, cfg.HTTP.Port)
	assert.Equal(t, "env-secret", cfg.Auth.Secret)
}

func TestNew_AppliesDefaults(t *testing.T) {
	cfg, err := New()
	require.NoError(t, err)

	assert.NotZero(t, cfg.Auth.TokenTTL)
	assert.NotZero(t, cfg.Limits.PasswordMinLength)
	assert.NotZero(t, cfg.Limits.MoodDescMaxLength)
	assert.NotNil(t, cfg.Registration)
}

func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, 720*time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, "access_token", cfg.Auth.CookieName)
	assert.True(t, cfg.Registration.Enabled)
	assert.Equal(t, 8, cfg.Limits.PasswordMinLength)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	_, err := LoadWithEnv[Config]("nonexistent")
	assert.Error(t, err)
}
