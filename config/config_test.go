package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("FRONTEND_URL", "https://hirehub.example/")
	t.Setenv("JWKS_URL", "https://auth.example/keys/")
	t.Setenv("CHAT_RATE_LIMIT", "not-a-number")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "https://hirehub.example", cfg.FrontendURL)
	assert.Equal(t, "https://auth.example/keys", cfg.JWKSURL)
	assert.Equal(t, 30, cfg.ChatRateLimit)
	assert.Equal(t, 60, cfg.RateLimitWindowSeconds)
	assert.Equal(t, 1000, cfg.ChatMaxMessageLength)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("GIN_MODE", "release")
	t.Setenv("CHAT_RATE_LIMIT", "5")
	t.Setenv("GLOBAL_RATE_LIMIT", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	assert.True(t, cfg.IsProduction())
	assert.Equal(t, 5, cfg.ChatRateLimit)
	assert.Equal(t, 7, cfg.RateLimitGlobalThreshold)
}
