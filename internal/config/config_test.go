package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadRequiresSessionSecret(t *testing.T) {
	t.Setenv("SESSION_SECRET", "")
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.Error(t, err)
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")
	t.Setenv("SESSION_TTL_MINUTES", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":8080", cfg.HTTPAddress())
	assert.True(t, cfg.DemoMode())
	assert.Equal(t, "forfeo-lab", cfg.SessionIssuer)
	assert.Equal(t, []string{"*"}, cfg.CORSOrigins)
	assert.Equal(t, float64(60), cfg.SessionTTL.Minutes())
	assert.Equal(t, float64(20), cfg.AssistantTimeout.Seconds())
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("DATABASE_URL", "postgres://localhost/forfeo")
	t.Setenv("PORT", "9090")
	t.Setenv("SESSION_TTL_MINUTES", "15")
	t.Setenv("ASSISTANT_TIMEOUT_SECONDS", "5")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://forfeo.example, https://lab.forfeo.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.False(t, cfg.DemoMode())
	assert.Equal(t, ":9090", cfg.HTTPAddress())
	assert.Equal(t, float64(15), cfg.SessionTTL.Minutes())
	assert.Equal(t, float64(5), cfg.AssistantTimeout.Seconds())
	assert.True(t, cfg.CookieSecure)
	assert.Equal(t, []string{"https://forfeo.example", "https://lab.forfeo.example"}, cfg.CORSOrigins)
}

func TestLoadIgnoresBadTTL(t *testing.T) {
	t.Setenv("SESSION_SECRET", "secret")
	t.Setenv("SESSION_TTL_MINUTES", "not-a-number")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, float64(60), cfg.SessionTTL.Minutes())
}
