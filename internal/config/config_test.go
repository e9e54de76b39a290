package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wekeepgrowing/semo-study/internal/config"
)

func clearRequired(t *testing.T) {
	t.Helper()
	t.Setenv("CONFIG_PATH", t.TempDir())
	for _, key := range []string{"SECRET_KEY", "STUDY_SESSION_SECRET", "GOOGLE_GEMINI_API_KEY", "STUDY_GEMINI_API_KEY"} {
		t.Setenv(key, "")
	}
}

func TestLoad_RefusesWithoutSecrets(t *testing.T) {
	t.Run("missing session secret", func(t *testing.T) {
		clearRequired(t)
		t.Setenv("GOOGLE_GEMINI_API_KEY", "api-key")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "SECRET_KEY")
	})

	t.Run("missing api key", func(t *testing.T) {
		clearRequired(t)
		t.Setenv("SECRET_KEY", "secret")

		_, err := config.Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "GOOGLE_GEMINI_API_KEY")
	})
}

func TestLoad_LegacyEnvNames(t *testing.T) {
	clearRequired(t)
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "api-key")
	t.Setenv("STUDY_SERVER_HTTP_PORT", "9090")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "secret", cfg.Session.Secret)
	assert.Equal(t, "api-key", cfg.Gemini.APIKey)
	assert.Equal(t, "9090", cfg.Server.HTTP.Port)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "cookie", cfg.Session.Store)
	assert.Equal(t, "gemini-1.5-flash", cfg.Gemini.Model)
	assert.Equal(t, "localhost:6379", cfg.RedisAddr())
	assert.NotNil(t, cfg.Logger)
}

func TestValidate_UnknownDriver(t *testing.T) {
	cfg := &config.Config{}
	cfg.Session.Secret = "s"
	cfg.Gemini.APIKey = "k"
	cfg.Database.Driver = "mysql"
	cfg.Session.Store = "cookie"

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mysql")
}

func TestHTTPWriteTimeout_CoversModelCall(t *testing.T) {
	clearRequired(t)
	t.Setenv("SECRET_KEY", "secret")
	t.Setenv("GOOGLE_GEMINI_API_KEY", "api-key")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, 60*time.Second, cfg.GeminiTimeout())
	assert.Equal(t, 65*time.Second, cfg.HTTPWriteTimeout())

	cfg.Server.HTTP.Timeout = 120
	assert.Equal(t, 120*time.Second, cfg.HTTPWriteTimeout())

	cfg.Server.HTTP.Timeout = 30
	cfg.Gemini.Timeout = 0
	assert.Equal(t, 30*time.Second, cfg.HTTPWriteTimeout())
}
