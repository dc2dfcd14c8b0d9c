package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("applies defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "8080", cfg.Port)
		assert.Equal(t, "development", cfg.Env)
		assert.Equal(t, "http://localhost:8080", cfg.BaseURL)
		assert.Equal(t, "https://api.github.com", cfg.GitHub.APIBaseURL)
		assert.Equal(t, 10*time.Second, cfg.GitHub.RequestTimeout)
		assert.Equal(t, 10, cfg.GitHub.MaxCommitPages)
	})

	t.Run("reads overrides from the environment", func(t *testing.T) {
		t.Setenv("PORT", "9090")
		t.Setenv("APP_ENV", "production")
		t.Setenv("GITHUB_REQUEST_TIMEOUT_SECONDS", "3")

		cfg, err := Load()
		require.NoError(t, err)

		assert.Equal(t, "9090", cfg.Port)
		assert.True(t, cfg.IsProduction())
		assert.Equal(t, 3*time.Second, cfg.GitHub.RequestTimeout)
	})

	t.Run("rejects a malformed timeout", func(t *testing.T) {
		t.Setenv("GITHUB_REQUEST_TIMEOUT_SECONDS", "soon")

		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidateOAuth(t *testing.T) {
	cfg := &Config{GitHubClientID: "id", BaseURL: "http://localhost:8080"}
	assert.NoError(t, cfg.ValidateOAuth())

	cfg.GitHubClientID = ""
	assert.Error(t, cfg.ValidateOAuth())

	cfg = &Config{GitHubClientID: "id"}
	assert.Error(t, cfg.ValidateOAuth())
}
