package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port               string
	Env                string
	BaseURL            string
	GitHubClientID     string
	GitHubClientSecret string
	GitHub             GitHubConfig
}

func Load() (*Config, error) {
	requestTimeout, err := strconv.Atoi(getEnv("GITHUB_REQUEST_TIMEOUT_SECONDS", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid GITHUB_REQUEST_TIMEOUT_SECONDS: %w", err)
	}

	maxCommitPages, err := strconv.Atoi(getEnv("GITHUB_MAX_COMMIT_PAGES", "10"))
	if err != nil {
		return nil, fmt.Errorf("invalid GITHUB_MAX_COMMIT_PAGES: %w", err)
	}

	return &Config{
		Port:               getEnv("PORT", "8080"),
		Env:                getEnv("APP_ENV", "development"),
		BaseURL:            getEnv("APP_BASE_URL", "http://localhost:8080"),
		GitHubClientID:     getEnv("GITHUB_CLIENT_ID", ""),
		GitHubClientSecret: getEnv("GITHUB_CLIENT_SECRET", ""),
		GitHub: GitHubConfig{
			APIBaseURL:        getEnv("GITHUB_API_BASE_URL", "https://api.github.com"),
			RequestTimeout:    time.Duration(requestTimeout) * time.Second,
			MaxCommitPages:    maxCommitPages,
			RecentCommitCount: 5,
		},
	}, nil
}

// IsProduction reports whether the app runs outside local development.
// It drives the Secure flag on every cookie the app sets.
func (c *Config) IsProduction() bool {
	return c.Env != "development"
}

// ValidateOAuth checks the settings the login flow cannot run without.
func (c *Config) ValidateOAuth() error {
	if c.GitHubClientID == "" {
		return fmt.Errorf("GITHUB_CLIENT_ID is not configured")
	}
	if c.BaseURL == "" {
		return fmt.Errorf("APP_BASE_URL is not configured")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
