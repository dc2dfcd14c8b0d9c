package config

import "time"

// GitHubConfig holds GitHub API client configuration
type GitHubConfig struct {
	APIBaseURL string
	// RequestTimeout bounds every outbound GitHub call. A hung provider
	// endpoint must not stall page render; a timed-out query degrades like
	// any other failed query.
	RequestTimeout time.Duration
	// MaxCommitPages bounds the paged commit count. The commit API has no
	// total-count field, so the count is a lower bound once the bound is hit.
	MaxCommitPages    int
	RecentCommitCount int
}

// DefaultGitHubConfig returns the default GitHub configuration
func DefaultGitHubConfig() *GitHubConfig {
	return &GitHubConfig{
		APIBaseURL:        "https://api.github.com",
		RequestTimeout:    10 * time.Second,
		MaxCommitPages:    10,
		RecentCommitCount: 5,
	}
}
