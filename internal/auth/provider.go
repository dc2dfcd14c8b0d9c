package auth

import (
	"context"
	"errors"
	"fmt"

	"golang.org/x/oauth2"
	oauthgithub "golang.org/x/oauth2/github"

	"github.com/repo-surfer/repo-surfer/internal/config"
)

// Scopes requested from GitHub: read the user profile, read repositories.
var githubScopes = []string{"read:user", "repo"}

// GitHubProvider wraps golang.org/x/oauth2 for the GitHub authorization-code
// flow. The code-for-token exchange is server-to-server with the client
// secret; the access token never travels through the browser except as an
// HttpOnly cookie.
type GitHubProvider struct {
	config *oauth2.Config
}

// NewGitHubProvider builds a provider from the app configuration. The
// callback URL must match the OAuth App registration exactly.
func NewGitHubProvider(cfg *config.Config) *GitHubProvider {
	return &GitHubProvider{
		config: &oauth2.Config{
			ClientID:     cfg.GitHubClientID,
			ClientSecret: cfg.GitHubClientSecret,
			RedirectURL:  cfg.BaseURL + "/auth/callback",
			Scopes:       githubScopes,
			Endpoint:     oauthgithub.Endpoint,
		},
	}
}

// AuthURL returns the GitHub authorization URL carrying the client id,
// callback URL, scopes, and the CSRF state token.
func (p *GitHubProvider) AuthURL(state string) string {
	return p.config.AuthCodeURL(state)
}

// ErrNoAccessToken means the provider answered the exchange without a token.
var ErrNoAccessToken = errors.New("token exchange returned no access token")

// ExchangeCode trades the authorization code for a bearer access token.
// When GitHub rejects the exchange with a machine-readable error code, that
// code is recoverable from the error via ProviderErrorCode.
func (p *GitHubProvider) ExchangeCode(ctx context.Context, code string) (string, error) {
	token, err := p.config.Exchange(ctx, code)
	if err != nil {
		return "", fmt.Errorf("exchanging OAuth code: %w", err)
	}
	if token.AccessToken == "" {
		return "", ErrNoAccessToken
	}
	return token.AccessToken, nil
}

// ProviderErrorCode extracts GitHub's error code (e.g. "bad_verification_code")
// from a failed exchange, or "" when the failure carries none.
func ProviderErrorCode(err error) string {
	var retrieveErr *oauth2.RetrieveError
	if errors.As(err, &retrieveErr) {
		return retrieveErr.ErrorCode
	}
	return ""
}

// IsExchangeRejection reports whether an exchange failure came from the
// provider rejecting the request, as opposed to a transport-level failure.
func IsExchangeRejection(err error) bool {
	var retrieveErr *oauth2.RetrieveError
	return errors.As(err, &retrieveErr) || errors.Is(err, ErrNoAccessToken)
}
