package api

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/repo-surfer/repo-surfer/internal/auth"
	"github.com/repo-surfer/repo-surfer/internal/config"
	"github.com/repo-surfer/repo-surfer/internal/errors"
	"github.com/repo-surfer/repo-surfer/internal/models"
)

// OAuthProvider performs the authorization-code exchange.
type OAuthProvider interface {
	AuthURL(state string) string
	ExchangeCode(ctx context.Context, code string) (string, error)
}

// GitHubService provides the page data behind protected routes.
type GitHubService interface {
	GetDashboard(ctx context.Context, token string) (*models.DashboardData, error)
	GetRepoStats(ctx context.Context, token, owner, name string) (*models.RepoStats, error)
}

type Handler struct {
	provider OAuthProvider
	github   GitHubService
	cfg      *config.Config
	logger   *logrus.Logger
}

func NewHandler(provider OAuthProvider, github GitHubService, cfg *config.Config, logger *logrus.Logger) *Handler {
	return &Handler{
		provider: provider,
		github:   github,
		cfg:      cfg,
		logger:   logger,
	}
}

// ShowLogin renders the login page. The ?error= query parameter carries a
// machine-readable code from a failed login attempt or an expired session.
func (h *Handler) ShowLogin(c *gin.Context) {
	c.HTML(http.StatusOK, "index.html", gin.H{
		"Error": c.Query("error"),
	})
}

// Login starts the OAuth flow: issues the state token, stores it as a
// short-lived cookie, and redirects to GitHub's authorization page.
//
// @Summary Start the GitHub login flow
// @Description Redirects the browser to GitHub's authorization page with a CSRF state token
// @Tags auth
// @Success 302 {string} string "Redirect to GitHub"
// @Failure 500 {object} ErrorResponse "Server configuration error"
// @Router /auth/login [get]
func (h *Handler) Login(c *gin.Context) {
	if err := h.cfg.ValidateOAuth(); err != nil {
		h.logger.WithError(err).Error("GitHub OAuth is not configured")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		return
	}

	state, err := auth.GenerateState()
	if err != nil {
		h.logger.WithError(err).Error("Failed to generate OAuth state token")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Server configuration error"})
		return
	}

	auth.SetStateCookie(c, state, h.cfg.IsProduction())
	c.Redirect(http.StatusFound, h.provider.AuthURL(state))
}

// Callback completes the OAuth flow. The stored state cookie is deleted on
// first read regardless of outcome — the token is single-use, so replaying
// the same (code, state) pair fails the second time.
//
// @Summary Complete the GitHub login flow
// @Description Validates the CSRF state, exchanges the code for an access token, and establishes the session cookie
// @Tags auth
// @Param code query string true "Authorization code from GitHub"
// @Param state query string true "CSRF state token"
// @Success 302 {string} string "Redirect to the dashboard, or to / with ?error= on failure"
// @Router /auth/callback [get]
func (h *Handler) Callback(c *gin.Context) {
	storedState, cookieErr := c.Cookie(auth.StateCookie)
	auth.ClearStateCookie(c, h.cfg.IsProduction())

	if err := h.cfg.ValidateOAuth(); err != nil || h.cfg.GitHubClientSecret == "" {
		h.logger.Error("GitHub OAuth environment variables not configured")
		c.Redirect(http.StatusFound, "/?error=auth_config_error")
		return
	}

	code := c.Query("code")
	state := c.Query("state")
	if code == "" || state == "" || cookieErr != nil || state != storedState {
		h.logger.WithFields(logrus.Fields{
			"has_code":  code != "",
			"has_state": state != "",
		}).Warn("Invalid state or code on OAuth callback")
		c.Redirect(http.StatusFound, "/?error=invalid_state")
		return
	}

	token, err := h.provider.ExchangeCode(c.Request.Context(), code)
	if err != nil {
		h.logger.WithError(err).Error("Failed to exchange authorization code")
		c.Redirect(http.StatusFound, "/?error="+exchangeErrorCode(err))
		return
	}

	auth.SetSessionCookie(c, token, h.cfg.IsProduction())
	c.Redirect(http.StatusFound, "/dashboard")
}

// exchangeErrorCode maps a failed code exchange to the machine-readable
// error query value: GitHub's own error code when it sent one, otherwise
// token_exchange_failed for a rejected exchange and callback_error for
// transport-level failures.
func exchangeErrorCode(err error) string {
	if code := auth.ProviderErrorCode(err); code != "" {
		return code
	}
	if auth.IsExchangeRejection(err) {
		return "token_exchange_failed"
	}
	return "callback_error"
}

// Logout clears the session cookie and returns to the login page.
// Idempotent: with no active session it still clears and redirects.
//
// @Summary Log out
// @Description Clears the session cookie and redirects to the login page
// @Tags auth
// @Success 302 {string} string "Redirect to /"
// @Router /auth/logout [get]
func (h *Handler) Logout(c *gin.Context) {
	auth.ClearSessionCookie(c, h.cfg.IsProduction())
	c.Redirect(http.StatusFound, "/")
}

// endSession handles UpstreamUnauthorized: the cookie existed but GitHub
// rejected the token, so the session is dead.
func (h *Handler) endSession(c *gin.Context) {
	auth.ClearSessionCookie(c, h.cfg.IsProduction())
	c.Redirect(http.StatusFound, "/?error=session_expired")
}

// Dashboard renders the authenticated user's profile and repository lists.
func (h *Handler) Dashboard(c *gin.Context) {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	data, err := h.github.GetDashboard(c.Request.Context(), token)
	if err != nil {
		if errors.IsUnauthorized(err) {
			h.endSession(c)
			return
		}
		h.logger.WithError(err).Error("Failed to load dashboard data")
		c.HTML(http.StatusBadGateway, "dashboard_error.html", gin.H{
			"Message": "Failed to load GitHub data. Please try signing out and in again.",
		})
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", data)
}

// RepoDetail renders the repository detail aggregate. A failed metadata
// query renders the dedicated error state; degraded side stats render as
// their defaults.
func (h *Handler) RepoDetail(c *gin.Context) {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		c.Redirect(http.StatusFound, "/")
		return
	}

	owner := c.Param("owner")
	name := c.Param("repo")

	stats, err := h.github.GetRepoStats(c.Request.Context(), token, owner, name)
	if err != nil {
		if errors.IsUnauthorized(err) {
			h.endSession(c)
			return
		}
		h.logger.WithError(err).WithFields(logrus.Fields{
			"owner": owner,
			"repo":  name,
		}).Warn("Could not fetch repository")
		c.HTML(http.StatusNotFound, "repo_error.html", gin.H{
			"Owner": owner,
			"Repo":  name,
		})
		return
	}

	c.HTML(http.StatusOK, "repo.html", stats)
}

// GetUserAPI returns the authenticated user's profile.
//
// @Summary Get the authenticated user
// @Tags api
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} ErrorResponse
// @Router /user [get]
func (h *Handler) GetUserAPI(c *gin.Context) {
	data, ok := h.dashboardData(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data.User)
}

// ListReposAPI returns the user's repositories, most recently updated first.
//
// @Summary List the user's public repositories
// @Tags api
// @Produce json
// @Success 200 {array} models.Repository
// @Failure 401 {object} ErrorResponse
// @Router /repos [get]
func (h *Handler) ListReposAPI(c *gin.Context) {
	data, ok := h.dashboardData(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, data.Repos)
}

// GetRepoStatsAPI returns the repository detail aggregate.
//
// @Summary Get repository statistics
// @Description Commits, branches, pull request and issue counts, languages, and top contributors for one repository
// @Tags api
// @Produce json
// @Param owner path string true "Repository owner"
// @Param repo path string true "Repository name"
// @Success 200 {object} models.RepoStats
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /repos/{owner}/{repo}/stats [get]
func (h *Handler) GetRepoStatsAPI(c *gin.Context) {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return
	}

	owner := c.Param("owner")
	name := c.Param("repo")

	stats, err := h.github.GetRepoStats(c.Request.Context(), token, owner, name)
	if err != nil {
		switch {
		case errors.IsUnauthorized(err):
			auth.ClearSessionCookie(c, h.cfg.IsProduction())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		case errors.IsNotFound(err):
			c.JSON(http.StatusNotFound, gin.H{"error": "could not fetch repository"})
		default:
			h.logger.WithError(err).Error("Failed to fetch repository stats")
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch repository stats"})
		}
		return
	}

	c.JSON(http.StatusOK, stats)
}

func (h *Handler) dashboardData(c *gin.Context) (*models.DashboardData, bool) {
	token, ok := auth.TokenFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "authentication required"})
		return nil, false
	}

	data, err := h.github.GetDashboard(c.Request.Context(), token)
	if err != nil {
		if errors.IsUnauthorized(err) {
			auth.ClearSessionCookie(c, h.cfg.IsProduction())
			c.JSON(http.StatusUnauthorized, gin.H{"error": "session expired"})
		} else {
			h.logger.WithError(err).Error("Failed to fetch dashboard data")
			c.JSON(http.StatusBadGateway, gin.H{"error": "failed to fetch GitHub data"})
		}
		return nil, false
	}
	return data, true
}
