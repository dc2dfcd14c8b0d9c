package github

import (
	"context"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/repo-surfer/repo-surfer/internal/config"
	"github.com/repo-surfer/repo-surfer/internal/errors"
	"github.com/repo-surfer/repo-surfer/internal/models"
)

// How many repositories each derived dashboard list shows.
const maxDisplayItems = 6

// Service is the request-scoped facade the handlers talk to. It owns no
// state: every call builds a client from the session token it is given,
// because the token lives only in the browser's cookie.
type Service struct {
	cfg    *config.GitHubConfig
	stats  *StatsService
	logger *logrus.Logger
}

// NewService creates a new GitHub service
func NewService(cfg *config.GitHubConfig, logger *logrus.Logger) *Service {
	return &Service{
		cfg:    cfg,
		stats:  NewStatsService(cfg, logger),
		logger: logger,
	}
}

func (s *Service) clientFor(token string) *Client {
	return NewClient(token, s.cfg, s.logger)
}

// GetDashboard fetches the authenticated user and their repositories, plus
// the derived top-starred / most-active / most-forked lists. A rejected
// token surfaces as UNAUTHORIZED so the handler can end the session.
func (s *Service) GetDashboard(ctx context.Context, token string) (*models.DashboardData, error) {
	client := s.clientFor(token)

	user, err := client.GetAuthenticatedUser(ctx)
	if err != nil {
		if IsUnauthorized(err) {
			return nil, errors.NewUnauthorizedError("access token rejected by GitHub", err)
		}
		return nil, errors.NewUpstreamError("failed to fetch user profile", err)
	}

	repos, err := client.ListRepositories(ctx)
	if err != nil {
		if IsUnauthorized(err) {
			return nil, errors.NewUnauthorizedError("access token rejected by GitHub", err)
		}
		return nil, errors.NewUpstreamError("failed to fetch repositories", err)
	}

	return &models.DashboardData{
		User:       user,
		Repos:      repos,
		TopStarred: topBy(repos, func(a, b *models.Repository) bool { return a.StarsCount > b.StarsCount }),
		MostActive: topBy(repos, func(a, b *models.Repository) bool { return a.PushedAt.After(b.PushedAt) }),
		MostForked: topBy(repos, func(a, b *models.Repository) bool { return a.ForksCount > b.ForksCount }),
	}, nil
}

// GetRepoStats builds the repository detail aggregate.
func (s *Service) GetRepoStats(ctx context.Context, token, owner, name string) (*models.RepoStats, error) {
	return s.stats.FetchRepoStats(ctx, s.clientFor(token), owner, name)
}

// topBy returns the first maxDisplayItems repositories under the given
// ordering without disturbing the input slice.
func topBy(repos []*models.Repository, less func(a, b *models.Repository) bool) []*models.Repository {
	sorted := make([]*models.Repository, len(repos))
	copy(sorted, repos)
	sort.SliceStable(sorted, func(i, j int) bool { return less(sorted[i], sorted[j]) })

	if len(sorted) > maxDisplayItems {
		sorted = sorted[:maxDisplayItems]
	}
	return sorted
}
