package github

import (
	"context"
	"sort"
	"sync"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/repo-surfer/repo-surfer/internal/config"
	"github.com/repo-surfer/repo-surfer/internal/errors"
	"github.com/repo-surfer/repo-surfer/internal/models"
)

const topContributorCount = 10

// StatsClient is the slice of the GitHub client the aggregator needs.
type StatsClient interface {
	GetRepository(ctx context.Context, owner, name string) (*models.Repository, error)
	CountCommits(ctx context.Context, owner, name string, maxPages int) (int, bool, error)
	ListRecentCommits(ctx context.Context, owner, name string, n int) ([]*models.Commit, error)
	ListBranches(ctx context.Context, owner, name string) ([]*models.Branch, error)
	CountPullRequests(ctx context.Context, owner, name, state string) (int, error)
	CountClosedIssues(ctx context.Context, owner, name string) (int, error)
	GetLanguages(ctx context.Context, owner, name string) (map[string]int64, error)
	ListContributors(ctx context.Context, owner, name string) ([]*models.Contributor, error)
}

// StatsService builds the repository detail aggregate from ten independent
// GitHub queries. Repository metadata is load-bearing; every other query
// settles to a default on failure so one slow or erroring endpoint cannot
// blank out the whole page.
type StatsService struct {
	cfg    *config.GitHubConfig
	logger *logrus.Logger
}

// NewStatsService creates a new stats service
func NewStatsService(cfg *config.GitHubConfig, logger *logrus.Logger) *StatsService {
	return &StatsService{
		cfg:    cfg,
		logger: logger,
	}
}

// settleGroup joins concurrent queries that must all finish, success or
// failure, before the aggregate is assembled. Each failed query records its
// field name instead of aborting the batch.
type settleGroup struct {
	group    *errgroup.Group
	logger   *logrus.Entry
	mu       sync.Mutex
	degraded []string
}

// run registers one query. The closure's error is settled here: logged,
// recorded against the field name, and swallowed, so the errgroup acts as a
// pure barrier rather than a short-circuit.
func (s *settleGroup) run(field string, fn func() error) {
	s.group.Go(func() error {
		if err := fn(); err != nil {
			s.logger.WithError(err).WithField("field", field).Warn("Repository stat query failed; using default")
			s.mu.Lock()
			s.degraded = append(s.degraded, field)
			s.mu.Unlock()
		}
		return nil
	})
}

// FetchRepoStats issues the ten detail queries concurrently and assembles
// one aggregate after all have settled.
//
// Returns a NOT_FOUND error when the metadata query itself failed — the
// caller must be able to tell "repo doesn't exist / no access" apart from
// "repo exists but some side stats failed to load" — and an UNAUTHORIZED
// error when GitHub rejected the token, so the caller can end the session.
func (s *StatsService) FetchRepoStats(ctx context.Context, client StatsClient, owner, name string) (*models.RepoStats, error) {
	logger := s.logger.WithFields(logrus.Fields{
		"owner": owner,
		"repo":  name,
	})

	var (
		repo         *models.Repository
		repoErr      error
		totalCommits int
		lowerBound   bool
		recent       []*models.Commit
		branches     []*models.Branch
		openPRs      int
		closedPRs    int
		mergedPRs    int
		closedIssues int
		languages    map[string]int64
		contributors []*models.Contributor
	)

	group, gctx := errgroup.WithContext(ctx)
	settle := &settleGroup{group: group, logger: logger}

	// Metadata is tracked separately: its failure fails the whole view,
	// it never lands in the degraded list.
	group.Go(func() error {
		repo, repoErr = client.GetRepository(gctx, owner, name)
		return nil
	})

	settle.run("total_commits", func() error {
		var err error
		totalCommits, lowerBound, err = client.CountCommits(gctx, owner, name, s.cfg.MaxCommitPages)
		return err
	})
	settle.run("recent_commits", func() error {
		var err error
		recent, err = client.ListRecentCommits(gctx, owner, name, s.cfg.RecentCommitCount)
		return err
	})
	settle.run("branches", func() error {
		var err error
		branches, err = client.ListBranches(gctx, owner, name)
		return err
	})
	settle.run("open_prs", func() error {
		var err error
		openPRs, err = client.CountPullRequests(gctx, owner, name, "open")
		return err
	})
	settle.run("closed_prs", func() error {
		var err error
		closedPRs, err = client.CountPullRequests(gctx, owner, name, "closed")
		return err
	})
	settle.run("merged_prs", func() error {
		var err error
		mergedPRs, err = client.CountPullRequests(gctx, owner, name, "merged")
		return err
	})
	settle.run("closed_issues", func() error {
		var err error
		closedIssues, err = client.CountClosedIssues(gctx, owner, name)
		return err
	})
	settle.run("languages", func() error {
		var err error
		languages, err = client.GetLanguages(gctx, owner, name)
		return err
	})
	settle.run("contributors", func() error {
		var err error
		contributors, err = client.ListContributors(gctx, owner, name)
		return err
	})

	// Closures never return errors, so Wait is a settle-all barrier.
	_ = group.Wait()

	if repoErr != nil || repo == nil {
		if IsUnauthorized(repoErr) {
			return nil, errors.NewUnauthorizedError("access token rejected by GitHub", repoErr)
		}
		logger.WithError(repoErr).Warn("Repository metadata query failed")
		return nil, errors.NewNotFoundError("could not fetch repository", repoErr)
	}

	stats := &models.RepoStats{
		Repository:              repo,
		TotalCommits:            totalCommits,
		CommitCountIsLowerBound: lowerBound,
		RecentCommits:           defaultCommits(recent),
		Branches:                defaultBranches(branches),
		PullRequests: models.PullRequestStats{
			Open:           openPRs,
			Merged:         mergedPRs,
			ClosedUnmerged: clampNonNegative(closedPRs - mergedPRs),
			TotalClosed:    closedPRs,
		},
		Issues: models.IssueStats{
			Open:   repo.OpenIssuesCount,
			Closed: closedIssues,
		},
		Languages:    languageShares(languages),
		Contributors: topContributors(contributors),
		Degraded:     settle.degraded,
	}

	if len(settle.degraded) > 0 {
		logger.WithField("degraded", settle.degraded).Info("Repository detail rendered with defaulted fields")
	}

	return stats, nil
}

// clampNonNegative guards the closed-minus-merged derivation: the two counts
// come from independent searches and are not guaranteed consistent.
func clampNonNegative(n int) int {
	if n < 0 {
		return 0
	}
	return n
}

func defaultCommits(commits []*models.Commit) []*models.Commit {
	if commits == nil {
		return []*models.Commit{}
	}
	return commits
}

func defaultBranches(branches []*models.Branch) []*models.Branch {
	if branches == nil {
		return []*models.Branch{}
	}
	return branches
}

// languageShares turns the byte map into a display-ready list sorted
// descending by bytes, with percentages of the total.
func languageShares(languages map[string]int64) []models.LanguageShare {
	shares := make([]models.LanguageShare, 0, len(languages))

	var total int64
	for _, bytes := range languages {
		total += bytes
	}

	for name, bytes := range languages {
		share := models.LanguageShare{Name: name, Bytes: bytes}
		if total > 0 {
			share.Percent = float64(bytes) / float64(total) * 100
		}
		shares = append(shares, share)
	}

	sort.Slice(shares, func(i, j int) bool {
		if shares[i].Bytes != shares[j].Bytes {
			return shares[i].Bytes > shares[j].Bytes
		}
		return shares[i].Name < shares[j].Name
	})
	return shares
}

// topContributors truncates the already-sorted contributor list to the top 10.
func topContributors(contributors []*models.Contributor) []*models.Contributor {
	if contributors == nil {
		return []*models.Contributor{}
	}
	if len(contributors) > topContributorCount {
		return contributors[:topContributorCount]
	}
	return contributors
}
