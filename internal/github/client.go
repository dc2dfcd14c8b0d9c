package github

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"sort"
	"strconv"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/oauth2"

	"github.com/repo-surfer/repo-surfer/internal/config"
	"github.com/repo-surfer/repo-surfer/internal/models"
)

const perPage = 100

// Client is a read-only GitHub API client bound to one access token. It is
// built per request from the session cookie and holds no state beyond the
// token-carrying HTTP client. Every call is single-attempt: a failed query
// degrades at the call site, it is never retried here.
type Client struct {
	client  *http.Client
	baseURL string
	logger  *logrus.Logger
}

// NewClient creates a client for the given token. The oauth2 transport adds
// the Authorization header; the timeout bounds every outbound call so one
// hung endpoint cannot stall a page render.
func NewClient(token string, cfg *config.GitHubConfig, logger *logrus.Logger) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	httpClient := oauth2.NewClient(context.Background(), ts)
	httpClient.Timeout = cfg.RequestTimeout

	return &Client{
		client:  httpClient,
		baseURL: cfg.APIBaseURL,
		logger:  logger,
	}
}

// doRequest performs one GET against the GitHub API and decodes the JSON
// body into result. Status mapping: 401 ends the session upstream, 404 is
// surfaced as-is by callers that know what was missing.
func (c *Client) doRequest(ctx context.Context, path string, query url.Values, result interface{}) error {
	reqURL := c.baseURL + path
	if len(query) > 0 {
		reqURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := c.client.Do(req)
	if err != nil {
		return NewGitHubError(0, "request failed", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return NewGitHubError(resp.StatusCode, "failed to read response body", err)
	}

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return &UnauthorizedError{Message: string(body)}
	case resp.StatusCode == http.StatusNotFound:
		return NewGitHubError(resp.StatusCode, "not found", nil)
	case resp.StatusCode != http.StatusOK:
		return NewGitHubError(resp.StatusCode, string(body), nil)
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return NewGitHubError(resp.StatusCode, "failed to decode response", err)
		}
	}

	return nil
}

// GetAuthenticatedUser fetches the identity behind the access token.
func (c *Client) GetAuthenticatedUser(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.doRequest(ctx, "/user", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// ListRepositories fetches up to 100 of the user's public repositories,
// most recently updated first.
func (c *Client) ListRepositories(ctx context.Context) ([]*models.Repository, error) {
	query := url.Values{}
	query.Set("type", "public")
	query.Set("sort", "updated")
	query.Set("direction", "desc")
	query.Set("per_page", strconv.Itoa(perPage))

	var repos []*models.Repository
	if err := c.doRequest(ctx, "/user/repos", query, &repos); err != nil {
		return nil, err
	}
	return repos, nil
}

// GetRepository fetches repository metadata.
func (c *Client) GetRepository(ctx context.Context, owner, name string) (*models.Repository, error) {
	if owner == "" {
		return nil, NewValidationError("owner", "cannot be empty")
	}
	if name == "" {
		return nil, NewValidationError("name", "cannot be empty")
	}

	var repo models.Repository
	err := c.doRequest(ctx, fmt.Sprintf("/repos/%s/%s", owner, name), nil, &repo)
	if err != nil {
		var ghErr *GitHubError
		if errors.As(err, &ghErr) && ghErr.StatusCode == http.StatusNotFound {
			return nil, &RepositoryNotFoundError{Owner: owner, Name: name}
		}
		return nil, err
	}
	return &repo, nil
}

// commitResponse is the wire shape of one entry of the commits endpoint.
type commitResponse struct {
	SHA    string `json:"sha"`
	Commit struct {
		Message string `json:"message"`
		Author  struct {
			Name string `json:"name"`
			Date string `json:"date"`
		} `json:"author"`
	} `json:"commit"`
	Author *struct {
		Login     string `json:"login"`
		AvatarURL string `json:"avatar_url"`
	} `json:"author"`
	HTMLURL string `json:"html_url"`
}

func (r *commitResponse) toModel() *models.Commit {
	commit := &models.Commit{
		SHA:        r.SHA,
		Message:    r.Commit.Message,
		AuthorName: r.Commit.Author.Name,
		CommitURL:  r.HTMLURL,
	}
	if t, err := time.Parse(time.RFC3339, r.Commit.Author.Date); err == nil {
		commit.AuthorDate = t
	}
	if r.Author != nil {
		commit.AuthorLogin = r.Author.Login
		commit.AuthorAvatarURL = r.Author.AvatarURL
	}
	return commit
}

// ListRecentCommits fetches the n most recent commits.
func (c *Client) ListRecentCommits(ctx context.Context, owner, name string, n int) ([]*models.Commit, error) {
	query := url.Values{}
	query.Set("per_page", strconv.Itoa(n))

	var raw []commitResponse
	if err := c.doRequest(ctx, fmt.Sprintf("/repos/%s/%s/commits", owner, name), query, &raw); err != nil {
		return nil, err
	}

	commits := make([]*models.Commit, 0, len(raw))
	for i := range raw {
		commits = append(commits, raw[i].toModel())
	}
	return commits, nil
}

// CountCommits pages through the commit list in batches of 100 and reports
// the count actually retrieved. The commits endpoint has no total-count
// field, so this stops at maxPages; the second return value reports whether
// the bound was hit, in which case the count is a lower bound, not exact.
func (c *Client) CountCommits(ctx context.Context, owner, name string, maxPages int) (int, bool, error) {
	total := 0
	for page := 1; page <= maxPages; page++ {
		query := url.Values{}
		query.Set("per_page", strconv.Itoa(perPage))
		query.Set("page", strconv.Itoa(page))

		var raw []json.RawMessage
		if err := c.doRequest(ctx, fmt.Sprintf("/repos/%s/%s/commits", owner, name), query, &raw); err != nil {
			return 0, false, err
		}

		total += len(raw)
		if len(raw) < perPage {
			return total, false, nil
		}
	}

	c.logger.WithFields(logrus.Fields{
		"owner":     owner,
		"repo":      name,
		"max_pages": maxPages,
	}).Warn("Commit count hit the pagination bound; reporting a lower bound")
	return total, true, nil
}

// ListBranches fetches the full branch list via pagination.
func (c *Client) ListBranches(ctx context.Context, owner, name string) ([]*models.Branch, error) {
	var branches []*models.Branch
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("per_page", strconv.Itoa(perPage))
		query.Set("page", strconv.Itoa(page))

		var raw []struct {
			Name   string `json:"name"`
			Commit struct {
				SHA string `json:"sha"`
			} `json:"commit"`
			Protected bool `json:"protected"`
		}
		if err := c.doRequest(ctx, fmt.Sprintf("/repos/%s/%s/branches", owner, name), query, &raw); err != nil {
			return nil, err
		}

		for _, b := range raw {
			branches = append(branches, &models.Branch{
				Name:      b.Name,
				SHA:       b.Commit.SHA,
				Protected: b.Protected,
			})
		}

		if len(raw) < perPage {
			return branches, nil
		}
	}
}

// GetLanguages fetches the language byte map.
func (c *Client) GetLanguages(ctx context.Context, owner, name string) (map[string]int64, error) {
	var languages map[string]int64
	if err := c.doRequest(ctx, fmt.Sprintf("/repos/%s/%s/languages", owner, name), nil, &languages); err != nil {
		return nil, err
	}
	return languages, nil
}

// ListContributors fetches all contributors via pagination, sorted descending
// by contribution count. GitHub has no top-N query primitive, so truncation
// happens on the caller's side.
func (c *Client) ListContributors(ctx context.Context, owner, name string) ([]*models.Contributor, error) {
	var contributors []*models.Contributor
	for page := 1; ; page++ {
		query := url.Values{}
		query.Set("per_page", strconv.Itoa(perPage))
		query.Set("page", strconv.Itoa(page))
		query.Set("anon", "true")

		var raw []*models.Contributor
		if err := c.doRequest(ctx, fmt.Sprintf("/repos/%s/%s/contributors", owner, name), query, &raw); err != nil {
			return nil, err
		}

		contributors = append(contributors, raw...)
		if len(raw) < perPage {
			break
		}
	}

	sort.SliceStable(contributors, func(i, j int) bool {
		return contributors[i].Contributions > contributors[j].Contributions
	})
	return contributors, nil
}

// SearchCount runs a search query and returns the provider-reported total.
// Used for PR and issue counts: one round trip instead of full enumeration,
// and the total is trusted as exact.
func (c *Client) SearchCount(ctx context.Context, searchQuery string) (int, error) {
	query := url.Values{}
	query.Set("q", searchQuery)
	query.Set("per_page", "1")

	var result struct {
		TotalCount int `json:"total_count"`
	}
	if err := c.doRequest(ctx, "/search/issues", query, &result); err != nil {
		return 0, err
	}
	return result.TotalCount, nil
}

// CountPullRequests counts PRs in the given state via the search API.
// State is one of "open", "closed" (inclusive of merged), or "merged".
func (c *Client) CountPullRequests(ctx context.Context, owner, name, state string) (int, error) {
	return c.SearchCount(ctx, fmt.Sprintf("repo:%s/%s is:pr is:%s", owner, name, state))
}

// CountClosedIssues counts closed issues via the search API. The open-issue
// count comes from repository metadata, so it needs no query of its own.
func (c *Client) CountClosedIssues(ctx context.Context, owner, name string) (int, error) {
	return c.SearchCount(ctx, fmt.Sprintf("repo:%s/%s is:issue is:closed", owner, name))
}
