package github

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/repo-surfer/repo-surfer/internal/config"
)

func setupTestClient(t *testing.T) (*Client, *httptest.Server, func()) {
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	server := httptest.NewServer(nil)
	cfg := &config.GitHubConfig{
		APIBaseURL:        server.URL,
		RequestTimeout:    5 * time.Second,
		MaxCommitPages:    3,
		RecentCommitCount: 5,
	}
	client := NewClient("test-token", cfg, logger)

	cleanup := func() {
		server.Close()
	}
	return client, server, cleanup
}

func TestClient_GetRepository(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	t.Run("successful request", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "GET", r.Method)
			assert.Equal(t, "/repos/test-owner/test-repo", r.URL.Path)
			assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
			assert.Equal(t, "application/vnd.github+json", r.Header.Get("Accept"))

			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{
				"id": 42,
				"name": "test-repo",
				"full_name": "test-owner/test-repo",
				"description": "Test repository",
				"html_url": "https://github.com/test-owner/test-repo",
				"language": "Go",
				"default_branch": "main",
				"stargazers_count": 200,
				"forks_count": 100,
				"watchers_count": 300,
				"open_issues_count": 10,
				"owner": {"id": 1, "login": "test-owner"}
			}`))
		})

		repo, err := client.GetRepository(ctx, "test-owner", "test-repo")
		require.NoError(t, err)
		assert.Equal(t, "test-repo", repo.Name)
		assert.Equal(t, "test-owner/test-repo", repo.FullName)
		assert.Equal(t, "Go", repo.Language)
		assert.Equal(t, "main", repo.DefaultBranch)
		assert.Equal(t, 200, repo.StarsCount)
		assert.Equal(t, 100, repo.ForksCount)
		assert.Equal(t, 10, repo.OpenIssuesCount)
		assert.Equal(t, "test-owner", repo.Owner.Login)
	})

	t.Run("validation error", func(t *testing.T) {
		_, err := client.GetRepository(ctx, "", "test-repo")
		assert.Error(t, err)
		assert.IsType(t, &ValidationError{}, err)

		_, err = client.GetRepository(ctx, "test-owner", "")
		assert.Error(t, err)
		assert.IsType(t, &ValidationError{}, err)
	})

	t.Run("repository not found", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		})

		_, err := client.GetRepository(ctx, "test-owner", "missing-repo")
		assert.Error(t, err)
		assert.IsType(t, &RepositoryNotFoundError{}, err)
	})

	t.Run("rejected token", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
			w.Write([]byte(`{"message": "Bad credentials"}`))
		})

		_, err := client.GetRepository(ctx, "test-owner", "test-repo")
		assert.Error(t, err)
		assert.True(t, IsUnauthorized(err))
	})
}

func TestClient_ListRepositories(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/user/repos", r.URL.Path)
		assert.Equal(t, "public", r.URL.Query().Get("type"))
		assert.Equal(t, "updated", r.URL.Query().Get("sort"))
		assert.Equal(t, "desc", r.URL.Query().Get("direction"))
		assert.Equal(t, "100", r.URL.Query().Get("per_page"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[
			{"id": 1, "name": "newest", "stargazers_count": 5},
			{"id": 2, "name": "older", "stargazers_count": 3}
		]`))
	})

	repos, err := client.ListRepositories(context.Background())
	require.NoError(t, err)
	require.Len(t, repos, 2)
	assert.Equal(t, "newest", repos[0].Name)
	assert.Equal(t, 5, repos[0].StarsCount)
}

func TestClient_CountCommits(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	ctx := context.Background()

	commitPage := func(n int) string {
		page := "["
		for i := 0; i < n; i++ {
			if i > 0 {
				page += ","
			}
			page += fmt.Sprintf(`{"sha": "sha%d"}`, i)
		}
		return page + "]"
	}

	t.Run("stops at a short page and reports an exact count", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			if r.URL.Query().Get("page") == "1" {
				w.Write([]byte(commitPage(100)))
				return
			}
			w.Write([]byte(commitPage(37)))
		})

		total, lowerBound, err := client.CountCommits(ctx, "test-owner", "test-repo", 3)
		require.NoError(t, err)
		assert.Equal(t, 137, total)
		assert.False(t, lowerBound)
	})

	t.Run("reports a lower bound when the page cap is hit", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(commitPage(100)))
		})

		total, lowerBound, err := client.CountCommits(ctx, "test-owner", "test-repo", 3)
		require.NoError(t, err)
		assert.Equal(t, 300, total)
		assert.True(t, lowerBound)
	})

	t.Run("empty repository counts zero", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`[]`))
		})

		total, lowerBound, err := client.CountCommits(ctx, "test-owner", "test-repo", 3)
		require.NoError(t, err)
		assert.Equal(t, 0, total)
		assert.False(t, lowerBound)
	})
}

func TestClient_ListRecentCommits(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/test-owner/test-repo/commits", r.URL.Path)
		assert.Equal(t, "5", r.URL.Query().Get("per_page"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[
			{
				"sha": "abc123",
				"commit": {
					"message": "Fix timeout handling\n\nLonger body here.",
					"author": {"name": "Test Author", "date": "2024-03-01T12:00:00Z"}
				},
				"author": {"login": "testauthor", "avatar_url": "https://example.com/a.png"},
				"html_url": "https://github.com/test-owner/test-repo/commit/abc123"
			},
			{
				"sha": "def456",
				"commit": {
					"message": "Initial commit",
					"author": {"name": "Test Author", "date": "2024-02-28T09:30:00Z"}
				},
				"author": null,
				"html_url": "https://github.com/test-owner/test-repo/commit/def456"
			}
		]`))
	})

	commits, err := client.ListRecentCommits(context.Background(), "test-owner", "test-repo", 5)
	require.NoError(t, err)
	require.Len(t, commits, 2)

	assert.Equal(t, "abc123", commits[0].SHA)
	assert.Equal(t, "testauthor", commits[0].AuthorLogin)
	assert.Equal(t, time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC), commits[0].AuthorDate)

	// Commits with no linked GitHub account still carry the git author name.
	assert.Empty(t, commits[1].AuthorLogin)
	assert.Equal(t, "Test Author", commits[1].AuthorName)
}

func TestClient_ListContributors(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	t.Run("paginates and sorts by contributions", func(t *testing.T) {
		server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "true", r.URL.Query().Get("anon"))
			w.WriteHeader(http.StatusOK)
			if r.URL.Query().Get("page") == "1" {
				page := "["
				for i := 0; i < 100; i++ {
					if i > 0 {
						page += ","
					}
					page += fmt.Sprintf(`{"id": %d, "login": "user%d", "contributions": %d}`, i, i, i)
				}
				w.Write([]byte(page + "]"))
				return
			}
			w.Write([]byte(`[{"id": 200, "login": "prolific", "contributions": 999}]`))
		})

		contributors, err := client.ListContributors(context.Background(), "test-owner", "test-repo")
		require.NoError(t, err)
		require.Len(t, contributors, 101)
		assert.Equal(t, "prolific", contributors[0].Login)
		assert.Equal(t, 999, contributors[0].Contributions)
		assert.Equal(t, "user99", contributors[1].Login)
	})
}

func TestClient_SearchCount(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/search/issues", r.URL.Path)
		assert.Equal(t, "repo:test-owner/test-repo is:pr is:merged", r.URL.Query().Get("q"))
		assert.Equal(t, "1", r.URL.Query().Get("per_page"))

		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"total_count": 42, "items": [{}]}`))
	})

	count, err := client.CountPullRequests(context.Background(), "test-owner", "test-repo", "merged")
	require.NoError(t, err)
	assert.Equal(t, 42, count)
}

func TestClient_GetLanguages(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/test-owner/test-repo/languages", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"Go": 12345, "Makefile": 200}`))
	})

	languages, err := client.GetLanguages(context.Background(), "test-owner", "test-repo")
	require.NoError(t, err)
	assert.Equal(t, map[string]int64{"Go": 12345, "Makefile": 200}, languages)
}

func TestClient_ListBranches(t *testing.T) {
	client, server, cleanup := setupTestClient(t)
	defer cleanup()

	server.Config.Handler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/test-owner/test-repo/branches", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`[
			{"name": "main", "commit": {"sha": "abc"}, "protected": true},
			{"name": "feature/x", "commit": {"sha": "def"}, "protected": false}
		]`))
	})

	branches, err := client.ListBranches(context.Background(), "test-owner", "test-repo")
	require.NoError(t, err)
	require.Len(t, branches, 2)
	assert.Equal(t, "main", branches[0].Name)
	assert.Equal(t, "abc", branches[0].SHA)
	assert.True(t, branches[0].Protected)
}
