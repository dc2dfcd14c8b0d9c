package models

// LanguageShare is one entry of a repository's language byte distribution,
// ready for display (sorted descending by bytes).
type LanguageShare struct {
	Name    string  `json:"name"`
	Bytes   int64   `json:"bytes"`
	Percent float64 `json:"percent"`
}

type PullRequestStats struct {
	Open   int `json:"open"`
	Merged int `json:"merged"`
	// ClosedUnmerged is clamped at zero: the open/closed/merged counts come
	// from independent search queries, not one atomic snapshot, so
	// closed − merged can be transiently negative.
	ClosedUnmerged int `json:"closed_unmerged"`
	TotalClosed    int `json:"total_closed"`
}

type IssueStats struct {
	Open   int `json:"open"`
	Closed int `json:"closed"`
}

// RepoStats is the consolidated repository detail aggregate. Repository is
// load-bearing; every other field carries a documented default when its
// source query failed, and the failed field names land in Degraded.
type RepoStats struct {
	Repository *Repository `json:"repository"`

	// TotalCommits is a lower bound when CommitCountIsLowerBound is set:
	// the paged commit API has no total-count field and the count stops at
	// a bounded number of pages.
	TotalCommits            int  `json:"total_commits"`
	CommitCountIsLowerBound bool `json:"commit_count_is_lower_bound"`

	RecentCommits []*Commit        `json:"recent_commits"`
	Branches      []*Branch        `json:"branches"`
	PullRequests  PullRequestStats `json:"pull_requests"`
	Issues        IssueStats       `json:"issues"`
	Languages     []LanguageShare  `json:"languages"`
	Contributors  []*Contributor   `json:"contributors"`

	// Degraded lists the aggregate fields that fell back to their default
	// because the backing query failed. The page still renders.
	Degraded []string `json:"degraded,omitempty"`
}

// DashboardData is everything the dashboard page needs for one render.
type DashboardData struct {
	User       *User         `json:"user"`
	Repos      []*Repository `json:"repos"`
	TopStarred []*Repository `json:"top_starred"`
	MostActive []*Repository `json:"most_active"`
	MostForked []*Repository `json:"most_forked"`
}
