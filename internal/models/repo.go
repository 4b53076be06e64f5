package models

// Owner is the subset of a GitHub user we surface on repository cards.
type Owner struct {
	Login     string `json:"login"`
	ID        int64  `json:"id"`
	AvatarURL string `json:"avatar_url"`
	HTMLURL   string `json:"html_url"`
}

// License identifies a repository license. Key is what filtering matches on
// (e.g. "mit", "apache-2.0").
type License struct {
	Key    string `json:"key"`
	Name   string `json:"name"`
	SpdxID string `json:"spdx_id"`
	URL    string `json:"url,omitempty"`
}

// Repository mirrors the GitHub REST repository shape, trimmed to the fields
// the explorer renders, filters and sorts on. The numeric ID is the sole key
// for bookmarks, notes and de-duplication. Instances are never mutated after
// decoding; bookmarked copies outlive the fetch that produced them.
type Repository struct {
	ID              int64    `json:"id"`
	Name            string   `json:"name"`
	FullName        string   `json:"full_name"`
	Owner           Owner    `json:"owner"`
	HTMLURL         string   `json:"html_url"`
	Description     string   `json:"description"`
	StargazersCount int      `json:"stargazers_count"`
	WatchersCount   int      `json:"watchers_count"`
	ForksCount      int      `json:"forks_count"`
	OpenIssuesCount int      `json:"open_issues_count"`
	Language        string   `json:"language,omitempty"`
	CreatedAt       string   `json:"created_at"`
	UpdatedAt       string   `json:"updated_at"`
	PushedAt        string   `json:"pushed_at"`
	License         *License `json:"license"`
	Size            int      `json:"size"`
	Topics          []string `json:"topics"`
}

// SearchResult is one page of a repository search. TotalCount is the
// upstream-reported total and may exceed len(Items); pages are independent
// and never cached.
type SearchResult struct {
	TotalCount        int          `json:"total_count"`
	IncompleteResults bool         `json:"incomplete_results"`
	Items             []Repository `json:"items"`
}
