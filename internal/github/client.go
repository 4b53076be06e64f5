// Package github is a minimal wrapper around GitHub's REST API v3.
// It is intentionally light—just the three endpoints the gateway proxies.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/Shariq7739/GitExplore/internal/models"
	"github.com/Shariq7739/GitExplore/internal/retry"
)

const defaultBaseURL = "https://api.github.com"

// APIError is a non-2xx upstream response. The gateway maps StatusCode onto
// its own responses; Body is logged server-side only.
type APIError struct {
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github: unexpected status %d", e.StatusCode)
}

// Client calls the GitHub REST API with a bearer token.
type Client struct {
	http    *http.Client
	token   string
	baseURL string
	nowFunc func() time.Time
}

// NewClient returns a ready-to-use GitHub API client. token may be an empty
// string, but you will be subject to very low rate-limits.
func NewClient(token string) *Client {
	return &Client{
		http:    &http.Client{Timeout: 10 * time.Second},
		token:   token,
		baseURL: defaultBaseURL,
		nowFunc: time.Now,
	}
}

// NewClientWithBaseURL points the client at a fake upstream. Test use only.
func NewClientWithBaseURL(token, baseURL string) *Client {
	c := NewClient(token)
	c.baseURL = baseURL
	return c
}

// GetRepository fetches a single repository by owner and name.
func (c *Client) GetRepository(ctx context.Context, owner, repo string) (*models.Repository, error) {
	u := fmt.Sprintf("%s/repos/%s/%s", c.baseURL, url.PathEscape(owner), url.PathEscape(repo))

	var out models.Repository
	if err := c.get(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchRepositories runs a repository text search for one page of results.
func (c *Client) SearchRepositories(ctx context.Context, query string, page, perPage int) (*models.SearchResult, error) {
	u := fmt.Sprintf("%s/search/repositories?q=%s&page=%d&per_page=%d",
		c.baseURL, url.QueryEscape(query), page, perPage)

	var out models.SearchResult
	if err := c.get(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// SearchTrending approximates GitHub trending: repositories created within
// the last calendar month, ordered by stars descending.
func (c *Client) SearchTrending(ctx context.Context, page, perPage int) (*models.SearchResult, error) {
	since := c.nowFunc().AddDate(0, -1, 0).Format("2006-01-02")
	query := fmt.Sprintf("created:>%s", since)

	u := fmt.Sprintf("%s/search/repositories?q=%s&sort=stars&order=desc&page=%d&per_page=%d",
		c.baseURL, url.QueryEscape(query), page, perPage)

	var out models.SearchResult
	if err := c.get(ctx, u, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// get executes a GET and decodes JSON into v. Rate-limited responses
// (403/429) are retried with exponential backoff; everything else fails on
// the first attempt.
func (c *Client) get(ctx context.Context, u string, v interface{}) error {
	return retry.Do(ctx, func() error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
		if err != nil {
			return retry.Permanent(err)
		}
		c.addHeaders(req)

		resp, err := c.http.Do(req)
		if err != nil {
			return retry.Permanent(err)
		}
		defer resp.Body.Close()

		if resp.StatusCode < 200 || resp.StatusCode >= 300 {
			body, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
			apiErr := &APIError{StatusCode: resp.StatusCode, Body: string(body)}
			if resp.StatusCode == http.StatusForbidden || resp.StatusCode == http.StatusTooManyRequests {
				logRateLimit(resp)
				return apiErr
			}
			return retry.Permanent(apiErr)
		}

		if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
			return retry.Permanent(fmt.Errorf("github: decode response: %w", err))
		}
		return nil
	}, retry.WithMaxRetries(2), retry.WithInitialDelay(time.Second), retry.WithMaxDelay(15*time.Second))
}

// addHeaders sets authentication and Accept headers.
func (c *Client) addHeaders(req *http.Request) {
	req.Header.Set("Accept", "application/vnd.github.v3+json")
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	req.Header.Set("User-Agent", "gitexplore-api")
}

// logRateLimit surfaces the upstream rate-limit state before a retry.
func logRateLimit(resp *http.Response) {
	remaining := resp.Header.Get("X-RateLimit-Remaining")
	reset := resp.Header.Get("X-RateLimit-Reset")
	if remaining == "" && reset == "" {
		return
	}
	var until time.Duration
	if ts, err := strconv.ParseInt(reset, 10, 64); err == nil {
		until = time.Until(time.Unix(ts, 0)).Round(time.Second)
	}
	log.Printf("GitHub rate limit hit: remaining=%s reset_in=%s", remaining, until)
}
