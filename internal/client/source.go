package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/Shariq7739/GitExplore/internal/fallback"
	"github.com/Shariq7739/GitExplore/internal/models"
)

// ErrNotFound reports that a repository does not exist. It is a distinct
// outcome, never a trigger for fallback substitution.
var ErrNotFound = errors.New("repository not found")

// Source is one tier of repository data. The live tier talks to the gateway;
// the static tier serves the bundled dataset with identical semantics.
type Source interface {
	Trending(ctx context.Context, page, perPage int) ([]models.Repository, error)
	Search(ctx context.Context, query string, page, perPage int) (models.SearchResult, error)
	Repo(ctx context.Context, owner, repo string) (models.Repository, error)
}

// apiSource fetches from the gateway's internal HTTP surface.
type apiSource struct {
	http    *http.Client
	baseURL string
}

func newAPISource(baseURL string) *apiSource {
	return &apiSource{
		http:    &http.Client{Timeout: 10 * time.Second},
		baseURL: baseURL,
	}
}

func (s *apiSource) Trending(ctx context.Context, page, perPage int) ([]models.Repository, error) {
	u := fmt.Sprintf("%s/api/v1/github/trending?page=%d&per_page=%d", s.baseURL, page, perPage)

	var out struct {
		Items []models.Repository `json:"items"`
	}
	if err := s.get(ctx, u, &out); err != nil {
		return nil, err
	}
	return out.Items, nil
}

func (s *apiSource) Search(ctx context.Context, query string, page, perPage int) (models.SearchResult, error) {
	u := fmt.Sprintf("%s/api/v1/github/search?q=%s&page=%d&per_page=%d",
		s.baseURL, url.QueryEscape(query), page, perPage)

	var out models.SearchResult
	if err := s.get(ctx, u, &out); err != nil {
		return models.SearchResult{}, err
	}
	return out, nil
}

func (s *apiSource) Repo(ctx context.Context, owner, repo string) (models.Repository, error) {
	u := fmt.Sprintf("%s/api/v1/github/repo?owner=%s&repo=%s",
		s.baseURL, url.QueryEscape(owner), url.QueryEscape(repo))

	var out models.Repository
	if err := s.get(ctx, u, &out); err != nil {
		return models.Repository{}, err
	}
	return out, nil
}

func (s *apiSource) get(ctx context.Context, u string, v interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return err
	}

	resp, err := s.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		var body struct {
			Message string `json:"message"`
		}
		_ = json.NewDecoder(resp.Body).Decode(&body)
		return fmt.Errorf("gateway: status %d: %s", resp.StatusCode, body.Message)
	}

	return json.NewDecoder(resp.Body).Decode(v)
}

// staticSource serves the bundled dataset. Its calls never fail.
type staticSource struct{}

func (staticSource) Trending(_ context.Context, page, perPage int) ([]models.Repository, error) {
	return fallback.Trending(page, perPage), nil
}

func (staticSource) Search(_ context.Context, query string, page, perPage int) (models.SearchResult, error) {
	return fallback.Search(query, page, perPage), nil
}

func (staticSource) Repo(_ context.Context, owner, repo string) (models.Repository, error) {
	r, ok := fallback.Find(owner, repo)
	if !ok {
		return models.Repository{}, ErrNotFound
	}
	return r, nil
}
