package service

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/Shariq7739/GitExplore/internal/github"
	"github.com/Shariq7739/GitExplore/internal/models"
)

// Pagination defaults for search and trending.
const (
	DefaultPage    = 1
	DefaultPerPage = 9
)

// StatusError is a service failure with an HTTP status the handler should
// respond with. Message is the client-facing body; upstream detail is logged
// server-side only.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string { return e.Message }

// ExploreService is the gateway in front of the GitHub REST API: repository
// lookup, text search and trending-via-search.
type ExploreService interface {
	GetRepository(ctx context.Context, owner, repo string) (*models.Repository, error)
	SearchRepositories(ctx context.Context, query string, page, perPage int) (*models.SearchResult, error)
	GetTrending(ctx context.Context, page, perPage int) ([]models.Repository, error)
}

type exploreService struct {
	gh    *github.Client
	token string
}

// NewExploreService returns a concrete implementation. token is the
// server-held GitHub credential; when empty, every call fails with a 500
// before touching upstream.
func NewExploreService(gh *github.Client, token string) ExploreService {
	return &exploreService{gh: gh, token: token}
}

func (s *exploreService) GetRepository(ctx context.Context, owner, repo string) (*models.Repository, error) {
	if err := s.checkToken(); err != nil {
		return nil, err
	}
	if owner == "" || repo == "" {
		return nil, &StatusError{Code: http.StatusBadRequest, Message: "Owner and repo are required"}
	}

	out, err := s.gh.GetRepository(ctx, owner, repo)
	if err != nil {
		return nil, mapUpstreamError(err, true)
	}
	return out, nil
}

func (s *exploreService) SearchRepositories(ctx context.Context, query string, page, perPage int) (*models.SearchResult, error) {
	if err := s.checkToken(); err != nil {
		return nil, err
	}
	// An empty query is a valid request, not an error: respond with an empty
	// result set and skip upstream entirely.
	if query == "" {
		return &models.SearchResult{Items: []models.Repository{}}, nil
	}

	page, perPage = normalizePage(page, perPage)
	out, err := s.gh.SearchRepositories(ctx, query, page, perPage)
	if err != nil {
		return nil, mapUpstreamError(err, false)
	}
	return out, nil
}

func (s *exploreService) GetTrending(ctx context.Context, page, perPage int) ([]models.Repository, error) {
	if err := s.checkToken(); err != nil {
		return nil, err
	}

	page, perPage = normalizePage(page, perPage)
	out, err := s.gh.SearchTrending(ctx, page, perPage)
	if err != nil {
		return nil, mapUpstreamError(err, false)
	}
	if out.Items == nil {
		return []models.Repository{}, nil
	}
	return out.Items, nil
}

func (s *exploreService) checkToken() error {
	if s.token == "" {
		return &StatusError{Code: http.StatusInternalServerError, Message: "GitHub token not configured"}
	}
	return nil
}

func normalizePage(page, perPage int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if perPage < 1 {
		perPage = DefaultPerPage
	}
	return page, perPage
}

// mapUpstreamError translates a GitHub client failure into the response the
// gateway owes its callers. Only the single-repository lookup treats an
// upstream 404 as a domain "not found".
func mapUpstreamError(err error, mapNotFound bool) error {
	var apiErr *github.APIError
	if errors.As(err, &apiErr) {
		if mapNotFound && apiErr.StatusCode == http.StatusNotFound {
			return &StatusError{Code: http.StatusNotFound, Message: "Repository not found"}
		}
		log.Printf("GitHub API error (status %d): %s", apiErr.StatusCode, apiErr.Body)
		return &StatusError{Code: apiErr.StatusCode, Message: "Failed to fetch from GitHub API"}
	}

	log.Printf("GitHub request failed: %v", err)
	return &StatusError{Code: http.StatusInternalServerError, Message: "Internal Server Error"}
}
