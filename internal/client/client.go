// Package client is the data service behind the explorer UI. It attempts the
// live gateway and transparently substitutes the bundled static dataset on
// any failure, so the UI stays usable without network or credentials.
package client

import (
	"context"
	"errors"
	"log"

	"github.com/Shariq7739/GitExplore/internal/models"
)

// Service composes the live and static tiers. Callers cannot distinguish the
// tiers by return shape—only by the logged warning.
type Service struct {
	live   Source
	static Source
}

// NewService builds a Service against the gateway at baseURL.
func NewService(baseURL string) *Service {
	return &Service{live: newAPISource(baseURL), static: staticSource{}}
}

// NewServiceWithSources lets tests force either tier deterministically.
func NewServiceWithSources(live, static Source) *Service {
	return &Service{live: live, static: static}
}

// Trending returns one page of trending repositories, degrading to a slice of
// the static dataset when the live call fails.
func (s *Service) Trending(ctx context.Context, page, perPage int) ([]models.Repository, error) {
	repos, err := s.live.Trending(ctx, page, perPage)
	if err != nil {
		log.Printf("Warning: trending fetch failed, falling back to bundled data: %v", err)
		return s.static.Trending(ctx, page, perPage)
	}
	return repos, nil
}

// Search returns one page of search results. An empty query resolves to an
// empty result without touching the network. On live failure the static
// dataset is searched with the same substring-and-paginate semantics.
func (s *Service) Search(ctx context.Context, query string, page, perPage int) (models.SearchResult, error) {
	if query == "" {
		return models.SearchResult{Items: []models.Repository{}}, nil
	}

	result, err := s.live.Search(ctx, query, page, perPage)
	if err != nil {
		log.Printf("Warning: search failed, falling back to bundled data: %v", err)
		return s.static.Search(ctx, query, page, perPage)
	}
	return result, nil
}

// Repo looks up a single repository. A live not-found is surfaced as
// ErrNotFound, not treated as degradation; any other failure consults the
// static dataset by exact full name.
func (s *Service) Repo(ctx context.Context, owner, repo string) (models.Repository, error) {
	r, err := s.live.Repo(ctx, owner, repo)
	if err == nil {
		return r, nil
	}
	if errors.Is(err, ErrNotFound) {
		return models.Repository{}, ErrNotFound
	}

	log.Printf("Warning: repository lookup failed, falling back to bundled data: %v", err)
	return s.static.Repo(ctx, owner, repo)
}
