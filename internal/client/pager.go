package client

import (
	"context"
	"errors"
	"sync"

	"github.com/Shariq7739/GitExplore/internal/models"
)

// ErrLoadInProgress rejects a load-more issued while one is outstanding, so a
// double click cannot produce two overlapping page fetches.
var ErrLoadInProgress = errors.New("page load already in progress")

// TrendingFunc fetches one page of trending repositories.
type TrendingFunc func(ctx context.Context, page, perPage int) ([]models.Repository, error)

// Pager steps through trending pages one at a time.
type Pager struct {
	fetch   TrendingFunc
	perPage int

	mu       sync.Mutex
	page     int
	inFlight bool
	hasMore  bool
}

// NewPager returns a Pager starting before the first page.
func NewPager(fetch TrendingFunc, perPage int) *Pager {
	if perPage < 1 {
		perPage = 9
	}
	return &Pager{fetch: fetch, perPage: perPage, hasMore: true}
}

// LoadMore fetches the next page. An empty page marks the pager exhausted.
func (p *Pager) LoadMore(ctx context.Context) ([]models.Repository, error) {
	p.mu.Lock()
	if p.inFlight {
		p.mu.Unlock()
		return nil, ErrLoadInProgress
	}
	p.inFlight = true
	next := p.page + 1
	p.mu.Unlock()

	repos, err := p.fetch(ctx, next, p.perPage)

	p.mu.Lock()
	defer p.mu.Unlock()
	p.inFlight = false
	if err != nil {
		return nil, err
	}
	p.page = next
	if len(repos) == 0 {
		p.hasMore = false
	}
	return repos, nil
}

// HasMore reports whether another page may exist.
func (p *Pager) HasMore() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.hasMore
}

// Reset rewinds the pager to before the first page.
func (p *Pager) Reset() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.page = 0
	p.hasMore = true
}
