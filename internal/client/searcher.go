package client

import (
	"context"
	"sync"
	"time"

	"github.com/Shariq7739/GitExplore/internal/models"
)

// DefaultDebounce is the keystroke debounce applied before a search fires.
const DefaultDebounce = 300 * time.Millisecond

// SearchFunc performs one page of a search.
type SearchFunc func(ctx context.Context, query string, page, perPage int) (models.SearchResult, error)

// Outcome is a delivered search response.
type Outcome struct {
	Query  string
	Result models.SearchResult
	Err    error
}

// Searcher debounces queries and guards against overlapping responses: each
// outgoing request carries a monotonically increasing sequence number, the
// context of a superseded request is cancelled, and a response is delivered
// only if its sequence is still the latest issued. A slow early response can
// therefore never overwrite a later one.
type Searcher struct {
	search  SearchFunc
	deliver func(Outcome)
	delay   time.Duration
	perPage int

	mu     sync.Mutex
	seq    uint64
	timer  *time.Timer
	cancel context.CancelFunc
	closed bool
}

// NewSearcher wires a debounced searcher. deliver is invoked from a worker
// goroutine with the outcome of the latest query only.
func NewSearcher(search SearchFunc, delay time.Duration, perPage int, deliver func(Outcome)) *Searcher {
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if perPage < 1 {
		perPage = 9
	}
	return &Searcher{search: search, deliver: deliver, delay: delay, perPage: perPage}
}

// Query schedules a search for q after the debounce delay, superseding any
// pending or in-flight query. An empty q resolves immediately to an empty
// outcome without a fetch.
func (s *Searcher) Query(q string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}

	s.supersedeLocked()

	if q == "" {
		seq := s.seq
		go s.finish(seq, Outcome{Query: q, Result: models.SearchResult{Items: []models.Repository{}}})
		return
	}

	seq := s.seq
	s.timer = time.AfterFunc(s.delay, func() {
		s.fire(seq, q)
	})
}

// Close cancels any pending timer and in-flight request.
func (s *Searcher) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.supersedeLocked()
	s.closed = true
}

// supersedeLocked invalidates the previous query: bumps the sequence, stops
// the debounce timer and cancels the in-flight context.
func (s *Searcher) supersedeLocked() {
	s.seq++
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
}

// fire issues the fetch for seq unless it has already been superseded.
func (s *Searcher) fire(seq uint64, q string) {
	s.mu.Lock()
	if seq != s.seq || s.closed {
		s.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	s.cancel = cancel
	s.mu.Unlock()

	result, err := s.search(ctx, q, 1, s.perPage)
	cancel()
	s.finish(seq, Outcome{Query: q, Result: result, Err: err})
}

// finish delivers the outcome if seq is still the latest issued.
func (s *Searcher) finish(seq uint64, out Outcome) {
	s.mu.Lock()
	stale := seq != s.seq || s.closed
	s.mu.Unlock()
	if stale {
		return
	}
	s.deliver(out)
}
