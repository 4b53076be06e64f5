package explore

import (
	"sync"

	"github.com/Shariq7739/GitExplore/internal/models"
)

// View is one of the four user-selectable display modes.
type View string

const (
	ViewExplore   View = "explore"
	ViewSearch    View = "search"
	ViewAnalytics View = "analytics"
	ViewBookmarks View = "bookmarks"
)

// State holds the page-level lists, filter configuration and active view.
// All mutations go through named transitions; the search worker delivers
// results from its own goroutine, so access is guarded.
type State struct {
	mu         sync.RWMutex
	trending   []models.Repository
	searched   []models.Repository
	bookmarked []models.Repository
	filters    Filters
	view       View
}

// NewState starts on the explore view with default filters.
func NewState() *State {
	return &State{filters: DefaultFilters(), view: ViewExplore}
}

// SetTrending replaces the trending list (a fresh first page).
func (s *State) SetTrending(repos []models.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trending = repos
}

// AppendTrending adds a loaded page to the trending list.
func (s *State) AppendTrending(repos []models.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.trending = append(s.trending, repos...)
}

// SetSearchResults replaces the searched list.
func (s *State) SetSearchResults(repos []models.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.searched = repos
}

// SetBookmarks mirrors the bookmark store into the composer's third source.
func (s *State) SetBookmarks(repos []models.Repository) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bookmarked = repos
}

// SetFilters replaces the filter/sort configuration.
func (s *State) SetFilters(f Filters) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
}

// Filters returns the current filter/sort configuration.
func (s *State) Filters() Filters {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.filters
}

// SetActiveView switches the display mode.
func (s *State) SetActiveView(v View) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.view = v
}

// ActiveView returns the current display mode.
func (s *State) ActiveView() View {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.view
}

// Visible composes the rendered list: exactly one source list for the three
// list views, filtered and sorted. The analytics view instead consumes the
// unfiltered union from AnalyticsInput.
func (s *State) Visible() []models.Repository {
	s.mu.RLock()
	view, filters := s.view, s.filters
	var src []models.Repository
	switch view {
	case ViewSearch:
		src = s.searched
	case ViewBookmarks:
		src = s.bookmarked
	case ViewAnalytics:
		s.mu.RUnlock()
		return s.AnalyticsInput()
	default:
		src = s.trending
	}
	src = append([]models.Repository(nil), src...)
	s.mu.RUnlock()

	return Apply(src, filters)
}

// AnalyticsInput unions all three sources, de-duplicated by id with the first
// occurrence winning (trending, then searched, then bookmarked).
func (s *State) AnalyticsInput() []models.Repository {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[int64]struct{})
	var out []models.Repository
	for _, list := range [][]models.Repository{s.trending, s.searched, s.bookmarked} {
		for _, r := range list {
			if _, ok := seen[r.ID]; ok {
				continue
			}
			seen[r.ID] = struct{}{}
			out = append(out, r)
		}
	}
	return out
}
