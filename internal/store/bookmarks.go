package store

import (
	"fmt"
	"log"
	"sync"

	"github.com/Shariq7739/GitExplore/internal/models"
	"github.com/Shariq7739/GitExplore/internal/notify"
)

// BookmarkStore keeps full repository snapshots keyed by id, so a bookmark
// survives the repository dropping out of live results. At most one entry per
// id. Mutations update memory first, then persist the whole record; a failed
// write is reported but never rolled back.
type BookmarkStore struct {
	db       *DB
	notifier notify.Notifier

	mu    sync.RWMutex
	repos []models.Repository
	byID  map[int64]int
}

// NewBookmarkStore loads the persisted record. A read or parse failure is
// logged and the store starts empty; it never fails the caller.
func NewBookmarkStore(db *DB, notifier notify.Notifier) *BookmarkStore {
	s := &BookmarkStore{db: db, notifier: notifier, byID: map[int64]int{}}

	var persisted []models.Repository
	if err := db.loadRecord(bookmarksKey, &persisted); err != nil {
		log.Printf("Failed to load bookmarks from storage: %v", err)
	} else {
		s.repos = persisted
		for i, r := range persisted {
			s.byID[r.ID] = i
		}
	}
	return s
}

// Add bookmarks repo, replacing any existing snapshot with the same id.
func (s *BookmarkStore) Add(repo models.Repository) {
	s.mu.Lock()
	if i, ok := s.byID[repo.ID]; ok {
		s.repos[i] = repo
	} else {
		s.byID[repo.ID] = len(s.repos)
		s.repos = append(s.repos, repo)
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.Success("Bookmarked!", fmt.Sprintf("Saved %q to your bookmarks.", repo.Name))
}

// Remove drops the bookmark with the given id. Removing an absent id is a
// no-op and emits no notification.
func (s *BookmarkStore) Remove(id int64) {
	s.mu.Lock()
	i, ok := s.byID[id]
	if !ok {
		s.mu.Unlock()
		return
	}
	name := s.repos[i].Name
	s.repos = append(s.repos[:i], s.repos[i+1:]...)
	delete(s.byID, id)
	for j := i; j < len(s.repos); j++ {
		s.byID[s.repos[j].ID] = j
	}
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.Success("Bookmark removed", fmt.Sprintf("Removed %q from your bookmarks.", name))
}

// IsBookmarked is a pure lookup with no side effects.
func (s *BookmarkStore) IsBookmarked(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.byID[id]
	return ok
}

// All returns the bookmarked snapshots in insertion order.
func (s *BookmarkStore) All() []models.Repository {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Repository, len(s.repos))
	copy(out, s.repos)
	return out
}

// Len reports the number of bookmarks.
func (s *BookmarkStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.repos)
}

// persistLocked writes the full record. On failure memory and durable state
// diverge until the next successful write; the user is told, nothing rolls
// back.
func (s *BookmarkStore) persistLocked() {
	if err := s.db.saveRecord(bookmarksKey, s.repos); err != nil {
		log.Printf("Failed to save bookmarks to storage: %v", err)
		s.notifier.Error("Error", "Could not save bookmarks. Your local storage might be full.")
	}
}
