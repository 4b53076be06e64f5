package store

import (
	"fmt"
	"log"
	"sync"

	"github.com/Shariq7739/GitExplore/internal/notify"
)

// NoteStore maps repository ids to rich-text note markup. An absent key means
// "no note", which is distinct from an empty-string note.
type NoteStore struct {
	db       *DB
	notifier notify.Notifier

	mu    sync.RWMutex
	notes map[int64]string
}

// NewNoteStore loads the persisted record, starting empty on any failure.
func NewNoteStore(db *DB, notifier notify.Notifier) *NoteStore {
	s := &NoteStore{db: db, notifier: notifier, notes: map[int64]string{}}

	persisted := map[int64]string{}
	if err := db.loadRecord(notesKey, &persisted); err != nil {
		log.Printf("Failed to load notes from storage: %v", err)
	} else {
		s.notes = persisted
	}
	return s
}

// Save upserts the note for the repository. repoName is only used in the
// confirmation notification.
func (s *NoteStore) Save(repoID int64, repoName, content string) {
	s.mu.Lock()
	s.notes[repoID] = content
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.Success("Note saved", fmt.Sprintf("Your note for %q has been saved.", repoName))
}

// Get returns the note for the repository, reporting whether one exists.
func (s *NoteStore) Get(repoID int64) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	content, ok := s.notes[repoID]
	return content, ok
}

// Has is a pure lookup with no side effects.
func (s *NoteStore) Has(repoID int64) bool {
	_, ok := s.Get(repoID)
	return ok
}

// Delete removes the note key entirely. Deleting an absent note is a no-op
// and emits no notification.
func (s *NoteStore) Delete(repoID int64, repoName string) {
	s.mu.Lock()
	if _, ok := s.notes[repoID]; !ok {
		s.mu.Unlock()
		return
	}
	delete(s.notes, repoID)
	s.persistLocked()
	s.mu.Unlock()

	s.notifier.Success("Note deleted", fmt.Sprintf("Your note for %q has been deleted.", repoName))
}

func (s *NoteStore) persistLocked() {
	if err := s.db.saveRecord(notesKey, s.notes); err != nil {
		log.Printf("Failed to save notes to storage: %v", err)
		s.notifier.Error("Error", "Could not save notes. Your local storage might be full.")
	}
}
