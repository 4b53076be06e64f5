package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteSaveThenGetReturnsExactContent(t *testing.T) {
	db := openTestDB(t)
	n := &recorder{}
	s := NewNoteStore(db, n)

	s.Save(42, "react", "## Ideas\n\nTry the new compiler.")

	got, ok := s.Get(42)
	assert.True(t, ok)
	assert.Equal(t, "## Ideas\n\nTry the new compiler.", got)
	assert.True(t, s.Has(42))
	assert.Equal(t, []string{"Note saved"}, n.successes)
}

func TestNoteDeleteRemovesTheKey(t *testing.T) {
	db := openTestDB(t)
	s := NewNoteStore(db, &recorder{})

	s.Save(42, "react", "something")
	s.Delete(42, "react")

	got, ok := s.Get(42)
	assert.False(t, ok)
	assert.Empty(t, got)
	assert.False(t, s.Has(42))
}

func TestNoteEmptyStringIsDistinctFromAbsent(t *testing.T) {
	db := openTestDB(t)
	s := NewNoteStore(db, &recorder{})

	s.Save(42, "react", "")

	got, ok := s.Get(42)
	assert.True(t, ok)
	assert.Equal(t, "", got)
	assert.True(t, s.Has(42))
	assert.False(t, s.Has(43))
}

func TestNoteSaveIsAnUpsert(t *testing.T) {
	db := openTestDB(t)
	s := NewNoteStore(db, &recorder{})

	s.Save(42, "react", "first")
	s.Save(42, "react", "second")

	got, _ := s.Get(42)
	assert.Equal(t, "second", got)
}

func TestNoteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gitexplore.db")

	db, err := Open(path)
	require.NoError(t, err)
	NewNoteStore(db, &recorder{}).Save(42, "react", "persisted")
	require.NoError(t, db.Close())

	db, err = Open(path)
	require.NoError(t, err)
	defer db.Close()

	got, ok := NewNoteStore(db, &recorder{}).Get(42)
	assert.True(t, ok)
	assert.Equal(t, "persisted", got)
}

func TestNoteDeleteAbsentIsSilentNoOp(t *testing.T) {
	db := openTestDB(t)
	n := &recorder{}
	s := NewNoteStore(db, n)

	s.Delete(999, "ghost")

	assert.Empty(t, n.successes)
}

func TestNotesAndBookmarksDoNotCollide(t *testing.T) {
	db := openTestDB(t)
	notes := NewNoteStore(db, &recorder{})
	bookmarks := NewBookmarkStore(db, &recorder{})

	notes.Save(42, "react", "a note")
	assert.False(t, bookmarks.IsBookmarked(42))

	reloaded := NewNoteStore(db, &recorder{})
	got, ok := reloaded.Get(42)
	assert.True(t, ok)
	assert.Equal(t, "a note", got)
}
