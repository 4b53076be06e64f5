// Package store persists bookmarks and notes to a local bbolt file, the
// durable equivalent of the browser's localStorage: one JSON record per fixed
// key, rewritten in full on every mutation.
package store

import (
	"encoding/json"
	"fmt"

	bolt "go.etcd.io/bbolt"
)

const bucketName = "gitexplore"

// Fixed record keys, one per store.
const (
	bookmarksKey = "gitexplore-bookmarks"
	notesKey     = "gitexplore-notes"
)

// DB is a handle on the local storage file shared by both stores.
type DB struct {
	bolt *bolt.DB
}

// Open opens (or creates) the storage file at path.
func Open(path string) (*DB, error) {
	db, err := bolt.Open(path, 0o600, nil)
	if err != nil {
		return nil, fmt.Errorf("store: open %s: %w", path, err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists([]byte(bucketName))
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("store: create bucket: %w", err)
	}
	return &DB{bolt: db}, nil
}

// Close releases the storage file.
func (d *DB) Close() error {
	return d.bolt.Close()
}

// loadRecord reads and unmarshals the record under key. A missing record is
// not an error; v is left untouched.
func (d *DB) loadRecord(key string, v interface{}) error {
	return d.bolt.View(func(tx *bolt.Tx) error {
		raw := tx.Bucket([]byte(bucketName)).Get([]byte(key))
		if raw == nil {
			return nil
		}
		return json.Unmarshal(raw, v)
	})
}

// saveRecord marshals v and writes it under key synchronously.
func (d *DB) saveRecord(key string, v interface{}) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return d.bolt.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(bucketName)).Put([]byte(key), raw)
	})
}
