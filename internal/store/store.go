// Package store is a file-backed key-value store for named JSON blobs,
// standing in for the browser localStorage the dashboard state lives in.
// Every write is stamped with the current time so callers can apply
// their own freshness rules. All storage failures (missing file, corrupt
// JSON, unwritable dir) degrade to an absent value or a dropped write -
// they are logged and never propagated.
package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

type Store interface {
	// Get unmarshals the blob under key into dest and reports its age.
	// ok is false when the key is absent or unreadable.
	Get(key string, dest interface{}) (age time.Duration, ok bool)
	Set(key string, value interface{})
	Delete(key string)
}

type envelope struct {
	StoredAt time.Time       `json:"storedAt"`
	Value    json.RawMessage `json:"value"`
}

type FileStore struct {
	dir string
	log *zap.SugaredLogger

	// single-writer discipline: the history log and alert list are
	// read-modify-write blobs, so concurrent triggers must not interleave
	mu sync.Mutex
}

func NewFileStore(dir string, log *zap.SugaredLogger) *FileStore {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		log.Warnf("could not create state dir %s: %v", dir, err)
	}
	return &FileStore{
		dir: dir,
		log: log,
	}
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, dest interface{}) (time.Duration, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	bytes, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return 0, false
	} else if err != nil {
		s.log.Warnf("could not read %s: %v", key, err)
		return 0, false
	}

	var env envelope
	if err := json.Unmarshal(bytes, &env); err != nil {
		s.log.Warnf("corrupt blob %s, treating as empty: %v", key, err)
		return 0, false
	}
	if err := json.Unmarshal(env.Value, dest); err != nil {
		s.log.Warnf("corrupt blob %s, treating as empty: %v", key, err)
		return 0, false
	}

	return time.Since(env.StoredAt), true
}

func (s *FileStore) Set(key string, value interface{}) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := json.Marshal(value)
	if err != nil {
		s.log.Warnf("could not marshal %s: %v", key, err)
		return
	}
	bytes, err := json.Marshal(envelope{
		StoredAt: time.Now().UTC(),
		Value:    raw,
	})
	if err != nil {
		s.log.Warnf("could not marshal %s: %v", key, err)
		return
	}

	if err := os.WriteFile(s.path(key), bytes, 0o644); err != nil {
		s.log.Warnf("could not write %s: %v", key, err)
	}
}

func (s *FileStore) Delete(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path(key)); err != nil && !os.IsNotExist(err) {
		s.log.Warnf("could not delete %s: %v", key, err)
	}
}
