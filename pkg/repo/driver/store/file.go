package store

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	log "github.com/sirupsen/logrus"
)

// FileStore persists the whole key space as a single JSON document. The
// document is read once at open; every Set rewrites it in full. There is no
// locking against other processes: a second writer sharing the file silently
// wins or loses whole writes.
type FileStore struct {
	mu   sync.Mutex
	path string
	data map[string]json.RawMessage
}

func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{
		path: path,
		data: make(map[string]json.RawMessage),
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, err
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return s, nil
		}
		return nil, err
	}

	if len(raw) > 0 {
		if err = json.Unmarshal(raw, &s.data); err != nil {
			log.WithError(err).Errorf("store file %s is corrupt, starting empty", path)
			s.data = make(map[string]json.RawMessage)
		}
	}

	return s, nil
}

func (s *FileStore) Get(key string, out interface{}) bool {
	s.mu.Lock()
	raw, ok := s.data[key]
	s.mu.Unlock()
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.WithError(err).Errorf("failed to decode stored value for key %s", key)
		return false
	}
	return true
}

func (s *FileStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).Errorf("failed to encode value for key %s", key)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = raw
	s.flush()
}

func (s *FileStore) flush() {
	doc, err := json.Marshal(s.data)
	if err != nil {
		log.WithError(err).Error("failed to encode store document")
		return
	}

	if err = os.WriteFile(s.path, doc, 0o644); err != nil {
		log.WithError(err).Errorf("failed to write store file %s", s.path)
	}
}
