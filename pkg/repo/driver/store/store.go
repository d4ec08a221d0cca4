package store

import (
	"encoding/json"
	"sync"

	log "github.com/sirupsen/logrus"
)

// Store is the synchronous key-value persistence substrate. Get reports
// whether the key was present and decoded; Set persists the value under key.
// Serialization failures never propagate: they are logged at this boundary and
// callers observe an absent value or a dropped write.
type Store interface {
	Get(key string, out interface{}) bool
	Set(key string, value interface{})
}

// MemoryStore keeps values in process memory only. Used in tests and as the
// fallback when the backing file cannot be opened.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]json.RawMessage
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]json.RawMessage)}
}

func (s *MemoryStore) Get(key string, out interface{}) bool {
	s.mu.RLock()
	raw, ok := s.data[key]
	s.mu.RUnlock()
	if !ok {
		return false
	}

	if err := json.Unmarshal(raw, out); err != nil {
		log.WithError(err).Errorf("failed to decode stored value for key %s", key)
		return false
	}
	return true
}

func (s *MemoryStore) Set(key string, value interface{}) {
	raw, err := json.Marshal(value)
	if err != nil {
		log.WithError(err).Errorf("failed to encode value for key %s", key)
		return
	}

	s.mu.Lock()
	s.data[key] = raw
	s.mu.Unlock()
}
