// Package memory provides an in-memory driven.ConfigStore. It backs the
// --no-config mode of the CLI and tests that must not touch ~/.precis.
package memory

import (
	"sync"

	"github.com/custodia-labs/precis-cli/internal/adapters/driven/config"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// Path is the pseudo path reported by ConfigStore.
const Path = ":memory:"

// ConfigStore keeps settings in a map. Save and Load are no-ops, so values
// live as long as the store.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

func NewConfigStore() *ConfigStore {
	return &ConfigStore{values: make(map[string]any)}
}

func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

func (s *ConfigStore) value(key string) any {
	v, _ := s.Get(key)
	return v
}

func (s *ConfigStore) GetString(key string) string { return config.String(s.value(key)) }

func (s *ConfigStore) GetInt(key string) int { return config.Int(s.value(key)) }

func (s *ConfigStore) GetFloat(key string) float64 { return config.Float(s.value(key)) }

func (s *ConfigStore) GetBool(key string) bool { return config.Bool(s.value(key)) }

func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

func (s *ConfigStore) Save() error { return nil }

func (s *ConfigStore) Load() error { return nil }

func (s *ConfigStore) Path() string { return Path }
