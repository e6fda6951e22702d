package file

import (
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/custodia-labs/precis-cli/internal/adapters/driven/config"
	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

const (
	// DirName is the config directory created under the user's home.
	DirName = ".precis"

	// FileName is the name of the configuration file.
	FileName = "config.toml"
)

// ConfigStore is a file-based implementation of driven.ConfigStore using TOML.
type ConfigStore struct {
	mu       sync.RWMutex
	filePath string
	data     map[string]any
}

// DefaultDir returns ~/.precis.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, DirName), nil
}

// NewConfigStore creates a TOML-backed config store in configDir.
// If configDir is empty, defaults to ~/.precis/config.toml.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		dir, err := DefaultDir()
		if err != nil {
			return nil, err
		}
		configDir = dir
	}

	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, err
	}

	s := &ConfigStore{
		filePath: filepath.Join(configDir, FileName),
		data:     make(map[string]any),
	}

	if err := s.Load(); err != nil {
		return nil, err
	}

	return s, nil
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	val, ok := s.data[key]
	return val, ok
}

func (s *ConfigStore) value(key string) any {
	v, _ := s.Get(key)
	return v
}

// GetString retrieves a string configuration value.
func (s *ConfigStore) GetString(key string) string { return config.String(s.value(key)) }

// GetInt retrieves an integer configuration value. TOML integers decode as int64.
func (s *ConfigStore) GetInt(key string) int { return config.Int(s.value(key)) }

// GetFloat retrieves a floating point configuration value.
func (s *ConfigStore) GetFloat(key string) float64 { return config.Float(s.value(key)) }

// GetBool retrieves a boolean configuration value.
func (s *ConfigStore) GetBool(key string) bool { return config.Bool(s.value(key)) }

// Set stores a configuration value and persists immediately.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = value
	return s.save()
}

// Save persists the current configuration to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.save()
}

// save writes the TOML file. Caller must hold the lock.
func (s *ConfigStore) save() error {
	data, err := toml.Marshal(nest(s.data))
	if err != nil {
		return err
	}
	return os.WriteFile(s.filePath, data, 0600)
}

// Load reads configuration from the TOML file. A missing file yields an
// empty configuration.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := os.ReadFile(s.filePath)
	if os.IsNotExist(err) {
		s.data = make(map[string]any)
		return nil
	}
	if err != nil {
		return err
	}

	var loaded map[string]any
	if err := toml.Unmarshal(data, &loaded); err != nil {
		return err
	}

	s.data = make(map[string]any)
	flatten(loaded, "", s.data)
	return nil
}

// Path returns the configuration file path.
func (s *ConfigStore) Path() string {
	return s.filePath
}

// flatten copies nested tables into out under dotted keys.
// {"summary": {"sentences": 6}} becomes {"summary.sentences": 6}.
func flatten(m map[string]any, prefix string, out map[string]any) {
	for key, value := range m {
		if prefix != "" {
			key = prefix + "." + key
		}
		if nested, ok := value.(map[string]any); ok {
			flatten(nested, key, out)
			continue
		}
		out[key] = value
	}
}

// nest is the inverse of flatten. When a key is both a value and a table
// prefix, the value wins.
func nest(flat map[string]any) map[string]any {
	root := make(map[string]any)

keys:
	for key, value := range flat {
		parts := strings.Split(key, ".")
		table := root
		for _, part := range parts[:len(parts)-1] {
			existing, present := table[part]
			if !present {
				next := make(map[string]any)
				table[part] = next
				table = next
				continue
			}
			next, isTable := existing.(map[string]any)
			if !isTable {
				continue keys
			}
			table = next
		}
		table[parts[len(parts)-1]] = value
	}
	return root
}
