// Package env overlays environment variables on another config store.
//
// A key such as "summary.sentences" is read from PRECIS_SUMMARY_SENTENCES
// when that variable is set. Variables may also come from a .env file,
// loaded with godotenv without overriding the real environment. Writes go
// to the underlying store.
package env

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/custodia-labs/precis-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.ConfigStore = (*Store)(nil)

// DefaultPrefix is prepended to every variable name.
const DefaultPrefix = "PRECIS_"

// Store is a driven.ConfigStore that prefers environment variables.
type Store struct {
	base     driven.ConfigStore
	prefix   string
	envFiles []string
	lookup   func(string) (string, bool)
}

// Option configures a Store.
type Option func(*Store)

// WithPrefix replaces DefaultPrefix.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// WithEnvFiles sets the dotenv files read by Load. Defaults to ".env".
func WithEnvFiles(files ...string) Option {
	return func(s *Store) { s.envFiles = files }
}

// New wraps base with an environment overlay.
func New(base driven.ConfigStore, opts ...Option) *Store {
	s := &Store{
		base:     base,
		prefix:   DefaultPrefix,
		envFiles: []string{".env"},
		lookup:   os.LookupEnv,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// VarName returns the environment variable consulted for key.
func (s *Store) VarName(key string) string {
	return s.prefix + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
}

// Get returns the environment value for key if set, else the base value.
// Environment values are typed as int64, float64, bool or string, in that
// order of preference.
func (s *Store) Get(key string) (any, bool) {
	if raw, ok := s.lookup(s.VarName(key)); ok {
		return parseValue(raw), true
	}
	return s.base.Get(key)
}

// GetString retrieves a string configuration value.
func (s *Store) GetString(key string) string {
	if raw, ok := s.lookup(s.VarName(key)); ok {
		return raw
	}
	return s.base.GetString(key)
}

// GetInt retrieves an integer configuration value.
func (s *Store) GetInt(key string) int {
	if raw, ok := s.lookup(s.VarName(key)); ok {
		n, _ := strconv.Atoi(strings.TrimSpace(raw))
		return n
	}
	return s.base.GetInt(key)
}

// GetFloat retrieves a floating point configuration value.
func (s *Store) GetFloat(key string) float64 {
	if raw, ok := s.lookup(s.VarName(key)); ok {
		f, _ := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		return f
	}
	return s.base.GetFloat(key)
}

// GetBool retrieves a boolean configuration value.
func (s *Store) GetBool(key string) bool {
	if raw, ok := s.lookup(s.VarName(key)); ok {
		b, _ := strconv.ParseBool(strings.TrimSpace(raw))
		return b
	}
	return s.base.GetBool(key)
}

// Set stores a value in the base store.
func (s *Store) Set(key string, value any) error {
	return s.base.Set(key, value)
}

// Save persists the base store.
func (s *Store) Save() error {
	return s.base.Save()
}

// Load reloads the base store and reads the dotenv files. Missing dotenv
// files are ignored; variables already in the environment are kept.
func (s *Store) Load() error {
	if err := s.base.Load(); err != nil {
		return err
	}
	for _, file := range s.envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	return nil
}

// Path returns the base store's path.
func (s *Store) Path() string {
	return s.base.Path()
}

func parseValue(raw string) any {
	trimmed := strings.TrimSpace(raw)
	if n, err := strconv.ParseInt(trimmed, 10, 64); err == nil {
		return n
	}
	if f, err := strconv.ParseFloat(trimmed, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(trimmed); err == nil {
		return b
	}
	return raw
}
