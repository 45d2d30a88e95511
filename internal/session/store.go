package session

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// EnvToken overrides the token file when set. It is read, never written.
const EnvToken = "FOLIO_TOKEN"

// DefaultTokenPath returns ~/.folio/token.
func DefaultTokenPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("get home dir: %w", err)
	}
	return filepath.Join(home, ".folio", "token"), nil
}

// Store is the durable home of the bearer token: a single file.
type Store struct {
	path   string
	getenv func(string) string
}

// NewStore returns a store backed by the file at path.
func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path), getenv: os.Getenv}
}

// Path returns the token file location.
func (s *Store) Path() string { return s.path }

// FromEnv reports whether the token is supplied by the environment.
func (s *Store) FromEnv() bool {
	return s.getenv(EnvToken) != ""
}

// Load returns the stored token using precedence: env var > file > empty.
// A missing file is not an error.
func (s *Store) Load() (string, error) {
	if tok := s.getenv(EnvToken); tok != "" {
		return strings.TrimSpace(tok), nil
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", nil
		}
		return "", fmt.Errorf("session.Load: %w", err)
	}
	return strings.TrimSpace(string(data)), nil
}

// Save writes the token file, creating its directory.
func (s *Store) Save(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("session.Save: create dir: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(token), 0o600); err != nil {
		return fmt.Errorf("session.Save: %w", err)
	}
	return nil
}

// Clear removes the token file. A missing file is not an error.
func (s *Store) Clear() error {
	if err := os.Remove(s.path); err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("session.Clear: %w", err)
	}
	return nil
}
