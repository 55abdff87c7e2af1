// Package session holds the basic-auth credentials used for every
// backend request. The encoded credential lives in a process-wide
// slot backed by a file under the config directory, so a restarted
// client picks up the previous session.
package session

import (
	"encoding/base64"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Store is the credential slot. The zero value is unusable; create
// one with New or Default.
type Store struct {
	mu      sync.Mutex
	path    string
	encoded string
}

// New creates a store persisting to the given file.
func New(path string) *Store {
	return &Store{path: path}
}

// Default creates a store persisting to the default session file
// under dir.
func Default(dir string) *Store {
	return New(filepath.Join(dir, "session"))
}

// Set encodes user:pass and persists it.
func (s *Store) Set(user, pass string) error {
	if user == "" {
		return fmt.Errorf("username must not be empty")
	}
	encoded := base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("creating session directory: %w", err)
	}
	if err := os.WriteFile(s.path, []byte(encoded), 0o600); err != nil {
		return fmt.Errorf("persisting session: %w", err)
	}
	s.encoded = encoded
	return nil
}

// Clear removes both the in-memory and the persisted copy.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.encoded = ""
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing session: %w", err)
	}
	return nil
}

// Has reports whether credentials are present, lazily reloading from
// the session file when the in-memory slot is empty. Presence says
// nothing about validity; the server decides that with a 401.
func (s *Store) Has() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadLocked()
	return s.encoded != ""
}

// Header returns the Authorization header value. ok is false when no
// credentials are stored.
func (s *Store) Header() (value string, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reloadLocked()
	if s.encoded == "" {
		return "", false
	}
	return "Basic " + s.encoded, true
}

func (s *Store) reloadLocked() {
	if s.encoded != "" {
		return
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		return
	}
	s.encoded = strings.TrimSpace(string(data))
}
