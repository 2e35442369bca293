package token

import (
	"log"
	"os"
	"path/filepath"
	"sync"
)

// Store is the single process-wide slot for the backend session token.
// Any flow may read it, login writes it, logout or a 401 clears it.
// The slot is mirrored to a file so a restart keeps the session.
type Store struct {
	mu    sync.Mutex
	path  string
	token string
}

// NewStore opens the slot, loading a previously persisted token if present.
// An empty path keeps the slot in memory only.
func NewStore(path string) *Store {
	s := &Store{path: path}
	if path != "" {
		if b, err := os.ReadFile(path); err == nil {
			s.token = string(b)
		}
	}
	return s
}

// Get returns the current token, or "" when logged out.
func (s *Store) Get() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// Set overwrites the slot.
func (s *Store) Set(tok string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = tok
	if s.path == "" {
		return
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		log.Printf("token store: mkdir failed: %v", err)
		return
	}
	if err := os.WriteFile(s.path, []byte(tok), 0o600); err != nil {
		log.Printf("token store: persist failed: %v", err)
	}
}

// Clear empties the slot. Subsequent Authenticated calls return false.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	if s.path != "" {
		if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
			log.Printf("token store: remove failed: %v", err)
		}
	}
}

// Authenticated reports whether a token is present.
func (s *Store) Authenticated() bool {
	return s.Get() != ""
}
