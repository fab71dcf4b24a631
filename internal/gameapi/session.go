package gameapi

import (
	"encoding/json"
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
)

// SessionUser is the client-side view of the logged-in account
type SessionUser struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Balance float64 `json:"balance"`
}

// Session is the client-side login state persisted between invocations
type Session struct {
	Token string      `json:"token"`
	User  SessionUser `json:"user"`
}

// SessionStore is the single durable home for client session state.
// Subscribers registered with OnChange are notified on every transition,
// including Clear (with a nil session).
type SessionStore interface {
	TokenSource
	Get() *Session
	Set(session *Session) error
	Clear() error
	OnChange(fn func(session *Session))
}

// FileSessionStore persists the session as a JSON file
type FileSessionStore struct {
	path string

	mu          sync.Mutex
	current     *Session
	subscribers []func(session *Session)
}

var _ SessionStore = (*FileSessionStore)(nil)

// NewFileSessionStore creates a store backed by the given file, loading any
// existing session. A missing file is an empty session, not an error.
func NewFileSessionStore(path string) (*FileSessionStore, error) {
	store := &FileSessionStore{path: path}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return store, nil
		}
		return nil, err
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		// A corrupt session file is treated as logged out
		return store, nil
	}
	store.current = &session
	return store, nil
}

// Get returns the current session, or nil when logged out
func (s *FileSessionStore) Get() *Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return nil
	}
	copied := *s.current
	return &copied
}

// Token returns the current bearer token, or empty when logged out
func (s *FileSessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

// Set stores and persists a session, then notifies subscribers
func (s *FileSessionStore) Set(session *Session) error {
	s.mu.Lock()

	data, err := json.MarshalIndent(session, "", "  ")
	if err != nil {
		s.mu.Unlock()
		return err
	}
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		s.mu.Unlock()
		return err
	}
	if err := os.WriteFile(s.path, data, 0o600); err != nil {
		s.mu.Unlock()
		return err
	}

	s.current = session
	subscribers := append([]func(*Session){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(session)
	}
	return nil
}

// Clear removes the persisted session and notifies subscribers with nil
func (s *FileSessionStore) Clear() error {
	s.mu.Lock()

	if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		s.mu.Unlock()
		return err
	}

	s.current = nil
	subscribers := append([]func(*Session){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subscribers {
		fn(nil)
	}
	return nil
}

// OnChange registers a subscriber called on every session transition
func (s *FileSessionStore) OnChange(fn func(session *Session)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subscribers = append(s.subscribers, fn)
}
