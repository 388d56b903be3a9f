package session

import (
	"encoding/json"
	"os"
)

// Session holds the credential material for the current identity.
// The token is opaque to the client; the backend is the only party
// that interprets it.
type Session struct {
	Token    string `json:"token"`
	UserID   string `json:"user_id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// Store owns the single active session. At most one session exists at
// a time; an absent session means unauthenticated.
type Store struct {
	path    string
	current *Session
	loaded  bool
}

// NewStore creates a session store backed by the given file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the file path backing this store
func (s *Store) Path() string {
	return s.path
}

// Load reads the session from disk. Returns nil without error when no
// session exists.
func (s *Store) Load() (*Session, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.current = nil
			s.loaded = true
			return nil, nil
		}
		return nil, err
	}

	var sess Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}

	s.current = &sess
	s.loaded = true
	return &sess, nil
}

// Save writes the session to disk and makes it current
func (s *Store) Save(sess *Session) error {
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return err
	}

	// Owner read/write only
	if err := os.WriteFile(s.path, data, 0600); err != nil {
		return err
	}

	s.current = sess
	s.loaded = true
	return nil
}

// Clear removes the session from disk and memory. Clearing an already
// absent session is not an error, so concurrent expiry paths converge
// on the same end state.
func (s *Store) Clear() error {
	s.current = nil
	s.loaded = true

	err := os.Remove(s.path)
	if err != nil && os.IsNotExist(err) {
		return nil
	}
	return err
}

// Current returns the active session, loading it lazily. Returns nil
// when unauthenticated.
func (s *Store) Current() *Session {
	if !s.loaded {
		sess, err := s.Load()
		if err != nil {
			return nil
		}
		return sess
	}
	return s.current
}

// Token returns the bearer token of the active session, or "" when
// unauthenticated
func (s *Store) Token() string {
	if sess := s.Current(); sess != nil {
		return sess.Token
	}
	return ""
}
