// Package session persists the client-side session identity: an opaque auth
// token plus user/admin identifiers. The session is written at login,
// removed at logout, and treated as read-only for the lifetime of a command.
// Tokens are never validated or refreshed client-side.
package session

import (
	"os"
	"path/filepath"

	"github.com/go-faster/errors"
	yaml "gopkg.in/yaml.v3"
)

// ErrNotAuthenticated is returned by services that require a logged-in user
// when the session carries no user identifier. Callers surface it as a
// "please log in" prompt, not as an error banner.
var ErrNotAuthenticated = errors.New("not authenticated")

// Session holds the identifiers of the logged-in user and, independently,
// of the logged-in admin. Either side may be empty.
type Session struct {
	Token         string `yaml:"token,omitempty"`
	UserID        string `yaml:"userId,omitempty"`
	AdminToken    string `yaml:"adminToken,omitempty"`
	AdminID       string `yaml:"adminId,omitempty"`
	AdminUsername string `yaml:"adminUsername,omitempty"`
}

// Authenticated reports whether a user identity is present.
func (s Session) Authenticated() bool {
	return s.UserID != ""
}

// Store reads and writes the session file.
type Store struct {
	path string
}

// NewStore creates a Store backed by the given file path.
func NewStore(path string) *Store {
	return &Store{path: path}
}

// DefaultPath returns the session file location under the user's config
// directory.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolve config dir")
	}
	return filepath.Join(dir, "forkful", "session.yaml"), nil
}

// Load reads the session from disk. A missing file yields an empty session,
// not an error.
func (st *Store) Load() (Session, error) {
	var s Session
	buf, err := os.ReadFile(st.path)
	if err != nil {
		if os.IsNotExist(err) {
			return s, nil
		}
		return s, errors.Wrap(err, "read session file")
	}
	if err := yaml.Unmarshal(buf, &s); err != nil {
		return Session{}, errors.Wrap(err, "parse session file")
	}
	return s, nil
}

// Save writes the session to disk, creating parent directories as needed.
// The file is restricted to the owner: it contains auth tokens.
func (st *Store) Save(s Session) error {
	buf, err := yaml.Marshal(s)
	if err != nil {
		return errors.Wrap(err, "encode session")
	}
	if err := os.MkdirAll(filepath.Dir(st.path), 0o700); err != nil {
		return errors.Wrap(err, "create session dir")
	}
	if err := os.WriteFile(st.path, buf, 0o600); err != nil {
		return errors.Wrap(err, "write session file")
	}
	return nil
}

// Clear removes the session file. A missing file is not an error.
func (st *Store) Clear() error {
	if err := os.Remove(st.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "remove session file")
	}
	return nil
}
