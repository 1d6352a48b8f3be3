// Package session persists the signed-in user's tokens between CLI runs.
package session

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/mahannajafi/moslemi-group-project/internal/model"
)

// Fixed file names inside the store directory, one per session field.
const (
	accessTokenFile  = "access_token"
	refreshTokenFile = "refresh_token"
	userFile         = "user.json"
)

// Session is the triple written on a successful sign-in.
type Session struct {
	AccessToken  string
	RefreshToken string
	User         model.User
}

// Store reads and writes session files under a single directory. It keeps no
// in-memory copy; every accessor hits the files so concurrent CLI runs see
// the latest state. A Store with an empty directory is valid: reads report
// absent and writes do nothing, so code paths that run without local storage
// need no special casing.
type Store struct {
	dir string
}

func NewStore(dir string) *Store {
	return &Store{dir: dir}
}

// Available reports whether the store has anywhere to persist to.
func (s *Store) Available() bool {
	return s.dir != ""
}

// Save writes the access token, refresh token and user record. Writes are
// sequential with no rollback: a failure can leave earlier fields persisted.
func (s *Store) Save(sess Session) error {
	if !s.Available() {
		return nil
	}
	if err := os.MkdirAll(s.dir, 0700); err != nil {
		return err
	}
	if err := s.write(accessTokenFile, []byte(sess.AccessToken)); err != nil {
		return err
	}
	if err := s.write(refreshTokenFile, []byte(sess.RefreshToken)); err != nil {
		return err
	}
	raw, err := json.Marshal(sess.User)
	if err != nil {
		return err
	}
	return s.write(userFile, raw)
}

// Clear removes all session files. Clearing an empty store is a no-op.
func (s *Store) Clear() {
	if !s.Available() {
		return
	}
	for _, name := range []string{accessTokenFile, refreshTokenFile, userFile} {
		_ = os.Remove(filepath.Join(s.dir, name))
	}
}

// AccessToken returns the stored access token, or "" when absent. Presence
// of a token says nothing about its validity; the backend rejects stale ones.
func (s *Store) AccessToken() string {
	return s.read(accessTokenFile)
}

// RefreshToken returns the stored refresh token, or "" when absent.
func (s *Store) RefreshToken() string {
	return s.read(refreshTokenFile)
}

// User returns the stored user record, or nil when absent or unreadable.
func (s *Store) User() *model.User {
	if !s.Available() {
		return nil
	}
	raw, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return nil
	}
	var u model.User
	if err := json.Unmarshal(raw, &u); err != nil {
		return nil
	}
	return &u
}

func (s *Store) write(name string, data []byte) error {
	return os.WriteFile(filepath.Join(s.dir, name), data, 0600)
}

func (s *Store) read(name string) string {
	if !s.Available() {
		return ""
	}
	b, err := os.ReadFile(filepath.Join(s.dir, name))
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(b))
}
