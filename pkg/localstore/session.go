package localstore

import (
	"os"
	"path/filepath"
	"strings"
)

// Session state mirrors the two durable keys the app keeps besides the
// task snapshot: the bearer token and the username it belongs to.
const (
	tokenFile = "token"
	userFile  = "username"
)

type Session struct {
	Token    string
	Username string
}

func (s *Store) SaveSession(token, username string) error {
	if err := os.WriteFile(filepath.Join(s.dir, tokenFile), []byte(token), 0o600); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(s.dir, userFile), []byte(username), 0o600)
}

// LoadSession reports the stored session, if any. Token expiry is the
// server's call; a stale token simply earns a 401 on first use.
func (s *Store) LoadSession() (Session, bool) {
	tok, err := os.ReadFile(filepath.Join(s.dir, tokenFile))
	if err != nil {
		return Session{}, false
	}
	user, err := os.ReadFile(filepath.Join(s.dir, userFile))
	if err != nil {
		return Session{}, false
	}
	sess := Session{
		Token:    strings.TrimSpace(string(tok)),
		Username: strings.TrimSpace(string(user)),
	}
	if sess.Token == "" {
		return Session{}, false
	}
	return sess, true
}

// ClearSession removes the token and username. The task snapshot stays;
// logging out does not discard locally logged work.
func (s *Store) ClearSession() error {
	err1 := os.Remove(filepath.Join(s.dir, tokenFile))
	err2 := os.Remove(filepath.Join(s.dir, userFile))
	for _, err := range []error{err1, err2} {
		if err != nil && !os.IsNotExist(err) {
			return err
		}
	}
	return nil
}
