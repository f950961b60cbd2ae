// Package filesession keeps sessions in a JSON file in the user's config
// directory, keyed by profile name.
package filesession

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"
	"time"

	domainauth "github.com/mrraghuvarun/talent/internal/domain/auth"
	"github.com/mrraghuvarun/talent/internal/ports"
)

var _ ports.SessionStore = (*Store)(nil)

// Store is a file-backed SessionStore. It is safe for concurrent use within
// one process; concurrent writers in separate processes race last-write-wins.
type Store struct {
	path string
	now  func() time.Time
	mu   sync.Mutex
}

type fileFormat struct {
	Sessions map[string]domainauth.Session `json:"sessions"`
}

// New returns a Store writing to path.
func New(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("session file path is required")
	}
	return &Store{path: path, now: time.Now}, nil
}

// DefaultPath returns $XDG_CONFIG_HOME/talenthub/session.json (or the
// platform equivalent).
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve config dir: %w", err)
	}
	return filepath.Join(dir, "talenthub", "session.json"), nil
}

// Path returns the file the store writes to.
func (s *Store) Path() string { return s.path }

func (s *Store) Save(_ context.Context, sess domainauth.Session) error {
	if sess.ID == "" {
		return errors.New("session ID cannot be empty")
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	s.prune(data)
	data.Sessions[sess.ID] = sess
	return s.write(data)
}

func (s *Store) Get(_ context.Context, id string) (domainauth.Session, error) {
	if id == "" {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return domainauth.Session{}, err
	}
	sess, ok := data.Sessions[id]
	if !ok || sess.Expired(s.now()) {
		return domainauth.Session{}, ports.ErrSessionNotFound
	}
	return sess, nil
}

func (s *Store) Delete(_ context.Context, id string) error {
	if id == "" {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.load()
	if err != nil {
		return err
	}
	if _, ok := data.Sessions[id]; !ok {
		return nil
	}
	delete(data.Sessions, id)
	return s.write(data)
}

func (s *Store) prune(data *fileFormat) {
	now := s.now()
	for id, sess := range data.Sessions {
		if sess.Expired(now) {
			delete(data.Sessions, id)
		}
	}
}

func (s *Store) load() (*fileFormat, error) {
	data := &fileFormat{Sessions: map[string]domainauth.Session{}}
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return data, nil
		}
		return nil, fmt.Errorf("read session file: %w", err)
	}
	if len(raw) == 0 {
		return data, nil
	}
	if err := json.Unmarshal(raw, data); err != nil {
		return nil, fmt.Errorf("parse session file %s: %w", s.path, err)
	}
	if data.Sessions == nil {
		data.Sessions = map[string]domainauth.Session{}
	}
	return data, nil
}

// write replaces the file atomically; tokens are secrets, so 0600.
func (s *Store) write(data *fileFormat) error {
	buf, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("encode session file: %w", err)
	}
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return fmt.Errorf("create session dir: %w", err)
	}
	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return fmt.Errorf("create temp session file: %w", err)
	}
	tmpName := tmp.Name()
	cleanup := func(cause error) error {
		_ = tmp.Close()
		if rmErr := os.Remove(tmpName); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			return errors.Join(cause, fmt.Errorf("remove temp session file: %w", rmErr))
		}
		return cause
	}
	if err := tmp.Chmod(0o600); err != nil {
		return cleanup(fmt.Errorf("chmod session file: %w", err))
	}
	if _, err := tmp.Write(buf); err != nil {
		return cleanup(fmt.Errorf("write session file: %w", err))
	}
	if err := tmp.Close(); err != nil {
		return cleanup(fmt.Errorf("close session file: %w", err))
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		return cleanup(fmt.Errorf("replace session file: %w", err))
	}
	return nil
}
