package profile

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/abhisek/mentor/internal/topic"
)

// PersistenceError reports a failed profile read or write. The caller
// keeps its in-memory state and may retry the save before exiting.
type PersistenceError struct {
	Op   string // "load" or "save"
	Path string
	Err  error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("profile %s %s: %v", e.Op, e.Path, e.Err)
}

func (e *PersistenceError) Unwrap() error { return e.Err }

// Store keeps one JSON document per learner under a directory.
type Store struct {
	dir string
}

// NewStore creates a store rooted at dir, creating it if needed.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, &PersistenceError{Op: "load", Path: dir, Err: err}
	}
	return &Store{dir: dir}, nil
}

// DefaultDir resolves the profile directory: MENTOR_DATA_DIR if set,
// else $XDG_DATA_HOME/mentor/learners, else ~/.local/share/mentor/learners.
func DefaultDir() string {
	if dir := os.Getenv("MENTOR_DATA_DIR"); dir != "" {
		return filepath.Join(dir, "learners")
	}
	if dir := os.Getenv("XDG_DATA_HOME"); dir != "" {
		return filepath.Join(dir, "mentor", "learners")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", ".mentor", "learners")
	}
	return filepath.Join(home, ".local", "share", "mentor", "learners")
}

func (s *Store) path(learnerID string) string {
	return filepath.Join(s.dir, topic.CanonicalKey(learnerID)+".json")
}

// Load reads the learner's profile. A missing file yields a fresh empty
// profile, never an error.
func (s *Store) Load(learnerID string) (*Profile, error) {
	path := s.path(learnerID)
	raw, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return New(learnerID), nil
	}
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}

	p := New(learnerID)
	if err := json.Unmarshal(raw, p); err != nil {
		return nil, &PersistenceError{Op: "load", Path: path, Err: err}
	}
	p.LearnerID = learnerID
	return p, nil
}

// Save writes the profile atomically: the document lands in a temp file
// in the same directory and is renamed over the old one, so an
// interrupted write never corrupts the stored profile.
func (s *Store) Save(p *Profile) error {
	path := s.path(p.LearnerID)
	raw, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}

	tmp, err := os.CreateTemp(s.dir, ".profile-*.json")
	if err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.Write(raw); err != nil {
		tmp.Close()
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// List returns the learner ids with stored profiles.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &PersistenceError{Op: "load", Path: s.dir, Err: err}
	}
	var ids []string
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || filepath.Ext(name) != ".json" || name[0] == '.' {
			continue
		}
		ids = append(ids, name[:len(name)-len(".json")])
	}
	return ids, nil
}

// Delete removes the learner's stored profile. Deleting a missing
// profile is not an error.
func (s *Store) Delete(learnerID string) error {
	path := s.path(learnerID)
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return &PersistenceError{Op: "save", Path: path, Err: err}
	}
	return nil
}

// Manager pairs a store with the merge policy.
type Manager struct {
	store *Store
}

// NewManager creates a manager over the store.
func NewManager(store *Store) *Manager {
	return &Manager{store: store}
}

// Load returns the learner's profile, absent-as-empty.
func (m *Manager) Load(learnerID string) (*Profile, error) {
	return m.store.Load(learnerID)
}

// MergeAndSave folds the delta into the profile and persists it. On a
// save failure the merged in-memory profile is kept so the caller can
// retry.
func (m *Manager) MergeAndSave(p *Profile, d SessionDelta) error {
	p.Merge(d)
	return m.store.Save(p)
}

// Save persists the profile without merging, for retry after a failed
// MergeAndSave.
func (m *Manager) Save(p *Profile) error {
	return m.store.Save(p)
}
