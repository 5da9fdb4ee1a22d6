// Package recent keeps a short list of recently opened sources.
package recent

import (
	"os"
	"path/filepath"
	"time"

	"github.com/go-logr/logr"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// MaxEntries caps the list.
const MaxEntries = 5

// Entry describes one opened source.
type Entry struct {
	Name         string    `yaml:"name" json:"name"`
	Size         int64     `yaml:"size" json:"size"`
	LastModified time.Time `yaml:"lastModified" json:"lastModified"`
	Timestamp    time.Time `yaml:"timestamp" json:"timestamp"`
}

// Push returns a new list with e first, any older entry of the same name
// removed, capped at MaxEntries.
func Push(entries []Entry, e Entry) []Entry {
	result := make([]Entry, 0, MaxEntries)
	result = append(result, e)
	for _, old := range entries {
		if len(result) == MaxEntries {
			break
		}
		if old.Name != e.Name {
			result = append(result, old)
		}
	}
	return result
}

type file struct {
	Recent []Entry `yaml:"recent"`
}

// Store persists the list as YAML.
type Store struct {
	Path   string
	Logger logr.Logger
	Now    func() time.Time
}

// NewStore returns a store at path.
func NewStore(path string, logger logr.Logger) *Store {
	return &Store{Path: path, Logger: logger, Now: time.Now}
}

// DefaultPath returns the store location under the user config directory.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		dir = os.TempDir()
	}
	return filepath.Join(dir, "tsviz", "recent.yaml")
}

// Load reads the list. A missing file is an empty list.
func (s *Store) Load() ([]Entry, error) {
	data, err := os.ReadFile(s.Path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", s.Path)
	}

	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, errors.Wrapf(err, "decoding %s", s.Path)
	}
	return f.Recent, nil
}

// Save writes entries, creating the parent directory when needed.
func (s *Store) Save(entries []Entry) error {
	data, err := yaml.Marshal(file{Recent: entries})
	if err != nil {
		return errors.Wrap(err, "encoding recent files")
	}
	if err := os.MkdirAll(filepath.Dir(s.Path), 0o755); err != nil {
		return errors.Wrapf(err, "creating %s", filepath.Dir(s.Path))
	}
	if err := os.WriteFile(s.Path, data, 0o644); err != nil {
		return errors.Wrapf(err, "writing %s", s.Path)
	}
	return nil
}

// Record pushes an entry stamped with the current time and saves the list. A
// corrupt store is replaced rather than failing the caller.
func (s *Store) Record(name string, size int64, lastModified time.Time) ([]Entry, error) {
	entries, err := s.Load()
	if err != nil {
		s.Logger.Error(err, "Discarding unreadable recent files list", "path", s.Path)
		entries = nil
	}

	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	entries = Push(entries, Entry{
		Name:         name,
		Size:         size,
		LastModified: lastModified.UTC(),
		Timestamp:    now().UTC(),
	})

	if err := s.Save(entries); err != nil {
		return nil, err
	}
	s.Logger.V(1).Info("Recorded recent file", "name", name, "entries", len(entries))
	return entries, nil
}
