package snapshot

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	"ppoth/internal/domain/repository"
	"ppoth/internal/errors"
)

// fileStore persists each snapshot key as one JSON file in a data
// directory, the server-side analogue of the browser local-storage layout.
type fileStore struct {
	mu  sync.Mutex
	dir string
}

// NewFileStore creates a file-backed snapshot store rooted at dir, creating
// the directory when missing.
func NewFileStore(dir string) (repository.SnapshotStore, error) {
	if dir == "" {
		return nil, errors.New("file store requires a data directory")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, errors.Wrap(err, "failed to create snapshot directory")
	}

	return &fileStore{dir: dir}, nil
}

func (s *fileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *fileStore) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, repository.ErrSnapshotNotFound
		}

		return nil, errors.Wrapf(err, "failed to read snapshot %s", key)
	}

	return raw, nil
}

func (s *fileStore) Put(_ context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Write-then-rename so a crash mid-write never leaves a truncated
	// snapshot behind.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return errors.Wrapf(err, "failed to write snapshot %s", key)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return errors.Wrapf(err, "failed to replace snapshot %s", key)
	}

	return nil
}
