package repositories

import (
	"fmt"
	"os"
	"path/filepath"
)

// Store keys, one per record type. Matches the keys the mobile client
// used for its on-device storage.
const (
	KeyYards       = "patios"
	KeySpots       = "vagas"
	KeyMotorcycles = "motos"
	KeyUsers       = "usuarios"
)

// Store is an opaque key-value blob interface. No schema is enforced
// here; the repository validates before writing.
type Store interface {
	Get(key string) ([]byte, bool, error)
	Set(key string, value []byte) error
}

// FileStore keeps one <key>.json file per key under a data directory.
// Intended for local single-process deployments.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) Get(key string) ([]byte, bool, error) {
	data, err := os.ReadFile(s.path(key))
	if os.IsNotExist(err) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %q: %w", key, err)
	}
	return data, true, nil
}

func (s *FileStore) Set(key string, value []byte) error {
	// Write-then-rename so a crash mid-write never leaves a torn file.
	tmp := s.path(key) + ".tmp"
	if err := os.WriteFile(tmp, value, 0o644); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	if err := os.Rename(tmp, s.path(key)); err != nil {
		return fmt.Errorf("failed to write %q: %w", key, err)
	}
	return nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}
