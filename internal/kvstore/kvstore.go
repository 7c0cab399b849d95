package kvstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/spf13/afero"
	"go.uber.org/zap"
)

// Store is the persisted key-value abstraction every configuration blob
// goes through. Each key maps to an independently stored JSON document.
type Store interface {
	// Get unmarshals the blob stored under key into v. Returns false when
	// the key has never been written.
	Get(key string, v interface{}) (bool, error)
	// Put marshals v and stores it under key, replacing any prior value.
	Put(key string, v interface{}) error
	// Delete removes the blob stored under key. Deleting a missing key is
	// not an error.
	Delete(key string) error
}

type FileStore struct {
	fs     afero.Fs
	dir    string
	mu     sync.Mutex
	logger *zap.Logger
}

// NewFileStore creates a Store persisting each key as a JSON file under dir
func NewFileStore(fs afero.Fs, dir string, logger *zap.Logger) (*FileStore, error) {
	if err := fs.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}
	return &FileStore{
		fs:     fs,
		dir:    dir,
		logger: logger,
	}, nil
}

func (s *FileStore) path(key string) string {
	return filepath.Join(s.dir, key+".json")
}

func (s *FileStore) Get(key string, v interface{}) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := afero.ReadFile(s.fs, s.path(key))
	if os.IsNotExist(err) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to read %s: %w", key, err)
	}

	if err := json.Unmarshal(data, v); err != nil {
		// A corrupt blob is reported so the caller can fall back to its
		// defaults instead of crashing.
		s.logger.Warn("Stored blob is not valid JSON",
			zap.String("key", key),
			zap.Error(err),
		)
		return false, fmt.Errorf("failed to decode %s: %w", key, err)
	}

	return true, nil
}

func (s *FileStore) Put(key string, v interface{}) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}

	if err := afero.WriteFile(s.fs, s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}

	return nil
}

func (s *FileStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.fs.Remove(s.path(key))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete %s: %w", key, err)
	}
	return nil
}
