package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"renalize/pkg/platform/sentinel"
)

// FileStore persists entries as a JSON file on disk, surviving restarts.
// Every mutation rewrites the file through a rename so a crash mid-write
// leaves the previous contents intact.
type FileStore struct {
	mu      sync.RWMutex
	path    string
	strings map[string]string
	bools   map[string]bool
}

type filePayload struct {
	Strings map[string]string `json:"strings"`
	Bools   map[string]bool   `json:"bools"`
}

// NewFile opens (or creates) a file-backed store at path.
func NewFile(path string) (*FileStore, error) {
	s := &FileStore{
		path:    path,
		strings: make(map[string]string),
		bools:   make(map[string]bool),
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read cache file: %w", err)
	}

	var payload filePayload
	if err := json.Unmarshal(data, &payload); err != nil {
		return nil, fmt.Errorf("%w: decode cache file %s: %v", sentinel.ErrInvalidState, path, err)
	}
	if payload.Strings != nil {
		s.strings = payload.Strings
	}
	if payload.Bools != nil {
		s.bools = payload.Bools
	}
	return s, nil
}

func (s *FileStore) GetString(_ context.Context, key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.strings[key], nil
}

func (s *FileStore) PutString(_ context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strings[key] = value
	return s.flushLocked()
}

func (s *FileStore) GetBool(_ context.Context, key string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.bools[key], nil
}

func (s *FileStore) PutBool(_ context.Context, key string, value bool) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.bools[key] = value
	return s.flushLocked()
}

func (s *FileStore) Clear(_ context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.strings = make(map[string]string)
	s.bools = make(map[string]bool)
	return s.flushLocked()
}

func (s *FileStore) flushLocked() error {
	payload := filePayload{Strings: s.strings, Bools: s.bools}
	data, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return fmt.Errorf("encode cache file: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return fmt.Errorf("create cache dir: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o600); err != nil {
		return fmt.Errorf("write cache file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("replace cache file: %w", err)
	}
	return nil
}
