// Package jsonfile implements storage.Storage on top of a single JSON file.
package jsonfile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/colonyops/taskboard/internal/core/storage"
	"github.com/colonyops/taskboard/pkg/kv"
)

var _ storage.Storage = (*LocalStorage)(nil)

// LocalStorage persists every key in one JSON object on disk. The file is read
// once on Open and rewritten atomically after each change.
type LocalStorage struct {
	path   string
	mu     sync.Mutex
	cache  *kv.Store[string, string]
	closed bool
}

// Open loads the storage file at path. A missing or empty file yields an empty
// store; the file and its directory are created on first write.
func Open(path string) (*LocalStorage, error) {
	s := &LocalStorage{
		path:  path,
		cache: kv.New[string, string](),
	}

	items, err := s.load()
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	s.cache.Replace(items)

	return s, nil
}

// Path returns the backing file location.
func (s *LocalStorage) Path() string {
	return s.path
}

func (s *LocalStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return "", false, storage.ErrClosed
	}

	v, ok := s.cache.Get(key)
	return v, ok, nil
}

func (s *LocalStorage) SetItem(ctx context.Context, key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	prev, existed := s.cache.Get(key)
	s.cache.Set(key, value)

	if err := s.save(); err != nil {
		// keep the cache in step with what is on disk
		if existed {
			s.cache.Set(key, prev)
		} else {
			s.cache.Delete(key)
		}
		return err
	}

	return nil
}

func (s *LocalStorage) RemoveItem(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closed {
		return storage.ErrClosed
	}

	prev, existed := s.cache.Get(key)
	if !existed {
		return nil
	}

	s.cache.Delete(key)
	if err := s.save(); err != nil {
		s.cache.Set(key, prev)
		return err
	}

	return nil
}

func (s *LocalStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// load reads the storage file from disk.
// Returns an empty map if the file doesn't exist.
func (s *LocalStorage) load() (map[string]string, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return map[string]string{}, nil
		}
		return nil, err
	}

	if len(data) == 0 {
		return map[string]string{}, nil
	}

	var items map[string]string
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, err
	}

	return items, nil
}

// save writes the cache to disk atomically.
func (s *LocalStorage) save() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("create storage dir: %w", err)
	}

	data, err := json.MarshalIndent(s.cache.Snapshot(), "", "  ")
	if err != nil {
		return err
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write storage file: %w", err)
	}

	return os.Rename(tmp, s.path)
}
