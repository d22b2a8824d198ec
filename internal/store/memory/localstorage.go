// Package memory provides an in-process storage.Storage backed by pkg/kv.
package memory

import (
	"context"
	"sync/atomic"

	"github.com/colonyops/taskboard/internal/core/storage"
	"github.com/colonyops/taskboard/pkg/kv"
)

var _ storage.Storage = (*LocalStorage)(nil)

// LocalStorage keeps values in memory. Nothing survives process exit.
type LocalStorage struct {
	data   *kv.Store[string, string]
	closed atomic.Bool
}

// New creates an empty in-memory store.
func New() *LocalStorage {
	return &LocalStorage{data: kv.New[string, string]()}
}

func (s *LocalStorage) GetItem(ctx context.Context, key string) (string, bool, error) {
	if s.closed.Load() {
		return "", false, storage.ErrClosed
	}
	v, ok := s.data.Get(key)
	return v, ok, nil
}

func (s *LocalStorage) SetItem(ctx context.Context, key, value string) error {
	if s.closed.Load() {
		return storage.ErrClosed
	}
	s.data.Set(key, value)
	return nil
}

func (s *LocalStorage) RemoveItem(ctx context.Context, key string) error {
	if s.closed.Load() {
		return storage.ErrClosed
	}
	s.data.Delete(key)
	return nil
}

// Keys returns every stored key in sorted order.
func (s *LocalStorage) Keys() []string {
	return s.data.Keys()
}

func (s *LocalStorage) Close() error {
	s.closed.Store(true)
	return nil
}
