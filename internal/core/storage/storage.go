// Package storage defines the local key-value slot store that task state is
// persisted to.
package storage

import (
	"context"
	"errors"
)

// ErrClosed is returned by a backend after Close has been called.
var ErrClosed = errors.New("storage closed")

// Backend names accepted in configuration.
const (
	BackendJSONFile = "jsonfile"
	BackendSQLite   = "sqlite"
	BackendMemory   = "memory"
)

// Storage is a string-keyed store of string values. Every write replaces the
// whole value stored under a key.
type Storage interface {
	// GetItem returns the value stored under key. The boolean is false when
	// nothing is stored there.
	GetItem(ctx context.Context, key string) (string, bool, error)

	// SetItem stores value under key, replacing any previous value.
	SetItem(ctx context.Context, key, value string) error

	// RemoveItem deletes key. Removing an absent key is not an error.
	RemoveItem(ctx context.Context, key string) error

	// Close releases any resources held by the backend.
	Close() error
}

// IsValidBackend reports whether name is a supported backend.
func IsValidBackend(name string) bool {
	switch name {
	case BackendJSONFile, BackendSQLite, BackendMemory:
		return true
	default:
		return false
	}
}
