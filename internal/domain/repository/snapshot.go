// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"
)

// ErrSnapshotNotFound is returned when a snapshot key has never been written.
// Stores treat it as the signal to seed their default dataset.
var ErrSnapshotNotFound = errors.New("snapshot not found")

// SnapshotStore persists whole serialized records under fixed keys. Each
// record is written as a complete snapshot, never incrementally, so the same
// store logic runs against memory, a file tree or a database row without
// modification.
type SnapshotStore interface {
	// Get returns the raw snapshot stored under key, or ErrSnapshotNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Put replaces the snapshot stored under key.
	Put(ctx context.Context, key string, data []byte) error
}

// Fixed snapshot keys. Version suffixes match the records they replaced in
// earlier releases; bump a suffix when the serialized layout changes shape.
const (
	KeyDirectory = "directory_v10"
	KeyHomepage  = "homepage_v2"
	KeyPages     = "pages_v2"
	KeyUsers     = "users_v1"
)
