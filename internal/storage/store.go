// Package storage persists named snapshots of {document, template, color
// scheme} behind a small key-value interface. The store is injected at
// session start and flushed on every write; there is no background sync.
package storage

import (
	"context"
	"fmt"

	"github.com/jonathan/resume-builder/internal/types"
)

// Store is the persistence adapter. Save and Load round-trip snapshots
// exactly; Load returns (nil, nil) when the key is absent. ListAll excludes
// the reserved auto-save key.
type Store interface {
	Save(ctx context.Context, key string, snapshot types.Snapshot) error
	Load(ctx context.Context, key string) (*types.Snapshot, error)
	Remove(ctx context.Context, key string) error
	ListAll(ctx context.Context) ([]types.SnapshotInfo, error)
	Close() error
}

// NotFoundError is returned by Remove when the key does not exist.
type NotFoundError struct {
	Key string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("snapshot not found: %s", e.Key)
}

// InvalidSnapshotError is returned when a stored payload fails schema
// validation on load.
type InvalidSnapshotError struct {
	Key     string
	Message string
	Cause   error
}

func (e *InvalidSnapshotError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("invalid snapshot %s: %s: %v", e.Key, e.Message, e.Cause)
	}
	return fmt.Sprintf("invalid snapshot %s: %s", e.Key, e.Message)
}

func (e *InvalidSnapshotError) Unwrap() error {
	return e.Cause
}
