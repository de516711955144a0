package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/jonathan/resume-builder/internal/types"
)

// FileStore persists snapshots as JSON files in a directory, one file per
// key. It is the local analogue of browser storage.
type FileStore struct {
	dir string
}

// NewFileStore creates the data directory if needed and returns a store over
// it.
func NewFileStore(dir string) (*FileStore, error) {
	if dir == "" {
		return nil, fmt.Errorf("data directory is empty")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create data directory %s: %w", dir, err)
	}
	return &FileStore{dir: dir}, nil
}

// Save writes the snapshot under key, replacing any previous value.
func (s *FileStore) Save(_ context.Context, key string, snapshot types.Snapshot) error {
	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", key, err)
	}
	if err := os.WriteFile(s.path(key), data, 0o644); err != nil {
		return fmt.Errorf("failed to write snapshot %s: %w", key, err)
	}
	return nil
}

// Load reads the snapshot stored under key, validating it against the
// snapshot schema first. Returns (nil, nil) when the key is absent.
func (s *FileStore) Load(_ context.Context, key string) (*types.Snapshot, error) {
	data, err := os.ReadFile(s.path(key))
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read snapshot %s: %w", key, err)
	}

	if err := ValidateSnapshotJSON(key, data); err != nil {
		return nil, err
	}

	var snapshot types.Snapshot
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", key, err)
	}
	return &snapshot, nil
}

// Remove deletes the snapshot stored under key.
func (s *FileStore) Remove(_ context.Context, key string) error {
	err := os.Remove(s.path(key))
	if os.IsNotExist(err) {
		return &NotFoundError{Key: key}
	}
	if err != nil {
		return fmt.Errorf("failed to remove snapshot %s: %w", key, err)
	}
	return nil
}

// ListAll enumerates saved snapshots, newest first, excluding the reserved
// auto-save key and share copies.
func (s *FileStore) ListAll(_ context.Context) ([]types.SnapshotInfo, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}

	var infos []types.SnapshotInfo
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".json") {
			continue
		}
		key := strings.TrimSuffix(entry.Name(), ".json")
		if key == types.LastSessionKey || strings.HasPrefix(key, types.ShareKeyPrefix) {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.dir, entry.Name()))
		if err != nil {
			continue
		}
		var snapshot types.Snapshot
		if err := json.Unmarshal(data, &snapshot); err != nil {
			continue
		}
		infos = append(infos, types.SnapshotInfo{
			ID:   snapshot.ID,
			Name: snapshot.Name,
			Date: snapshot.Date,
		})
	}

	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Date.After(infos[j].Date)
	})
	return infos, nil
}

// Close is a no-op for the file store.
func (s *FileStore) Close() error {
	return nil
}

func (s *FileStore) path(key string) string {
	// A key must never escape the data directory.
	key = strings.ReplaceAll(key, string(os.PathSeparator), "_")
	return filepath.Join(s.dir, key+".json")
}
