package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/jonathan/resume-builder/internal/types"
)

// PostgresStore persists snapshots in a single table with a jsonb payload.
type PostgresStore struct {
	pool *pgxpool.Pool
}

// ConnectPostgres establishes a connection pool and ensures the snapshots
// table exists.
func ConnectPostgres(ctx context.Context, databaseURL string) (*PostgresStore, error) {
	pool, err := pgxpool.New(ctx, databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	_, err = pool.Exec(ctx,
		`CREATE TABLE IF NOT EXISTS snapshots (
			key        TEXT PRIMARY KEY,
			name       TEXT NOT NULL DEFAULT '',
			date       TIMESTAMPTZ NOT NULL DEFAULT NOW(),
			payload    JSONB NOT NULL
		)`)
	if err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ensure snapshots table: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Save upserts the snapshot under key.
func (s *PostgresStore) Save(ctx context.Context, key string, snapshot types.Snapshot) error {
	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal snapshot %s: %w", key, err)
	}

	_, err = s.pool.Exec(ctx,
		`INSERT INTO snapshots (key, name, date, payload)
		 VALUES ($1, $2, $3, $4)
		 ON CONFLICT (key) DO UPDATE SET name = $2, date = $3, payload = $4`,
		key, snapshot.Name, snapshot.Date, payload,
	)
	if err != nil {
		return fmt.Errorf("failed to save snapshot %s: %w", key, err)
	}
	return nil
}

// Load retrieves and validates the snapshot stored under key. Returns
// (nil, nil) when the key is absent.
func (s *PostgresStore) Load(ctx context.Context, key string) (*types.Snapshot, error) {
	var payload []byte
	err := s.pool.QueryRow(ctx,
		`SELECT payload FROM snapshots WHERE key = $1`, key,
	).Scan(&payload)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load snapshot %s: %w", key, err)
	}

	if err := ValidateSnapshotJSON(key, payload); err != nil {
		return nil, err
	}

	var snapshot types.Snapshot
	if err := json.Unmarshal(payload, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to parse snapshot %s: %w", key, err)
	}
	return &snapshot, nil
}

// Remove deletes the snapshot stored under key.
func (s *PostgresStore) Remove(ctx context.Context, key string) error {
	result, err := s.pool.Exec(ctx, `DELETE FROM snapshots WHERE key = $1`, key)
	if err != nil {
		return fmt.Errorf("failed to remove snapshot %s: %w", key, err)
	}
	if result.RowsAffected() == 0 {
		return &NotFoundError{Key: key}
	}
	return nil
}

// ListAll enumerates saved snapshots, newest first, excluding the reserved
// auto-save key and share copies.
func (s *PostgresStore) ListAll(ctx context.Context) ([]types.SnapshotInfo, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT payload->>'id', name, date FROM snapshots
		 WHERE key <> $1 AND key NOT LIKE $2 ORDER BY date DESC`,
		types.LastSessionKey, types.ShareKeyPrefix+"%",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	defer rows.Close()

	return scanInfos(rows)
}

// scanInfos drains the listing rows, surfacing any error the iteration hit
// instead of returning a silently truncated listing.
func scanInfos(rows pgx.Rows) ([]types.SnapshotInfo, error) {
	var infos []types.SnapshotInfo
	for rows.Next() {
		var info types.SnapshotInfo
		if err := rows.Scan(&info.ID, &info.Name, &info.Date); err != nil {
			return nil, fmt.Errorf("failed to scan snapshot: %w", err)
		}
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list snapshots: %w", err)
	}
	return infos, nil
}

// Close closes the connection pool.
func (s *PostgresStore) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
