// Package store persists hunt history and the first-seen cache for the
// monitor service.
package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/DeadAB/Gotcha-Advanced-Username-Email-OSINT-Tool/internal/model"
)

// HuntStore records finished hunts and serves the monitor's watch list.
//
// Expected schema:
//
//	CREATE TABLE watched_identifiers (
//	    identifier  text PRIMARY KEY,
//	    kind        text NOT NULL DEFAULT 'username',
//	    is_active   boolean NOT NULL DEFAULT true,
//	    added_at    timestamptz NOT NULL DEFAULT now()
//	);
//
//	CREATE TABLE hunts (
//	    id          uuid PRIMARY KEY,
//	    identifier  text NOT NULL,
//	    kind        text NOT NULL,
//	    found_count int  NOT NULL,
//	    report      jsonb NOT NULL,
//	    hunted_at   timestamptz NOT NULL DEFAULT now()
//	);
type HuntStore struct {
	pool *pgxpool.Pool
}

// NewHuntStore wraps a connected pool.
func NewHuntStore(pool *pgxpool.Pool) *HuntStore {
	return &HuntStore{pool: pool}
}

// WatchedIdentifier is one entry of the monitor's watch list.
type WatchedIdentifier struct {
	Identifier string
	Kind       string // "username" or "email"
}

// SaveHunt records one finished hunt with its full report as JSONB.
func (s *HuntStore) SaveHunt(ctx context.Context, kind string, report model.HuntReport, rawReport []byte) (uuid.UUID, error) {
	id := uuid.New()
	_, err := s.pool.Exec(ctx,
		`INSERT INTO hunts (id, identifier, kind, found_count, report)
		 VALUES ($1, $2, $3, $4, $5::jsonb)`,
		id, report.Identifier, kind, report.TotalFound(), string(rawReport),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("insert hunt for %q: %w", report.Identifier, err)
	}
	return id, nil
}

// LoadWatched fetches all active watch-list entries.
func (s *HuntStore) LoadWatched(ctx context.Context) ([]WatchedIdentifier, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT identifier, kind
		 FROM watched_identifiers
		 WHERE is_active = true
		 ORDER BY added_at`,
	)
	if err != nil {
		return nil, fmt.Errorf("query watched_identifiers: %w", err)
	}
	defer rows.Close()

	var watched []WatchedIdentifier
	for rows.Next() {
		var w WatchedIdentifier
		if err := rows.Scan(&w.Identifier, &w.Kind); err != nil {
			return nil, fmt.Errorf("scan: %w", err)
		}
		watched = append(watched, w)
	}
	return watched, rows.Err()
}

// LastFoundCount returns the found count of the most recent hunt for the
// identifier, or -1 when it has never been hunted.
func (s *HuntStore) LastFoundCount(ctx context.Context, identifier string) (int, error) {
	var count int
	err := s.pool.QueryRow(ctx,
		`SELECT found_count FROM hunts
		 WHERE identifier = $1
		 ORDER BY hunted_at DESC
		 LIMIT 1`,
		identifier,
	).Scan(&count)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return -1, nil
		}
		return 0, fmt.Errorf("query last hunt for %q: %w", identifier, err)
	}
	return count, nil
}
