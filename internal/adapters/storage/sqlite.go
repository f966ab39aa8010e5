// Package storage persists world snapshots into named save slots backed by
// an embedded sqlite database.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	"github.com/owenfield/frontoffice/internal/domain/model"
)

const schema = `
CREATE TABLE IF NOT EXISTS save_slots (
	name     TEXT PRIMARY KEY,
	week     INTEGER NOT NULL,
	year     INTEGER NOT NULL,
	cash     REAL NOT NULL,
	saved_at TIMESTAMP NOT NULL,
	snapshot BLOB NOT NULL
);
`

// SlotInfo describes one save slot without decoding its snapshot.
type SlotInfo struct {
	Name    string    `json:"name"`
	Week    int       `json:"week"`
	Year    int       `json:"year"`
	Cash    float64   `json:"cash"`
	SavedAt time.Time `json:"saved_at"`
}

// SlotStore reads and writes snapshot save slots. Snapshots round-trip
// losslessly through JSON; the engine never sees the encoding.
type SlotStore struct {
	db *sql.DB
}

// Open opens (and if needed initializes) the slot database at path.
// Use ":memory:" for an ephemeral store.
func Open(ctx context.Context, path string) (*SlotStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open slot database: %w", err)
	}
	if _, err := db.ExecContext(ctx, schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize slot schema: %w", err)
	}
	return &SlotStore{db: db}, nil
}

// Close releases the underlying database handle.
func (s *SlotStore) Close() error {
	return s.db.Close()
}

// Save upserts the snapshot into the named slot.
func (s *SlotStore) Save(ctx context.Context, slot string, w model.World) error {
	if slot == "" {
		return ErrInvalidSlot
	}
	blob, err := json.Marshal(w)
	if err != nil {
		return fmt.Errorf("encode snapshot: %w", err)
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO save_slots (name, week, year, cash, saved_at, snapshot)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(name) DO UPDATE SET
			week = excluded.week,
			year = excluded.year,
			cash = excluded.cash,
			saved_at = excluded.saved_at,
			snapshot = excluded.snapshot
	`, slot, w.State.Week, w.State.Year, w.State.Cash, time.Now().UTC(), blob)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", slot, err)
	}
	return nil
}

// Load decodes the snapshot stored in the named slot.
func (s *SlotStore) Load(ctx context.Context, slot string) (model.World, error) {
	var blob []byte
	err := s.db.QueryRowContext(ctx,
		`SELECT snapshot FROM save_slots WHERE name = ?`, slot).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		return model.World{}, ErrSlotNotFound
	}
	if err != nil {
		return model.World{}, fmt.Errorf("read slot %q: %w", slot, err)
	}
	var w model.World
	if err := json.Unmarshal(blob, &w); err != nil {
		return model.World{}, fmt.Errorf("decode slot %q: %w", slot, err)
	}
	return w, nil
}

// Slots lists every save slot, most recently saved first.
func (s *SlotStore) Slots(ctx context.Context) ([]SlotInfo, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT name, week, year, cash, saved_at
		FROM save_slots ORDER BY saved_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("list slots: %w", err)
	}
	defer rows.Close()

	var out []SlotInfo
	for rows.Next() {
		var info SlotInfo
		if err := rows.Scan(&info.Name, &info.Week, &info.Year, &info.Cash, &info.SavedAt); err != nil {
			return nil, fmt.Errorf("scan slot row: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// Delete removes the named slot. Deleting a missing slot is not an error.
func (s *SlotStore) Delete(ctx context.Context, slot string) error {
	if _, err := s.db.ExecContext(ctx, `DELETE FROM save_slots WHERE name = ?`, slot); err != nil {
		return fmt.Errorf("delete slot %q: %w", slot, err)
	}
	return nil
}
