// Package snapshots persists scoring results so past analyses can be
// retrieved and compared over time.
package snapshots

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/database"
	"github.com/trichyravis/Stock-Analysis-5LensFramework/internal/modules/scoring"
)

// Snapshot is one persisted scoring run.
type Snapshot struct {
	ID        int64     `json:"id"`
	Symbol    string    `json:"symbol"`
	Composite *float64  `json:"composite,omitempty"`
	Tier      string    `json:"tier"`
	Breakdown string    `json:"breakdown"`
	CreatedAt time.Time `json:"created_at"`
}

// Repository stores and retrieves analysis snapshots.
type Repository struct {
	db  *database.DB
	log zerolog.Logger
}

// NewRepository creates a new snapshot repository.
func NewRepository(db *database.DB, log zerolog.Logger) *Repository {
	return &Repository{
		db:  db,
		log: log.With().Str("component", "snapshot_repo").Logger(),
	}
}

// Record persists one scoring result. Implements scoring.Recorder.
func (r *Repository) Record(symbol string, result scoring.CompositeResult) error {
	breakdown, err := json.Marshal(result.Breakdown)
	if err != nil {
		return fmt.Errorf("marshal breakdown: %w", err)
	}

	var composite sql.NullFloat64
	if result.Score != nil {
		composite = sql.NullFloat64{Float64: *result.Score, Valid: true}
	}

	_, err = r.db.Exec(
		`INSERT INTO analysis_snapshots (symbol, composite, tier, breakdown) VALUES (?, ?, ?, ?)`,
		symbol, composite, string(result.Tier), string(breakdown),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}

	r.log.Debug().Str("symbol", symbol).Str("tier", string(result.Tier)).Msg("Recorded snapshot")
	return nil
}

// ListBySymbol returns up to limit snapshots for a symbol, newest first.
func (r *Repository) ListBySymbol(symbol string, limit int) ([]Snapshot, error) {
	if limit <= 0 {
		limit = 50
	}

	rows, err := r.db.Query(
		`SELECT id, symbol, composite, tier, breakdown, created_at
		 FROM analysis_snapshots WHERE symbol = ? ORDER BY created_at DESC, id DESC LIMIT ?`,
		symbol, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query snapshots: %w", err)
	}
	defer rows.Close()

	var snapshots []Snapshot
	for rows.Next() {
		s, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snapshots = append(snapshots, s)
	}
	return snapshots, rows.Err()
}

// Latest returns the most recent snapshot for a symbol, or sql.ErrNoRows.
func (r *Repository) Latest(symbol string) (Snapshot, error) {
	row := r.db.QueryRow(
		`SELECT id, symbol, composite, tier, breakdown, created_at
		 FROM analysis_snapshots WHERE symbol = ? ORDER BY created_at DESC, id DESC LIMIT 1`,
		symbol,
	)

	var s Snapshot
	var composite sql.NullFloat64
	if err := row.Scan(&s.ID, &s.Symbol, &composite, &s.Tier, &s.Breakdown, &s.CreatedAt); err != nil {
		return Snapshot{}, err
	}
	if composite.Valid {
		s.Composite = &composite.Float64
	}
	return s, nil
}

// DeleteOlderThan removes snapshots created before the cutoff and reports how
// many were deleted.
func (r *Repository) DeleteOlderThan(cutoff time.Time) (int64, error) {
	result, err := r.db.Exec(`DELETE FROM analysis_snapshots WHERE created_at < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("delete snapshots: %w", err)
	}
	return result.RowsAffected()
}

func scanSnapshot(rows *sql.Rows) (Snapshot, error) {
	var s Snapshot
	var composite sql.NullFloat64
	if err := rows.Scan(&s.ID, &s.Symbol, &composite, &s.Tier, &s.Breakdown, &s.CreatedAt); err != nil {
		return Snapshot{}, fmt.Errorf("scan snapshot: %w", err)
	}
	if composite.Valid {
		s.Composite = &composite.Float64
	}
	return s, nil
}
