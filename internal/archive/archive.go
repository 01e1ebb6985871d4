// Package archive persists daily consensus snapshots for the historical
// record. The engine itself never reads these back; archiving is fire-and-log.
package archive

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/pickline/consensus/pkg/models"
)

// SnapshotWriter writes formatted consensus snapshots to Postgres
type SnapshotWriter struct {
	db *sql.DB
}

// NewSnapshotWriter opens the archive connection
func NewSnapshotWriter(dsn string) (*SnapshotWriter, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open archive: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping archive: %w", err)
	}

	return &SnapshotWriter{db: db}, nil
}

// WriteSnapshot stores one pipeline run's consensus groups under a shared
// snapshot id. Returns the snapshot id on success.
func (w *SnapshotWriter) WriteSnapshot(ctx context.Context, date string, groups []models.ConsensusGroup) (string, error) {
	snapshotID := uuid.NewString()

	tx, err := w.db.BeginTx(ctx, nil)
	if err != nil {
		return "", fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	snapshotQuery := `
		INSERT INTO consensus_snapshots (id, report_date, group_count, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	if _, err := tx.ExecContext(ctx, snapshotQuery, snapshotID, date, len(groups)); err != nil {
		return "", fmt.Errorf("failed to insert snapshot: %w", err)
	}

	groupQuery := `
		INSERT INTO consensus_groups (
			snapshot_id, sport, team_id, bet_type, line, report_date,
			bet_text, matchup, capper_count, tier, cappers
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	for _, g := range groups {
		cappers, err := json.Marshal(g.Cappers)
		if err != nil {
			return "", fmt.Errorf("failed to marshal cappers: %w", err)
		}

		var line sql.NullFloat64
		if g.Line != nil {
			line = sql.NullFloat64{Float64: *g.Line, Valid: true}
		}

		_, err = tx.ExecContext(ctx, groupQuery,
			snapshotID,
			string(g.Sport),
			string(g.TeamID),
			string(g.BetType),
			line,
			g.Date,
			g.Bet,
			g.Matchup,
			g.CapperCount,
			string(g.Tier),
			cappers,
		)
		if err != nil {
			return "", fmt.Errorf("failed to insert consensus group: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit snapshot: %w", err)
	}

	return snapshotID, nil
}

// Close releases the connection pool
func (w *SnapshotWriter) Close() error {
	return w.db.Close()
}
