package feeds

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "github.com/lib/pq"

	"github.com/pickline/consensus/pkg/models"
)

// PostgresSource reads raw picks the scraper wrote to Postgres. Only picks
// recorded within the lookback window are returned, so stale rows never
// re-enter the pipeline.
type PostgresSource struct {
	name     string
	db       *sql.DB
	lookback time.Duration
}

// NewPostgresSource opens the feed store connection
func NewPostgresSource(name, dsn string, lookback time.Duration) (*PostgresSource, error) {
	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open feed store: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(2)
	db.SetConnMaxLifetime(5 * time.Minute)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := db.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("failed to ping feed store: %w", err)
	}

	if lookback <= 0 {
		lookback = 24 * time.Hour
	}

	return &PostgresSource{name: name, db: db, lookback: lookback}, nil
}

// Name returns the feed-source identifier
func (s *PostgresSource) Name() string {
	return s.name
}

// Fetch reads recent raw picks from the feed store
func (s *PostgresSource) Fetch(ctx context.Context) ([]models.RawPick, error) {
	query := `
		SELECT capper, sport, team, bet_text, line, COALESCE(matchup, ''), picked_at, source
		FROM raw_picks
		WHERE recorded_at > NOW() - $1::interval
		ORDER BY recorded_at ASC, id ASC
	`

	interval := fmt.Sprintf("%d seconds", int(s.lookback.Seconds()))

	rows, err := s.db.QueryContext(ctx, query, interval)
	if err != nil {
		return nil, fmt.Errorf("query raw picks: %w", err)
	}
	defer rows.Close()

	picks := []models.RawPick{}
	for rows.Next() {
		var p models.RawPick
		if err := rows.Scan(&p.Capper, &p.Sport, &p.Team, &p.BetText, &p.Line, &p.Matchup, &p.PickedAt, &p.Source); err != nil {
			continue
		}
		picks = append(picks, p)
	}

	return picks, rows.Err()
}

// Close releases the connection pool
func (s *PostgresSource) Close() error {
	return s.db.Close()
}
