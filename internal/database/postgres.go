package database

import (
	"context"
	"fmt"
	"time"

	"launch_dash/internal/models"

	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresSource reads launch records from a Postgres "launches" table with
// the same columns as the SQLite schema
type PostgresSource struct {
	pool *pgxpool.Pool
}

func NewPostgresSource(ctx context.Context, dsn string) (*PostgresSource, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("failed to ping postgres: %w", err)
	}

	return &PostgresSource{pool: pool}, nil
}

func (s *PostgresSource) Name() string {
	return "postgres"
}

func (s *PostgresSource) Load(ctx context.Context) ([]models.LaunchRecord, error) {
	rows, err := s.pool.Query(ctx, `SELECT launch_site, payload_mass_kg::float8, booster_version_category, class::int
		FROM launches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query launches: %w", err)
	}
	defer rows.Close()

	return scanLaunches(rows)
}

func (s *PostgresSource) Close() error {
	if s.pool != nil {
		s.pool.Close()
	}
	return nil
}
