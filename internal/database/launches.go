package database

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"launch_dash/internal/dataset"
	"launch_dash/internal/models"
)

type LaunchRepository interface {
	All(ctx context.Context) ([]models.LaunchRecord, error)
	InsertBatch(records []models.LaunchRecord) error
	IsTablePopulated() (bool, error)
	LoadFromCSV(ctx context.Context, csvPath string, batchSize int) (int, error)
}

type launchRepository struct {
	db *sql.DB
}

func NewLaunchRepository(db *sql.DB) LaunchRepository {
	return &launchRepository{db: db}
}

func (r *launchRepository) All(ctx context.Context) ([]models.LaunchRecord, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT launch_site, payload_mass_kg, booster_version_category, class
		FROM launches ORDER BY id`)
	if err != nil {
		return nil, fmt.Errorf("failed to query launches: %w", err)
	}
	defer rows.Close()

	return scanLaunches(rows)
}

// InsertBatch inserts one or more launch records in a single transaction
func (r *launchRepository) InsertBatch(records []models.LaunchRecord) error {
	if len(records) == 0 {
		return nil
	}

	tx, err := r.db.Begin()
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(`INSERT INTO launches (
		launch_site, payload_mass_kg, booster_version_category, class
	) VALUES (?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("failed to prepare statement: %w", err)
	}
	defer stmt.Close()

	for _, rec := range records {
		if _, err := stmt.Exec(rec.Site, rec.PayloadMassKg, rec.BoosterVersionCategory, rec.Class()); err != nil {
			return fmt.Errorf("failed to insert launch: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

func (r *launchRepository) IsTablePopulated() (bool, error) {
	var ignored int
	err := r.db.QueryRow("SELECT 1 FROM launches LIMIT 1").Scan(&ignored)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to check launches table: %w", err)
	}
	return true, nil
}

// LoadFromCSV parses csvPath and inserts its records in batches of batchSize.
// It returns the number of records inserted.
func (r *launchRepository) LoadFromCSV(ctx context.Context, csvPath string, batchSize int) (int, error) {
	if batchSize <= 0 {
		return 0, fmt.Errorf("batch size must be greater than 0")
	}

	records, err := dataset.NewCSVSource(csvPath).Load(ctx)
	if err != nil {
		return 0, err
	}

	for start := 0; start < len(records); start += batchSize {
		end := min(start+batchSize, len(records))
		if err := r.InsertBatch(records[start:end]); err != nil {
			return start, fmt.Errorf("failed to insert batch: %w", err)
		}
	}

	return len(records), nil
}

// rowScanner is satisfied by *sql.Rows and pgx.Rows
type rowScanner interface {
	Next() bool
	Scan(dest ...any) error
	Err() error
}

func scanLaunches(rows rowScanner) ([]models.LaunchRecord, error) {
	records := make([]models.LaunchRecord, 0)
	for rows.Next() {
		var (
			rec   models.LaunchRecord
			class int
		)
		if err := rows.Scan(&rec.Site, &rec.PayloadMassKg, &rec.BoosterVersionCategory, &class); err != nil {
			return nil, fmt.Errorf("failed to scan launch: %w", err)
		}
		if class != 0 && class != 1 {
			return nil, fmt.Errorf("invalid class %d for launch at %s", class, rec.Site)
		}
		rec.Site = strings.TrimSpace(rec.Site)
		rec.OutcomeSuccess = class == 1
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate launches: %w", err)
	}
	return records, nil
}
