package database

import (
	"context"
	"database/sql"
	"fmt"

	"launch_dash/internal/models"

	_ "github.com/mattn/go-sqlite3"
)

// DB is a SQLite-backed launch record source
type DB struct {
	db   *sql.DB
	path string
}

// New opens (creating if needed) the SQLite database at dbPath
func New(dbPath string) (*DB, error) {
	db, err := sql.Open("sqlite3", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := optimizeSQLite(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to optimize database: %w", err)
	}

	database := &DB{db: db, path: dbPath}

	if err := database.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return database, nil
}

// optimizeSQLite applies pragmas suited to a read-mostly dataset
func optimizeSQLite(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA synchronous=NORMAL",
		"PRAGMA temp_store=MEMORY",
		"PRAGMA busy_timeout=5000",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("failed to apply %q: %w", p, err)
		}
	}
	return nil
}

// Close closes the database connection
func (d *DB) Close() error {
	return d.db.Close()
}

// initSchema creates the launches table if it doesn't exist
func (d *DB) initSchema() error {
	launchesSchema := `CREATE TABLE IF NOT EXISTS launches (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		launch_site TEXT NOT NULL,
		payload_mass_kg REAL NOT NULL CHECK (payload_mass_kg >= 0),
		booster_version_category TEXT NOT NULL DEFAULT '',
		class INTEGER NOT NULL CHECK (class IN (0, 1))
	);`

	if _, err := d.db.Exec(launchesSchema); err != nil {
		return fmt.Errorf("failed to create launches table: %w", err)
	}

	if _, err := d.db.Exec(`CREATE INDEX IF NOT EXISTS idx_launches_site ON launches(launch_site)`); err != nil {
		return fmt.Errorf("failed to create index: %w", err)
	}

	return nil
}

// LaunchRepository returns the repository for the launches table
func (d *DB) LaunchRepository() LaunchRepository {
	return NewLaunchRepository(d.db)
}

func (d *DB) Name() string {
	return "sqlite:" + d.path
}

// Load reads every launch record in insertion order
func (d *DB) Load(ctx context.Context) ([]models.LaunchRecord, error) {
	return d.LaunchRepository().All(ctx)
}
