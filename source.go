package main

import (
	"context"
	"fmt"
	"io"

	"launch_dash/internal/config"
	"launch_dash/internal/database"
	"launch_dash/internal/dataset"
	"launch_dash/internal/store"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// openSource returns the configured record source and a closer for any connection it holds
func openSource(ctx context.Context, cfg config.DataConfig) (store.Source, io.Closer, error) {
	switch cfg.Source {
	case config.SourceCSV:
		return dataset.NewCSVSource(cfg.CSVPath), nopCloser{}, nil
	case config.SourceSQLite:
		db, err := database.New(cfg.DBPath)
		if err != nil {
			return nil, nil, err
		}
		return db, db, nil
	case config.SourcePostgres:
		pg, err := database.NewPostgresSource(ctx, cfg.DSN)
		if err != nil {
			return nil, nil, err
		}
		return pg, pg, nil
	default:
		return nil, nil, fmt.Errorf("unsupported data source: %s", cfg.Source)
	}
}

// loadStore opens the configured source and reads it into an immutable store.
// Failures to reach the source are reported as *store.DataLoadError.
func loadStore(ctx context.Context, cfg config.DataConfig) (*store.Store, error) {
	src, closer, err := openSource(ctx, cfg)
	if err != nil {
		return nil, &store.DataLoadError{Source: cfg.Source, Err: err}
	}
	defer closer.Close()

	return store.Load(ctx, src)
}
