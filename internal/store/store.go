package store

import (
	"context"
	"fmt"
	"log/slog"
	"slices"

	"launch_dash/internal/models"
)

// Source yields the launch records backing the store
type Source interface {
	Load(ctx context.Context) ([]models.LaunchRecord, error)
	Name() string
}

// DataLoadError reports that the backing data could not be read.
// It is fatal at startup: the process should not serve without data.
type DataLoadError struct {
	Source string
	Err    error
}

func (e *DataLoadError) Error() string {
	return fmt.Sprintf("failed to load launch records from %s: %v", e.Source, e.Err)
}

func (e *DataLoadError) Unwrap() error {
	return e.Err
}

// Store holds the immutable record set and the facts derived from it
type Store struct {
	records    []models.LaunchRecord
	sites      []string
	siteIndex  map[string]int
	minPayload float64
	maxPayload float64
}

// New builds a store over a copy of records.
// Sites are kept in order of first appearance.
func New(records []models.LaunchRecord) *Store {
	s := &Store{
		records:   slices.Clone(records),
		siteIndex: make(map[string]int),
	}

	for i, r := range s.records {
		if _, ok := s.siteIndex[r.Site]; !ok {
			s.siteIndex[r.Site] = len(s.sites)
			s.sites = append(s.sites, r.Site)
		}
		if i == 0 || r.PayloadMassKg < s.minPayload {
			s.minPayload = r.PayloadMassKg
		}
		if i == 0 || r.PayloadMassKg > s.maxPayload {
			s.maxPayload = r.PayloadMassKg
		}
	}

	return s
}

// Load reads every record from src and builds a store
func Load(ctx context.Context, src Source) (*Store, error) {
	records, err := src.Load(ctx)
	if err != nil {
		return nil, &DataLoadError{Source: src.Name(), Err: err}
	}

	s := New(records)
	slog.Info("Loaded launch records",
		"source", src.Name(),
		"records", s.Len(),
		"sites", len(s.sites),
		"payload_min", s.minPayload,
		"payload_max", s.maxPayload,
	)
	return s, nil
}

// Records returns the full, unfiltered record set
func (s *Store) Records() []models.LaunchRecord {
	return slices.Clone(s.records)
}

// Sites returns every distinct site in a stable order
func (s *Store) Sites() []string {
	return slices.Clone(s.sites)
}

// HasSite reports whether site occurs in the dataset
func (s *Store) HasSite(site string) bool {
	_, ok := s.siteIndex[site]
	return ok
}

// PayloadBounds returns the minimum and maximum payload mass; both are 0 for an empty store
func (s *Store) PayloadBounds() (min, max float64) {
	return s.minPayload, s.maxPayload
}

func (s *Store) Len() int {
	return len(s.records)
}
