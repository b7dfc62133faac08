package dataset

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"launch_dash/internal/models"
)

// Column names in the launch dataset CSV
const (
	ColumnLaunchSite      = "Launch Site"
	ColumnPayloadMass     = "Payload Mass (kg)"
	ColumnBoosterCategory = "Booster Version Category"
	ColumnClass           = "class"
)

var requiredColumns = []string{ColumnLaunchSite, ColumnPayloadMass, ColumnBoosterCategory, ColumnClass}

// ErrNoHeader is returned for an input without a header row
var ErrNoHeader = errors.New("csv has no header row")

// CSVSource loads launch records from a CSV file
type CSVSource struct {
	Path string
}

func NewCSVSource(path string) *CSVSource {
	return &CSVSource{Path: path}
}

func (s *CSVSource) Name() string {
	return "csv:" + s.Path
}

// Load reads and parses the whole file
func (s *CSVSource) Load(ctx context.Context) ([]models.LaunchRecord, error) {
	file, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open CSV file %s: %w", s.Path, err)
	}
	defer file.Close()

	return ParseCSV(ctx, file)
}

// ParseCSV parses launch records from r. Malformed rows fail the whole parse;
// a header with no rows yields an empty, non-nil record set.
func ParseCSV(ctx context.Context, r io.Reader) ([]models.LaunchRecord, error) {
	reader := csv.NewReader(r)
	reader.LazyQuotes = true
	reader.FieldsPerRecord = 0 // every row must match the header width

	header, err := reader.Read()
	if err == io.EOF {
		return nil, ErrNoHeader
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV header: %w", err)
	}

	headerMap := make(map[string]int, len(header))
	for i, h := range header {
		headerMap[cleanField(h)] = i
	}
	for _, col := range requiredColumns {
		if _, ok := headerMap[col]; !ok {
			return nil, fmt.Errorf("missing required column %q", col)
		}
	}

	records := make([]models.LaunchRecord, 0)
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read CSV record: %w", err)
		}

		line, _ := reader.FieldPos(0)
		rec, err := parseRecord(row, headerMap)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}
		records = append(records, rec)
	}

	return records, nil
}

func parseRecord(row []string, headerMap map[string]int) (models.LaunchRecord, error) {
	site := getField(row, headerMap, ColumnLaunchSite)
	if site == "" {
		return models.LaunchRecord{}, fmt.Errorf("empty %q", ColumnLaunchSite)
	}

	mass, err := ParsePayloadMass(getField(row, headerMap, ColumnPayloadMass))
	if err != nil {
		return models.LaunchRecord{}, err
	}

	success, err := ParseClass(getField(row, headerMap, ColumnClass))
	if err != nil {
		return models.LaunchRecord{}, err
	}

	return models.LaunchRecord{
		Site:                   site,
		PayloadMassKg:          mass,
		BoosterVersionCategory: getField(row, headerMap, ColumnBoosterCategory),
		OutcomeSuccess:         success,
	}, nil
}

// ParsePayloadMass parses a non-negative, finite mass in kilograms
func ParsePayloadMass(value string) (float64, error) {
	mass, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid payload mass %q: %w", value, err)
	}
	if math.IsNaN(mass) || math.IsInf(mass, 0) || mass < 0 {
		return 0, fmt.Errorf("invalid payload mass %q: must be a non-negative number", value)
	}
	return mass, nil
}

// ParseClass maps the 0/1 outcome class onto a success flag
func ParseClass(value string) (bool, error) {
	switch value {
	case "1", "1.0":
		return true, nil
	case "0", "0.0":
		return false, nil
	default:
		return false, fmt.Errorf("invalid class %q: must be 0 or 1", value)
	}
}

// getField retrieves a field from a CSV row by header name
func getField(row []string, headerMap map[string]int, fieldName string) string {
	if idx, ok := headerMap[fieldName]; ok && idx < len(row) {
		return cleanField(row[idx])
	}
	return ""
}

func cleanField(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	return strings.Trim(strings.TrimSpace(s), "'\"")
}
