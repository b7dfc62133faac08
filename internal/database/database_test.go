package database

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"launch_dash/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) *DB {
	dbPath := filepath.Join(t.TempDir(), "test_launches.db")

	db, err := New(dbPath)
	require.NoError(t, err)
	require.NotNil(t, db)

	return db
}

func cleanupTestDB(t *testing.T, db *DB) {
	if db != nil {
		err := db.Close()
		assert.NoError(t, err)
	}
}

func testLaunches() []models.LaunchRecord {
	return []models.LaunchRecord{
		{Site: "CCAFS LC-40", PayloadMassKg: 525, BoosterVersionCategory: "v1.0", OutcomeSuccess: false},
		{Site: "KSC LC-39A", PayloadMassKg: 2490, BoosterVersionCategory: "FT", OutcomeSuccess: true},
		{Site: "VAFB SLC-4E", PayloadMassKg: 9600, BoosterVersionCategory: "FT", OutcomeSuccess: true},
	}
}

func TestNew(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	assert.NotNil(t, db)
	assert.Contains(t, db.Name(), "sqlite:")
}

func TestInsertBatchAndLoad(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := db.LaunchRepository()
	require.NoError(t, repo.InsertBatch(testLaunches()))

	records, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testLaunches(), records)
}

func TestInsertBatch_Empty(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	// Empty batch should not error
	err := db.LaunchRepository().InsertBatch([]models.LaunchRecord{})
	assert.NoError(t, err)
}

func TestInsertBatch_RejectsNegativeMass(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := db.LaunchRepository()
	err := repo.InsertBatch([]models.LaunchRecord{{Site: "KSC LC-39A", PayloadMassKg: -5}})
	assert.Error(t, err)

	// The transaction rolls back as a whole
	populated, err := repo.IsTablePopulated()
	require.NoError(t, err)
	assert.False(t, populated)
}

func TestLoad_TrimsStoredSiteNames(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	require.NoError(t, db.LaunchRepository().InsertBatch([]models.LaunchRecord{
		{Site: "KSC LC-39A ", PayloadMassKg: 2490, BoosterVersionCategory: "FT", OutcomeSuccess: true},
	}))

	records, err := db.Load(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "KSC LC-39A", records[0].Site)
}

func TestLoad_EmptyTable(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	records, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestIsTablePopulated(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := db.LaunchRepository()

	populated, err := repo.IsTablePopulated()
	require.NoError(t, err)
	assert.False(t, populated)

	require.NoError(t, repo.InsertBatch(testLaunches()[:1]))

	populated, err = repo.IsTablePopulated()
	require.NoError(t, err)
	assert.True(t, populated)
}

func TestLoadFromCSV(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	csvPath := filepath.Join(t.TempDir(), "launches.csv")
	content := "Launch Site,Payload Mass (kg),Booster Version Category,class\n" +
		"CCAFS LC-40,525,v1.0,0\n" +
		"KSC LC-39A,2490,FT,1\n" +
		"VAFB SLC-4E,9600,FT,1\n"
	require.NoError(t, os.WriteFile(csvPath, []byte(content), 0o644))

	// A batch size smaller than the file exercises the multi-batch path
	n, err := db.LaunchRepository().LoadFromCSV(context.Background(), csvPath, 2)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	records, err := db.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, testLaunches(), records)
}

func TestLoadFromCSV_Errors(t *testing.T) {
	db := setupTestDB(t)
	defer cleanupTestDB(t, db)

	repo := db.LaunchRepository()

	_, err := repo.LoadFromCSV(context.Background(), filepath.Join(t.TempDir(), "missing.csv"), 10)
	assert.Error(t, err)

	_, err = repo.LoadFromCSV(context.Background(), "unused.csv", 0)
	assert.Error(t, err)
}
