package analytics

import (
	"fmt"
	"math/rand"

	"launch_dash/internal/models"
	"launch_dash/internal/store"
)

// exampleRecords is the three-record dataset used throughout the docs
func exampleRecords() []models.LaunchRecord {
	return []models.LaunchRecord{
		{Site: "SiteA", PayloadMassKg: 500, BoosterVersionCategory: "v1.0", OutcomeSuccess: true},
		{Site: "SiteA", PayloadMassKg: 2000, BoosterVersionCategory: "v1.1", OutcomeSuccess: false},
		{Site: "SiteB", PayloadMassKg: 1500, BoosterVersionCategory: "FT", OutcomeSuccess: true},
	}
}

func exampleStore() *store.Store {
	return store.New(exampleRecords())
}

// randomRecords generates a reproducible dataset spread across a handful of sites
func randomRecords(seed int64, n int) []models.LaunchRecord {
	rng := rand.New(rand.NewSource(seed))
	categories := []string{"v1.0", "v1.1", "FT", "B4", "B5"}
	records := make([]models.LaunchRecord, 0, n)
	for i := 0; i < n; i++ {
		records = append(records, models.LaunchRecord{
			Site:                   fmt.Sprintf("Site-%d", rng.Intn(5)),
			PayloadMassKg:          float64(rng.Intn(10001)),
			BoosterVersionCategory: categories[rng.Intn(len(categories))],
			OutcomeSuccess:         rng.Intn(2) == 1,
		})
	}
	return records
}
