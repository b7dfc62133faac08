package analytics

import "launch_dash/internal/models"

// BySite returns the records launched from site. An unknown site yields an empty set.
func BySite(records []models.LaunchRecord, site string) []models.LaunchRecord {
	out := make([]models.LaunchRecord, 0)
	for _, r := range records {
		if r.Site == site {
			out = append(out, r)
		}
	}
	return out
}

// ByPayloadRange returns the records whose payload lies within rng, inclusive at both ends
func ByPayloadRange(records []models.LaunchRecord, rng models.PayloadRange) []models.LaunchRecord {
	out := make([]models.LaunchRecord, 0)
	for _, r := range records {
		if rng.Contains(r.PayloadMassKg) {
			out = append(out, r)
		}
	}
	return out
}

// countOutcomes returns the number of successful and failed launches in records
func countOutcomes(records []models.LaunchRecord) (successes, failures int) {
	for _, r := range records {
		if r.OutcomeSuccess {
			successes++
		} else {
			failures++
		}
	}
	return successes, failures
}
