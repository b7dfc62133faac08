package models

// LaunchRecord represents a single historical launch attempt
type LaunchRecord struct {
	Site                   string  // Launch site identifier (e.g., CCAFS LC-40)
	PayloadMassKg          float64 // Payload mass in kilograms, never negative
	BoosterVersionCategory string  // Booster family, used only for grouping in the scatter view
	OutcomeSuccess         bool    // true when the launch succeeded
}

// Class returns the outcome in the 0/1 encoding used by the source data
func (r LaunchRecord) Class() int {
	if r.OutcomeSuccess {
		return 1
	}
	return 0
}
