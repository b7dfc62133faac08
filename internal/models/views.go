package models

// OutcomeSlice is one labeled count of the outcome-distribution view
type OutcomeSlice struct {
	Label string `json:"label" yaml:"label"`
	Count int    `json:"count" yaml:"count"`
}

// OutcomeDistribution feeds the pie chart
type OutcomeDistribution struct {
	Title  string         `json:"title" yaml:"title"`
	Slices []OutcomeSlice `json:"slices" yaml:"slices"`
}

// Total returns the sum of all slice counts
func (d OutcomeDistribution) Total() int {
	total := 0
	for _, s := range d.Slices {
		total += s.Count
	}
	return total
}

// ScatterPoint is one record projected for the correlation view
type ScatterPoint struct {
	PayloadMassKg          float64 `json:"payload_mass_kg" yaml:"payload_mass_kg"`
	OutcomeSuccess         bool    `json:"outcome_success" yaml:"outcome_success"`
	Class                  int     `json:"class" yaml:"class"`
	BoosterVersionCategory string  `json:"booster_version_category" yaml:"booster_version_category"`
}

// ScatterView feeds the payload vs. outcome chart
type ScatterView struct {
	Title  string         `json:"title" yaml:"title"`
	Points []ScatterPoint `json:"points" yaml:"points"`
}
