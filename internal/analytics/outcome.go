package analytics

import (
	"fmt"

	"launch_dash/internal/models"
	"launch_dash/internal/store"
)

const (
	LabelSuccess  = "Success"
	LabelFailures = "Failures"

	titleAllCombined   = "All Sites Combined Success and Failure"
	titleSuccessBySite = "Success Launches by Site"
	titleFailureBySite = "Failure Launches by Site"
)

// OutcomeAggregator builds the outcome-distribution series. The payload range is
// not an input: the distribution always covers every payload mass.
type OutcomeAggregator struct {
	store *store.Store
}

func NewOutcomeAggregator(s *store.Store) *OutcomeAggregator {
	return &OutcomeAggregator{store: s}
}

// Aggregate returns the labeled counts for mode
func (a *OutcomeAggregator) Aggregate(mode models.SiteMode) (models.OutcomeDistribution, error) {
	records := a.store.Records()

	switch mode.Kind() {
	case models.AllCombined:
		successes, failures := countOutcomes(records)
		return outcomeSplit(titleAllCombined, successes, failures), nil

	case models.AllSuccessBySite:
		return a.bySite(titleSuccessBySite, records, true), nil

	case models.AllFailureBySite:
		return a.bySite(titleFailureBySite, records, false), nil

	case models.SpecificSite:
		if !a.store.HasSite(mode.Site()) {
			return models.OutcomeDistribution{}, unknownSite(mode.Site())
		}
		successes, failures := countOutcomes(BySite(records, mode.Site()))
		return outcomeSplit(SiteTitle(mode.Site()), successes, failures), nil

	default:
		return models.OutcomeDistribution{}, &InvalidSelectionError{
			Field:  "site",
			Value:  mode.String(),
			Reason: fmt.Errorf("%w: unhandled kind %s", models.ErrInvalidSiteMode, mode.Kind()),
		}
	}
}

// bySite emits one slice per known site, including sites with a zero count
func (a *OutcomeAggregator) bySite(title string, records []models.LaunchRecord, success bool) models.OutcomeDistribution {
	sites := a.store.Sites()
	counts := make(map[string]int, len(sites))
	for _, r := range records {
		if r.OutcomeSuccess == success {
			counts[r.Site]++
		}
	}

	slices := make([]models.OutcomeSlice, 0, len(sites))
	for _, site := range sites {
		slices = append(slices, models.OutcomeSlice{Label: site, Count: counts[site]})
	}
	return models.OutcomeDistribution{Title: title, Slices: slices}
}

func outcomeSplit(title string, successes, failures int) models.OutcomeDistribution {
	return models.OutcomeDistribution{
		Title: title,
		Slices: []models.OutcomeSlice{
			{Label: LabelSuccess, Count: successes},
			{Label: LabelFailures, Count: failures},
		},
	}
}

// SiteTitle is the pie chart title for a single site
func SiteTitle(site string) string {
	return site + " Launch Site"
}
