package analytics

import (
	"launch_dash/internal/models"
	"launch_dash/internal/store"
)

const titleScatterAll = "Payload vs. Launch Outcome for All Sites"

// ScatterProjector builds the payload vs. outcome points
type ScatterProjector struct {
	store *store.Store
}

func NewScatterProjector(s *store.Store) *ScatterProjector {
	return &ScatterProjector{store: s}
}

// Project returns one point per record surviving the site and payload filters.
// The by-site pie modes carry no site restriction here and behave like AllCombined.
func (p *ScatterProjector) Project(mode models.SiteMode, rng models.PayloadRange) (models.ScatterView, error) {
	if err := rng.Validate(); err != nil {
		return models.ScatterView{}, invalidRange(rng, err)
	}

	records := p.store.Records()
	title := titleScatterAll

	if mode.Kind() == models.SpecificSite {
		if !p.store.HasSite(mode.Site()) {
			return models.ScatterView{}, unknownSite(mode.Site())
		}
		records = BySite(records, mode.Site())
		title = "Payload vs. Launch Outcome for " + SiteTitle(mode.Site())
	}

	filtered := ByPayloadRange(records, rng)
	points := make([]models.ScatterPoint, 0, len(filtered))
	for _, r := range filtered {
		points = append(points, models.ScatterPoint{
			PayloadMassKg:          r.PayloadMassKg,
			OutcomeSuccess:         r.OutcomeSuccess,
			Class:                  r.Class(),
			BoosterVersionCategory: r.BoosterVersionCategory,
		})
	}

	return models.ScatterView{Title: title, Points: points}, nil
}
