package analytics

import (
	"launch_dash/internal/models"
	"launch_dash/internal/store"
)

// DashboardView holds both view payloads produced for one selection event
type DashboardView struct {
	Outcomes models.OutcomeDistribution `json:"outcomes" yaml:"outcomes"`
	Scatter  models.ScatterView         `json:"scatter" yaml:"scatter"`
}

// Dashboard answers selection events against a single store
type Dashboard struct {
	store      *store.Store
	aggregator *OutcomeAggregator
	projector  *ScatterProjector
}

func NewDashboard(s *store.Store) *Dashboard {
	return &Dashboard{
		store:      s,
		aggregator: NewOutcomeAggregator(s),
		projector:  NewScatterProjector(s),
	}
}

func (d *Dashboard) Store() *store.Store {
	return d.store
}

// FullRange returns the payload interval covering every record
func (d *Dashboard) FullRange() models.PayloadRange {
	lo, hi := d.store.PayloadBounds()
	return models.PayloadRange{Lo: lo, Hi: hi}
}

func (d *Dashboard) Outcomes(mode models.SiteMode) (models.OutcomeDistribution, error) {
	return d.aggregator.Aggregate(mode)
}

func (d *Dashboard) Scatter(mode models.SiteMode, rng models.PayloadRange) (models.ScatterView, error) {
	return d.projector.Project(mode, rng)
}

// Render runs the aggregator and the projector once each for sel
func (d *Dashboard) Render(sel models.Selection) (DashboardView, error) {
	outcomes, err := d.aggregator.Aggregate(sel.Mode)
	if err != nil {
		return DashboardView{}, err
	}
	scatter, err := d.projector.Project(sel.Mode, sel.Range)
	if err != nil {
		return DashboardView{}, err
	}
	return DashboardView{Outcomes: outcomes, Scatter: scatter}, nil
}
