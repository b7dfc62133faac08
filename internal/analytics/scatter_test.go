package analytics

import (
	"testing"

	"launch_dash/internal/models"
	"launch_dash/internal/store"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScatterProjector_Example(t *testing.T) {
	proj := NewScatterProjector(exampleStore())

	siteB, err := proj.Project(models.SiteModeFor("SiteB"), models.PayloadRange{Lo: 0, Hi: 10000})
	require.NoError(t, err)
	want := models.ScatterView{
		Title: "Payload vs. Launch Outcome for SiteB Launch Site",
		Points: []models.ScatterPoint{
			{PayloadMassKg: 1500, OutcomeSuccess: true, Class: 1, BoosterVersionCategory: "FT"},
		},
	}
	if diff := cmp.Diff(want, siteB); diff != "" {
		t.Errorf("Project(SiteB) mismatch (-want +got):\n%s", diff)
	}

	band, err := proj.Project(models.CombinedMode(), models.PayloadRange{Lo: 1000, Hi: 3000})
	require.NoError(t, err)
	assert.Equal(t, "Payload vs. Launch Outcome for All Sites", band.Title)
	assert.ElementsMatch(t, []float64{2000, 1500}, payloads(band.Points))
}

func TestScatterProjector_PieOnlyModesAreUnrestricted(t *testing.T) {
	proj := NewScatterProjector(exampleStore())
	full := models.PayloadRange{Lo: 0, Hi: 10000}

	all, err := proj.Project(models.CombinedMode(), full)
	require.NoError(t, err)

	for _, mode := range []models.SiteMode{models.SuccessBySiteMode(), models.FailureBySiteMode()} {
		got, err := proj.Project(mode, full)
		require.NoError(t, err)
		assert.Equal(t, all, got, "mode %s", mode)
	}
}

func TestScatterProjector_FullBoundsCoverEveryRecord(t *testing.T) {
	for _, seed := range []int64{5, 6, 7} {
		s := store.New(randomRecords(seed, 250))
		proj := NewScatterProjector(s)

		lo, hi := s.PayloadBounds()
		view, err := proj.Project(models.CombinedMode(), models.PayloadRange{Lo: lo, Hi: hi})
		require.NoError(t, err)
		assert.Len(t, view.Points, s.Len())
	}
}

func TestScatterProjector_InvalidSelection(t *testing.T) {
	proj := NewScatterProjector(exampleStore())

	tests := []struct {
		name      string
		mode      models.SiteMode
		rng       models.PayloadRange
		wantField string
		wantIs    error
	}{
		{name: "inverted range", mode: models.CombinedMode(), rng: models.PayloadRange{Lo: 3000, Hi: 1000}, wantField: "payload_range", wantIs: models.ErrInvalidPayloadRange},
		{name: "negative bound", mode: models.CombinedMode(), rng: models.PayloadRange{Lo: -5, Hi: 1000}, wantField: "payload_range", wantIs: models.ErrInvalidPayloadRange},
		{name: "unknown site", mode: models.SiteModeFor("SiteZ"), rng: models.PayloadRange{Lo: 0, Hi: 1000}, wantField: "site", wantIs: models.ErrInvalidSiteMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := proj.Project(tt.mode, tt.rng)
			var selErr *InvalidSelectionError
			require.ErrorAs(t, err, &selErr)
			assert.Equal(t, tt.wantField, selErr.Field)
			assert.ErrorIs(t, err, tt.wantIs)
		})
	}
}

func TestScatterProjector_EmptyResults(t *testing.T) {
	view, err := NewScatterProjector(exampleStore()).Project(models.SiteModeFor("SiteA"), models.PayloadRange{Lo: 5000, Hi: 6000})
	require.NoError(t, err)
	assert.NotNil(t, view.Points)
	assert.Empty(t, view.Points)

	empty, err := NewScatterProjector(store.New(nil)).Project(models.CombinedMode(), models.PayloadRange{})
	require.NoError(t, err)
	assert.Empty(t, empty.Points)
}

func payloads(points []models.ScatterPoint) []float64 {
	out := make([]float64, 0, len(points))
	for _, p := range points {
		out = append(out, p.PayloadMassKg)
	}
	return out
}
