package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourneycontrol/internal/models"
)

func TestConsolidate(t *testing.T) {
	t.Run("Empty Selection Returns Nil", func(t *testing.T) {
		assert.Nil(t, Consolidate(nil, LabelContext{}))
		assert.Nil(t, Consolidate([]models.TournamentAgg{}, LabelContext{}))
	})

	t.Run("Blend Is Games Weighted", func(t *testing.T) {
		records := []models.TournamentAgg{
			{
				TournamentKey: "GG::Small",
				Name:          "Small",
				GamesCount:    10,
				AvgStake:      5,
				TotalProfit:   100,
				ITMCount:      2,
				FieldAvg:      100,
			},
			{
				TournamentKey: "GG::Big",
				Name:          "Big",
				GamesCount:    90,
				AvgStake:      15,
				TotalProfit:   54,
				ITMCount:      18,
				FieldAvg:      200,
			},
		}

		s := Consolidate(records, LabelContext{})
		require.NotNil(t, s)

		assert.Equal(t, 100, s.Games)
		// 10 games at $5 and 90 at $15 average to $14, not $10
		assert.InDelta(t, 14.0, s.AvgStake, 1e-9)
		assert.InDelta(t, 154.0, s.TotalProfit, 1e-9)
		assert.InDelta(t, 20.0, s.ITMPct, 1e-9)
		// cost basis: (5*1.1*10 + 15*1.1*90) = 1540
		assert.InDelta(t, 154.0/1540.0*100, s.ROITotalPct, 1e-9)
		assert.InDelta(t, 190.0, s.FieldAvg, 1e-9)
	})

	t.Run("Field Average Is Rounded", func(t *testing.T) {
		records := []models.TournamentAgg{
			{GamesCount: 3, FieldAvg: 100},
			{GamesCount: 1, FieldAvg: 150},
		}
		s := Consolidate(records, LabelContext{})
		require.NotNil(t, s)
		// 112.5 rounds to 113
		assert.InDelta(t, 113.0, s.FieldAvg, 1e-9)
	})
}

func TestSummaryLabel(t *testing.T) {
	rec := models.TournamentAgg{TournamentKey: "GG::Sunday Special", Name: "Sunday Special", GamesCount: 1}

	t.Run("Keywords Join", func(t *testing.T) {
		s := Consolidate([]models.TournamentAgg{rec}, LabelContext{Keywords: []string{"Bounty", "Turbo"}})
		assert.Equal(t, "Bounty + Turbo", s.Name)
	})

	t.Run("Keywords With Custom Selection", func(t *testing.T) {
		s := Consolidate([]models.TournamentAgg{rec}, LabelContext{
			Keywords:     []string{"Bounty"},
			SelectedKeys: []string{"GG::Sunday Special"},
		})
		assert.Equal(t, "Bounty & Custom", s.Name)
	})

	t.Run("Selection Only Uses First Key Name", func(t *testing.T) {
		s := Consolidate([]models.TournamentAgg{rec}, LabelContext{SelectedKeys: []string{"GG::Sunday Special"}})
		assert.Equal(t, "Sunday Special", s.Name)
	})

	t.Run("Fallback", func(t *testing.T) {
		s := Consolidate([]models.TournamentAgg{rec}, LabelContext{})
		assert.Equal(t, FallbackLabel, s.Name)
	})
}
