package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tourneycontrol/internal/models"
)

func rawEntry(profit, stake, roi float64, participants int, itm bool, playedAt, speed string) models.TournamentRaw {
	return models.TournamentRaw{
		UserID:        "user-1",
		DatasetID:     1,
		TournamentKey: "GG::Sunday Special",
		Network:       "GG",
		Name:          "Sunday Special",
		Speed:         speed,
		ProfitUSD:     profit,
		StakeUSD:      stake,
		ROIIndividual: roi,
		Participants:  participants,
		IsITM:         itm,
		PlayedAt:      playedAt,
	}
}

func TestAggregate(t *testing.T) {
	a := rawEntry(-6, 10, -54.54, 450, false, "2024-01-15 18:30", "Turbo")
	b := rawEntry(20, 10, 181.81, 350, true, "2024-01-22 18:30", "Turbo")

	t.Run("Fresh Record", func(t *testing.T) {
		agg := Aggregate(nil, []models.TournamentRaw{a, b})
		require.NotNil(t, agg)

		assert.Equal(t, "GG::Sunday Special", agg.TournamentKey)
		assert.Equal(t, 2, agg.GamesCount)
		assert.InDelta(t, 14.0, agg.TotalProfit, 1e-9)
		assert.InDelta(t, 7.0, agg.AvgProfit, 1e-9)
		assert.InDelta(t, 20.0, agg.TotalStake, 1e-9)
		assert.InDelta(t, 10.0, agg.AvgStake, 1e-9)
		assert.Equal(t, 1, agg.ITMCount)
		assert.InDelta(t, 50.0, agg.ITMPct, 1e-9)
		assert.InDelta(t, 14.0/(20.0*RakeEstimate)*100, agg.ROITotalPct, 1e-9)
		assert.InDelta(t, (-54.54+181.81)/2, agg.ROIAvgPct, 1e-9)
		assert.InDelta(t, 400.0, agg.FieldAvg, 1e-9)
		assert.Equal(t, "2024-01-15 18:30", agg.FirstPlayedAt)
		assert.Equal(t, "2024-01-22 18:30", agg.LastPlayedAt)
	})

	t.Run("Replay From Nil Base Is Identical", func(t *testing.T) {
		first := Aggregate(nil, []models.TournamentRaw{a, b})
		second := Aggregate(nil, []models.TournamentRaw{a, b})
		assert.Equal(t, *first, *second)
	})

	t.Run("Incremental Merge Matches One Shot", func(t *testing.T) {
		oneShot := Aggregate(nil, []models.TournamentRaw{a, b})
		stepwise := Aggregate(Aggregate(nil, []models.TournamentRaw{a}), []models.TournamentRaw{b})

		assert.Equal(t, oneShot.GamesCount, stepwise.GamesCount)
		assert.InDelta(t, oneShot.TotalProfit, stepwise.TotalProfit, 1e-9)
		assert.InDelta(t, oneShot.AvgProfit, stepwise.AvgProfit, 1e-9)
		assert.InDelta(t, oneShot.AvgStake, stepwise.AvgStake, 1e-9)
		assert.InDelta(t, oneShot.ITMPct, stepwise.ITMPct, 1e-9)
		assert.InDelta(t, oneShot.ROITotalPct, stepwise.ROITotalPct, 1e-9)
		assert.InDelta(t, oneShot.ROIAvgPct, stepwise.ROIAvgPct, 1e-9)
		assert.InDelta(t, oneShot.FieldAvg, stepwise.FieldAvg, 1e-9)
		assert.Equal(t, oneShot.FirstPlayedAt, stepwise.FirstPlayedAt)
		assert.Equal(t, oneShot.LastPlayedAt, stepwise.LastPlayedAt)
	})

	t.Run("Empty Batch Is A No Op", func(t *testing.T) {
		existing := Aggregate(nil, []models.TournamentRaw{a})
		assert.Same(t, existing, Aggregate(existing, nil))
		assert.Nil(t, Aggregate(nil, nil))
	})

	t.Run("Merge Does Not Mutate Existing", func(t *testing.T) {
		existing := Aggregate(nil, []models.TournamentRaw{a})
		before := *existing
		Aggregate(existing, []models.TournamentRaw{b})
		assert.Equal(t, before, *existing)
	})

	t.Run("Zero Stake Record Has Zero Total ROI", func(t *testing.T) {
		freeroll := rawEntry(5, 0, float64(ROISentinel), 100, true, "2024-01-01 10:00", "Normal")
		agg := Aggregate(nil, []models.TournamentRaw{freeroll})
		assert.InDelta(t, 0.0, agg.ROITotalPct, 1e-9)
	})
}

func TestPredominantSpeed(t *testing.T) {
	entries := []models.TournamentRaw{
		rawEntry(0, 1, 0, 10, false, "", "Turbo"),
		rawEntry(0, 1, 0, 10, false, "", "Normal"),
		rawEntry(0, 1, 0, 10, false, "", "Normal"),
	}
	agg := Aggregate(nil, entries)
	assert.Equal(t, "Normal", agg.Speed)

	t.Run("Tie Keeps First Seen", func(t *testing.T) {
		tied := []models.TournamentRaw{
			rawEntry(0, 1, 0, 10, false, "", "Turbo"),
			rawEntry(0, 1, 0, 10, false, "", "Normal"),
		}
		agg := Aggregate(nil, tied)
		assert.Equal(t, "Turbo", agg.Speed)
	})
}

func TestAggregateAll(t *testing.T) {
	a := rawEntry(-6, 10, -54.54, 450, false, "2024-01-15 18:30", "Turbo")
	other := a
	other.TournamentKey = "GG::Bounty Hunter"
	other.Name = "Bounty Hunter"

	out := AggregateAll(nil, []models.TournamentRaw{a, other, a})
	require.Len(t, out, 2)
	assert.Equal(t, 2, out["GG::Sunday Special"].GamesCount)
	assert.Equal(t, 1, out["GG::Bounty Hunter"].GamesCount)
}
