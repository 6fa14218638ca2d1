package tournament

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"tourneycontrol/internal/models"
)

func TestNumericFilter(t *testing.T) {
	t.Run("No Operator Matches Everything", func(t *testing.T) {
		assert.True(t, NumericFilter{}.Matches(42))
		assert.True(t, NumericFilter{Operator: OpNone}.Matches(-1))
	})

	t.Run("GTE And LTE", func(t *testing.T) {
		assert.True(t, NumericFilter{Operator: OpGTE, Val1: "10"}.Matches(10))
		assert.False(t, NumericFilter{Operator: OpGTE, Val1: "10"}.Matches(9.9))
		assert.True(t, NumericFilter{Operator: OpLTE, Val1: "10"}.Matches(10))
		assert.False(t, NumericFilter{Operator: OpLTE, Val1: "10"}.Matches(10.1))
	})

	t.Run("Between", func(t *testing.T) {
		f := NumericFilter{Operator: OpBetween, Val1: "5", Val2: "10"}
		assert.True(t, f.Matches(5))
		assert.True(t, f.Matches(10))
		assert.False(t, f.Matches(4.9))
		assert.False(t, f.Matches(10.1))
	})

	t.Run("Incomplete Operands Never Constrain", func(t *testing.T) {
		assert.True(t, NumericFilter{Operator: OpGTE}.Matches(-999))
		assert.True(t, NumericFilter{Operator: OpGTE, Val1: "abc"}.Matches(-999))
		assert.True(t, NumericFilter{Operator: OpBetween, Val1: "5"}.Matches(-999))
		assert.True(t, NumericFilter{Operator: OpBetween, Val2: "10"}.Matches(999))
	})
}

func TestFilterState(t *testing.T) {
	rec := models.TournamentAgg{
		TournamentKey: "GG::Sunday Special",
		Name:          "Sunday Special",
		Network:       "GG",
		Speed:         "Turbo",
		GamesCount:    25,
		AvgStake:      11,
		ITMPct:        40,
		TotalProfit:   120,
		ROITotalPct:   8,
		FieldAvg:      450,
	}

	t.Run("Empty State Matches", func(t *testing.T) {
		assert.True(t, FilterState{}.Matches(rec))
	})

	t.Run("Search Is Case Insensitive Substring", func(t *testing.T) {
		assert.True(t, FilterState{Search: "sunday"}.Matches(rec))
		assert.False(t, FilterState{Search: "monday"}.Matches(rec))
	})

	t.Run("Network And Speed Membership", func(t *testing.T) {
		assert.True(t, FilterState{Networks: []string{"GG", "Stars"}}.Matches(rec))
		assert.False(t, FilterState{Networks: []string{"Stars"}}.Matches(rec))
		assert.False(t, FilterState{Speeds: []string{"Hyper"}}.Matches(rec))
	})

	t.Run("Metric Filters Apply", func(t *testing.T) {
		state := FilterState{Metrics: MetricFilters{
			Games: NumericFilter{Operator: OpGTE, Val1: "30"},
		}}
		assert.False(t, state.Matches(rec))

		state.Metrics.Games.Val1 = "20"
		assert.True(t, state.Matches(rec))
	})
}

func TestKeywordMatching(t *testing.T) {
	rec := models.TournamentAgg{Name: "Bounty Hunters HR", Network: "GG", Speed: "Turbo"}

	t.Run("Any Keyword Includes", func(t *testing.T) {
		assert.True(t, MatchesKeywords(rec, []string{"bounty", "satellite"}))
		assert.False(t, MatchesKeywords(rec, []string{"satellite"}))
		assert.True(t, MatchesKeywords(rec, nil))
	})

	t.Run("Speed And Network Are Searched Too", func(t *testing.T) {
		assert.True(t, MatchesKeywords(rec, []string{"turbo"}))
		assert.True(t, MatchesKeywords(rec, []string{"gg"}))
	})

	t.Run("Blank Keywords Are Ignored", func(t *testing.T) {
		assert.False(t, MatchesKeywords(rec, []string{"  ", ""}))
	})

	t.Run("Exclusion", func(t *testing.T) {
		assert.True(t, ExcludedByKeywords(rec, []string{"bounty"}))
		assert.False(t, ExcludedByKeywords(rec, []string{"satellite"}))
		assert.False(t, ExcludedByKeywords(rec, nil))
	})
}

func TestTimeWindow(t *testing.T) {
	t.Run("Normal Window", func(t *testing.T) {
		assert.True(t, InTimeWindow("12:00", "09:00", "18:00"))
		assert.True(t, InTimeWindow("09:00", "09:00", "18:00"))
		assert.False(t, InTimeWindow("18:01", "09:00", "18:00"))
	})

	t.Run("Window Wrapping Midnight", func(t *testing.T) {
		assert.True(t, InTimeWindow("23:30", "22:00", "02:00"))
		assert.True(t, InTimeWindow("01:00", "22:00", "02:00"))
		assert.False(t, InTimeWindow("12:00", "22:00", "02:00"))
	})

	t.Run("Single Digit Hours Are Padded", func(t *testing.T) {
		assert.Equal(t, "09:30", NormalizeClock("9:30"))
		assert.Equal(t, "19:30", NormalizeClock("19:30"))
		assert.True(t, InTimeWindow("9:30", "9:00", "10:00"))
	})
}
