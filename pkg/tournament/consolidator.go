package tournament

import (
	"math"
	"strings"

	"tourneycontrol/internal/models"
)

// FallbackLabel is shown when neither keywords nor a manual selection give
// the consolidated card a name.
const FallbackLabel = "Selected Filter"

// Summary is the ephemeral blend of a filtered set of aggregate records.
// Every weighted figure uses games count as the weight, so a tournament
// contributes proportionally to its sample size rather than as one
// unweighted data point. Never persisted.
type Summary struct {
	Name        string  `json:"name"`
	AvgStake    float64 `json:"avg_stake"`
	Games       int     `json:"games"`
	ITMPct      float64 `json:"itm_pct"`
	TotalProfit float64 `json:"total_profit"`
	ROITotalPct float64 `json:"roi_total_pct"`
	FieldAvg    float64 `json:"field_avg"`
}

// LabelContext carries the filter state pieces that name the summary card.
type LabelContext struct {
	Keywords     []string
	SelectedKeys []string
}

// Consolidate folds a filtered record set into one summary. Returns nil on
// empty input so callers can render "no data" instead of a misleading
// zeroed card.
func Consolidate(records []models.TournamentAgg, label LabelContext) *Summary {
	if len(records) == 0 {
		return nil
	}

	var totalGames, totalITM int
	var totalProfit, weightedStake, costBasis, weightedField float64

	for _, r := range records {
		games := float64(r.GamesCount)
		totalGames += r.GamesCount
		totalITM += r.ITMCount
		totalProfit += r.TotalProfit
		weightedStake += r.AvgStake * games
		costBasis += r.AvgStake * RakeEstimate * games
		weightedField += r.FieldAvg * games
	}

	s := &Summary{
		Name:        summaryLabel(label),
		Games:       totalGames,
		TotalProfit: totalProfit,
	}
	if totalGames > 0 {
		s.AvgStake = weightedStake / float64(totalGames)
		s.ITMPct = 100 * float64(totalITM) / float64(totalGames)
		s.FieldAvg = math.Round(weightedField / float64(totalGames))
	}
	if costBasis > 0 {
		s.ROITotalPct = (totalProfit / costBasis) * 100
	}
	return s
}

func summaryLabel(label LabelContext) string {
	if len(label.Keywords) > 0 {
		joined := strings.Join(label.Keywords, " + ")
		if len(label.SelectedKeys) > 0 {
			return joined + " & Custom"
		}
		return joined
	}
	if len(label.SelectedKeys) > 0 {
		_, name := ParseKey(label.SelectedKeys[0])
		return name
	}
	return FallbackLabel
}
