package tournament

import (
	"tourneycontrol/internal/models"
)

// RakeEstimate is the surcharge applied to average stake when estimating a
// record's total cost basis. True per-entry cost is gone at aggregate level,
// so a flat 10% rake estimate stands in for it. A documented approximation,
// not a measured value.
const RakeEstimate = 1.1

// PartitionByKey groups a raw-entry batch by tournament identity, preserving
// entry order within each group.
func PartitionByKey(entries []models.TournamentRaw) map[string][]models.TournamentRaw {
	groups := make(map[string][]models.TournamentRaw)
	for _, e := range entries {
		groups[e.TournamentKey] = append(groups[e.TournamentKey], e)
	}
	return groups
}

// Aggregate folds a batch of raw entries sharing one identity into an
// aggregate record. With existing == nil a fresh record is built (the
// replace path); otherwise the existing record's running sums are updated
// in place semantics-wise and a copy returned (the append path). Averages
// are always recomputed from updated totals and the updated count, never
// by re-averaging already-averaged fields.
//
// An empty batch is a no-op returning existing unchanged.
func Aggregate(existing *models.TournamentAgg, entries []models.TournamentRaw) *models.TournamentAgg {
	if len(entries) == 0 {
		return existing
	}

	var agg models.TournamentAgg
	if existing != nil {
		agg = *existing
	} else {
		first := entries[0]
		agg = models.TournamentAgg{
			UserID:        first.UserID,
			DatasetID:     first.DatasetID,
			TournamentKey: first.TournamentKey,
			Network:       first.Network,
			Name:          first.Name,
			Speed:         predominantSpeed(entries),
		}
	}

	oldCount := agg.GamesCount

	var sumProfit, sumStake, sumROI float64
	var sumParticipants float64
	itm := 0
	for _, e := range entries {
		sumProfit += e.ProfitUSD
		sumStake += e.StakeUSD
		sumROI += e.ROIIndividual
		sumParticipants += float64(e.Participants)
		if e.IsITM {
			itm++
		}
		agg.FirstPlayedAt = minDate(agg.FirstPlayedAt, e.PlayedAt)
		agg.LastPlayedAt = maxDate(agg.LastPlayedAt, e.PlayedAt)
	}

	agg.GamesCount = oldCount + len(entries)
	count := float64(agg.GamesCount)

	agg.TotalProfit += sumProfit
	agg.AvgProfit = agg.TotalProfit / count

	agg.TotalStake += sumStake
	agg.AvgStake = agg.TotalStake / count

	agg.ITMCount += itm
	agg.ITMPct = 100 * float64(agg.ITMCount) / count

	// Total ROI is a cost-weighted blend over the estimated cost basis.
	// Averaging per-entry ROI instead would weigh a $1 satellite the same
	// as a $500 main event.
	costBasis := agg.TotalStake * RakeEstimate
	if costBasis > 0 {
		agg.ROITotalPct = (agg.TotalProfit / costBasis) * 100
	} else {
		agg.ROITotalPct = 0
	}

	// Average ROI is the running mean of individual ROI values; the stale
	// mean is rescaled by the old count before folding the new sum in.
	agg.ROIAvgPct = (agg.ROIAvgPct*float64(oldCount) + sumROI) / count

	agg.FieldAvg = (agg.FieldAvg*float64(oldCount) + sumParticipants) / count

	return &agg
}

// AggregateAll folds a mixed-identity batch, merging each group into its
// existing record when one is present. Used by replace imports (existing
// map empty) and full re-aggregation.
func AggregateAll(existing map[string]*models.TournamentAgg, entries []models.TournamentRaw) map[string]*models.TournamentAgg {
	out := make(map[string]*models.TournamentAgg)
	for key, group := range PartitionByKey(entries) {
		out[key] = Aggregate(existing[key], group)
	}
	return out
}

// predominantSpeed picks the most frequent speed tag in a batch. Ties keep
// the tag seen first, so the result is deterministic for a given entry order.
func predominantSpeed(entries []models.TournamentRaw) string {
	counts := make(map[string]int)
	best := entries[0].Speed
	for _, e := range entries {
		counts[e.Speed]++
		if counts[e.Speed] > counts[best] {
			best = e.Speed
		}
	}
	return best
}

// Dates arrive as strings in the exporter's ISO-like format, which orders
// lexicographically. Empty values lose to any real date.
func minDate(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" || a <= b {
		return a
	}
	return b
}

func maxDate(a, b string) string {
	if a == "" {
		return b
	}
	if b == "" || a >= b {
		return a
	}
	return b
}
