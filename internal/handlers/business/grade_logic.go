package business

import (
	"sort"
	"strconv"
	"strings"

	"tourneycontrol/internal/models"
	"tourneycontrol/pkg/tournament"
)

// BuildGradeRows evaluates a planner slot's configuration against the
// current aggregates and returns the resulting schedule rows, sorted by
// start time then name. Filter rows come from the live aggregates; rows
// for manually added tournaments come from the slot's snapshot cache so
// they survive a re-import that dropped their identity.
func BuildGradeRows(slot models.GradeSlot, aggs []models.TournamentAgg) []models.TournamentSnapshot {
	excluded := toSet(slot.ExcludedKeys)
	manual := toSet(slot.ManuallyAddedKeys)

	rows := make([]models.TournamentSnapshot, 0, len(aggs))
	seen := make(map[string]bool)

	for _, rec := range aggs {
		if excluded[rec.TournamentKey] {
			continue
		}
		start := rowStartTime(slot, rec.TournamentKey)
		if !matchesGradeConfig(slot.Config, rec, start) {
			continue
		}
		rows = append(rows, snapshotFromAgg(rec, start))
		seen[rec.TournamentKey] = true
	}

	// Manually added tournaments bypass the filters entirely. When their
	// identity no longer exists in the aggregates, the cached snapshot is
	// the only source left.
	for key := range manual {
		if seen[key] || excluded[key] {
			continue
		}
		snap, ok := slot.StatsCache[key]
		if !ok {
			network, name := tournament.ParseKey(key)
			snap = models.TournamentSnapshot{
				Key:           key,
				Name:          name,
				Network:       network,
				IsFullyManual: true,
			}
		}
		if t, ok := slot.ManualTimes[key]; ok && t != "" {
			snap.StartTime = t
		}
		if snap.StartTime == "" {
			snap.StartTime = "00:00"
		}
		rows = append(rows, snap)
		seen[key] = true
	}

	sort.SliceStable(rows, func(i, j int) bool {
		ti := tournament.NormalizeClock(rows[i].StartTime)
		tj := tournament.NormalizeClock(rows[j].StartTime)
		if ti != tj {
			return ti < tj
		}
		return rows[i].Name < rows[j].Name
	})
	return rows
}

// RefreshStatsCache rebuilds a slot's snapshot cache from current
// aggregates, keeping stale entries for keys no longer present so manual
// additions keep working. Called before export and after each rows build.
func RefreshStatsCache(slot *models.GradeSlot, aggs []models.TournamentAgg) {
	if slot.StatsCache == nil {
		slot.StatsCache = make(map[string]models.TournamentSnapshot)
	}
	for _, rec := range aggs {
		start := rowStartTime(*slot, rec.TournamentKey)
		snap := snapshotFromAgg(rec, start)
		snap.IsFullyManual = false
		slot.StatsCache[rec.TournamentKey] = snap
	}
}

func snapshotFromAgg(rec models.TournamentAgg, start string) models.TournamentSnapshot {
	return models.TournamentSnapshot{
		Key:       rec.TournamentKey,
		Name:      rec.Name,
		AvgStake:  rec.AvgStake,
		ROITotal:  rec.ROITotalPct,
		Games:     rec.GamesCount,
		Network:   rec.Network,
		Speed:     rec.Speed,
		FieldAvg:  rec.FieldAvg,
		StartTime: start,
	}
}

// rowStartTime resolves the schedule time for an identity: a manual
// override wins, then the cached snapshot time, then midnight.
func rowStartTime(slot models.GradeSlot, key string) string {
	if t, ok := slot.ManualTimes[key]; ok && t != "" {
		return t
	}
	if snap, ok := slot.StatsCache[key]; ok && snap.StartTime != "" {
		return snap.StartTime
	}
	return "00:00"
}

// matchesGradeConfig applies a slot's filter configuration to one
// aggregate. String-typed bounds that are blank or unparseable never
// constrain, mirroring the explorer's numeric filters.
func matchesGradeConfig(cfg models.GradeConfig, rec models.TournamentAgg, start string) bool {
	if cfg.MinSampling > 0 && rec.GamesCount < cfg.MinSampling {
		return false
	}
	if v, ok := parseBound(cfg.MinROI); ok && rec.ROITotalPct < v {
		return false
	}
	if v, ok := parseBound(cfg.MinStake); ok && rec.AvgStake < v {
		return false
	}
	if v, ok := parseBound(cfg.MaxStake); ok && rec.AvgStake > v {
		return false
	}
	if v, ok := parseBound(cfg.MinField); ok && rec.FieldAvg < v {
		return false
	}
	if v, ok := parseBound(cfg.MaxField); ok && rec.FieldAvg > v {
		return false
	}
	if len(cfg.Networks) > 0 && !containsFold(cfg.Networks, rec.Network) {
		return false
	}
	if len(cfg.Speeds) > 0 && !containsFold(cfg.Speeds, rec.Speed) {
		return false
	}
	if tournament.ExcludedByKeywords(rec, cfg.ExcludeKeywords) {
		return false
	}
	if cfg.StartTime != "" && cfg.EndTime != "" {
		if !tournament.InTimeWindow(start, cfg.StartTime, cfg.EndTime) {
			return false
		}
	}
	return true
}

func parseBound(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", "."), 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

func containsFold(haystack []string, needle string) bool {
	for _, s := range haystack {
		if strings.EqualFold(s, needle) {
			return true
		}
	}
	return false
}

func toSet(keys []string) map[string]bool {
	set := make(map[string]bool, len(keys))
	for _, k := range keys {
		set[k] = true
	}
	return set
}
