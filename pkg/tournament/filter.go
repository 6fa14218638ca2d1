package tournament

import (
	"strconv"
	"strings"

	"tourneycontrol/internal/models"
)

// Numeric filter modes. Blank or unparseable operands never constrain:
// incomplete input keeps rows visible rather than silently hiding them.
const (
	OpNone    = "none"
	OpGTE     = "gte"
	OpLTE     = "lte"
	OpBetween = "between"
)

// NumericFilter compares a metric against one or two string operands, as
// typed by the user. Operands stay strings so half-typed input round-trips
// through filter state untouched.
type NumericFilter struct {
	Operator string `json:"operator"`
	Val1     string `json:"val1"`
	Val2     string `json:"val2"`
}

// Matches evaluates the filter against a value.
func (f NumericFilter) Matches(val float64) bool {
	switch f.Operator {
	case OpGTE:
		v1, ok := parseOperand(f.Val1)
		if !ok {
			return true
		}
		return val >= v1
	case OpLTE:
		v1, ok := parseOperand(f.Val1)
		if !ok {
			return true
		}
		return val <= v1
	case OpBetween:
		v1, ok1 := parseOperand(f.Val1)
		v2, ok2 := parseOperand(f.Val2)
		if !ok1 || !ok2 {
			return true
		}
		return val >= v1 && val <= v2
	default:
		return true
	}
}

func parseOperand(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// MetricFilters holds one numeric filter per explorable metric.
type MetricFilters struct {
	AvgStake    NumericFilter `json:"avg_stake"`
	Games       NumericFilter `json:"games"`
	ITMPct      NumericFilter `json:"itm_pct"`
	TotalProfit NumericFilter `json:"total_profit"`
	ROI         NumericFilter `json:"roi"`
	FieldAvg    NumericFilter `json:"field_avg"`
}

// FilterState is the explorer view's full filter configuration. Empty
// selection slices mean "no restriction".
type FilterState struct {
	Search   string        `json:"search"`
	Networks []string      `json:"networks"`
	Speeds   []string      `json:"speeds"`
	Metrics  MetricFilters `json:"metrics"`
}

// Matches applies the full filter state to one aggregate record.
func (f FilterState) Matches(rec models.TournamentAgg) bool {
	if f.Search != "" && !strings.Contains(strings.ToLower(rec.Name), strings.ToLower(f.Search)) {
		return false
	}
	if len(f.Networks) > 0 && !containsString(f.Networks, rec.Network) {
		return false
	}
	if len(f.Speeds) > 0 && !containsString(f.Speeds, rec.Speed) {
		return false
	}
	if !f.Metrics.AvgStake.Matches(rec.AvgStake) {
		return false
	}
	if !f.Metrics.Games.Matches(float64(rec.GamesCount)) {
		return false
	}
	if !f.Metrics.ITMPct.Matches(rec.ITMPct) {
		return false
	}
	if !f.Metrics.TotalProfit.Matches(rec.TotalProfit) {
		return false
	}
	if !f.Metrics.ROI.Matches(rec.ROITotalPct) {
		return false
	}
	if !f.Metrics.FieldAvg.Matches(rec.FieldAvg) {
		return false
	}
	return true
}

// MatchesKeywords reports whether a record matches any of the given
// case-insensitive keywords across name, network, and speed tag. An empty
// keyword list matches everything.
func MatchesKeywords(rec models.TournamentAgg, keywords []string) bool {
	if len(keywords) == 0 {
		return true
	}
	name := strings.ToLower(rec.Name)
	network := strings.ToLower(rec.Network)
	speed := strings.ToLower(rec.Speed)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(name, kw) || strings.Contains(network, kw) || strings.Contains(speed, kw) {
			return true
		}
	}
	return false
}

// ExcludedByKeywords reports whether any exclusion keyword appears in the
// record's name, network, or speed tag, case-insensitively.
func ExcludedByKeywords(rec models.TournamentAgg, keywords []string) bool {
	if len(keywords) == 0 {
		return false
	}
	name := strings.ToLower(rec.Name)
	network := strings.ToLower(rec.Network)
	speed := strings.ToLower(rec.Speed)
	for _, kw := range keywords {
		kw = strings.ToLower(strings.TrimSpace(kw))
		if kw == "" {
			continue
		}
		if strings.Contains(name, kw) || strings.Contains(network, kw) || strings.Contains(speed, kw) {
			return true
		}
	}
	return false
}

// NormalizeClock pads "H:MM" input to "HH:MM" so string comparison orders
// times of day correctly. Anything else passes through unchanged.
func NormalizeClock(t string) string {
	if len(t) == 4 && t[1] == ':' {
		return "0" + t
	}
	return t
}

// InTimeWindow reports whether an "HH:MM" time falls inside [start, end].
// A start after the end means the window wraps past midnight: 22:00-02:00
// matches 23:30 and 01:00 but not 12:00.
func InTimeWindow(t, start, end string) bool {
	t = NormalizeClock(t)
	start = NormalizeClock(start)
	end = NormalizeClock(end)

	if start <= end {
		return t >= start && t <= end
	}
	return t >= start || t <= end
}

func containsString(haystack []string, needle string) bool {
	for _, s := range haystack {
		if s == needle {
			return true
		}
	}
	return false
}
