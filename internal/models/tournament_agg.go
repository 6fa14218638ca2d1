package models

import "time"

// TournamentAgg is the per-identity rollup of every TournamentRaw row
// sharing the same tournament key within an owner/dataset scope. All derived
// fields are maintained by the aggregator's merge; no other layer recomputes
// them from already-averaged values.
type TournamentAgg struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"size:64;not null;uniqueIndex:idx_tournament_agg_key"`
	DatasetID     uint      `json:"dataset_id" gorm:"not null;uniqueIndex:idx_tournament_agg_key"`
	TournamentKey string    `json:"tournament_key" gorm:"size:512;not null;uniqueIndex:idx_tournament_agg_key"`
	Network       string    `json:"network" gorm:"size:100;not null"`
	Name          string    `json:"name" gorm:"size:300;not null"`
	Speed         string    `json:"speed" gorm:"size:50"`
	GamesCount    int       `json:"games_count"`
	TotalProfit   float64   `json:"total_profit"`
	AvgProfit     float64   `json:"avg_profit"`
	TotalStake    float64   `json:"total_stake"`
	AvgStake      float64   `json:"avg_stake"`
	ITMCount      int       `json:"itm_count"`
	ITMPct        float64   `json:"itm_pct"`
	ROITotalPct   float64   `json:"roi_total_pct"`
	ROIAvgPct     float64   `json:"roi_avg_pct"`
	FieldAvg      float64   `json:"field_avg"`
	FirstPlayedAt string    `json:"first_played_at" gorm:"size:32"`
	LastPlayedAt  string    `json:"last_played_at" gorm:"size:32"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt     time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (TournamentAgg) TableName() string {
	return "tournament_agg"
}
