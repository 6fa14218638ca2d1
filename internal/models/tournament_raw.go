package models

import "time"

// TournamentRaw is one player's result in one tournament instance, built
// from a single CSV data row. Rows are immutable after import; a replace
// import deletes the whole owner/dataset scope before inserting.
type TournamentRaw struct {
	ID            uint      `json:"id" gorm:"primaryKey"`
	UserID        string    `json:"user_id" gorm:"size:64;not null;index:idx_tournament_raw_scope"`
	DatasetID     uint      `json:"dataset_id" gorm:"not null;index:idx_tournament_raw_scope"`
	TournamentKey string    `json:"tournament_key" gorm:"size:512;not null;index"`
	Network       string    `json:"network" gorm:"size:100;not null"`
	Player        string    `json:"player" gorm:"size:100;not null"`
	GameID        string    `json:"game_id" gorm:"size:100;not null"`
	Name          string    `json:"name" gorm:"size:300;not null"`
	Stake         float64   `json:"stake"`
	Rake          float64   `json:"rake"`
	PlayedAt      string    `json:"played_at" gorm:"size:32"`
	Participants  int       `json:"participants"`
	Speed         string    `json:"speed" gorm:"size:50"`
	ResultBase    float64   `json:"result_base"`
	Currency      string    `json:"currency" gorm:"size:20"`
	Prize         float64   `json:"prize"`
	BountyPrize   float64   `json:"bounty_prize"`
	Reentries     int       `json:"reentries"`
	ProfitUSD     float64   `json:"profit_usd"`
	StakeUSD      float64   `json:"stake_usd"`
	RakeUSD       float64   `json:"rake_usd"`
	ROIIndividual float64   `json:"roi_individual"`
	IsITM         bool      `json:"is_itm"`
	Flags         string    `json:"flags" gorm:"size:200"`
	CreatedAt     time.Time `json:"created_at" gorm:"autoCreateTime"`
}

func (TournamentRaw) TableName() string {
	return "tournament_raw"
}
