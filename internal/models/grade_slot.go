package models

import "time"

// GradeConfig is the scheduling planner's filter configuration. JSON keys
// match the planner export document, which predates this service; changing
// them would break round-tripping of previously exported files.
type GradeConfig struct {
	MinSampling     int      `json:"minSampling"`
	MinROI          string   `json:"minRoi"`
	StartTime       string   `json:"startTime"`
	EndTime         string   `json:"endTime"`
	MinStake        string   `json:"minStake"`
	MaxStake        string   `json:"maxStake"`
	MinField        string   `json:"minField"`
	MaxField        string   `json:"maxField"`
	Networks        []string `json:"selRede"`
	Speeds          []string `json:"selSpeed"`
	ExcludeKeywords []string `json:"excludeKeywords"`
}

// DefaultGradeConfig matches a freshly created planner slot.
func DefaultGradeConfig() GradeConfig {
	return GradeConfig{
		MinSampling: 3,
		StartTime:   "00:00",
		EndTime:     "23:59",
		Networks:    []string{},
		Speeds:      []string{},
	}
}

// TournamentSnapshot is a cached copy of a tournament's last-known aggregate
// figures, stored inside a slot so an exported grade stays usable without
// access to the raw import it was built from.
type TournamentSnapshot struct {
	Key           string  `json:"key"`
	Name          string  `json:"nome"`
	AvgStake      float64 `json:"stakeMedia"`
	ROITotal      float64 `json:"roiTotal"`
	Games         int     `json:"qtd"`
	Network       string  `json:"rede"`
	Speed         string  `json:"velocidadePredominante"`
	FieldAvg      float64 `json:"mediaParticipantes"`
	StartTime     string  `json:"horario"`
	Flags         string  `json:"bandeiras,omitempty"`
	IsFullyManual bool    `json:"isFullyManual,omitempty"`
}

// GradeSlot is one saved scheduling plan: a filter configuration plus the
// user's manual adjustments (added tournaments, removals, time overrides)
// and the snapshot cache backing them.
type GradeSlot struct {
	ID                uint                          `json:"id" gorm:"primaryKey"`
	UserID            string                        `json:"user_id" gorm:"size:64;not null;index"`
	Name              string                        `json:"name" gorm:"size:100;not null"`
	Days              []int                         `json:"days" gorm:"serializer:json"`
	Config            GradeConfig                   `json:"config" gorm:"serializer:json"`
	ManualTimes       map[string]string             `json:"manualTimes" gorm:"serializer:json"`
	ManuallyAddedKeys []string                      `json:"manuallyAddedKeys" gorm:"serializer:json"`
	ExcludedKeys      []string                      `json:"excludedKeys" gorm:"serializer:json"`
	StatsCache        map[string]TournamentSnapshot `json:"statsCache" gorm:"serializer:json"`
	CreatedAt         time.Time                     `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt         time.Time                     `json:"updated_at" gorm:"autoUpdateTime"`
}

func (GradeSlot) TableName() string {
	return "grade_slot"
}
