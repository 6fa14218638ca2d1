package models

import "time"

// Dataset is a named import scope. Every raw entry and aggregate belongs to
// exactly one (user, dataset) pair, so separate bankrolls or accounts can be
// imported side by side without mixing results.
type Dataset struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"size:64;not null;index"`
	Name      string    `json:"name" gorm:"size:100;not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}

func (Dataset) TableName() string {
	return "dataset"
}
