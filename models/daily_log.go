package models

import "gorm.io/gorm"

type Mood string

const (
	MoodEnergized  Mood = "energized"
	MoodPeaceful   Mood = "peaceful"
	MoodStruggling Mood = "struggling"
)

func (m Mood) Valid() bool {
	switch m {
	case MoodEnergized, MoodPeaceful, MoodStruggling:
		return true
	}
	return false
}

// DailyLog is the one-per-day journal row: mood, energy (1-5), the day's
// niyyah and whether the fast was completed.
type DailyLog struct {
	gorm.Model
	UserID           uint   `gorm:"not null;uniqueIndex:uidx_daily_log_user_date"`
	Date             string `gorm:"size:10;not null;uniqueIndex:uidx_daily_log_user_date"`
	Mood             *Mood  `gorm:"size:16"`
	Energy           *int
	Niyyah           string `gorm:"type:text"`
	FastingCompleted bool   `gorm:"default:false"`
}
