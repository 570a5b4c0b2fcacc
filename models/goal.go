package models

import "gorm.io/gorm"

// Goal is a Ramadan-long personal goal ("read every night", ...). Daily
// check-offs live in GoalEntry.
type Goal struct {
	gorm.Model
	UserID      uint   `gorm:"index;not null"`
	Title       string `gorm:"not null"`
	Category    string
	TargetCount int    `gorm:"default:30"`
	StartDate   string `gorm:"size:10;not null"`
	EndDate     string `gorm:"size:10;not null"`
}

type GoalEntry struct {
	gorm.Model
	GoalID    uint   `gorm:"not null;uniqueIndex:uidx_goal_entry_goal_date"`
	Date      string `gorm:"size:10;not null;uniqueIndex:uidx_goal_entry_goal_date"`
	Completed bool   `gorm:"default:false"`
}
