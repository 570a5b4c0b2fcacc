package models

import "gorm.io/gorm"

// QuranProgress tracks pages read, one row per user per day.
type QuranProgress struct {
	gorm.Model
	UserID    uint   `gorm:"not null;uniqueIndex:uidx_quran_user_date"`
	Date      string `gorm:"size:10;not null;uniqueIndex:uidx_quran_user_date"`
	PagesRead int    `gorm:"default:0"`
	Notes     string `gorm:"type:text"`
}

// JuzCompletion holds one row per completed juz per user, with the day it
// was marked. Completion used to live in a per-day array on QuranProgress,
// which made un-marking a juz from an earlier day a silent no-op; one row
// per (user, juz) gives the toggle a single place to insert and delete.
type JuzCompletion struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:uidx_juz_user_juz"`
	Juz    int    `gorm:"not null;uniqueIndex:uidx_juz_user_juz"`
	Date   string `gorm:"size:10;not null"`
}
