package models

import "gorm.io/gorm"

type PrayerName string

const (
	PrayerFajr    PrayerName = "fajr"
	PrayerDhuhr   PrayerName = "dhuhr"
	PrayerAsr     PrayerName = "asr"
	PrayerMaghrib PrayerName = "maghrib"
	PrayerIsha    PrayerName = "isha"
)

func (p PrayerName) Valid() bool {
	switch p {
	case PrayerFajr, PrayerDhuhr, PrayerAsr, PrayerMaghrib, PrayerIsha:
		return true
	}
	return false
}

type PrayerStatus string

const (
	StatusOnTime  PrayerStatus = "ontime"
	StatusLate    PrayerStatus = "late"
	StatusMissed  PrayerStatus = "missed"
	StatusPending PrayerStatus = "pending"
)

func (s PrayerStatus) Valid() bool {
	switch s {
	case StatusOnTime, StatusLate, StatusMissed, StatusPending:
		return true
	}
	return false
}

// PrayerEntry holds one row per prayer per day. The composite unique index
// is what the ON CONFLICT upsert keys on, so two rapid status updates for
// the same prayer can never leave duplicate rows.
type PrayerEntry struct {
	gorm.Model
	UserID    uint         `gorm:"not null;uniqueIndex:uidx_prayer_user_date_prayer"`
	Date      string       `gorm:"size:10;not null;uniqueIndex:uidx_prayer_user_date_prayer"`
	Prayer    PrayerName   `gorm:"size:10;not null;uniqueIndex:uidx_prayer_user_date_prayer"`
	Status    PrayerStatus `gorm:"size:10;not null;default:pending"`
	IsTarawih bool         `gorm:"default:false"`
}
