package models

import "gorm.io/gorm"

const DefaultDhikrTarget = 33

// DhikrSession is one counter per dhikr type per day. Count is overwritten
// on update, never accumulated server-side.
type DhikrSession struct {
	gorm.Model
	UserID uint   `gorm:"not null;uniqueIndex:uidx_dhikr_user_date_type"`
	Date   string `gorm:"size:10;not null;uniqueIndex:uidx_dhikr_user_date_type"`
	Type   string `gorm:"size:64;not null;uniqueIndex:uidx_dhikr_user_date_type"`
	Count  int    `gorm:"default:0"`
	Target int    `gorm:"default:33"`
}
