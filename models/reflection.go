package models

import "gorm.io/gorm"

type Reflection struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Date     string `gorm:"size:10;not null;index"`
	Content  string `gorm:"type:text;not null"`
	IsWeekly bool   `gorm:"default:false"`
}
