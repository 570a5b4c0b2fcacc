package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email         string `gorm:"uniqueIndex;not null"`
	Password      string `gorm:"not null"`
	Name          string
	Image         string
	Locale        string `gorm:"size:8;default:en"`
	Timezone      string `gorm:"size:64;default:UTC"`
	Onboarded     bool   `gorm:"default:false"`
	ResetToken    string
	ResetTokenExp time.Time
}
