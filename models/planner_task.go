package models

import "gorm.io/gorm"

type TaskCategory string

const (
	CategoryWorship TaskCategory = "worship"
	CategoryQuran   TaskCategory = "quran"
	CategoryRest    TaskCategory = "rest"
	CategoryWork    TaskCategory = "work"
	CategoryFamily  TaskCategory = "family"
)

func (c TaskCategory) Valid() bool {
	switch c {
	case CategoryWorship, CategoryQuran, CategoryRest, CategoryWork, CategoryFamily:
		return true
	}
	return false
}

type PlannerTask struct {
	gorm.Model
	UserID    uint         `gorm:"index;not null"`
	Date      string       `gorm:"size:10;not null;index"`
	Title     string       `gorm:"not null"`
	Category  TaskCategory `gorm:"size:10;default:worship"`
	TimeSlot  string       `gorm:"size:16"`
	Completed bool         `gorm:"default:false"`
	Order     int          `gorm:"column:sort_order;default:0"`
}
