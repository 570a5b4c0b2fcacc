package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Asif-Uchchas/qalby/models"
	"github.com/Asif-Uchchas/qalby/utils"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// HistoryWindowDays is the trailing window for the prayer heatmap.
const HistoryWindowDays = 30

type PrayerService struct{ db *gorm.DB }

func NewPrayerService(db *gorm.DB) *PrayerService { return &PrayerService{db: db} }

// HistoryPoint is one day of the heatmap. Days with zero on-time prayers
// are never materialized; the client fills the grid.
type HistoryPoint struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

func (s *PrayerService) ListForDay(ctx context.Context, userID uint, date string) ([]models.PrayerEntry, error) {
	var rows []models.PrayerEntry
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list prayers: %w", err)
	}
	return rows, nil
}

// SetStatus upserts the single row for (user, day, prayer). The tarawih
// flag is only assigned when the caller sent it.
func (s *PrayerService) SetStatus(ctx context.Context, userID uint, date string, prayer models.PrayerName, status models.PrayerStatus, isTarawih *bool) error {
	row := models.PrayerEntry{
		UserID: userID,
		Date:   date,
		Prayer: prayer,
		Status: status,
	}
	assign := map[string]interface{}{
		"status":     status,
		"updated_at": time.Now(),
	}
	if isTarawih != nil {
		row.IsTarawih = *isTarawih
		assign["is_tarawih"] = *isTarawih
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "prayer"}},
			DoUpdates: clause.Assignments(assign),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("set prayer status: %w", err)
	}
	return nil
}

// History groups on-time prayer counts by date over the trailing window
// ending at today. Missed days produce no row.
func (s *PrayerService) History(ctx context.Context, userID uint, today string) ([]HistoryPoint, error) {
	since := utils.DaysAgo(today, HistoryWindowDays)

	var points []HistoryPoint
	err := s.db.WithContext(ctx).
		Model(&models.PrayerEntry{}).
		Select("date, count(*) as count").
		Where("user_id = ? AND status = ? AND date >= ?", userID, models.StatusOnTime, since).
		Group("date").
		Order("date").
		Scan(&points).Error
	if err != nil {
		return nil, fmt.Errorf("prayer history: %w", err)
	}
	return points, nil
}
