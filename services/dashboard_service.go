package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Asif-Uchchas/qalby/models"

	"gorm.io/gorm"
)

const (
	dailyPrayerCount   = 5
	fallbackDhikrTotal = 100
)

type DashboardService struct{ db *gorm.DB }

func NewDashboardService(db *gorm.DB) *DashboardService { return &DashboardService{db: db} }

type Ratio struct {
	Completed int `json:"completed"`
	Total     int `json:"total"`
}

type DashboardSummary struct {
	Prayers Ratio        `json:"prayers"`
	Quran   Ratio        `json:"quran"`
	Dhikr   Ratio        `json:"dhikr"`
	Fasting bool         `json:"fasting"`
	Mood    *models.Mood `json:"mood"`
	Energy  *int         `json:"energy"`
	Tasks   Ratio        `json:"tasks"`
}

// Summary assembles the day's dashboard. The five reads are independent;
// any store error aborts the whole response rather than returning a partial
// summary.
func (s *DashboardService) Summary(ctx context.Context, userID uint, today string) (*DashboardSummary, error) {
	out := &DashboardSummary{}

	// Prayers performed on time today, out of the fixed five.
	var onTime int64
	err := s.db.WithContext(ctx).
		Model(&models.PrayerEntry{}).
		Where("user_id = ? AND date = ? AND status = ?", userID, today, models.StatusOnTime).
		Count(&onTime).Error
	if err != nil {
		return nil, fmt.Errorf("count prayers: %w", err)
	}
	out.Prayers = Ratio{Completed: int(onTime), Total: dailyPrayerCount}

	// Juz completed across all days, out of 30.
	var juzDone int64
	err = s.db.WithContext(ctx).
		Model(&models.JuzCompletion{}).
		Where("user_id = ?", userID).
		Count(&juzDone).Error
	if err != nil {
		return nil, fmt.Errorf("count juz: %w", err)
	}
	out.Quran = Ratio{Completed: int(juzDone), Total: TotalJuz}

	// Today's dhikr counts against the summed targets; 100 when the user
	// has no sessions yet so the ring still renders a denominator.
	var sessions []models.DhikrSession
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		Find(&sessions).Error
	if err != nil {
		return nil, fmt.Errorf("list dhikr: %w", err)
	}
	dhikrDone, dhikrTotal := 0, 0
	for _, sess := range sessions {
		dhikrDone += sess.Count
		dhikrTotal += sess.Target
	}
	if dhikrTotal == 0 {
		dhikrTotal = fallbackDhikrTotal
	}
	out.Dhikr = Ratio{Completed: dhikrDone, Total: dhikrTotal}

	// Today's journal row, if any.
	var dlog models.DailyLog
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		First(&dlog).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get daily log: %w", err)
	}
	out.Fasting = dlog.FastingCompleted
	out.Mood = dlog.Mood
	out.Energy = dlog.Energy

	// Planner completion for today.
	var tasks []models.PlannerTask
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	done := 0
	for _, t := range tasks {
		if t.Completed {
			done++
		}
	}
	out.Tasks = Ratio{Completed: done, Total: len(tasks)}

	return out, nil
}
