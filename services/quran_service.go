package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Asif-Uchchas/qalby/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const TotalJuz = 30

type QuranService struct{ db *gorm.DB }

func NewQuranService(db *gorm.DB) *QuranService { return &QuranService{db: db} }

type QuranOverview struct {
	CompletedJuz   []int `json:"completedJuz"`
	PagesReadToday int   `json:"pagesReadToday"`
}

// Overview returns every juz the user has ever completed plus today's page
// count. Completion spans all days, pages are per-day.
func (s *QuranService) Overview(ctx context.Context, userID uint, today string) (*QuranOverview, error) {
	completed := []int{}
	err := s.db.WithContext(ctx).
		Model(&models.JuzCompletion{}).
		Where("user_id = ?", userID).
		Order("juz").
		Pluck("juz", &completed).Error
	if err != nil {
		return nil, fmt.Errorf("list juz completions: %w", err)
	}

	var progress models.QuranProgress
	err = s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, today).
		First(&progress).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, fmt.Errorf("get quran progress: %w", err)
	}

	return &QuranOverview{CompletedJuz: completed, PagesReadToday: progress.PagesRead}, nil
}

// MarkJuz records or clears a juz completion. Marking the same juz twice is
// a no-op; un-marking removes the row no matter which day it was completed.
func (s *QuranService) MarkJuz(ctx context.Context, userID uint, juz int, completed bool, today string) error {
	if juz < 1 || juz > TotalJuz {
		return fmt.Errorf("juz %d out of range", juz)
	}

	if completed {
		row := models.JuzCompletion{UserID: userID, Juz: juz, Date: today}
		err := s.db.WithContext(ctx).
			Clauses(clause.OnConflict{
				Columns:   []clause.Column{{Name: "user_id"}, {Name: "juz"}},
				DoNothing: true,
			}).
			Create(&row).Error
		if err != nil {
			return fmt.Errorf("mark juz: %w", err)
		}
		return nil
	}

	// Hard delete: a soft-deleted row would still occupy the unique index
	// and block re-completion.
	err := s.db.WithContext(ctx).
		Unscoped().
		Where("user_id = ? AND juz = ?", userID, juz).
		Delete(&models.JuzCompletion{}).Error
	if err != nil {
		return fmt.Errorf("unmark juz: %w", err)
	}
	return nil
}

// SetPages overwrites today's pages-read count.
func (s *QuranService) SetPages(ctx context.Context, userID uint, today string, pages int) error {
	row := models.QuranProgress{UserID: userID, Date: today, PagesRead: pages}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"pages_read": pages,
				"updated_at": time.Now(),
			}),
		}).
		Create(&row).Error
	if err != nil {
		return fmt.Errorf("set pages read: %w", err)
	}
	return nil
}

// CompletedJuzCount backs the dashboard card.
func (s *QuranService) CompletedJuzCount(ctx context.Context, userID uint) (int64, error) {
	var n int64
	err := s.db.WithContext(ctx).
		Model(&models.JuzCompletion{}).
		Where("user_id = ?", userID).
		Count(&n).Error
	if err != nil {
		return 0, fmt.Errorf("count juz completions: %w", err)
	}
	return n, nil
}
