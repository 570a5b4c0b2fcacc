package services

import (
	"context"
	"fmt"

	"github.com/Asif-Uchchas/qalby/models"

	"gorm.io/gorm"
)

type ReflectionService struct{ db *gorm.DB }

func NewReflectionService(db *gorm.DB) *ReflectionService { return &ReflectionService{db: db} }

// List returns the user's reflections, optionally narrowed to one day or to
// weekly entries only.
func (s *ReflectionService) List(ctx context.Context, userID uint, date string, weeklyOnly bool) ([]models.Reflection, error) {
	q := s.db.WithContext(ctx).Where("user_id = ?", userID)
	if date != "" {
		q = q.Where("date = ?", date)
	}
	if weeklyOnly {
		q = q.Where("is_weekly = ?", true)
	}

	var rows []models.Reflection
	if err := q.Order("date desc, created_at desc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list reflections: %w", err)
	}
	return rows, nil
}

func (s *ReflectionService) Create(ctx context.Context, userID uint, date, content string, isWeekly bool) (*models.Reflection, error) {
	row := models.Reflection{
		UserID:   userID,
		Date:     date,
		Content:  content,
		IsWeekly: isWeekly,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return nil, fmt.Errorf("create reflection: %w", err)
	}
	return &row, nil
}
