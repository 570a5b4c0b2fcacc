package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Asif-Uchchas/qalby/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DhikrService struct{ db *gorm.DB }

func NewDhikrService(db *gorm.DB) *DhikrService { return &DhikrService{db: db} }

func (s *DhikrService) ListForDay(ctx context.Context, userID uint, date string) ([]models.DhikrSession, error) {
	var rows []models.DhikrSession
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Find(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("list dhikr sessions: %w", err)
	}
	return rows, nil
}

// Record overwrites the count for (user, day, type). The target defaults to
// 33 on first write and is only changed when the caller sends one.
func (s *DhikrService) Record(ctx context.Context, userID uint, date, dhikrType string, count int, target *int) (*models.DhikrSession, error) {
	row := models.DhikrSession{
		UserID: userID,
		Date:   date,
		Type:   dhikrType,
		Count:  count,
		Target: models.DefaultDhikrTarget,
	}
	assign := map[string]interface{}{
		"count":      count,
		"updated_at": time.Now(),
	}
	if target != nil {
		row.Target = *target
		assign["target"] = *target
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}, {Name: "type"}},
			DoUpdates: clause.Assignments(assign),
		}).
		Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("record dhikr: %w", err)
	}

	var out models.DhikrSession
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ? AND type = ?", userID, date, dhikrType).
		First(&out).Error; err != nil {
		return nil, fmt.Errorf("reload dhikr session: %w", err)
	}
	return &out, nil
}
