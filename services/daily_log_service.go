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

type DailyLogService struct{ db *gorm.DB }

func NewDailyLogService(db *gorm.DB) *DailyLogService { return &DailyLogService{db: db} }

// DailyLogInput carries the POST body. Pointer fields distinguish "omitted"
// from zero values so an upsert never clobbers fields the caller didn't send.
type DailyLogInput struct {
	Date             string       `json:"date"`
	Mood             *models.Mood `json:"mood"`
	Energy           *int         `json:"energy"`
	Niyyah           *string      `json:"niyyah"`
	FastingCompleted *bool        `json:"fastingCompleted"`
}

// Get returns the log for the given day, or a zero-value row when none
// exists yet so clients always get a renderable shape.
func (s *DailyLogService) Get(ctx context.Context, userID uint, date string) (*models.DailyLog, error) {
	var row models.DailyLog
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &models.DailyLog{UserID: userID, Date: date}, nil
		}
		return nil, fmt.Errorf("get daily log: %w", err)
	}
	return &row, nil
}

// Upsert writes exactly one row per (user, date). On conflict only the
// fields present in the input are assigned, so omitted fields keep their
// previous values.
func (s *DailyLogService) Upsert(ctx context.Context, userID uint, in DailyLogInput) (*models.DailyLog, error) {
	row := models.DailyLog{UserID: userID, Date: in.Date}
	assign := map[string]interface{}{"updated_at": time.Now()}

	if in.Mood != nil {
		row.Mood = in.Mood
		assign["mood"] = *in.Mood
	}
	if in.Energy != nil {
		row.Energy = in.Energy
		assign["energy"] = *in.Energy
	}
	if in.Niyyah != nil {
		row.Niyyah = *in.Niyyah
		assign["niyyah"] = *in.Niyyah
	}
	if in.FastingCompleted != nil {
		row.FastingCompleted = *in.FastingCompleted
		assign["fasting_completed"] = *in.FastingCompleted
	}

	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(assign),
		}).
		Create(&row).Error
	if err != nil {
		return nil, fmt.Errorf("upsert daily log: %w", err)
	}

	// Re-read so the caller sees the merged row, not just this request's fields.
	var out models.DailyLog
	if err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, in.Date).
		First(&out).Error; err != nil {
		return nil, fmt.Errorf("reload daily log: %w", err)
	}
	return &out, nil
}
