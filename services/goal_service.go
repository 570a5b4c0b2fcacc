package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Asif-Uchchas/qalby/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GoalService struct{ db *gorm.DB }

func NewGoalService(db *gorm.DB) *GoalService { return &GoalService{db: db} }

// GoalSummary is a goal plus its lifetime completion count and whether it
// was checked off today.
type GoalSummary struct {
	ID        uint   `json:"id"`
	Title     string `json:"title"`
	Category  string `json:"category"`
	Target    int    `json:"target"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	Completed int    `json:"completed"`
	DoneToday bool   `json:"doneToday"`
}

type GoalInput struct {
	Title       string `json:"title"`
	Category    string `json:"category"`
	TargetCount *int   `json:"targetCount"`
	StartDate   string `json:"startDate"`
	EndDate     string `json:"endDate"`
}

func (s *GoalService) List(ctx context.Context, userID uint, today string) ([]GoalSummary, error) {
	var goals []models.Goal
	if err := s.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at").
		Find(&goals).Error; err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}

	summaries := make([]GoalSummary, 0, len(goals))
	for _, g := range goals {
		var done int64
		if err := s.db.WithContext(ctx).
			Model(&models.GoalEntry{}).
			Where("goal_id = ? AND completed = ?", g.ID, true).
			Count(&done).Error; err != nil {
			return nil, fmt.Errorf("count goal entries: %w", err)
		}

		var todayDone int64
		if err := s.db.WithContext(ctx).
			Model(&models.GoalEntry{}).
			Where("goal_id = ? AND date = ? AND completed = ?", g.ID, today, true).
			Count(&todayDone).Error; err != nil {
			return nil, fmt.Errorf("check today's entry: %w", err)
		}

		summaries = append(summaries, GoalSummary{
			ID:        g.ID,
			Title:     g.Title,
			Category:  g.Category,
			Target:    g.TargetCount,
			StartDate: g.StartDate,
			EndDate:   g.EndDate,
			Completed: int(done),
			DoneToday: todayDone > 0,
		})
	}
	return summaries, nil
}

func (s *GoalService) Create(ctx context.Context, userID uint, in GoalInput) (*models.Goal, error) {
	goal := models.Goal{
		UserID:      userID,
		Title:       in.Title,
		Category:    in.Category,
		TargetCount: 30,
		StartDate:   in.StartDate,
		EndDate:     in.EndDate,
	}
	if in.TargetCount != nil {
		goal.TargetCount = *in.TargetCount
	}
	if err := s.db.WithContext(ctx).Create(&goal).Error; err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	return &goal, nil
}

// UpsertEntry checks a goal off (or un-checks it) for a day. The goal must
// belong to the caller; a foreign or missing goal reads as not found so
// existence is never leaked.
func (s *GoalService) UpsertEntry(ctx context.Context, userID, goalID uint, date string, completed bool) error {
	var goal models.Goal
	err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", goalID, userID).
		First(&goal).Error
	if err != nil {
		return err
	}

	entry := models.GoalEntry{GoalID: goalID, Date: date, Completed: completed}
	err = s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "goal_id"}, {Name: "date"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"completed":  completed,
				"updated_at": time.Now(),
			}),
		}).
		Create(&entry).Error
	if err != nil {
		return fmt.Errorf("upsert goal entry: %w", err)
	}
	return nil
}
