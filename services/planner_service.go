package services

import (
	"context"
	"fmt"
	"time"

	"github.com/Asif-Uchchas/qalby/models"

	"gorm.io/gorm"
)

type PlannerService struct{ db *gorm.DB }

func NewPlannerService(db *gorm.DB) *PlannerService { return &PlannerService{db: db} }

type TaskCreateInput struct {
	Date     string              `json:"date"`
	Title    string              `json:"title"`
	Category models.TaskCategory `json:"category"`
	TimeSlot string              `json:"timeSlot"`
}

// TaskUpdateInput is a partial patch; nil fields are untouched.
type TaskUpdateInput struct {
	ID        uint                 `json:"id"`
	Title     *string              `json:"title"`
	Category  *models.TaskCategory `json:"category"`
	TimeSlot  *string              `json:"timeSlot"`
	Completed *bool                `json:"completed"`
	Order     *int                 `json:"order"`
}

func (s *PlannerService) ListForDay(ctx context.Context, userID uint, date string) ([]models.PlannerTask, error) {
	var tasks []models.PlannerTask
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, date).
		Order("sort_order, time_slot").
		Find(&tasks).Error
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *PlannerService) Create(ctx context.Context, userID uint, in TaskCreateInput) (*models.PlannerTask, error) {
	task := models.PlannerTask{
		UserID:   userID,
		Date:     in.Date,
		Title:    in.Title,
		Category: models.CategoryWorship,
		TimeSlot: in.TimeSlot,
	}
	if in.Category != "" {
		task.Category = in.Category
	}
	if err := s.db.WithContext(ctx).Create(&task).Error; err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return &task, nil
}

// Update patches a task by id, scoped to the owner. Zero rows affected
// means either "doesn't exist" or "not yours"; both read as not found.
func (s *PlannerService) Update(ctx context.Context, userID uint, in TaskUpdateInput) (*models.PlannerTask, error) {
	patch := map[string]interface{}{"updated_at": time.Now()}
	if in.Title != nil {
		patch["title"] = *in.Title
	}
	if in.Category != nil {
		patch["category"] = *in.Category
	}
	if in.TimeSlot != nil {
		patch["time_slot"] = *in.TimeSlot
	}
	if in.Completed != nil {
		patch["completed"] = *in.Completed
	}
	if in.Order != nil {
		patch["sort_order"] = *in.Order
	}

	res := s.db.WithContext(ctx).
		Model(&models.PlannerTask{}).
		Where("id = ? AND user_id = ?", in.ID, userID).
		Updates(patch)
	if res.Error != nil {
		return nil, fmt.Errorf("update task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return nil, gorm.ErrRecordNotFound
	}

	var task models.PlannerTask
	if err := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", in.ID, userID).
		First(&task).Error; err != nil {
		return nil, fmt.Errorf("reload task: %w", err)
	}
	return &task, nil
}

func (s *PlannerService) Delete(ctx context.Context, userID, taskID uint) error {
	res := s.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", taskID, userID).
		Delete(&models.PlannerTask{})
	if res.Error != nil {
		return fmt.Errorf("delete task: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
