package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Asif-Uchchas/qalby/models"

	"gorm.io/gorm"
)

type DuaService struct{ db *gorm.DB }

func NewDuaService(db *gorm.DB) *DuaService { return &DuaService{db: db} }

func (s *DuaService) ListFavorites(ctx context.Context, userID uint) ([]string, error) {
	ids := []string{}
	err := s.db.WithContext(ctx).
		Model(&models.DuaFavorite{}).
		Where("user_id = ?", userID).
		Order("created_at").
		Pluck("dua_id", &ids).Error
	if err != nil {
		return nil, fmt.Errorf("list favorites: %w", err)
	}
	return ids, nil
}

// ToggleFavorite flips the favorite state for one dua and reports the new
// state. Un-favoriting hard-deletes so the (user, dua) unique index stays
// free for the next toggle.
func (s *DuaService) ToggleFavorite(ctx context.Context, userID uint, duaID string) (bool, error) {
	var existing models.DuaFavorite
	err := s.db.WithContext(ctx).
		Where("user_id = ? AND dua_id = ?", userID, duaID).
		First(&existing).Error

	if err == nil {
		if err := s.db.WithContext(ctx).Unscoped().Delete(&existing).Error; err != nil {
			return false, fmt.Errorf("unfavorite dua: %w", err)
		}
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("lookup favorite: %w", err)
	}

	fav := models.DuaFavorite{UserID: userID, DuaID: duaID}
	if err := s.db.WithContext(ctx).Create(&fav).Error; err != nil {
		return false, fmt.Errorf("favorite dua: %w", err)
	}
	return true, nil
}
