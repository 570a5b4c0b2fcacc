package services

import (
	"context"
	"errors"
	"fmt"

	"github.com/Asif-Uchchas/qalby/models"
	"github.com/Asif-Uchchas/qalby/utils"

	"gorm.io/gorm"
)

var ErrWrongPassword = errors.New("current password is incorrect")

type UserService struct{ db *gorm.DB }

func NewUserService(db *gorm.DB) *UserService { return &UserService{db: db} }

type ProfileInput struct {
	Name      string `json:"name"`
	Image     string `json:"image"`
	Locale    string `json:"locale"`
	Timezone  string `json:"timezone"`
	Onboarded *bool  `json:"onboarded"`
}

func (s *UserService) Get(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, userID).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) Profile(ctx context.Context, userID uint) (map[string]interface{}, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	return map[string]interface{}{
		"id":        user.ID,
		"email":     user.Email,
		"name":      user.Name,
		"image":     user.Image,
		"locale":    user.Locale,
		"timezone":  user.Timezone,
		"onboarded": user.Onboarded,
	}, nil
}

// UpdateProfile merges nonempty fields over the stored profile. The
// timezone is validated as an IANA zone name before it becomes the user's
// "today" anchor.
func (s *UserService) UpdateProfile(ctx context.Context, userID uint, in ProfileInput) (*models.User, error) {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.Name != "" {
		user.Name = in.Name
	}
	if in.Image != "" {
		user.Image = in.Image
	}
	if in.Locale != "" {
		user.Locale = in.Locale
	}
	if in.Timezone != "" {
		if !utils.ValidTimezone(in.Timezone) {
			return nil, fmt.Errorf("unknown timezone %q", in.Timezone)
		}
		user.Timezone = in.Timezone
	}
	if in.Onboarded != nil {
		user.Onboarded = *in.Onboarded
	}

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return nil, fmt.Errorf("save profile: %w", err)
	}
	return user, nil
}

func (s *UserService) UpdatePassword(ctx context.Context, userID uint, current, next string) error {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return err
	}

	if !utils.CheckPasswordHash(current, user.Password) {
		return ErrWrongPassword
	}

	hashed, err := utils.HashPassword(next)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}
	user.Password = hashed

	if err := s.db.WithContext(ctx).Save(user).Error; err != nil {
		return fmt.Errorf("save password: %w", err)
	}
	return nil
}

// Today resolves the current calendar day in the user's timezone. Unknown
// users fall back to the UTC day.
func (s *UserService) Today(ctx context.Context, userID uint) string {
	user, err := s.Get(ctx, userID)
	if err != nil {
		return utils.TodayIn("")
	}
	return utils.TodayIn(user.Timezone)
}
