package services

import (
	"errors"
	"testing"

	"github.com/Asif-Uchchas/qalby/utils"
)

func TestUpdateProfileMergesNonEmptyFields(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "profile@test.dev")
	svc := NewUserService(db)

	onboarded := true
	updated, err := svc.UpdateProfile(ctx(), user.ID, ProfileInput{
		Timezone:  "Asia/Dhaka",
		Onboarded: &onboarded,
	})
	if err != nil {
		t.Fatalf("update: %v", err)
	}

	if updated.Timezone != "Asia/Dhaka" {
		t.Errorf("timezone = %q, want Asia/Dhaka", updated.Timezone)
	}
	if updated.Name != "Test User" {
		t.Errorf("name changed without being sent: %q", updated.Name)
	}
	if !updated.Onboarded {
		t.Error("onboarded not set")
	}
}

func TestUpdateProfileRejectsUnknownTimezone(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "profile@test.dev")
	svc := NewUserService(db)

	if _, err := svc.UpdateProfile(ctx(), user.ID, ProfileInput{Timezone: "Mars/Olympus"}); err == nil {
		t.Error("bogus timezone accepted")
	}
}

func TestUpdatePasswordChecksCurrent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "profile@test.dev")

	hashed, err := utils.HashPassword("correct")
	if err != nil {
		t.Fatal(err)
	}
	user.Password = hashed
	if err := db.Save(user).Error; err != nil {
		t.Fatal(err)
	}

	svc := NewUserService(db)
	if err := svc.UpdatePassword(ctx(), user.ID, "wrong", "next"); !errors.Is(err, ErrWrongPassword) {
		t.Errorf("got %v, want ErrWrongPassword", err)
	}
	if err := svc.UpdatePassword(ctx(), user.ID, "correct", "next"); err != nil {
		t.Errorf("valid change failed: %v", err)
	}
}

func TestTodayUsesUserTimezone(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "profile@test.dev")
	svc := NewUserService(db)

	day := svc.Today(ctx(), user.ID)
	if !utils.ValidDay(day) {
		t.Errorf("today %q is not a calendar date", day)
	}

	// Unknown users still resolve to a UTC day rather than erroring.
	day = svc.Today(ctx(), 99999)
	if !utils.ValidDay(day) {
		t.Errorf("fallback today %q is not a calendar date", day)
	}
}
