package services

import (
	"errors"
	"testing"

	"github.com/Asif-Uchchas/qalby/models"

	"gorm.io/gorm"
)

func seedGoal(t *testing.T, svc *GoalService, userID uint, title string) *models.Goal {
	t.Helper()
	goal, err := svc.Create(ctx(), userID, GoalInput{
		Title:     title,
		StartDate: "2026-02-18",
		EndDate:   "2026-03-19",
	})
	if err != nil {
		t.Fatalf("seed goal: %v", err)
	}
	return goal
}

func TestGoalCreateDefaultsTarget(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "goal@test.dev")
	svc := NewGoalService(db)

	goal := seedGoal(t, svc, user.ID, "Pray taraweeh nightly")
	if goal.TargetCount != 30 {
		t.Errorf("targetCount = %d, want 30 default", goal.TargetCount)
	}
}

func TestGoalEntryUpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "goal@test.dev")
	svc := NewGoalService(db)
	goal := seedGoal(t, svc, user.ID, "Read after fajr")

	day := "2026-03-01"
	if err := svc.UpsertEntry(ctx(), user.ID, goal.ID, day, true); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	if err := svc.UpsertEntry(ctx(), user.ID, goal.ID, day, true); err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var n int64
	db.Model(&models.GoalEntry{}).Where("goal_id = ?", goal.ID).Count(&n)
	if n != 1 {
		t.Fatalf("expected 1 entry row, got %d", n)
	}

	// Un-checking flips the same row.
	if err := svc.UpsertEntry(ctx(), user.ID, goal.ID, day, false); err != nil {
		t.Fatalf("uncheck: %v", err)
	}
	var entry models.GoalEntry
	db.Where("goal_id = ? AND date = ?", goal.ID, day).First(&entry)
	if entry.Completed {
		t.Error("entry still completed after uncheck")
	}
}

func TestGoalEntryRejectsForeignGoal(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@test.dev")
	bob := seedUser(t, db, "bob@test.dev")
	svc := NewGoalService(db)
	goal := seedGoal(t, svc, bob.ID, "Bob's goal")

	err := svc.UpsertEntry(ctx(), alice.ID, goal.ID, "2026-03-01", true)
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Fatalf("expected ErrRecordNotFound for foreign goal, got %v", err)
	}

	var n int64
	db.Model(&models.GoalEntry{}).Where("goal_id = ?", goal.ID).Count(&n)
	if n != 0 {
		t.Error("foreign upsert created an entry")
	}
}

func TestGoalListCountsAndDoneToday(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "goal@test.dev")
	svc := NewGoalService(db)
	goal := seedGoal(t, svc, user.ID, "Give charity daily")

	today := "2026-03-03"
	for _, day := range []string{"2026-03-01", "2026-03-02", today} {
		if err := svc.UpsertEntry(ctx(), user.ID, goal.ID, day, true); err != nil {
			t.Fatalf("seed entry %s: %v", day, err)
		}
	}

	summaries, err := svc.List(ctx(), user.ID, today)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(summaries) != 1 {
		t.Fatalf("expected 1 goal, got %d", len(summaries))
	}
	if summaries[0].Completed != 3 {
		t.Errorf("completed = %d, want 3", summaries[0].Completed)
	}
	if !summaries[0].DoneToday {
		t.Error("doneToday should be true")
	}

	// A different "today" flips the flag without touching the count.
	summaries, _ = svc.List(ctx(), user.ID, "2026-03-04")
	if summaries[0].DoneToday {
		t.Error("doneToday should be false on a day with no entry")
	}
	if summaries[0].Completed != 3 {
		t.Errorf("completed = %d, want 3", summaries[0].Completed)
	}
}
