package services

import (
	"testing"

	"github.com/Asif-Uchchas/qalby/models"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }
func moodPtr(m models.Mood) *models.Mood { return &m }

func TestDailyLogUpsertIsIdempotent(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "log@test.dev")
	svc := NewDailyLogService(db)

	in := DailyLogInput{
		Date:             "2026-03-01",
		Mood:             moodPtr(models.MoodPeaceful),
		Energy:           intPtr(4),
		FastingCompleted: boolPtr(true),
	}

	if _, err := svc.Upsert(ctx(), user.ID, in); err != nil {
		t.Fatalf("first upsert: %v", err)
	}
	row, err := svc.Upsert(ctx(), user.ID, in)
	if err != nil {
		t.Fatalf("second upsert: %v", err)
	}

	var count int64
	db.Model(&models.DailyLog{}).Count(&count)
	if count != 1 {
		t.Fatalf("expected 1 row after double upsert, got %d", count)
	}
	if row.Mood == nil || *row.Mood != models.MoodPeaceful {
		t.Errorf("mood = %v, want peaceful", row.Mood)
	}
	if !row.FastingCompleted {
		t.Error("fastingCompleted should be true")
	}
}

func TestDailyLogUpsertKeepsOmittedFields(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "log@test.dev")
	svc := NewDailyLogService(db)

	if _, err := svc.Upsert(ctx(), user.ID, DailyLogInput{
		Date:   "2026-03-01",
		Mood:   moodPtr(models.MoodEnergized),
		Niyyah: strPtr("fast with presence"),
	}); err != nil {
		t.Fatalf("seed upsert: %v", err)
	}

	// Only energy this time; mood and niyyah must survive.
	row, err := svc.Upsert(ctx(), user.ID, DailyLogInput{
		Date:   "2026-03-01",
		Energy: intPtr(2),
	})
	if err != nil {
		t.Fatalf("partial upsert: %v", err)
	}

	if row.Mood == nil || *row.Mood != models.MoodEnergized {
		t.Errorf("mood lost on partial upsert: %v", row.Mood)
	}
	if row.Niyyah != "fast with presence" {
		t.Errorf("niyyah lost on partial upsert: %q", row.Niyyah)
	}
	if row.Energy == nil || *row.Energy != 2 {
		t.Errorf("energy = %v, want 2", row.Energy)
	}
}

func TestDailyLogGetReturnsDefaultsWhenMissing(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "log@test.dev")
	svc := NewDailyLogService(db)

	row, err := svc.Get(ctx(), user.ID, "2026-03-05")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if row.Mood != nil || row.Energy != nil || row.FastingCompleted {
		t.Errorf("expected zero-value defaults, got %+v", row)
	}
	if row.Date != "2026-03-05" {
		t.Errorf("date = %q, want 2026-03-05", row.Date)
	}
}
