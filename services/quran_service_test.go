package services

import (
	"testing"

	"github.com/Asif-Uchchas/qalby/models"
)

func TestJuzUnionAcrossDays(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "quran@test.dev")
	svc := NewQuranService(db)

	if err := svc.MarkJuz(ctx(), user.ID, 1, true, "2026-03-01"); err != nil {
		t.Fatalf("mark juz 1: %v", err)
	}
	if err := svc.MarkJuz(ctx(), user.ID, 2, true, "2026-03-01"); err != nil {
		t.Fatalf("mark juz 2: %v", err)
	}
	if err := svc.MarkJuz(ctx(), user.ID, 5, true, "2026-03-04"); err != nil {
		t.Fatalf("mark juz 5: %v", err)
	}

	overview, err := svc.Overview(ctx(), user.ID, "2026-03-04")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	want := []int{1, 2, 5}
	if len(overview.CompletedJuz) != len(want) {
		t.Fatalf("completedJuz = %v, want %v", overview.CompletedJuz, want)
	}
	for i, juz := range want {
		if overview.CompletedJuz[i] != juz {
			t.Errorf("completedJuz[%d] = %d, want %d", i, overview.CompletedJuz[i], juz)
		}
	}
}

func TestMarkJuzTwiceKeepsOneRow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "quran@test.dev")
	svc := NewQuranService(db)

	if err := svc.MarkJuz(ctx(), user.ID, 7, true, "2026-03-01"); err != nil {
		t.Fatalf("first mark: %v", err)
	}
	if err := svc.MarkJuz(ctx(), user.ID, 7, true, "2026-03-02"); err != nil {
		t.Fatalf("second mark: %v", err)
	}

	n, err := svc.CompletedJuzCount(ctx(), user.ID)
	if err != nil {
		t.Fatalf("count: %v", err)
	}
	if n != 1 {
		t.Fatalf("expected 1 completion row, got %d", n)
	}

	// The original completion day wins.
	var row models.JuzCompletion
	if err := db.Where("user_id = ? AND juz = ?", user.ID, 7).First(&row).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if row.Date != "2026-03-01" {
		t.Errorf("completion date = %q, want 2026-03-01", row.Date)
	}
}

func TestUnmarkJuzCompletedOnEarlierDay(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "quran@test.dev")
	svc := NewQuranService(db)

	if err := svc.MarkJuz(ctx(), user.ID, 3, true, "2026-03-01"); err != nil {
		t.Fatalf("mark: %v", err)
	}
	// Days later, un-mark it.
	if err := svc.MarkJuz(ctx(), user.ID, 3, false, "2026-03-09"); err != nil {
		t.Fatalf("unmark: %v", err)
	}

	overview, err := svc.Overview(ctx(), user.ID, "2026-03-09")
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if len(overview.CompletedJuz) != 0 {
		t.Errorf("juz 3 still reported complete after unmark: %v", overview.CompletedJuz)
	}

	// And it can be re-completed afterwards.
	if err := svc.MarkJuz(ctx(), user.ID, 3, true, "2026-03-10"); err != nil {
		t.Fatalf("re-mark: %v", err)
	}
	n, _ := svc.CompletedJuzCount(ctx(), user.ID)
	if n != 1 {
		t.Errorf("expected juz 3 re-completed, count = %d", n)
	}
}

func TestMarkJuzRejectsOutOfRange(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "quran@test.dev")
	svc := NewQuranService(db)

	if err := svc.MarkJuz(ctx(), user.ID, 0, true, "2026-03-01"); err == nil {
		t.Error("juz 0 should be rejected")
	}
	if err := svc.MarkJuz(ctx(), user.ID, 31, true, "2026-03-01"); err == nil {
		t.Error("juz 31 should be rejected")
	}
}

func TestSetPagesOverwrites(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "quran@test.dev")
	svc := NewQuranService(db)

	day := "2026-03-01"
	if err := svc.SetPages(ctx(), user.ID, day, 10); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := svc.SetPages(ctx(), user.ID, day, 25); err != nil {
		t.Fatalf("second set: %v", err)
	}

	overview, err := svc.Overview(ctx(), user.ID, day)
	if err != nil {
		t.Fatalf("overview: %v", err)
	}
	if overview.PagesReadToday != 25 {
		t.Errorf("pagesReadToday = %d, want 25", overview.PagesReadToday)
	}

	var count int64
	db.Model(&models.QuranProgress{}).Where("user_id = ?", user.ID).Count(&count)
	if count != 1 {
		t.Errorf("expected 1 progress row, got %d", count)
	}

	// A different day gets its own row and doesn't leak into today.
	if err := svc.SetPages(ctx(), user.ID, "2026-03-02", 5); err != nil {
		t.Fatalf("other day: %v", err)
	}
	overview, _ = svc.Overview(ctx(), user.ID, day)
	if overview.PagesReadToday != 25 {
		t.Errorf("pagesReadToday changed by another day's write: %d", overview.PagesReadToday)
	}
}
