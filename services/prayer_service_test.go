package services

import (
	"testing"

	"github.com/Asif-Uchchas/qalby/models"
	"github.com/Asif-Uchchas/qalby/utils"
)

func TestSetStatusTwiceLeavesOneRow(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "prayer@test.dev")
	svc := NewPrayerService(db)

	day := "2026-03-01"
	if err := svc.SetStatus(ctx(), user.ID, day, models.PrayerFajr, models.StatusLate, nil); err != nil {
		t.Fatalf("first set: %v", err)
	}
	if err := svc.SetStatus(ctx(), user.ID, day, models.PrayerFajr, models.StatusOnTime, nil); err != nil {
		t.Fatalf("second set: %v", err)
	}

	var rows []models.PrayerEntry
	if err := db.Where("user_id = ? AND date = ? AND prayer = ?", user.ID, day, models.PrayerFajr).Find(&rows).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if len(rows) != 1 {
		t.Fatalf("expected exactly 1 row, got %d", len(rows))
	}
	if rows[0].Status != models.StatusOnTime {
		t.Errorf("status = %q, want ontime", rows[0].Status)
	}
}

func TestSetStatusKeepsTarawihWhenOmitted(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "prayer@test.dev")
	svc := NewPrayerService(db)

	day := "2026-03-01"
	yes := true
	if err := svc.SetStatus(ctx(), user.ID, day, models.PrayerIsha, models.StatusPending, &yes); err != nil {
		t.Fatalf("set with tarawih: %v", err)
	}
	if err := svc.SetStatus(ctx(), user.ID, day, models.PrayerIsha, models.StatusOnTime, nil); err != nil {
		t.Fatalf("set without tarawih: %v", err)
	}

	var row models.PrayerEntry
	if err := db.Where("user_id = ? AND date = ? AND prayer = ?", user.ID, day, models.PrayerIsha).First(&row).Error; err != nil {
		t.Fatalf("find: %v", err)
	}
	if !row.IsTarawih {
		t.Error("tarawih flag lost when omitted from update")
	}
	if row.Status != models.StatusOnTime {
		t.Errorf("status = %q, want ontime", row.Status)
	}
}

func TestHistoryOmitsDaysWithoutOnTimePrayers(t *testing.T) {
	db := newTestDB(t)
	user := seedUser(t, db, "prayer@test.dev")
	svc := NewPrayerService(db)

	today := utils.TodayIn("UTC")
	d1 := utils.DaysAgo(today, 3)
	d2 := utils.DaysAgo(today, 2)
	d3 := utils.DaysAgo(today, 1)

	// D1: 3 on time. D2: only a missed prayer. D3: all 5 on time.
	prayers := []models.PrayerName{models.PrayerFajr, models.PrayerDhuhr, models.PrayerAsr, models.PrayerMaghrib, models.PrayerIsha}
	for _, p := range prayers[:3] {
		if err := svc.SetStatus(ctx(), user.ID, d1, p, models.StatusOnTime, nil); err != nil {
			t.Fatalf("seed d1: %v", err)
		}
	}
	if err := svc.SetStatus(ctx(), user.ID, d2, models.PrayerFajr, models.StatusMissed, nil); err != nil {
		t.Fatalf("seed d2: %v", err)
	}
	for _, p := range prayers {
		if err := svc.SetStatus(ctx(), user.ID, d3, p, models.StatusOnTime, nil); err != nil {
			t.Fatalf("seed d3: %v", err)
		}
	}

	points, err := svc.History(ctx(), user.ID, today)
	if err != nil {
		t.Fatalf("history: %v", err)
	}

	counts := map[string]int{}
	for _, p := range points {
		counts[p.Date] = p.Count
	}
	if counts[d1] != 3 {
		t.Errorf("count[%s] = %d, want 3", d1, counts[d1])
	}
	if counts[d3] != 5 {
		t.Errorf("count[%s] = %d, want 5", d3, counts[d3])
	}
	if _, present := counts[d2]; present {
		t.Errorf("day %s with no on-time prayers should be absent from history", d2)
	}
	if len(points) != 2 {
		t.Errorf("expected 2 history points, got %d", len(points))
	}
}

func TestHistoryScopedToUser(t *testing.T) {
	db := newTestDB(t)
	alice := seedUser(t, db, "alice@test.dev")
	bob := seedUser(t, db, "bob@test.dev")
	svc := NewPrayerService(db)

	today := utils.TodayIn("UTC")
	if err := svc.SetStatus(ctx(), bob.ID, today, models.PrayerFajr, models.StatusOnTime, nil); err != nil {
		t.Fatalf("seed bob: %v", err)
	}

	points, err := svc.History(ctx(), alice.ID, today)
	if err != nil {
		t.Fatalf("history: %v", err)
	}
	if len(points) != 0 {
		t.Errorf("alice should not see bob's prayers, got %d points", len(points))
	}
}
