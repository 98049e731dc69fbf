package stats

import (
	"math"
	"testing"
	"time"

	"timekeep/internal/models"
)

// reportLoc is deliberately offset from UTC so bucketing bugs that ignore
// the reporting timezone show up.
var reportLoc = time.FixedZone("UTC+3", 3*3600)

func category(id uint, name string) *models.Category {
	return &models.Category{ID: id, Name: name}
}

func session(cat *models.Category, start time.Time, durationSec int) models.Session {
	s := models.Session{
		StartedAt:       start,
		EndedAt:         start.Add(time.Duration(durationSec) * time.Second),
		DurationSeconds: durationSec,
	}
	if cat != nil {
		s.CategoryID = &cat.ID
		s.Category = cat
	}
	return s
}

func TestHourlyBucketsByLocalHour(t *testing.T) {
	work := category(1, "Work")
	// 2024-01-01 22:30 UTC is 2024-01-02 01:30 in the reporting zone.
	sessions := []models.Session{
		session(work, time.Date(2024, 1, 1, 22, 30, 0, 0, time.UTC), 1800),
		session(work, time.Date(2024, 1, 2, 6, 0, 0, 0, time.UTC), 3600), // 09:00 local
		session(nil, time.Date(2024, 1, 1, 6, 0, 0, 0, time.UTC), 3600), // previous local day
	}
	now := time.Date(2024, 1, 2, 12, 0, 0, 0, reportLoc)

	buckets := Hourly(sessions, now, reportLoc)
	if len(buckets) != 24 {
		t.Fatalf("expected 24 buckets, got %d", len(buckets))
	}
	if got := buckets[1].Hours["Work"]; got != 0.5 {
		t.Errorf("hour 1: expected 0.5h for Work, got %v", got)
	}
	if got := buckets[9].Hours["Work"]; got != 1.0 {
		t.Errorf("hour 9: expected 1h for Work, got %v", got)
	}
	for h, bucket := range buckets {
		if got := bucket.Hours[models.NoCategoryLabel]; got != 0 {
			t.Errorf("hour %d: previous-day session leaked %vh into today", h, got)
		}
	}
}

func TestHourlyTotalsReconcile(t *testing.T) {
	work := category(1, "Work")
	read := category(2, "Read")
	today := time.Date(2024, 3, 10, 0, 0, 0, 0, reportLoc)
	sessions := []models.Session{
		session(work, today.Add(9*time.Hour), 5400),
		session(read, today.Add(13*time.Hour), 1234),
		session(work, today.Add(13*time.Hour+30*time.Minute), 777),
		session(work, today.AddDate(0, 0, -1).Add(9*time.Hour), 9999), // yesterday
	}
	now := today.Add(20 * time.Hour)

	want := 0.0
	for _, s := range sessions[:3] {
		want += float64(s.DurationSeconds) / 3600
	}

	got := 0.0
	for _, bucket := range Hourly(sessions, now, reportLoc) {
		for _, v := range bucket.Hours {
			got += v
		}
	}
	if math.Abs(got-want) > 0.01 {
		t.Errorf("hourly total %v does not reconcile with session total %v", got, want)
	}
}

func TestHourlyAttributesMidnightSpanToStartHour(t *testing.T) {
	work := category(1, "Work")
	// Starts 23:30 local, runs two hours into the next day.
	start := time.Date(2024, 3, 10, 23, 30, 0, 0, reportLoc)
	sessions := []models.Session{session(work, start, 7200)}
	now := start.Add(10 * time.Minute)

	buckets := Hourly(sessions, now, reportLoc)
	if got := buckets[23].Hours["Work"]; got != 2.0 {
		t.Errorf("expected full 2h in hour 23, got %v", got)
	}
}

func TestWeeklyWindowStartsSundayMidnight(t *testing.T) {
	work := category(1, "Work")
	// 2024-03-13 is a Wednesday; the week began Sunday 2024-03-10.
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, reportLoc)
	sessions := []models.Session{
		session(work, time.Date(2024, 3, 10, 0, 30, 0, 0, reportLoc), 3600), // Sunday, just inside
		session(work, time.Date(2024, 3, 12, 9, 0, 0, 0, reportLoc), 1800),  // Tuesday
		session(work, time.Date(2024, 3, 9, 23, 0, 0, 0, reportLoc), 3600),  // Saturday before, outside
	}

	buckets := Weekly(sessions, now, reportLoc)
	if len(buckets) != 7 {
		t.Fatalf("expected 7 buckets, got %d", len(buckets))
	}
	if buckets[0].Day != time.Sunday || buckets[6].Day != time.Saturday {
		t.Fatalf("expected Sunday-first ordering, got %v..%v", buckets[0].Day, buckets[6].Day)
	}
	if got := buckets[time.Sunday].Hours["Work"]; got != 1.0 {
		t.Errorf("Sunday: expected 1h, got %v", got)
	}
	if got := buckets[time.Tuesday].Hours["Work"]; got != 0.5 {
		t.Errorf("Tuesday: expected 0.5h, got %v", got)
	}
	if got := buckets[time.Saturday].Hours["Work"]; got != 0 {
		t.Errorf("Saturday: last week's session leaked in, got %v", got)
	}
}

func TestMonthGridOffsetAndIntensity(t *testing.T) {
	work := category(1, "Work")
	// January 2024 starts on a Monday, so one leading blank.
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, reportLoc)
	sessions := []models.Session{
		session(work, time.Date(2024, 1, 1, 9, 0, 0, 0, reportLoc), 7200),
		session(work, time.Date(2024, 1, 15, 9, 0, 0, 0, reportLoc), 14400),
		session(work, time.Date(2023, 12, 31, 9, 0, 0, 0, reportLoc), 3600), // previous month
	}

	cells := MonthGrid(sessions, now, reportLoc)
	if len(cells) != 1+31 {
		t.Fatalf("expected 32 cells, got %d", len(cells))
	}
	if cells[0].Day != 0 {
		t.Fatalf("expected leading blank, got day %d", cells[0].Day)
	}
	if cells[1].Day != 1 || cells[31].Day != 31 {
		t.Fatalf("day cells misaligned: first=%d last=%d", cells[1].Day, cells[31].Day)
	}
	if got := cells[1].Intensity; got != 0.5 {
		t.Errorf("day 1: expected intensity 0.5, got %v", got)
	}
	if got := cells[15].Intensity; got != 1.0 {
		t.Errorf("day 15: expected intensity 1, got %v", got)
	}
}

func TestMonthGridEmptyMonthStaysFlat(t *testing.T) {
	now := time.Date(2024, 1, 20, 12, 0, 0, 0, reportLoc)
	for _, cell := range MonthGrid(nil, now, reportLoc) {
		if cell.Intensity != 0 {
			t.Fatalf("empty month should have zero intensity everywhere, got %v", cell.Intensity)
		}
	}
}

func TestCoinsFloorsWholeHours(t *testing.T) {
	work := category(1, "Work")
	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)

	if got := Coins([]models.Session{session(work, base, 7200)}); got != 2 {
		t.Errorf("7200s: expected 2 coins, got %d", got)
	}
	if got := Coins([]models.Session{session(work, base, 7199)}); got != 1 {
		t.Errorf("7199s: expected 1 coin, got %d", got)
	}
	if got := Coins([]models.Session{session(work, base, 5400)}); got != 1 {
		t.Errorf("5400s: expected 1 coin, got %d", got)
	}
	if got := Coins(nil); got != 0 {
		t.Errorf("empty history: expected 0 coins, got %d", got)
	}
}

func TestCategoryTotalsFiltersAndOrders(t *testing.T) {
	work := category(1, "Work")
	read := category(2, "Read")
	day := time.Date(2024, 3, 10, 0, 0, 0, 0, reportLoc)
	sessions := []models.Session{
		session(work, day.Add(9*time.Hour), 1800),
		session(read, day.Add(10*time.Hour), 600),
		session(work, day.AddDate(0, 0, -3).Add(9*time.Hour), 3600),
	}

	totals := CategoryTotals(sessions, reportLoc, func(start time.Time) bool {
		return !start.Before(day)
	})
	if len(totals) != 2 {
		t.Fatalf("expected 2 totals, got %d", len(totals))
	}
	if totals[0].Name != "Work" || totals[0].Minutes != 30 {
		t.Errorf("unexpected first total: %+v", totals[0])
	}
	if totals[1].Name != "Read" || totals[1].Minutes != 10 {
		t.Errorf("unexpected second total: %+v", totals[1])
	}
}

func TestReportSharesOneColorMapAcrossViews(t *testing.T) {
	a := category(1, "A")
	b := category(2, "B")
	now := time.Date(2024, 3, 13, 12, 0, 0, 0, reportLoc)
	sessions := []models.Session{
		session(a, now.Add(-2*time.Hour), 3600),
		session(b, now.Add(-1*time.Hour), 1800),
	}

	report := Report(sessions, now, reportLoc)
	if report.Colors["A"] != Palette[0] || report.Colors["B"] != Palette[1] {
		t.Fatalf("expected first-seen palette assignment, got %v", report.Colors)
	}
	if report.Colors["A"] == report.Colors["B"] {
		t.Fatal("categories must receive distinct colors")
	}
	// Both views key their buckets by the same names the color map uses.
	for _, name := range []string{"A", "B"} {
		if _, ok := report.Hourly[0].Hours[name]; !ok {
			t.Errorf("hourly buckets missing key %q", name)
		}
		if _, ok := report.Weekly[0].Hours[name]; !ok {
			t.Errorf("weekly buckets missing key %q", name)
		}
	}
	if report.TotalSeconds != 5400 || report.Coins != 1 {
		t.Errorf("unexpected totals: %d seconds, %d coins", report.TotalSeconds, report.Coins)
	}
}
