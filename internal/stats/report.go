// Package stats derives reporting views from the session history. All
// functions are pure reads over the slice they are given; local-time
// bucketing uses the reporting location resolved once at startup.
package stats

import (
	"math"
	"time"

	"timekeep/internal/models"
)

// HourBucket accumulates hours per category for one hour of today
type HourBucket struct {
	Hour  int
	Hours map[string]float64
}

// WeekdayBucket accumulates hours per category for one weekday of the
// current week (Sunday first)
type WeekdayBucket struct {
	Day   time.Weekday
	Hours map[string]float64
}

// MonthCell is one cell of the month heatmap grid. Day 0 marks a leading
// blank used to align the grid's weekday columns.
type MonthCell struct {
	Day       int
	Hours     float64
	Intensity float64
}

// Stats bundles everything one report generation produces. Colors and
// Categories are computed once over the full dataset and shared by all
// views.
type Stats struct {
	Categories   []string
	Colors       map[string]string
	Hourly       []HourBucket
	Weekly       []WeekdayBucket
	Month        []MonthCell
	TotalSeconds int
	Coins        int
}

// Report buckets the session history into the hourly, weekly, and monthly
// views relative to now in the given reporting location
func Report(sessions []models.Session, now time.Time, loc *time.Location) Stats {
	report := Stats{
		Categories: CategoryOrder(sessions),
		Colors:     ColorMap(sessions),
		Hourly:     Hourly(sessions, now, loc),
		Weekly:     Weekly(sessions, now, loc),
		Month:      MonthGrid(sessions, now, loc),
	}
	report.TotalSeconds = TotalSeconds(sessions)
	report.Coins = Coins(sessions)
	return report
}

// Hourly returns 24 buckets for the current local date. A session is
// attributed wholly to the hour it started in; sessions spanning midnight
// are not split.
func Hourly(sessions []models.Session, now time.Time, loc *time.Location) []HourBucket {
	names := CategoryOrder(sessions)
	buckets := make([]HourBucket, 24)
	for h := range buckets {
		buckets[h] = HourBucket{Hour: h, Hours: zeroedTotals(names)}
	}

	today := now.In(loc)
	for i := range sessions {
		start := sessions[i].StartedAt.In(loc)
		if !sameDate(start, today) {
			continue
		}
		name := sessions[i].CategoryName()
		buckets[start.Hour()].Hours[name] += roundHundredth(float64(sessions[i].DurationSeconds) / 3600)
	}
	return buckets
}

// Weekly returns 7 buckets, Sunday through Saturday, covering sessions
// started since the most recent Sunday at local midnight
func Weekly(sessions []models.Session, now time.Time, loc *time.Location) []WeekdayBucket {
	names := CategoryOrder(sessions)
	buckets := make([]WeekdayBucket, 7)
	for d := range buckets {
		buckets[d] = WeekdayBucket{Day: time.Weekday(d), Hours: zeroedTotals(names)}
	}

	local := now.In(loc)
	weekStart := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc).
		AddDate(0, 0, -int(local.Weekday()))

	for i := range sessions {
		start := sessions[i].StartedAt.In(loc)
		if start.Before(weekStart) {
			continue
		}
		name := sessions[i].CategoryName()
		buckets[start.Weekday()].Hours[name] += roundHundredth(float64(sessions[i].DurationSeconds) / 3600)
	}
	return buckets
}

// MonthGrid returns the current calendar month as heatmap cells: leading
// blanks for the weekday offset of day 1, then one cell per day with total
// hours and a 0..1 intensity. The intensity denominator has a floor of 1
// so an all-zero month stays flat.
func MonthGrid(sessions []models.Session, now time.Time, loc *time.Location) []MonthCell {
	local := now.In(loc)
	year, month := local.Year(), local.Month()

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, loc)
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()
	offset := int(firstDay.Weekday())

	cells := make([]MonthCell, 0, offset+daysInMonth)
	for i := 0; i < offset; i++ {
		cells = append(cells, MonthCell{})
	}
	for day := 1; day <= daysInMonth; day++ {
		cells = append(cells, MonthCell{Day: day})
	}

	for i := range sessions {
		start := sessions[i].StartedAt.In(loc)
		if start.Year() != year || start.Month() != month {
			continue
		}
		cells[offset+start.Day()-1].Hours += float64(sessions[i].DurationSeconds) / 3600
	}

	max := 1.0
	for i := range cells {
		if cells[i].Hours > max {
			max = cells[i].Hours
		}
	}
	for i := range cells {
		cells[i].Intensity = cells[i].Hours / max
	}
	return cells
}

// CategoryTotal is the tracked time of one category within a filter window
type CategoryTotal struct {
	Name    string
	Minutes float64
}

// CategoryTotals sums tracked minutes per category over the sessions whose
// local start time passes the filter, in first-seen order
func CategoryTotals(sessions []models.Session, loc *time.Location, include func(time.Time) bool) []CategoryTotal {
	totals := make(map[string]float64)
	var order []string
	for i := range sessions {
		start := sessions[i].StartedAt.In(loc)
		if !include(start) {
			continue
		}
		name := sessions[i].CategoryName()
		if _, seen := totals[name]; !seen {
			order = append(order, name)
		}
		totals[name] += float64(sessions[i].DurationSeconds) / 60
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		result = append(result, CategoryTotal{Name: name, Minutes: totals[name]})
	}
	return result
}

// TotalSeconds sums the duration of every completed session
func TotalSeconds(sessions []models.Session) int {
	total := 0
	for i := range sessions {
		total += sessions[i].DurationSeconds
	}
	return total
}

// Coins converts total tracked time into reward currency: one coin per
// full hour. The running session is never counted until it is stopped.
func Coins(sessions []models.Session) int {
	return TotalSeconds(sessions) / 3600
}

func zeroedTotals(names []string) map[string]float64 {
	totals := make(map[string]float64, len(names))
	for _, name := range names {
		totals[name] = 0
	}
	return totals
}

func sameDate(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func roundHundredth(v float64) float64 {
	return math.Round(v*100) / 100
}
