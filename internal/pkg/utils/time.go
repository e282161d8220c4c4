package utils

import (
	"fmt"
	"time"
)

// AppointmentDateBounds interprets a date/time filter value the way the
// listing expects: when the value carries a time-of-day component it is an
// exact lower bound with no upper bound; a bare date covers the whole UTC
// calendar day.
func AppointmentDateBounds(value time.Time) (from time.Time, to *time.Time) {
	utc := value.UTC()
	hasTime := utc.Hour() > 0 || utc.Minute() > 0 || utc.Second() > 0 || utc.Nanosecond() > 0
	if hasTime {
		return utc, nil
	}
	dayStart := time.Date(utc.Year(), utc.Month(), utc.Day(), 0, 0, 0, 0, time.UTC)
	dayEnd := dayStart.Add(24 * time.Hour)
	return dayStart, &dayEnd
}

// MonthBounds returns [start of the month containing now, start of the
// next month).
func MonthBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	return start, start.AddDate(0, 1, 0)
}

// DayBounds returns [start of day, start of next day) for now's location.
func DayBounds(now time.Time) (time.Time, time.Time) {
	start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return start, start.Add(24 * time.Hour)
}

// WeekRange is one labelled seven-day window of the dashboard series.
type WeekRange struct {
	Label string
	Start time.Time
	End   time.Time
}

// LastWeeks builds n consecutive seven-day windows ending today, oldest
// first, labelled "Week 1 (Jan 2 - Jan 8)" style.
func LastWeeks(now time.Time, n int) []WeekRange {
	weeks := make([]WeekRange, 0, n)
	for i := n - 1; i >= 0; i-- {
		end := now.AddDate(0, 0, -i*7)
		start := end.AddDate(0, 0, -6)
		weeks = append(weeks, WeekRange{
			Label: formatWeekLabel(n-i, start, end),
			Start: start,
			End:   end,
		})
	}
	return weeks
}

func formatWeekLabel(index int, start, end time.Time) string {
	return fmt.Sprintf("Week %d (%s - %s)", index, start.Format("Jan 2"), end.Format("Jan 2"))
}
