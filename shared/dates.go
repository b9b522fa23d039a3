package shared

import "time"

// DateOnly truncates to midnight in the instant's location.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// MondayIndex maps time.Weekday onto a Monday-start week, Monday=0 .. Sunday=6.
func MondayIndex(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// BucketDeadline returns the last day of the period containing now: today
// for daily, the Sunday closing the week for weekly, and the last day of
// the month for monthly.
func BucketDeadline(bucket string, now time.Time) time.Time {
	today := DateOnly(now)

	switch bucket {
	case BucketWeekly:
		return today.AddDate(0, 0, 6-MondayIndex(today.Weekday()))
	case BucketMonthly:
		// Day 0 of the next month normalizes to the last day of this one.
		return time.Date(today.Year(), today.Month()+1, 0, 0, 0, 0, 0, today.Location())
	default:
		return today
	}
}
