package utils

import "time"

const DateLayout = "2006-01-02"

// DayDate returns the calendar date for a 1-indexed trip day.
func DayDate(start time.Time, day int) time.Time {
	return start.AddDate(0, 0, day-1)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

func WeekdayName(t time.Time) string {
	return t.Weekday().String()
}
