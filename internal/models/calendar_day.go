package models

import "time"

// DateKeyLayout is the time layout of CalendarDay.DateKey.
const DateKeyLayout = "2006-01-02"

// CalendarDay is one day of the rolling availability window.
type CalendarDay struct {
	// Date is local midnight of the day.
	Date time.Time

	// DayName is the short Italian weekday label (e.g., "lun").
	DayName string

	// MonthName is the short Italian month label (e.g., "ott").
	MonthName string

	DayNumber int

	// IsToday is true only for the first day of a generated window.
	IsToday bool

	// IsWeekStart is true when the day is a Monday.
	IsWeekStart bool

	// DateKey is the canonical YYYY-MM-DD lookup key of the day, taken from
	// the local calendar fields of Date.
	DateKey string
}
