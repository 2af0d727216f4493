// Package calendar generates the rolling availability window.
package calendar

import (
	"time"

	"github.com/mmynk/quando/internal/models"
)

// Horizon is the number of days in a generated window.
const Horizon = 14

var (
	italianWeekdays = [...]string{"dom", "lun", "mar", "mer", "gio", "ven", "sab"}
	italianMonths   = [...]string{"gen", "feb", "mar", "apr", "mag", "giu", "lug", "ago", "set", "ott", "nov", "dic"}
)

// Generate returns Horizon consecutive days starting at the calendar day of
// now, in now's location. Days are built from the date fields rather than by
// adding 24h durations, so DST transitions never skip or repeat a day.
//
// Generate panics on a zero time: a missing clock is a programming error and
// is never silently replaced by an arbitrary date.
func Generate(now time.Time) []models.CalendarDay {
	if now.IsZero() {
		panic("calendar: zero time")
	}

	year, month, day := now.Date()
	loc := now.Location()

	days := make([]models.CalendarDay, Horizon)
	for i := range days {
		date := time.Date(year, month, day+i, 0, 0, 0, 0, loc)
		days[i] = models.CalendarDay{
			Date:        date,
			DayName:     italianWeekdays[date.Weekday()],
			MonthName:   italianMonths[date.Month()-1],
			DayNumber:   date.Day(),
			IsToday:     i == 0,
			IsWeekStart: date.Weekday() == time.Monday,
			DateKey:     DateKey(date),
		}
	}
	return days
}

// DateKey formats t's local calendar date as YYYY-MM-DD.
func DateKey(t time.Time) string {
	return t.Format(models.DateKeyLayout)
}

// ValidDateKey reports whether key is a well-formed YYYY-MM-DD date.
func ValidDateKey(key string) bool {
	_, err := time.Parse(models.DateKeyLayout, key)
	return err == nil
}
