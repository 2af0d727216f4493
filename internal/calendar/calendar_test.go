package calendar

import (
	"testing"
	"time"
)

func TestGenerate(t *testing.T) {
	rome, err := time.LoadLocation("Europe/Rome")
	if err != nil {
		t.Skipf("tzdata unavailable: %v", err)
	}

	tests := []struct {
		name string
		now  time.Time
	}{
		{"midday", time.Date(2026, 10, 19, 12, 30, 0, 0, rome)},
		{"just before midnight", time.Date(2026, 10, 19, 23, 59, 0, 0, rome)},
		{"across DST end", time.Date(2026, 10, 20, 0, 5, 0, 0, rome)},
		{"across DST start", time.Date(2026, 3, 20, 8, 0, 0, 0, rome)},
		{"year end", time.Date(2026, 12, 25, 10, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			days := Generate(tt.now)

			if len(days) != Horizon {
				t.Fatalf("expected %d days, got %d", Horizon, len(days))
			}

			if days[0].DateKey != tt.now.Format("2006-01-02") {
				t.Errorf("first day: expected %s, got %s", tt.now.Format("2006-01-02"), days[0].DateKey)
			}

			seen := make(map[string]bool)
			for i, d := range days {
				if d.IsToday != (i == 0) {
					t.Errorf("day %d: IsToday = %v", i, d.IsToday)
				}
				if seen[d.DateKey] {
					t.Errorf("duplicate date key %s", d.DateKey)
				}
				seen[d.DateKey] = true

				if i > 0 {
					if d.DateKey <= days[i-1].DateKey {
						t.Errorf("date keys not increasing: %s after %s", d.DateKey, days[i-1].DateKey)
					}
					prev := days[i-1].Date.AddDate(0, 0, 1)
					if DateKey(prev) != d.DateKey {
						t.Errorf("gap between %s and %s", days[i-1].DateKey, d.DateKey)
					}
				}

				if d.IsWeekStart != (d.Date.Weekday() == time.Monday) {
					t.Errorf("day %s: IsWeekStart = %v on %s", d.DateKey, d.IsWeekStart, d.Date.Weekday())
				}
				if d.DayNumber != d.Date.Day() {
					t.Errorf("day %s: DayNumber = %d", d.DateKey, d.DayNumber)
				}
			}
		})
	}
}

func TestGenerateItalianLabels(t *testing.T) {
	// Monday 19 October 2026
	days := Generate(time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC))

	if days[0].DayName != "lun" || days[0].MonthName != "ott" || days[0].DayNumber != 19 {
		t.Errorf("unexpected labels for first day: %+v", days[0])
	}
	if !days[0].IsWeekStart || !days[7].IsWeekStart {
		t.Error("expected Mondays at index 0 and 7 to start a week")
	}
	if days[6].DayName != "dom" {
		t.Errorf("expected Sunday label 'dom', got %q", days[6].DayName)
	}
	if days[13].DateKey != "2026-11-01" || days[13].MonthName != "nov" {
		t.Errorf("unexpected last day: %+v", days[13])
	}
}

func TestGeneratePanicsOnZeroTime(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic for zero time")
		}
	}()
	Generate(time.Time{})
}

func TestValidDateKey(t *testing.T) {
	for key, want := range map[string]bool{
		"2026-10-19": true,
		"2026-02-30": false,
		"19-10-2026": false,
		"":           false,
	} {
		if got := ValidDateKey(key); got != want {
			t.Errorf("ValidDateKey(%q) = %v, want %v", key, got, want)
		}
	}
}
