package board

import (
	"maps"

	"github.com/mmynk/quando/internal/models"
)

// Group returns the group the board was initialized with.
func (b *Board) Group() *models.Group {
	return b.group
}

// Days returns the window in chronological order.
func (b *Board) Days() []models.CalendarDay {
	return b.days
}

// Day returns the window day with the given date key.
func (b *Board) Day(dateKey string) (models.CalendarDay, bool) {
	i, ok := b.index[dateKey]
	if !ok {
		return models.CalendarDay{}, false
	}
	return b.days[i], true
}

// IsSelected reports a participant's flag on a day.
func (b *Board) IsSelected(dateKey, participant string) bool {
	return b.table[dateKey][participant]
}

// SelectionsFor returns a copy of every participant's flag on a day, or nil
// for a day outside the window.
func (b *Board) SelectionsFor(dateKey string) map[string]bool {
	flags, ok := b.table[dateKey]
	if !ok {
		return nil
	}
	return maps.Clone(flags)
}

// Snapshot returns a deep copy of the table.
func (b *Board) Snapshot() Table {
	out := make(Table, len(b.table))
	for key, flags := range b.table {
		out[key] = maps.Clone(flags)
	}
	return out
}

// SelectedCount returns how many participants are available on a day.
func (b *Board) SelectedCount(dateKey string) int {
	if b.group == nil {
		return 0
	}
	flags := b.table[dateKey]
	n := 0
	for _, p := range b.group.Participants {
		if flags[p] {
			n++
		}
	}
	return n
}

// IsFullySelected reports whether every participant is available on a day.
// A group without participants never has a fully selected day.
func (b *Board) IsFullySelected(dateKey string) bool {
	if b.group == nil || len(b.group.Participants) == 0 {
		return false
	}
	return b.SelectedCount(dateKey) == len(b.group.Participants)
}

// ClosestFullDate returns the earliest fully selected day of the window.
func (b *Board) ClosestFullDate() (models.CalendarDay, bool) {
	for _, day := range b.days {
		if b.IsFullySelected(day.DateKey) {
			return day, true
		}
	}
	return models.CalendarDay{}, false
}

// LedStates returns one flag per participant where the first
// SelectedCount(dateKey) entries are true. The order says how many are
// available, not who.
func (b *Board) LedStates(dateKey string) []bool {
	if b.group == nil {
		return nil
	}
	leds := make([]bool, len(b.group.Participants))
	n := b.SelectedCount(dateKey)
	for i := 0; i < n; i++ {
		leds[i] = true
	}
	return leds
}
