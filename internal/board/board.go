// Package board keeps the availability table of one group over the rolling
// calendar window.
//
// A Board reconciles three inputs into one in-memory table: the generated
// window, the group's roster and the persisted selections. Every day of the
// window has exactly one flag per participant. Mutations are optimistic: the
// table changes first and is restored if the store refuses the write.
//
// A Board is owned by a single goroutine and is not safe for concurrent use.
package board

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/mmynk/quando/internal/calendar"
	"github.com/mmynk/quando/internal/models"
)

var (
	// ErrPersistFailed is returned by Toggle when the store refused the write
	// and the table was rolled back.
	ErrPersistFailed = errors.New("failed to save selection")

	// ErrUnknownDay is returned for a date key outside the current window.
	ErrUnknownDay = errors.New("day is not in the current window")

	// ErrUnknownParticipant is returned for a name not on the group's roster.
	ErrUnknownParticipant = errors.New("participant is not in the group")

	// ErrNoGroup is returned when the board has not been initialized.
	ErrNoGroup = errors.New("board has no group")
)

// SelectionStore is the persistence the board depends on. Implementations
// report failures through their results instead of errors.
type SelectionStore interface {
	FetchSelections(ctx context.Context, groupID string) []models.Selection
	UpsertSelection(ctx context.Context, groupID, dateKey, playerName string, selected bool) bool
}

// Table maps a date key to each participant's attending flag.
type Table map[string]map[string]bool

// Option configures a Board.
type Option func(*Board)

// WithClock sets the clock used to generate the window.
func WithClock(now func() time.Time) Option {
	return func(b *Board) { b.now = now }
}

// Board is the availability state of one group.
type Board struct {
	store SelectionStore
	now   func() time.Time

	group *models.Group
	days  []models.CalendarDay
	index map[string]int
	table Table
}

// New creates an empty board backed by store.
func New(store SelectionStore, opts ...Option) *Board {
	b := &Board{store: store, now: time.Now}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

// Initialize generates the window starting today and sets every
// participant's flag to false on every day, discarding previous state.
func (b *Board) Initialize(group *models.Group) {
	b.group = group
	b.days = calendar.Generate(b.now())
	b.index = make(map[string]int, len(b.days))
	b.table = make(Table, len(b.days))

	for i, day := range b.days {
		b.index[day.DateKey] = i
		flags := make(map[string]bool, len(group.Participants))
		for _, p := range group.Participants {
			flags[p] = false
		}
		b.table[day.DateKey] = flags
	}
}

// Load initializes the board and overlays the group's persisted selections.
// Selections for days outside the window or for names no longer on the
// roster are ignored. Store failures leave the affected flags false.
func (b *Board) Load(ctx context.Context, group *models.Group) {
	b.Initialize(group)

	applied := 0
	for _, sel := range b.store.FetchSelections(ctx, group.ID) {
		flags, ok := b.table[sel.DateKey]
		if !ok {
			continue
		}
		if _, ok := flags[sel.PlayerName]; !ok {
			continue
		}
		flags[sel.PlayerName] = sel.IsSelected
		applied++
	}

	slog.Debug("Board loaded",
		"group_id", group.ID,
		"first_day", b.days[0].DateKey,
		"applied", applied,
	)
}

// Toggle flips a participant's flag on a day and persists it. When the
// store refuses the write the flag is restored and ErrPersistFailed is
// returned. It returns the flag's value after the call.
func (b *Board) Toggle(ctx context.Context, dateKey, participant string) (bool, error) {
	if b.group == nil {
		return false, ErrNoGroup
	}
	flags, ok := b.table[dateKey]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownDay, dateKey)
	}
	current, ok := flags[participant]
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownParticipant, participant)
	}

	next := !current
	flags[participant] = next

	if !b.store.UpsertSelection(ctx, b.group.ID, dateKey, participant, next) {
		flags[participant] = current
		slog.Warn("Selection rolled back",
			"group_id", b.group.ID,
			"date_key", dateKey,
			"player", participant,
		)
		return current, ErrPersistFailed
	}
	return next, nil
}
