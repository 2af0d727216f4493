// Package api defines the Quando RPC messages and the Connect handlers and
// clients of its two services.
package api

import "time"

// Group is the wire form of a group.
type Group struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Slug         string    `json:"slug"`
	Participants []string  `json:"participants"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// FieldErrors carries registration form messages. Rows has one entry per
// submitted participant row.
type FieldErrors struct {
	GroupName    string   `json:"group_name,omitempty"`
	Participants string   `json:"participants,omitempty"`
	Rows         []string `json:"rows,omitempty"`
}

// Day is one day of a board with its derived state.
type Day struct {
	DateKey       string          `json:"date_key"`
	DayName       string          `json:"day_name"`
	MonthName     string          `json:"month_name"`
	DayNumber     int             `json:"day_number"`
	IsToday       bool            `json:"is_today"`
	IsWeekStart   bool            `json:"is_week_start"`
	SelectedCount int             `json:"selected_count"`
	FullySelected bool            `json:"fully_selected"`
	Leds          []bool          `json:"leds"`
	Selections    map[string]bool `json:"selections"`
}

// Board is a group's availability over the current window.
type Board struct {
	Group *Group `json:"group"`
	Days  []Day  `json:"days"`

	// ClosestFullDateKey is the earliest day everyone is available, or empty.
	ClosestFullDateKey string `json:"closest_full_date_key,omitempty"`
}

type CreateGroupRequest struct {
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
}

type CreateGroupResponse struct {
	Group *Group `json:"group"`

	// Stored is false when the primary store refused the group and only the
	// local fallback holds it.
	Stored bool `json:"stored"`
}

type ValidateGroupRequest struct {
	Name         string   `json:"name"`
	Participants []string `json:"participants"`
}

type ValidateGroupResponse struct {
	Valid  bool        `json:"valid"`
	Errors FieldErrors `json:"errors"`
}

type GetGroupRequest struct {
	Slug string `json:"slug"`
}

type GetGroupResponse struct {
	Group *Group `json:"group"`
}

type GetBoardRequest struct {
	Slug string `json:"slug"`
}

type GetBoardResponse struct {
	Board *Board `json:"board"`
}

type ToggleSelectionRequest struct {
	Slug        string `json:"slug"`
	DateKey     string `json:"date_key"`
	Participant string `json:"participant"`
}

type ToggleSelectionResponse struct {
	Board *Board `json:"board"`

	// Selected is the participant's flag after the toggle.
	Selected bool `json:"selected"`
}
