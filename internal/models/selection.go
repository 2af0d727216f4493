package models

import "time"

// Selection is the persisted "will attend" flag for one participant on one day.
// It is uniquely keyed by (GroupID, DateKey, PlayerName); writes are upserts.
type Selection struct {
	GroupID string `json:"group_id"`

	// DateKey is the day in YYYY-MM-DD form.
	DateKey string `json:"date_key"`

	PlayerName string `json:"player_name"`
	IsSelected bool   `json:"is_selected"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
