package models

import (
	"crypto/rand"
	"time"
)

const (
	// MinParticipants is the smallest roster a group can be registered with.
	MinParticipants = 2

	// MaxParticipants is the largest roster a group can be registered with.
	MaxParticipants = 8

	// DefaultGroupSlug addresses the demo group that exists without registration.
	DefaultGroupSlug = "default"

	groupIDLength   = 8
	groupIDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
)

// Group represents a named participant list sharing one availability calendar.
// A group is created once at registration and is immutable afterwards.
type Group struct {
	// ID is the opaque identifier for the group (8 lowercase alphanumerics).
	ID string `json:"id"`

	// Name is the display name of the group (e.g., "La Compagnia dell'Anello").
	Name string `json:"name"`

	// Slug is the URL-safe identifier, unique across all known groups.
	Slug string `json:"slug"`

	// Participants is the ordered list of participant names.
	Participants []string `json:"participants"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasParticipant reports whether name is on the group's roster.
func (g *Group) HasParticipant(name string) bool {
	for _, p := range g.Participants {
		if p == name {
			return true
		}
	}
	return false
}

// DefaultGroup returns the demo group served for the "default" slug when no
// group with that slug was persisted. It is never written to storage.
func DefaultGroup(now time.Time) *Group {
	return &Group{
		ID:           DefaultGroupSlug,
		Name:         "Gruppo Default",
		Slug:         DefaultGroupSlug,
		Participants: []string{"Raffaele", "Alessandro", "Federico", "Samuele", "Vincenzo"},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}

// NewGroupID returns a random 8 character identifier drawn from [a-z0-9].
func NewGroupID() string {
	return RandomToken(groupIDLength)
}

// RandomToken returns n random characters drawn from [a-z0-9].
func RandomToken(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand never fails on supported platforms
		panic(err)
	}
	for i, b := range buf {
		buf[i] = groupIDAlphabet[int(b)%len(groupIDAlphabet)]
	}
	return string(buf)
}
