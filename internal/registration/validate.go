// Package registration holds the rules of the group registration form.
package registration

import (
	"strings"
	"time"
	"unicode/utf8"

	"github.com/mmynk/quando/internal/models"
)

// MinNameLength is the minimum number of characters of a trimmed group name.
const MinNameLength = 3

// requiredRows is the number of leading participant rows that must be filled.
const requiredRows = 2

// Errors holds the user-facing messages of one validation pass. Empty strings
// mean no error.
type Errors struct {
	GroupName    string   `json:"group_name,omitempty"`
	Participants string   `json:"participants,omitempty"`
	Rows         []string `json:"rows,omitempty"`
}

// Empty reports whether no field has an error.
func (e Errors) Empty() bool {
	if e.GroupName != "" || e.Participants != "" {
		return false
	}
	for _, r := range e.Rows {
		if r != "" {
			return false
		}
	}
	return true
}

// Summary joins all messages into one line, for transports without fields.
func (e Errors) Summary() string {
	var parts []string
	if e.GroupName != "" {
		parts = append(parts, e.GroupName)
	}
	if e.Participants != "" {
		parts = append(parts, e.Participants)
	}
	for _, r := range e.Rows {
		if r != "" {
			parts = append(parts, r)
			break
		}
	}
	return strings.Join(parts, "; ")
}

// Validate checks a group name and participant rows. It never fails: every
// problem is reported through the returned Errors, which has one Rows entry
// per input row.
func Validate(name string, participants []string) (bool, Errors) {
	p := newPrinter()
	errs := Errors{Rows: make([]string, len(participants))}
	valid := true

	trimmed := strings.TrimSpace(name)
	switch {
	case trimmed == "":
		errs.GroupName = p.Sprintf(msgNameRequired)
		valid = false
	case utf8.RuneCountInString(trimmed) < MinNameLength:
		errs.GroupName = p.Sprintf(msgNameTooShort, MinNameLength)
		valid = false
	}

	clean := CleanParticipants(participants)
	if len(clean) < models.MinParticipants {
		errs.Participants = p.Sprintf(msgParticipantsTooFew, models.MinParticipants)
		valid = false
	}

	for i, participant := range participants {
		if i < requiredRows && strings.TrimSpace(participant) == "" {
			errs.Rows[i] = p.Sprintf(msgParticipantRequired)
			valid = false
		}
	}

	seen := make(map[string]bool, len(clean))
	for _, participant := range clean {
		folded := strings.ToLower(participant)
		if seen[folded] {
			errs.Participants = p.Sprintf(msgParticipantsUnique)
			valid = false
			break
		}
		seen[folded] = true
	}

	// Blank rows count too: the form never shows more than the maximum.
	if len(participants) > models.MaxParticipants {
		errs.Participants = p.Sprintf(msgParticipantsTooMany, models.MaxParticipants)
		valid = false
	}

	return valid, errs
}

// CleanParticipants trims every name and drops the blank ones.
func CleanParticipants(participants []string) []string {
	clean := make([]string, 0, len(participants))
	for _, participant := range participants {
		if trimmed := strings.TrimSpace(participant); trimmed != "" {
			clean = append(clean, trimmed)
		}
	}
	return clean
}

// Build validates the input and, when valid, returns the group it describes
// with a fresh ID, the trimmed name and the cleaned participants. The slug
// is left for the caller to assign.
func Build(name string, participants []string, now time.Time) (*models.Group, Errors, bool) {
	valid, errs := Validate(name, participants)
	if !valid {
		return nil, errs, false
	}
	return &models.Group{
		ID:           models.NewGroupID(),
		Name:         strings.TrimSpace(name),
		Participants: CleanParticipants(participants),
		CreatedAt:    now,
		UpdatedAt:    now,
	}, errs, true
}
