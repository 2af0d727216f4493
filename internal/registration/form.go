package registration

import (
	"sync"
	"time"

	"github.com/mmynk/quando/internal/models"
)

// DebounceDelay is how long text edits wait before re-validating.
const DebounceDelay = 300 * time.Millisecond

// Form is the state of the registration form. Text edits re-validate after
// DebounceDelay through a single timer that is replaced on every edit;
// adding or removing rows re-validates immediately.
//
// Form is safe for concurrent use since validation may run on the timer's
// goroutine.
type Form struct {
	mu           sync.Mutex
	name         string
	participants []string
	valid        bool
	errs         Errors
	timer        *time.Timer
	delay        time.Duration
	onValidate   func(valid bool, errs Errors)
}

// FormOption configures a Form.
type FormOption func(*Form)

// WithDebounce overrides DebounceDelay.
func WithDebounce(d time.Duration) FormOption {
	return func(f *Form) { f.delay = d }
}

// OnValidate registers a callback invoked after every validation pass.
func OnValidate(fn func(valid bool, errs Errors)) FormOption {
	return func(f *Form) { f.onValidate = fn }
}

// NewForm returns an empty form with the minimum number of participant rows,
// already validated.
func NewForm(opts ...FormOption) *Form {
	f := &Form{
		participants: make([]string, models.MinParticipants),
		delay:        DebounceDelay,
	}
	for _, opt := range opts {
		opt(f)
	}
	f.validate()
	return f
}

// SetName updates the group name and schedules validation.
func (f *Form) SetName(name string) {
	f.mu.Lock()
	f.name = name
	f.scheduleLocked()
	f.mu.Unlock()
}

// SetParticipant updates one participant row and schedules validation.
// Out of range rows are ignored.
func (f *Form) SetParticipant(i int, name string) {
	f.mu.Lock()
	if i >= 0 && i < len(f.participants) {
		f.participants[i] = name
		f.scheduleLocked()
	}
	f.mu.Unlock()
}

// AddParticipant appends an empty row unless the form already has
// models.MaxParticipants rows.
func (f *Form) AddParticipant() bool {
	f.mu.Lock()
	if len(f.participants) >= models.MaxParticipants {
		f.mu.Unlock()
		return false
	}
	f.participants = append(f.participants, "")
	f.mu.Unlock()
	f.validate()
	return true
}

// RemoveParticipant removes row i unless the form is down to
// models.MinParticipants rows.
func (f *Form) RemoveParticipant(i int) bool {
	f.mu.Lock()
	if len(f.participants) <= models.MinParticipants || i < 0 || i >= len(f.participants) {
		f.mu.Unlock()
		return false
	}
	f.participants = append(f.participants[:i], f.participants[i+1:]...)
	f.mu.Unlock()
	f.validate()
	return true
}

// Valid returns the outcome of the last validation pass.
func (f *Form) Valid() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.valid
}

// Errors returns the messages of the last validation pass.
func (f *Form) Errors() Errors {
	f.mu.Lock()
	defer f.mu.Unlock()
	errs := f.errs
	errs.Rows = append([]string(nil), f.errs.Rows...)
	return errs
}

// Rows returns a copy of the participant rows.
func (f *Form) Rows() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.participants...)
}

// Submit cancels any pending validation, validates immediately and, when the
// form is valid, returns the group it describes. The slug is left for the
// caller to assign.
func (f *Form) Submit(now time.Time) (*models.Group, bool) {
	f.stopTimer()

	f.mu.Lock()
	group, errs, valid := Build(f.name, f.participants, now)
	f.valid, f.errs = valid, errs
	cb := f.onValidate
	f.mu.Unlock()

	if cb != nil {
		cb(valid, errs)
	}
	return group, valid
}

// Close cancels any pending validation.
func (f *Form) Close() {
	f.stopTimer()
}

func (f *Form) stopTimer() {
	f.mu.Lock()
	if f.timer != nil {
		f.timer.Stop()
		f.timer = nil
	}
	f.mu.Unlock()
}

func (f *Form) scheduleLocked() {
	if f.timer != nil {
		f.timer.Stop()
	}
	f.timer = time.AfterFunc(f.delay, func() { f.validate() })
}

func (f *Form) validate() bool {
	f.mu.Lock()
	valid, errs := Validate(f.name, f.participants)
	f.valid, f.errs = valid, errs
	cb := f.onValidate
	f.mu.Unlock()

	if cb != nil {
		cb(valid, errs)
	}
	return valid
}
