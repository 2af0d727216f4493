package registration

import (
	"testing"
	"time"

	"github.com/mmynk/quando/internal/models"
)

func TestFormStartsInvalid(t *testing.T) {
	f := NewForm()
	defer f.Close()

	if f.Valid() {
		t.Error("expected empty form to be invalid")
	}
	if len(f.Rows()) != models.MinParticipants {
		t.Errorf("expected %d rows, got %d", models.MinParticipants, len(f.Rows()))
	}
	if f.Errors().GroupName == "" {
		t.Error("expected group name error on empty form")
	}
}

func TestFormDebouncesTextEdits(t *testing.T) {
	passes := make(chan bool, 16)
	f := NewForm(
		WithDebounce(50*time.Millisecond),
		OnValidate(func(valid bool, _ Errors) { passes <- valid }),
	)
	defer f.Close()
	<-passes // initial validation

	f.SetName("D")
	f.SetName("Dr")
	f.SetName("Draghi")
	f.SetParticipant(0, "Alice")
	f.SetParticipant(1, "Bob")

	select {
	case valid := <-passes:
		if !valid {
			t.Errorf("expected form to be valid after edits, errors %+v", f.Errors())
		}
	case <-time.After(2 * time.Second):
		t.Fatal("debounced validation never ran")
	}

	select {
	case <-passes:
		t.Error("expected a single validation pass for a burst of edits")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestFormStructuralEditsValidateImmediately(t *testing.T) {
	f := NewForm(WithDebounce(time.Hour))
	defer f.Close()

	f.SetName("Draghi")
	f.SetParticipant(0, "Alice")
	f.SetParticipant(1, "Bob")
	if f.Valid() {
		t.Fatal("text edits should not validate before the debounce delay")
	}

	if !f.AddParticipant() {
		t.Fatal("AddParticipant failed")
	}
	if !f.Valid() {
		t.Errorf("expected valid form after structural edit, errors %+v", f.Errors())
	}

	f.SetParticipant(2, "bob")
	if !f.RemoveParticipant(0) {
		t.Fatal("RemoveParticipant failed")
	}
	if f.Valid() {
		t.Errorf("expected rows %q to be rejected as duplicates", f.Rows())
	}
}

func TestFormRowLimits(t *testing.T) {
	f := NewForm()
	defer f.Close()

	if f.RemoveParticipant(0) {
		t.Error("expected RemoveParticipant to refuse going below the minimum")
	}
	for i := models.MinParticipants; i < models.MaxParticipants; i++ {
		if !f.AddParticipant() {
			t.Fatalf("AddParticipant failed at row %d", i)
		}
	}
	if f.AddParticipant() {
		t.Error("expected AddParticipant to refuse going above the maximum")
	}
	if len(f.Rows()) != models.MaxParticipants {
		t.Errorf("expected %d rows, got %d", models.MaxParticipants, len(f.Rows()))
	}
}

func TestFormSubmit(t *testing.T) {
	f := NewForm(WithDebounce(time.Hour))
	defer f.Close()

	if _, ok := f.Submit(time.Now()); ok {
		t.Fatal("expected empty form submission to fail")
	}

	f.SetName("  La Compagnia  ")
	f.SetParticipant(0, " Frodo ")
	f.SetParticipant(1, "Sam")
	f.AddParticipant()

	now := time.Date(2026, 10, 19, 12, 0, 0, 0, time.UTC)
	group, ok := f.Submit(now)
	if !ok {
		t.Fatalf("expected submission to succeed, errors %+v", f.Errors())
	}
	if group.Name != "La Compagnia" {
		t.Errorf("name: expected 'La Compagnia', got %q", group.Name)
	}
	if len(group.Participants) != 2 || group.Participants[0] != "Frodo" {
		t.Errorf("participants: unexpected %q", group.Participants)
	}
	if len(group.ID) != 8 {
		t.Errorf("expected 8 character id, got %q", group.ID)
	}
	if !group.CreatedAt.Equal(now) {
		t.Errorf("CreatedAt: expected %v, got %v", now, group.CreatedAt)
	}
}
