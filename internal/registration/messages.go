package registration

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Message keys for validation errors.
const (
	msgNameRequired        = "registration.name.required"
	msgNameTooShort        = "registration.name.too_short"
	msgParticipantsTooFew  = "registration.participants.too_few"
	msgParticipantsTooMany = "registration.participants.too_many"
	msgParticipantsUnique  = "registration.participants.unique"
	msgParticipantRequired = "registration.participant.required"
)

// Locale is the language validation messages are rendered in.
var Locale = language.Italian

func init() {
	for key, msg := range map[string]string{
		msgNameRequired:        "Il nome del gruppo è obbligatorio",
		msgNameTooShort:        "Il nome del gruppo deve avere almeno %d caratteri",
		msgParticipantsTooFew:  "Servono almeno %d partecipanti",
		msgParticipantsTooMany: "Massimo %d partecipanti",
		msgParticipantsUnique:  "I nomi dei partecipanti devono essere unici",
		msgParticipantRequired: "Nome obbligatorio",
	} {
		if err := message.SetString(Locale, key, msg); err != nil {
			panic(err)
		}
	}
}

func newPrinter() *message.Printer {
	return message.NewPrinter(Locale)
}
