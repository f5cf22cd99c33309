package domain

import (
	"time"

	"github.com/google/uuid"
)

// PersonID uniquely identifies an attendee within the system.
// It is a thin wrapper around uuid.UUID to provide type safety at the domain layer.
type PersonID uuid.UUID

func (id PersonID) String() string { return uuid.UUID(id).String() }

// Person represents an event attendee who may receive a referral credit.
// Email is the unique key, compared case-insensitively. The optional contact
// and survey fields are empty strings when absent.
type Person struct {
	// ID is the unique identifier of the person.
	ID PersonID `json:"id"`

	// FirstName is the person's first name. Mandatory on import.
	FirstName string `json:"firstName"`
	// LastName is the person's last name. Mandatory on import.
	LastName string `json:"lastName"`
	// Email is the person's address and the ledger's unique key for people.
	Email string `json:"email"`

	// LinkedIn is an optional profile link collected at registration.
	LinkedIn string `json:"linkedin,omitempty"`
	// Twitter is an optional handle collected at registration.
	Twitter string `json:"twitter,omitempty"`
	// Drink is an optional drink preference from the registration survey.
	Drink string `json:"drink,omitempty"`
	// Food is an optional snack preference from the registration survey.
	Food string `json:"food,omitempty"`
	// WorkingOn is an optional free-form answer from the registration survey.
	WorkingOn string `json:"workingOn,omitempty"`

	// SentCredits is set when one of the person's credits reaches sent.
	SentCredits bool `json:"sentCredits"`

	// CreatedAt is when the person was imported.
	CreatedAt time.Time `json:"createdAt"`
}
