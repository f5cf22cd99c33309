// Package allocator coordinates credit allocation: it reserves the next
// available credit for a person, delivers the notification email, and either
// confirms or reverts the reservation depending on the delivery outcome.
package allocator

import (
	"context"

	"creditor/pkg/domain"
)

//go:generate mockgen -package mockallocator -source=interface.go -destination=mock/mockallocator.go *

// Receipt describes a completed allocation.
type Receipt struct {
	// Credit is the credit that was delivered, in its post-send state.
	Credit domain.Credit
	// Person is the recipient, flagged as having received credits.
	Person domain.Person
}

// Allocator assigns credits to people and delivers them by email.
type Allocator interface {
	// SendCreditTo reserves the next available credit for the given person,
	// emails it, and confirms the reservation. On delivery failure the
	// reservation is released so the credit can be offered to someone else.
	//
	// Returns serrors.ErrNotFound when the person does not exist,
	// serrors.ErrNoCredits when the ledger has no available credit, and
	// serrors.ErrDeliveryFailed when the email could not be sent.
	SendCreditTo(ctx context.Context, personID domain.PersonID) (*Receipt, error)
}
