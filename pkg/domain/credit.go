package domain

import (
	"time"

	"github.com/google/uuid"
)

// CreditID uniquely identifies a referral credit in the ledger.
// It wraps uuid.UUID to provide type safety at the domain layer.
type CreditID uuid.UUID

func (id CreditID) String() string { return uuid.UUID(id).String() }

// CreditStatus represents the lifecycle state of a credit.
//
// The only legal transitions are:
//
//	available -> assigned -> sent
//	assigned  -> available (revert after a failed delivery)
//
// A credit never skips assigned on the way to sent, and revert is the only
// backward edge. The redeemed state exists for records whose code turned out
// to be spent by the external service; the engine never produces it through
// the transition operations.
type CreditStatus string

const (
	// CreditStatusAvailable indicates the credit can still be allocated.
	CreditStatusAvailable CreditStatus = "available"
	// CreditStatusAssigned indicates the credit is reserved for a person
	// pending delivery confirmation.
	CreditStatusAssigned CreditStatus = "assigned"
	// CreditStatusSent indicates delivery of the credit was confirmed.
	CreditStatusSent CreditStatus = "sent"
	// CreditStatusRedeemed indicates the external service reports the code
	// as already spent.
	CreditStatusRedeemed CreditStatus = "redeemed"
)

// DefaultCreditAmount is used when the external service confirms a code as
// available but omits the amount from its response metadata.
const DefaultCreditAmount = 20

// Credit represents one referral credit tracked by the ledger. Code and URL
// are each unique across the ledger and the amount is fixed at creation.
type Credit struct {
	// ID is the unique identifier of the credit.
	ID CreditID `json:"id"`

	// URL is the referral URL the credit was discovered at.
	URL string `json:"url"`
	// Code is the referral code extracted from URL.
	Code string `json:"code"`
	// Amount is the credit value in dollars, fixed at creation.
	Amount int `json:"amount"`
	// Status is the current lifecycle state of the credit.
	Status CreditStatus `json:"status"`

	// AssignedTo identifies the person holding the reservation, if any.
	AssignedTo *PersonID `json:"assignedTo,omitempty"`

	// CheckedAt is when the probe last confirmed the code.
	CheckedAt time.Time `json:"checkedAt"`
	// SentAt is when delivery was confirmed; zero value means not sent.
	SentAt time.Time `json:"sentAt,omitempty"`
	// CreatedAt is when the credit was first recorded. Insertion order is
	// the allocation order.
	CreatedAt time.Time `json:"createdAt"`
}
