// Package storage defines the ledger interface the application relies on.
// It abstracts persistence operations so that the networked PostgreSQL
// backend and the local flat-file backend can provide interchangeable
// implementations: identical operation sequences on either backend must
// produce identical observable ledger state.
//
//go:generate mockgen -package mockstorage -source=interface.go -destination=mock/mockstorage.go *
package storage

import (
	"context"
	"creditor/pkg/domain"
)

// CreditStorage defines the credit half of the ledger: discovery, allocation
// and the status state machine.
type CreditStorage interface {
	// AddCreditIfNotExists records a newly discovered credit as available
	// unless a record with a matching code OR a matching url already exists.
	// It is idempotent against re-scans.
	AddCreditIfNotExists(ctx context.Context, url, code string, amount int) (CreditAdd, error)
	// NextAvailableCredit returns the first credit with status available in
	// stable insertion order, or nil when the ledger is exhausted. It never
	// returns a record that is assigned, sent or redeemed.
	NextAvailableCredit(ctx context.Context) (*domain.Credit, error)
	// AssignCredit reserves an available credit for a person
	// (available -> assigned). ErrNotFound when the credit does not exist,
	// ErrInvalidTransition when its status is not available.
	AssignCredit(ctx context.Context, creditID domain.CreditID, personID domain.PersonID) error
	// MarkCreditSent confirms delivery of an assigned credit
	// (assigned -> sent), records the send time, and flags the person as
	// having received credits.
	MarkCreditSent(ctx context.Context, creditID domain.CreditID, personID domain.PersonID) error
	// RevertCreditToAvailable releases a reservation after a failed delivery
	// (assigned -> available) and clears the assignee. This is the only
	// backward transition in the state machine.
	RevertCreditToAvailable(ctx context.Context, creditID domain.CreditID) error
	// CreditByID fetches a credit by its ID. Returns nil when not found.
	CreditByID(ctx context.Context, creditID domain.CreditID) (*domain.Credit, error)
	// Credits returns all credit records in insertion order.
	Credits(ctx context.Context) ([]domain.Credit, error)
	// TallyCredits scans the whole ledger and returns amount sums and record
	// counts grouped by status.
	TallyCredits(ctx context.Context) (Tally, error)
}

// PersonStorage defines the people half of the ledger.
type PersonStorage interface {
	// AddPerson stores a new person unless one with the same email already
	// exists (compared case-insensitively); duplicates are skipped and the
	// original record is retained.
	AddPerson(ctx context.Context, person domain.Person) (PersonAdd, error)
	// PersonByID fetches a person by ID. Returns nil when not found.
	PersonByID(ctx context.Context, personID domain.PersonID) (*domain.Person, error)
	// PersonByEmail fetches a person by email, compared case-insensitively.
	// Returns nil when not found.
	PersonByEmail(ctx context.Context, email string) (*domain.Person, error)
	// People returns all person records in insertion order.
	People(ctx context.Context) ([]domain.Person, error)
}

// Ledger is the authoritative store of credits and people. Both backends
// implement exactly this operation set.
type Ledger interface {
	CreditStorage
	PersonStorage

	// Close releases any resources held by the ledger implementation (e.g.
	// the underlying connection pool). After Close, the instance should not
	// be used.
	Close() error
}
