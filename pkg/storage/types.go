package storage

import "creditor/pkg/domain"

// CreditAdd reports the outcome of AddCreditIfNotExists.
type CreditAdd struct {
	// Added is true when a new record was inserted.
	Added bool
	// Existing is true when a record with the same code or url was already
	// present and the insert was skipped.
	Existing bool
	// ID is the identifier of the inserted record; zero when skipped.
	ID domain.CreditID
}

// PersonAdd reports the outcome of AddPerson.
type PersonAdd struct {
	// Skipped is true when a person with the same email (case-insensitive)
	// already existed and the original record was kept.
	Skipped bool
	// ID identifies the stored person: the new record when inserted, the
	// pre-existing one when skipped.
	ID domain.PersonID
}

// StatusTally holds the aggregate for one credit status.
type StatusTally struct {
	// Amount is the sum of credit amounts in this status.
	Amount int
	// Count is the number of credit records in this status.
	Count int
}

// Tally is a full-scan aggregate of the credit ledger: amount sums and record
// counts grouped by status. Total always equals the sum over all statuses.
type Tally struct {
	// Total is the sum of amounts over every record regardless of status.
	Total int
	// TotalCount is the number of records regardless of status.
	TotalCount int

	// Available aggregates records with status available.
	Available StatusTally
	// Assigned aggregates records with status assigned.
	Assigned StatusTally
	// Sent aggregates records with status sent.
	Sent StatusTally
	// Redeemed aggregates records with status redeemed.
	Redeemed StatusTally
}

// TallyOf folds a list of credits into a Tally. Both backends use it so their
// aggregates cannot drift apart.
func TallyOf(credits []domain.Credit) Tally {
	var t Tally
	for _, c := range credits {
		t.Total += c.Amount
		t.TotalCount++

		switch c.Status {
		case domain.CreditStatusAvailable:
			t.Available.Amount += c.Amount
			t.Available.Count++
		case domain.CreditStatusAssigned:
			t.Assigned.Amount += c.Amount
			t.Assigned.Count++
		case domain.CreditStatusSent:
			t.Sent.Amount += c.Amount
			t.Sent.Count++
		case domain.CreditStatusRedeemed:
			t.Redeemed.Amount += c.Amount
			t.Redeemed.Count++
		}
	}

	return t
}
