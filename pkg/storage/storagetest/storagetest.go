// Package storagetest contains the property suite every storage.Ledger
// implementation must pass. Both backends run the same suite, which is the
// portability contract of the ledger: identical operation sequences must
// produce identical observable state regardless of backend.
package storagetest

import (
	"context"
	"creditor/pkg/domain"
	"creditor/pkg/storage"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

// Factory opens a fresh, empty ledger for one subtest. Cleanup should be
// registered on t by the factory itself.
type Factory func(t *testing.T) storage.Ledger

func addPerson(t *testing.T, ledger storage.Ledger, email string) domain.PersonID {
	t.Helper()

	res, err := ledger.AddPerson(context.Background(), domain.Person{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
	})
	require.NoError(t, err)
	require.False(t, res.Skipped)

	return res.ID
}

func addCredit(t *testing.T, ledger storage.Ledger, code string, amount int) domain.CreditID {
	t.Helper()

	res, err := ledger.AddCreditIfNotExists(context.Background(),
		fmt.Sprintf("https://cursor.com/referral?code=%s", code), code, amount)
	require.NoError(t, err)
	require.True(t, res.Added)

	return res.ID
}

// Run executes the full property suite against ledgers produced by open.
func Run(t *testing.T, open Factory) {
	t.Helper()
	ctx := context.Background()

	t.Run("AddCreditIsIdempotent", func(t *testing.T) {
		ledger := open(t)

		first, err := ledger.AddCreditIfNotExists(ctx, "https://cursor.com/referral?code=AAA111", "AAA111", 20)
		require.NoError(t, err)
		require.True(t, first.Added)
		require.False(t, first.Existing)

		second, err := ledger.AddCreditIfNotExists(ctx, "https://cursor.com/referral?code=AAA111", "AAA111", 20)
		require.NoError(t, err)
		require.False(t, second.Added)
		require.True(t, second.Existing)

		credits, err := ledger.Credits(ctx)
		require.NoError(t, err)
		require.Len(t, credits, 1, "exactly one record must persist for the code")
	})

	t.Run("AddCreditRejectsDuplicateURL", func(t *testing.T) {
		ledger := open(t)

		_, err := ledger.AddCreditIfNotExists(ctx, "https://cursor.com/referral?code=BBB222", "BBB222", 20)
		require.NoError(t, err)

		// same url, different code
		res, err := ledger.AddCreditIfNotExists(ctx, "https://cursor.com/referral?code=BBB222", "CCC333", 20)
		require.NoError(t, err)
		require.False(t, res.Added)
		require.True(t, res.Existing)
	})

	t.Run("NextAvailablePreservesInsertionOrder", func(t *testing.T) {
		ledger := open(t)

		first := addCredit(t, ledger, "ORDER1", 20)
		addCredit(t, ledger, "ORDER2", 20)

		next, err := ledger.NextAvailableCredit(ctx)
		require.NoError(t, err)
		require.NotNil(t, next)
		require.Equal(t, first, next.ID)
	})

	t.Run("NextAvailableSkipsReservedAndSent", func(t *testing.T) {
		ledger := open(t)
		person := addPerson(t, ledger, "skip@example.com")

		first := addCredit(t, ledger, "SKIP1", 20)
		second := addCredit(t, ledger, "SKIP2", 20)

		require.NoError(t, ledger.AssignCredit(ctx, first, person))

		next, err := ledger.NextAvailableCredit(ctx)
		require.NoError(t, err)
		require.NotNil(t, next)
		require.Equal(t, second, next.ID, "assigned credits must never be returned")

		require.NoError(t, ledger.AssignCredit(ctx, second, person))

		next, err = ledger.NextAvailableCredit(ctx)
		require.NoError(t, err)
		require.Nil(t, next, "exhausted ledger must return nil")
	})

	t.Run("AssignRequiresAvailable", func(t *testing.T) {
		ledger := open(t)
		person := addPerson(t, ledger, "assign@example.com")
		credit := addCredit(t, ledger, "ASSIGN1", 20)

		require.NoError(t, ledger.AssignCredit(ctx, credit, person))
		require.ErrorIs(t, ledger.AssignCredit(ctx, credit, person), storage.ErrInvalidTransition)

		missing := domain.CreditID{0xde, 0xad}
		require.ErrorIs(t, ledger.AssignCredit(ctx, missing, person), storage.ErrNotFound)
	})

	t.Run("MarkSentFlagsPerson", func(t *testing.T) {
		ledger := open(t)
		person := addPerson(t, ledger, "sent@example.com")
		credit := addCredit(t, ledger, "SENT1", 20)

		require.NoError(t, ledger.AssignCredit(ctx, credit, person))
		require.NoError(t, ledger.MarkCreditSent(ctx, credit, person))

		stored, err := ledger.CreditByID(ctx, credit)
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.Equal(t, domain.CreditStatusSent, stored.Status)
		require.False(t, stored.SentAt.IsZero(), "sent_at must be recorded")
		require.NotNil(t, stored.AssignedTo)
		require.Equal(t, person, *stored.AssignedTo)

		p, err := ledger.PersonByID(ctx, person)
		require.NoError(t, err)
		require.NotNil(t, p)
		require.True(t, p.SentCredits)
	})

	t.Run("MarkSentRequiresAssigned", func(t *testing.T) {
		ledger := open(t)
		person := addPerson(t, ledger, "sent2@example.com")
		credit := addCredit(t, ledger, "SENT2", 20)

		// never assigned: sent must be unreachable without the reservation step
		require.ErrorIs(t, ledger.MarkCreditSent(ctx, credit, person), storage.ErrInvalidTransition)
	})

	t.Run("RevertLaw", func(t *testing.T) {
		ledger := open(t)
		person := addPerson(t, ledger, "revert@example.com")
		credit := addCredit(t, ledger, "REVERT1", 20)

		require.NoError(t, ledger.AssignCredit(ctx, credit, person))
		require.NoError(t, ledger.RevertCreditToAvailable(ctx, credit))

		stored, err := ledger.CreditByID(ctx, credit)
		require.NoError(t, err)
		require.NotNil(t, stored)
		require.Equal(t, domain.CreditStatusAvailable, stored.Status)
		require.Nil(t, stored.AssignedTo, "revert must clear the assignee")

		p, err := ledger.PersonByID(ctx, person)
		require.NoError(t, err)
		require.NotNil(t, p)
		require.False(t, p.SentCredits, "a failed delivery must leave the person unmodified")

		next, err := ledger.NextAvailableCredit(ctx)
		require.NoError(t, err)
		require.NotNil(t, next)
		require.Equal(t, credit, next.ID, "a reverted credit is allocatable again")
	})

	t.Run("RevertRequiresAssigned", func(t *testing.T) {
		ledger := open(t)
		credit := addCredit(t, ledger, "REVERT2", 20)

		require.ErrorIs(t, ledger.RevertCreditToAvailable(ctx, credit), storage.ErrInvalidTransition)
	})

	t.Run("TallyScenario", func(t *testing.T) {
		ledger := open(t)
		person := addPerson(t, ledger, "tally@example.com")

		first := addCredit(t, ledger, "TALLY1", 50)
		addCredit(t, ledger, "TALLY2", 25)
		addCredit(t, ledger, "TALLY3", 10)

		require.NoError(t, ledger.AssignCredit(ctx, first, person))
		require.NoError(t, ledger.MarkCreditSent(ctx, first, person))

		tally, err := ledger.TallyCredits(ctx)
		require.NoError(t, err)
		require.Equal(t, 85, tally.Total)
		require.Equal(t, 35, tally.Available.Amount)
		require.Equal(t, 2, tally.Available.Count)
		require.Equal(t, 1, tally.Sent.Count)
		require.Equal(t, 50, tally.Sent.Amount)

		// tally invariants hold for the whole sequence
		require.Equal(t, tally.Total,
			tally.Available.Amount+tally.Assigned.Amount+tally.Sent.Amount+tally.Redeemed.Amount)
		require.Equal(t, tally.TotalCount,
			tally.Available.Count+tally.Assigned.Count+tally.Sent.Count+tally.Redeemed.Count)
	})

	t.Run("DuplicateEmailKeepsOriginal", func(t *testing.T) {
		ledger := open(t)

		first, err := ledger.AddPerson(ctx, domain.Person{
			FirstName: "John",
			LastName:  "Doe",
			Email:     "john@example.com",
		})
		require.NoError(t, err)
		require.False(t, first.Skipped)

		second, err := ledger.AddPerson(ctx, domain.Person{
			FirstName: "Johnny",
			LastName:  "Other",
			Email:     "JOHN@Example.COM",
		})
		require.NoError(t, err)
		require.True(t, second.Skipped)
		require.Equal(t, first.ID, second.ID)

		people, err := ledger.People(ctx)
		require.NoError(t, err)
		require.Len(t, people, 1)
		require.Equal(t, "John", people[0].FirstName, "the original record must be retained")

		byEmail, err := ledger.PersonByEmail(ctx, "John@Example.com")
		require.NoError(t, err)
		require.NotNil(t, byEmail)
		require.Equal(t, first.ID, byEmail.ID)
	})

	t.Run("LookupMissingReturnsNil", func(t *testing.T) {
		ledger := open(t)

		credit, err := ledger.CreditByID(ctx, domain.CreditID{0x01})
		require.NoError(t, err)
		require.Nil(t, credit)

		person, err := ledger.PersonByID(ctx, domain.PersonID{0x01})
		require.NoError(t, err)
		require.Nil(t, person)
	})
}
