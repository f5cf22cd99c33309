package ledgerfile_test

import (
	"creditor/pkg/domain"
	"creditor/pkg/storage"
	"creditor/pkg/storage/ledgerfile"
	"creditor/pkg/storage/storagetest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func personFixture(email string) domain.Person {
	return domain.Person{
		FirstName: "Grace",
		LastName:  "Hopper",
		Email:     email,
	}
}

func TestFileLedgerProperties(t *testing.T) {
	storagetest.Run(t, func(t *testing.T) storage.Ledger {
		ledger, err := ledgerfile.New(t.TempDir())
		require.NoError(t, err)

		return ledger
	})
}

func TestNewCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "ledger")

	_, err := ledgerfile.New(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}

func TestBooleansSerializedAsLiterals(t *testing.T) {
	dir := t.TempDir()
	ledger, err := ledgerfile.New(dir)
	require.NoError(t, err)

	res, err := ledger.AddPerson(t.Context(), personFixture("literal@example.com"))
	require.NoError(t, err)
	require.False(t, res.Skipped)

	content, err := os.ReadFile(filepath.Join(dir, "people.csv"))
	require.NoError(t, err)
	require.Contains(t, string(content), "false", `sent_credits must serialize as literal "false"`)
}

func TestMissingFilesReadAsEmptyLedger(t *testing.T) {
	ledger, err := ledgerfile.New(t.TempDir())
	require.NoError(t, err)

	credits, err := ledger.Credits(t.Context())
	require.NoError(t, err)
	require.Empty(t, credits)

	people, err := ledger.People(t.Context())
	require.NoError(t, err)
	require.Empty(t, people)

	next, err := ledger.NextAvailableCredit(t.Context())
	require.NoError(t, err)
	require.Nil(t, next)
}
