package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"creditor/pkg/domain"
	"creditor/pkg/mailer"
)

func TestRenderCreditEmail(t *testing.T) {
	t.Parallel()

	person := domain.Person{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     "ada@example.com",
	}
	credit := domain.Credit{
		URL:    "https://cursor.com/referral?code=ABC123",
		Code:   "ABC123",
		Amount: 40,
	}

	html, err := mailer.RenderCreditEmail(person, credit)
	require.NoError(t, err)

	require.Contains(t, html, "Thanks for joining us, Ada")
	require.Contains(t, html, "$40")
	require.Contains(t, html, `href="https://cursor.com/referral?code=ABC123"`)
	require.Contains(t, html, "Referral code: ABC123")
}

func TestRenderCreditEmailEscapesName(t *testing.T) {
	t.Parallel()

	person := domain.Person{FirstName: "<script>alert(1)</script>"}

	html, err := mailer.RenderCreditEmail(person, domain.Credit{Amount: 20})
	require.NoError(t, err)
	require.NotContains(t, html, "<script>")
}

func TestCreditSubject(t *testing.T) {
	t.Parallel()

	require.Equal(t, "Your Cursor Credits - $20", mailer.CreditSubject(20))
}
