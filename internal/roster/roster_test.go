package roster_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"creditor/internal/roster"
	"creditor/pkg/serrors"
)

const attendeeExport = `first_name,last_name,email,What is your LinkedIn profile?,What is your X (Twitter) handle?,What would you like to drink?,What would you like for Snacks?,What are you working on?
Ada,Lovelace,ada@example.com,https://linkedin.com/in/ada,@ada,Espresso,Croissant,"Analytical engine, mostly"
Grace,Hopper,grace@example.com,,,,,
,,missing@example.com,,,,,
Linus,,linus@example.com,,,,,
`

func TestParseAttendees(t *testing.T) {
	t.Parallel()

	result, err := roster.ParseAttendees(strings.NewReader(attendeeExport))
	require.NoError(t, err)

	require.Len(t, result.Attendees, 2)
	require.Equal(t, 2, result.Skipped)

	ada := result.Attendees[0]
	require.Equal(t, "Ada", ada.FirstName)
	require.Equal(t, "Lovelace", ada.LastName)
	require.Equal(t, "ada@example.com", ada.Email)
	require.Equal(t, "https://linkedin.com/in/ada", ada.LinkedIn)
	require.Equal(t, "@ada", ada.Twitter)
	require.Equal(t, "Espresso", ada.Drink)
	require.Equal(t, "Croissant", ada.Food)
	require.Equal(t, "Analytical engine, mostly", ada.WorkingOn)

	grace := result.Attendees[1]
	require.Equal(t, "Grace", grace.FirstName)
	require.Empty(t, grace.LinkedIn)
}

func TestParseAttendeesWithoutSurveyColumns(t *testing.T) {
	t.Parallel()

	result, err := roster.ParseAttendees(strings.NewReader(
		"first_name,last_name,email\nAda,Lovelace,ada@example.com\n"))
	require.NoError(t, err)
	require.Len(t, result.Attendees, 1)
	require.Zero(t, result.Skipped)
}

func TestParseAttendeesMissingMandatoryColumn(t *testing.T) {
	t.Parallel()

	_, err := roster.ParseAttendees(strings.NewReader("first_name,last_name\nAda,Lovelace\n"))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
	require.ErrorContains(t, err, "email")
}

func TestParseAttendeesEmptyFile(t *testing.T) {
	t.Parallel()

	_, err := roster.ParseAttendees(strings.NewReader(""))
	require.ErrorIs(t, err, serrors.ErrBadRequest)
}

func TestExtractReferralURLs(t *testing.T) {
	t.Parallel()

	content := `name,referral
one,https://cursor.com/referral?code=AAA111
two,http://CURSOR.com/referral?code=bbb222
three,https://cursor.com/referral?code=AAA111
four,https://other.com/referral?code=CCC333
`

	urls := roster.ExtractReferralURLs(content, "cursor.com")
	require.Equal(t, []string{
		"https://cursor.com/referral?code=AAA111",
		"http://CURSOR.com/referral?code=bbb222",
	}, urls)
}

func TestExtractReferralURLsNoMatches(t *testing.T) {
	t.Parallel()

	require.Nil(t, roster.ExtractReferralURLs("no links here", "cursor.com"))
}
