package mailer_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"creditor/pkg/mailer"
	"creditor/pkg/serrors"
)

func TestNewResendRequiresCredentials(t *testing.T) {
	t.Parallel()

	_, err := mailer.NewResend("", "credits@example.com")
	require.ErrorIs(t, err, serrors.ErrDeliveryFailed)

	_, err = mailer.NewResend("re_123", "")
	require.ErrorIs(t, err, serrors.ErrDeliveryFailed)

	dispatcher, err := mailer.NewResend("re_123", "credits@example.com")
	require.NoError(t, err)
	require.NotNil(t, dispatcher)
}
