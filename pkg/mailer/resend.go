package mailer

import (
	"context"

	"github.com/resend/resend-go/v2"

	"creditor/pkg/serrors"
)

// Resend dispatches emails through the Resend HTTP API.
type Resend struct {
	client *resend.Client
	from   string
}

var _ Dispatcher = (*Resend)(nil)

// NewResend creates a Resend-backed Dispatcher. Both the API key and the
// sender address must be set, otherwise every Send would be rejected by the
// provider anyway.
func NewResend(apiKey string, from string) (*Resend, error) {
	if apiKey == "" {
		return nil, serrors.With(serrors.ErrDeliveryFailed, "email API key is not configured")
	}

	if from == "" {
		return nil, serrors.With(serrors.ErrDeliveryFailed, "email sender address is not configured")
	}

	return &Resend{
		client: resend.NewClient(apiKey),
		from:   from,
	}, nil
}

func (r *Resend) Send(ctx context.Context, recipient string, subject string, html string) error {
	_, err := r.client.Emails.SendWithContext(ctx, &resend.SendEmailRequest{
		From:    r.from,
		To:      []string{recipient},
		Subject: subject,
		Html:    html,
	})
	if err != nil {
		return serrors.Wrap(serrors.ErrDeliveryFailed, err, "could not send email via resend")
	}

	return nil
}
