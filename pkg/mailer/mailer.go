// Package mailer delivers credit notification emails. The Dispatcher
// interface abstracts the delivery provider so callers can swap the real
// Resend-backed implementation for a no-op one in local setups and tests.
package mailer

//go:generate mockgen -package mockmailer -source=mailer.go -destination=mock/mockmailer.go *

import (
	"context"
)

// Dispatcher sends a single HTML email to a recipient.
type Dispatcher interface {
	// Send delivers the given HTML body to the recipient address. A nil
	// return means the provider accepted the message for delivery.
	Send(ctx context.Context, recipient string, subject string, html string) error
}
