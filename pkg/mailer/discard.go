package mailer

import (
	"context"

	"go.uber.org/zap"

	"creditor/pkg/logger"
)

// Discard is a Dispatcher that accepts every message without delivering it.
// Used when running against the flat-file backend without email credentials.
type Discard struct{}

var _ Dispatcher = Discard{}

func (Discard) Send(ctx context.Context, recipient string, subject string, _ string) error {
	logger.Info(ctx, "discarding email", zap.String("recipient", recipient), zap.String("subject", subject))

	return nil
}
