package allocator

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"creditor/pkg/domain"
	"creditor/pkg/logger"
	"creditor/pkg/mailer"
	"creditor/pkg/serrors"
	"creditor/pkg/storage"
)

// allocator is the concrete implementation of the Allocator interface.
// It coordinates the ledger and the email dispatcher.
type allocator struct {
	ledger     storage.Ledger
	dispatcher mailer.Dispatcher
}

// New creates an Allocator backed by the given ledger and dispatcher.
func New(ledger storage.Ledger, dispatcher mailer.Dispatcher) Allocator {
	return allocator{
		ledger:     ledger,
		dispatcher: dispatcher,
	}
}

func (a allocator) SendCreditTo(ctx context.Context, personID domain.PersonID) (*Receipt, error) {
	person, err := a.ledger.PersonByID(ctx, personID)
	if err != nil {
		return nil, fmt.Errorf("could not load person: %w", err)
	}

	if person == nil {
		return nil, serrors.With(serrors.ErrNotFound, "person %s not found", personID)
	}

	credit, err := a.ledger.NextAvailableCredit(ctx)
	if err != nil {
		return nil, fmt.Errorf("could not find available credit: %w", err)
	}

	if credit == nil {
		return nil, serrors.KindOnly(serrors.ErrNoCredits)
	}

	ctx = logger.WithFields(ctx,
		zap.String("credit", credit.ID.String()),
		zap.String("recipient", person.Email))

	if err := a.ledger.AssignCredit(ctx, credit.ID, personID); err != nil {
		return nil, fmt.Errorf("could not assign credit: %w", err)
	}

	if err := a.deliver(ctx, *person, *credit); err != nil {
		// Release the reservation so the credit stays spendable. If the
		// revert itself fails, the credit is stuck in assigned and needs
		// manual attention, so surface both errors.
		if revertErr := a.ledger.RevertCreditToAvailable(ctx, credit.ID); revertErr != nil {
			logger.Error(ctx, "could not revert credit after failed delivery", zap.Error(revertErr))

			return nil, errors.Join(err, fmt.Errorf("could not revert credit: %w", revertErr))
		}

		logger.Warn(ctx, "delivery failed, credit reverted to available", zap.Error(err))

		return nil, err
	}

	if err := a.ledger.MarkCreditSent(ctx, credit.ID, personID); err != nil {
		return nil, fmt.Errorf("could not mark credit as sent: %w", err)
	}

	logger.Info(ctx, "credit delivered")

	sent, err := a.ledger.CreditByID(ctx, credit.ID)
	if err != nil || sent == nil {
		// The send already happened, fall back to the pre-send snapshot.
		sent = credit
		sent.Status = domain.CreditStatusSent
		sent.AssignedTo = &personID
	}

	recipient := *person
	recipient.SentCredits = true

	return &Receipt{Credit: *sent, Person: recipient}, nil
}

// deliver renders and sends the notification email for the given credit.
func (a allocator) deliver(ctx context.Context, person domain.Person, credit domain.Credit) error {
	html, err := mailer.RenderCreditEmail(person, credit)
	if err != nil {
		return serrors.Wrap(serrors.ErrDeliveryFailed, err, "could not render email")
	}

	if err := a.dispatcher.Send(ctx, person.Email, mailer.CreditSubject(credit.Amount), html); err != nil {
		if errors.Is(err, serrors.ErrDeliveryFailed) {
			return err
		}

		return serrors.Wrap(serrors.ErrDeliveryFailed, err, "could not send email")
	}

	return nil
}
