package main

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creditor/internal/allocator"
	"creditor/internal/config"
	"creditor/pkg/domain"
	"creditor/pkg/logger"
	"creditor/pkg/serrors"
	"creditor/pkg/storage"
)

// sendCommand constructs the 'send' subcommand that allocates credits to
// people: one recipient selected by email or id, or everyone who has not
// received credits yet.
func sendCommand(cfg *config.Config) *cobra.Command {
	var (
		email    string
		personID string
		all      bool
	)

	cmd := &cobra.Command{
		Use:   "send",
		Short: "Assigns available credits to people and emails them",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			if !all && email == "" && personID == "" {
				logger.Fatal(ctx, "one of --email, --person or --all is required")
			}

			ledger, closeLedger := getLedger(ctx, cfg)
			defer closeLedger()

			a := allocator.New(ledger, getDispatcher(ctx, cfg))

			recipients, err := resolveRecipients(ctx, ledger, email, personID, all)
			if err != nil {
				logger.Fatal(ctx, "could not resolve recipients", zap.Error(err))
			}

			if len(recipients) == 0 {
				logger.Info(ctx, "nobody left to send credits to")

				return
			}

			var sent, failed int

			for _, person := range recipients {
				receipt, err := a.SendCreditTo(ctx, person.ID)
				if errors.Is(err, serrors.ErrNoCredits) {
					logger.Warn(ctx, "ledger exhausted, stopping", zap.Int("remaining", len(recipients)-sent-failed))

					break
				}

				if err != nil {
					failed++
					logger.Error(ctx, "could not send credit",
						zap.String("recipient", person.Email),
						zap.Error(err))

					continue
				}

				sent++
				logger.Info(ctx, "credit sent",
					zap.String("recipient", receipt.Person.Email),
					zap.String("code", receipt.Credit.Code),
					zap.Int("amount", receipt.Credit.Amount))
			}

			logger.Info(ctx, "send finished", zap.Int("sent", sent), zap.Int("failed", failed))
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Send to the person with this email address")
	cmd.Flags().StringVar(&personID, "person", "", "Send to the person with this id")
	cmd.Flags().BoolVar(&all, "all", false, "Send to everyone who has not received credits yet")
	cmd.MarkFlagsMutuallyExclusive("email", "person", "all")

	return cmd
}

// resolveRecipients turns the send flags into a list of people. With --all,
// people already flagged as having received credits are skipped.
func resolveRecipients(ctx context.Context,
	ledger storage.Ledger,
	email, personID string,
	all bool) ([]domain.Person, error) {
	if all {
		people, err := ledger.People(ctx)
		if err != nil {
			return nil, err
		}

		recipients := make([]domain.Person, 0, len(people))
		for _, person := range people {
			if !person.SentCredits {
				recipients = append(recipients, person)
			}
		}

		return recipients, nil
	}

	if email != "" {
		person, err := ledger.PersonByEmail(ctx, email)
		if err != nil {
			return nil, err
		}

		if person == nil {
			return nil, serrors.With(serrors.ErrNotFound, "no person with email %s", email)
		}

		return []domain.Person{*person}, nil
	}

	id, err := uuid.Parse(personID)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrBadRequest, err, "invalid person id")
	}

	person, err := ledger.PersonByID(ctx, domain.PersonID(id))
	if err != nil {
		return nil, err
	}

	if person == nil {
		return nil, serrors.With(serrors.ErrNotFound, "no person with id %s", personID)
	}

	return []domain.Person{*person}, nil
}
