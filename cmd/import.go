package main

import (
	"context"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creditor/internal/config"
	"creditor/internal/roster"
	"creditor/pkg/logger"
)

// importCommand constructs the 'import' subcommand that loads an attendee
// registration export into the people ledger.
func importCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Imports attendees from a registration CSV export",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			file, err := os.Open(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not open attendee file", zap.Error(err))
			}
			defer file.Close()

			result, err := roster.ParseAttendees(file)
			if err != nil {
				logger.Fatal(ctx, "could not parse attendee file", zap.Error(err))
			}

			ledger, closeLedger := getLedger(ctx, cfg)
			defer closeLedger()

			var added, duplicates int

			for _, person := range result.Attendees {
				outcome, err := ledger.AddPerson(ctx, person)
				if err != nil {
					logger.Fatal(ctx, "could not store person", zap.String("email", person.Email), zap.Error(err))
				}

				if outcome.Skipped {
					duplicates++
				} else {
					added++
				}
			}

			logger.Info(ctx, "import finished",
				zap.Int("added", added),
				zap.Int("duplicates", duplicates),
				zap.Int("malformed", result.Skipped))
		},
	}

	return cmd
}
