package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creditor/internal/config"
	"creditor/pkg/logger"
	"creditor/pkg/storage"
)

// tallyCommand constructs the 'tally' subcommand that prints the ledger
// aggregate per status.
func tallyCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tally",
		Short: "Prints credit totals grouped by status",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			ledger, closeLedger := getLedger(ctx, cfg)
			defer closeLedger()

			tally, err := ledger.TallyCredits(ctx)
			if err != nil {
				logger.Fatal(ctx, "could not tally credits", zap.Error(err))
			}

			printStatus := func(name string, s storage.StatusTally) {
				fmt.Printf("%-10s $%d (%d credits)\n", name, s.Amount, s.Count)
			}

			fmt.Printf("%-10s $%d (%d credits)\n", "total", tally.Total, tally.TotalCount)
			printStatus("available", tally.Available)
			printStatus("assigned", tally.Assigned)
			printStatus("sent", tally.Sent)
			printStatus("redeemed", tally.Redeemed)
		},
	}

	return cmd
}
