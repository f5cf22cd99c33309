package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creditor/internal/config"
	"creditor/internal/prober"
	"creditor/pkg/logger"
)

// probeCommand constructs the 'probe' subcommand, a debugging helper that
// checks a single referral URL without touching the ledger.
func probeCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "probe <url>",
		Short: "Probes a single referral URL and prints the classification",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			checker := prober.New(cfg.Referral.Host, cfg.Browser.Headless, nil)
			res := checker.Check(ctx, args[0])

			logger.Info(ctx, "probe finished",
				zap.String("url", args[0]),
				zap.String("status", string(res.Status)),
				zap.Int("amount", res.Amount),
				zap.String("reason", res.Err))
		},
	}

	return cmd
}
