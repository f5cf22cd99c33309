package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creditor/internal/config"
	"creditor/internal/prober"
	"creditor/internal/roster"
	"creditor/pkg/domain"
	"creditor/pkg/logger"
)

// scanCommand constructs the 'scan' subcommand: it mines a file for referral
// URLs, probes each one in the browser, and records confirmed-available codes
// in the ledger.
func scanCommand(cfg *config.Config) *cobra.Command {
	var exportPath string

	cmd := &cobra.Command{
		Use:   "scan <file>",
		Short: "Probes referral URLs found in a file and records available credits",
		Args:  cobra.ExactArgs(1),
		Run: func(cmd *cobra.Command, args []string) {
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			content, err := os.ReadFile(args[0])
			if err != nil {
				logger.Fatal(ctx, "could not read input file", zap.Error(err))
			}

			urls := roster.ExtractReferralURLs(string(content), cfg.Referral.Host)
			if len(urls) == 0 {
				logger.Info(ctx, "no referral urls found in file", zap.String("file", args[0]))

				return
			}

			logger.Info(ctx, "scanning referral urls", zap.Int("count", len(urls)))

			sessions := prober.NewSessionManager(cfg.Browser.Headless)
			checker := prober.New(cfg.Referral.Host, cfg.Browser.Headless, sessions)
			scanner := prober.NewBatchScanner(checker, sessions)

			results, err := scanner.Scan(ctx, urls, func(index, total int, res domain.ProbeResult) {
				logger.Info(ctx, "probed url",
					zap.Int("index", index),
					zap.Int("total", total),
					zap.String("status", string(res.Status)))
			})
			if err != nil {
				logger.Fatal(ctx, "scan aborted", zap.Error(err))
			}

			ledger, closeLedger := getLedger(ctx, cfg)
			defer closeLedger()

			var added, existing, available int

			for _, url := range urls {
				res := results[url]
				if res.Status != domain.ProbeAvailable {
					continue
				}

				available++

				code, ok := checker.ExtractCode(url)
				if !ok {
					continue
				}

				outcome, err := ledger.AddCreditIfNotExists(ctx, url, code, res.Amount)
				if err != nil {
					logger.Fatal(ctx, "could not record credit", zap.String("url", url), zap.Error(err))
				}

				if outcome.Added {
					added++
				}
				if outcome.Existing {
					existing++
				}
			}

			logger.Info(ctx, "scan finished",
				zap.Int("scanned", len(urls)),
				zap.Int("available", available),
				zap.Int("added", added),
				zap.Int("alreadyKnown", existing))

			if exportPath != "" {
				if err := exportAvailable(urls, results, exportPath); err != nil {
					logger.Fatal(ctx, "could not export results", zap.Error(err))
				}

				logger.Info(ctx, "exported available urls", zap.String("file", exportPath))
			}
		},
	}

	cmd.Flags().StringVar(&exportPath, "export", "", "Write available URLs to the given JSON file")

	return cmd
}

// exportAvailable writes the confirmed-available URLs, in scan order, as a
// JSON string array.
func exportAvailable(urls []string, results map[string]domain.ProbeResult, path string) error {
	available := make([]string, 0, len(urls))
	for _, url := range urls {
		if results[url].Status == domain.ProbeAvailable {
			available = append(available, url)
		}
	}

	data, err := json.MarshalIndent(available, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o600)
}
