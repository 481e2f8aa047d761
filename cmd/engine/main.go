package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	csvadapter "github.com/iho/paymentsengine/internal/adapter/csv"
	"github.com/iho/paymentsengine/internal/adapter/repository/memory"
	"github.com/iho/paymentsengine/internal/infrastructure/config"
	"github.com/iho/paymentsengine/internal/infrastructure/eventpublisher"
	"github.com/iho/paymentsengine/internal/infrastructure/logger"
	"github.com/iho/paymentsengine/internal/infrastructure/metrics"
	"github.com/iho/paymentsengine/internal/usecase"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd(os.Stdout, os.Stderr).ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		stop()
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var (
		logLevel       string
		logFormat      string
		strictDisputes bool
		rejectLocked   bool
		verify         bool
		factsOut       string
		metricsOut     string
	)

	rootCmd := &cobra.Command{
		Use:   "payments-engine <transactions.csv>",
		Short: "Compute client balances from a CSV of transactions",
		Long: `Reads deposits, withdrawals, disputes, resolves and chargebacks from a CSV
file and prints the resulting client balances to stdout as CSV.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}

			flags := cmd.Flags()
			if flags.Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if flags.Changed("log-format") {
				cfg.LogFormat = logFormat
			}
			if flags.Changed("strict-disputes") {
				cfg.StrictDisputes = strictDisputes
			}
			if flags.Changed("reject-locked") {
				cfg.RejectLocked = rejectLocked
			}
			if flags.Changed("verify") {
				cfg.Verify = verify
			}
			if flags.Changed("facts-out") {
				cfg.FactsOut = factsOut
			}
			if flags.Changed("metrics-out") {
				cfg.MetricsOut = metricsOut
			}

			log := logger.New(logger.Config{Level: cfg.LogLevel, Format: cfg.LogFormat}, stderr)
			return run(cmd.Context(), cfg, args[0], stdout, log)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	flags.StringVar(&logFormat, "log-format", "json", "Log format (json, console)")
	flags.BoolVar(&strictDisputes, "strict-disputes", true, "Require resolve and chargeback to close an open dispute")
	flags.BoolVar(&rejectLocked, "reject-locked", false, "Reject every instruction for a locked account")
	flags.BoolVar(&verify, "verify", false, "Replay every fact log and fail if it disagrees with the live balances")
	flags.StringVar(&factsOut, "facts-out", "", "Write the fact log as JSON lines to this file, or log it with \"-\"")
	flags.StringVar(&metricsOut, "metrics-out", "", "Write Prometheus metrics to this file")

	return rootCmd
}

func run(ctx context.Context, cfg *config.Config, path string, stdout io.Writer, log zerolog.Logger) error {
	input, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open input: %w", err)
	}
	defer input.Close()

	registry := prometheus.NewRegistry()
	m := metrics.New(registry)

	// Initialize repositories
	accountRepo := memory.NewAccountRepository()
	ledgerRepo := memory.NewLedgerRepository()
	factLog := memory.NewFactLog()
	idGen := memory.NewULIDGenerator()

	// Initialize use cases
	engineUC := usecase.NewEngineUseCase(accountRepo, ledgerRepo, factLog, idGen, usecase.EngineOptions{
		StrictDisputes: cfg.StrictDisputes,
		RejectLocked:   cfg.RejectLocked,
		Logger:         &log,
		Metrics:        m,
	})
	ingestUC := usecase.NewIngestUseCase(engineUC, log, m)
	accountUC := usecase.NewAccountUseCase(accountRepo)
	reconciliationUC := usecase.NewReconciliationUseCase(accountRepo, factLog)
	ledgerUC := usecase.NewLedgerUseCase(accountRepo)

	reader := csvadapter.NewReader(input, log, m)
	stats, err := ingestUC.Run(reader)
	if err != nil {
		return err
	}
	log.Debug().Int("skipped", stats.Skipped).Int("read", stats.Read).Msg("input consumed")

	var verifyErr error
	if cfg.Verify {
		report, err := reconciliationUC.Verify()
		if report != nil {
			log.Info().
				Int("accounts", report.TotalAccounts).
				Int("reconciled", report.ReconciledAccounts).
				Bool("consistent", report.Consistent()).
				Msg("replay verification finished")
		}
		verifyErr = err

		allowNegativeHeld := !cfg.StrictDisputes
		consistent, err := ledgerUC.CheckConsistency(allowNegativeHeld)
		log.Info().
			Bool("consistent", consistent).
			Bool("allow_negative_held", allowNegativeHeld).
			Msg("ledger consistency checked")
		verifyErr = errors.Join(verifyErr, err)
	}

	if err := csvadapter.WriteAccounts(stdout, accountUC.ListAccounts()); err != nil {
		return fmt.Errorf("write balances: %w", err)
	}

	if cfg.FactsOut != "" {
		if err := exportFacts(ctx, cfg.FactsOut, factLog, log); err != nil {
			return err
		}
	}

	if cfg.MetricsOut != "" {
		if err := metrics.WriteTextfile(cfg.MetricsOut, registry); err != nil {
			return fmt.Errorf("write metrics: %w", err)
		}
	}

	return verifyErr
}

// factsToLog sends the fact export to the logger instead of a file.
const factsToLog = "-"

func exportFacts(ctx context.Context, path string, factLog usecase.FactLog, log zerolog.Logger) error {
	if path == factsToLog {
		publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
			FactLog:   factLog,
			Publisher: eventpublisher.NewLogPublisher(log),
			Logger:    &log,
		})
		if _, err := publisher.PublishAll(ctx); err != nil {
			return fmt.Errorf("export facts: %w", err)
		}
		return nil
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create facts file: %w", err)
	}

	publisher := eventpublisher.NewEventPublisher(eventpublisher.Config{
		FactLog:   factLog,
		Publisher: eventpublisher.NewJSONLinesPublisher(out),
		Logger:    &log,
	})

	if _, err := publisher.PublishAll(ctx); err != nil {
		_ = out.Close()
		return fmt.Errorf("export facts: %w", err)
	}

	if err := out.Close(); err != nil {
		return fmt.Errorf("close facts file: %w", err)
	}
	return nil
}
