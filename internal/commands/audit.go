package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/Darin2/monitor-public/internal/audit"
	"github.com/Darin2/monitor-public/internal/config"
	"github.com/Darin2/monitor-public/internal/logger"
	"github.com/Darin2/monitor-public/internal/output"
)

var auditFlags config.AuditFlags

var auditCmd = &cobra.Command{
	Use:   "audit TARGET...",
	Short: "Check pages for AI engine optimization signals",
	Long: `Audit HTML pages given as local files or http(s) URLs. Each page is checked
for JSON-LD structured data, heading structure, meta description, author
and date information, lists and tables, link text, image alt text and
semantic elements.

The score is the share of passed checks among passed and failed ones;
warnings do not count. The command exits non-zero when any check fails
or a target cannot be read. Press Ctrl-C to stop outstanding fetches.`,
	Example: `  # Audit a local file
  aieo-schema audit public/index.html

  # Audit several live pages, four at a time, as CSV
  aieo-schema audit https://example.com/ https://example.com/faq --format csv

  # Slow staging host with a self-signed certificate
  aieo-schema audit https://staging.example.com --timeout 30s --insecure-tls`,
	Args: cobra.MinimumNArgs(1),
	RunE: runAudit,
}

func init() {
	rootCmd.AddCommand(auditCmd)

	auditCmd.Flags().StringVar(&auditFlags.Format, "format", "",
		"output format: text, json or csv (default text, or $"+config.FormatEnv+")")
	auditCmd.Flags().IntVar(&auditFlags.Concurrency, "concurrency", 4,
		"number of targets audited at the same time")
	auditCmd.Flags().DurationVar(&auditFlags.Timeout, "timeout", audit.DefaultTimeout,
		"timeout for fetching a single URL")
	auditCmd.Flags().BoolVar(&auditFlags.InsecureTLS, "insecure-tls", false,
		"skip TLS certificate verification (staging sites only)")
	auditCmd.Flags().StringVar(&auditFlags.LogFile, "log", defaultLogFile,
		"log file name")
}

func runAudit(cmd *cobra.Command, args []string) error {
	format, err := output.ParseFormat(config.ResolveFormat(auditFlags.Format))
	if err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}
	if err := config.ValidateAuditFlags(auditFlags); err != nil {
		return fmt.Errorf("invalid flags: %w", err)
	}

	logF, err := logger.InitLogger(auditFlags.LogFile)
	if err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer func() {
		_ = logF.Close()
	}()

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	interruptChan := make(chan os.Signal, 1)
	signal.Notify(interruptChan, os.Interrupt)
	defer signal.Stop(interruptChan)
	go func() {
		select {
		case <-interruptChan:
			log.Printf("Audit interrupted")
			cancel()
		case <-ctx.Done():
		}
	}()

	printer := output.NewPrinter(format).WithWriter(cmd.OutOrStdout())

	// Text reports are printed as soon as each target finishes
	var done func(audit.PageReport)
	if printer.Format() == output.FormatText {
		done = func(r audit.PageReport) {
			if err := printer.PrintReport(r); err != nil {
				log.Printf("Failed to print report for %s: %v", r.Target, err)
			}
		}
	}

	log.Printf("Auditing %d targets with concurrency %d", len(args), auditFlags.Concurrency)
	runner := audit.NewRunner(audit.NewClient(auditFlags.Timeout, auditFlags.InsecureTLS), auditFlags.Concurrency)
	reports := runner.Run(ctx, args, done)

	switch {
	case printer.Format() != output.FormatText:
		err = printer.PrintReports(reports)
	case len(reports) > 1:
		err = printer.PrintReportsTable(reports)
	}
	if err != nil {
		return fmt.Errorf("failed to print reports: %w", err)
	}

	failed := 0
	for _, r := range reports {
		if r.HasFailures() {
			failed++
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d targets failed the audit", failed, len(reports))
	}
	return nil
}
