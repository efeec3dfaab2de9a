package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/codedoc/solution-analyzer/internal/analyzer"
	"github.com/codedoc/solution-analyzer/internal/config"
	"github.com/codedoc/solution-analyzer/internal/lang"
	"github.com/codedoc/solution-analyzer/internal/logging"
	"github.com/codedoc/solution-analyzer/internal/summary"
)

func runAnalyze(cmd *cobra.Command, args []string) error {
	// Arguments were valid; from here on errors are runtime failures and
	// repeating the usage text would only bury the diagnostic.
	cmd.SilenceUsage = true

	// Set up context with cancellation for Ctrl+C
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigChan
		fmt.Fprintln(os.Stderr, "\nInterrupted! Cancelling analysis...")
		cancel()
	}()

	rootDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	cfg, err := config.LoadConfigFromDir(rootDir)
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if outputFlag != "" {
		cfg.Output.Path = outputFlag
	}
	if workersFlag > 0 {
		cfg.Analysis.Workers = workersFlag
	}

	log := logging.New(cfg.Logging)
	defer log.Sync()

	// One-time toolchain initialization: all workspace loading and parsing
	// happens against this handle.
	registry := lang.Default()

	progress := NewCLIProgressReporter(quietFlag)
	a := analyzer.New(registry, cfg.Analysis.Workers, log, progress)

	records, stats, err := a.Run(ctx, args[0])
	if err != nil {
		// A cancelled run produces no output document at all.
		if ctx.Err() != nil {
			return fmt.Errorf("analysis cancelled")
		}
		return err
	}

	if err := summary.Write(cfg.Output.Path, records); err != nil {
		return err
	}

	fmt.Printf("Semantic summary written to %s (%d files from %d projects in %.2fs)\n",
		cfg.Output.Path, stats.Records, stats.Projects, stats.Duration.Seconds())
	return nil
}
