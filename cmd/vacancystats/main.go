package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"

	"github.com/honeycarbs/vacancy-stats/internal/app"
	"github.com/honeycarbs/vacancy-stats/internal/config"
	"github.com/honeycarbs/vacancy-stats/internal/domain"
	"github.com/honeycarbs/vacancy-stats/internal/report"
	"github.com/honeycarbs/vacancy-stats/pkg/logging"
)

const exportTimeout = time.Minute

type options struct {
	configPath string
	languages  string
	csvPath    string
	progress   bool
	saveKey    string
}

func main() {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "path to a YAML config file")
	flag.StringVar(&opts.languages, "languages", "", "comma separated languages, overrides the configured list")
	flag.StringVar(&opts.csvPath, "csv", "", "also write the statistics to this CSV file")
	flag.BoolVar(&opts.progress, "progress", true, "show a progress bar on stderr")
	flag.StringVar(&opts.saveKey, "save-key", "", "store the resolved SuperJob key in the OS keychain under this account and exit")
	flag.Parse()

	cfg, err := config.Load(opts.configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if opts.languages != "" {
		cfg.Languages = config.SplitList(opts.languages)
	}
	if opts.csvPath != "" {
		cfg.Export.CSVPath = opts.csvPath
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	if opts.saveKey != "" {
		if err := config.StoreSuperJobKey(opts.saveKey, cfg.SuperJob.APIKey); err != nil {
			fmt.Fprintf(os.Stderr, "failed to store key: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "SuperJob key stored for account %q\n", opts.saveKey)
		return
	}

	logger := logging.New(cfg.LogLevel, logging.WithConsole())
	defer func() { _ = logger.Sync() }()

	if err := run(cfg, opts, logger); err != nil {
		logger.Error("vacancy statistics run failed", "err", err)
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg config.Config, opts options, logger *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var (
		bar      *pb.ProgressBar
		observer func(string, domain.LanguageStats)
	)
	if opts.progress {
		bar = pb.New(len(cfg.Languages) * 2).SetWriter(os.Stderr).Start()
		observer = func(string, domain.LanguageStats) { bar.Increment() }
	}

	a, cleanup, err := app.Initialize(ctx, cfg, logger, observer)
	if err != nil {
		if bar != nil {
			bar.Finish()
		}
		return fmt.Errorf("initialize: %w", err)
	}
	defer cleanup()

	reports, collectErr := a.Stats.Collect(ctx, cfg.Languages)
	if bar != nil {
		bar.Finish()
	}
	if collectErr != nil {
		logger.Warn("run interrupted, printing partial results", "err", collectErr)
	}
	logSummary(logger, reports)

	for _, r := range reports {
		if err := report.Render(os.Stdout, r.Title, report.LanguageColumn, r); err != nil {
			return err
		}
	}

	if len(a.Sinks) > 0 {
		exportCtx, cancel := context.WithTimeout(context.Background(), exportTimeout)
		defer cancel()
		report.Publish(exportCtx, logger, a.Sinks, reports)
	}

	if errors.Is(collectErr, context.Canceled) {
		return collectErr
	}
	return nil
}

func logSummary(logger *logging.Logger, reports []domain.Report) {
	for _, r := range reports {
		var found, processed, incomplete int
		for _, st := range r.Languages {
			found += st.Found
			processed += st.Processed
			if st.Error != "" {
				incomplete++
			}
		}
		logger.Info("provider finished",
			"provider", r.Provider,
			"run_id", r.RunID.String(),
			"found", humanize.Comma(int64(found)),
			"processed", humanize.Comma(int64(processed)),
			"incomplete_languages", incomplete,
		)
	}
}
