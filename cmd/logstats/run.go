package main

import (
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/charmkit/logstats/internal/analyze"
	"github.com/charmkit/logstats/internal/cleaner"
	"github.com/charmkit/logstats/internal/report"
	"github.com/charmkit/logstats/internal/stats"
	"github.com/charmkit/logstats/internal/sysinfo"
)

// run executes one analysis pass: clean, aggregate, report. The store
// lives for exactly one invocation and reaches the reporter read-only.
func run(cfg appConfig, logger *zap.Logger, out io.Writer) error {
	f, err := os.Open(cfg.LogFile)
	if err != nil {
		return fmt.Errorf("opening logfile: %w", err)
	}
	defer f.Close()

	store := stats.NewStore()
	src := cleaner.New(f, store, logger, cleaner.Config{MaxLineSize: cfg.MaxLineSize})
	if err := analyze.Run(src, store, cfg.CharmFilter, logger); err != nil {
		return fmt.Errorf("reading %s: %w", cfg.LogFile, err)
	}

	fmt.Fprint(out, report.Render(store, report.Options{Color: cfg.Color}))

	if cfg.ShowMemory {
		kb, err := sysinfo.ProcessRSSKilobytes()
		if err != nil {
			// The analytical report is complete; memory is diagnostic only.
			logger.Debug("could not read process memory", zap.Error(err))
			return nil
		}
		fmt.Fprintf(out, "Memory usage: %d (kb)\n", kb)
	}
	return nil
}
