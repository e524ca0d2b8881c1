package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textstat/internal/analyzer"
	"textstat/internal/history"
)

// watchCmd re-analyzes files as they change
var watchCmd = &cobra.Command{
	Use:   "watch [path...]",
	Short: "Watch files or directories and re-analyze on change",
	Long: `Watches the given files or directories and prints a fresh report each
time a watched file is written. Rapid saves are debounced
(analysis.debounce_ms). Runs until interrupted.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runWatch,
}

func runWatch(cmd *cobra.Command, args []string) error {
	baseCtx := cmd.Context()
	if baseCtx == nil {
		baseCtx = context.Background()
	}
	ctx, stop := signal.NotifyContext(baseCtx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	a := analyzer.New(cfg.Analysis, logger)
	debounce := time.Duration(cfg.Analysis.DebounceMS) * time.Millisecond
	w, err := analyzer.NewWatcher(a, debounce, logger)
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer w.Stop()

	for _, path := range args {
		if err := w.Add(path); err != nil {
			return fmt.Errorf("failed to watch %s: %w", path, err)
		}
	}

	var store *history.Store
	if cfg.History.Enabled {
		store, err = history.NewStore(cfg.History.Dir)
		if err != nil {
			logger.Warn("history disabled for this run", zap.Error(err))
		} else {
			defer store.Close()
		}
	}

	w.Start(ctx)
	logger.Info("watching for changes", zap.Strings("paths", args))

	for {
		select {
		case rep, ok := <-w.Reports():
			if !ok {
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderReport(rep))
			if store != nil {
				if err := store.Save(ctx, history.FromReport(rep)); err != nil {
					logger.Warn("failed to save history", zap.Error(err))
				}
			}
		case <-ctx.Done():
			logger.Info("shutting down")
			return nil
		}
	}
}
