package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"textstat/internal/history"
)

var (
	historyLimit  int
	historySource string
)

// historyCmd lists past analyses
var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent analyses from the history store",
	RunE:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&historyLimit, "limit", 20, "maximum records to show")
	historyCmd.Flags().StringVar(&historySource, "source", "", "only show records for this source")
}

func runHistory(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	store, err := history.NewStore(cfg.History.Dir)
	if err != nil {
		return fmt.Errorf("failed to open history: %w", err)
	}
	defer store.Close()

	var records []history.Record
	if historySource != "" {
		records, err = store.BySource(ctx, historySource, historyLimit)
	} else {
		records, err = store.Recent(ctx, historyLimit)
	}
	if err != nil {
		return err
	}

	if len(records) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No history yet.")
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderHistory(records))
	return nil
}
