package main

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"textstat/internal/analyzer"
	"textstat/internal/config"
	"textstat/internal/history"
	"textstat/internal/report"
)

var (
	statsJSON      bool
	statsTop       int
	statsNoHistory bool
)

// statsCmd computes word statistics for files or stdin
var statsCmd = &cobra.Command{
	Use:   "stats [file...]",
	Short: "Compute word statistics for files or stdin",
	Long: `Analyzes each file (or stdin when no files are given, or "-" is passed)
and prints words, unique words, average word length, the most frequent
terms, and an LLM token estimate.

Results are saved to the history store unless --no-history is set.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().BoolVar(&statsJSON, "json", false, "emit reports as JSON")
	statsCmd.Flags().IntVar(&statsTop, "top", 0, "override configured top-word count")
	statsCmd.Flags().BoolVar(&statsNoHistory, "no-history", false, "do not record this analysis")
}

func runStats(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a := analyzer.New(statsAnalysisConfig(), logger)

	var reports []report.Report
	if len(args) == 0 || (len(args) == 1 && args[0] == "-") {
		rep, err := a.AnalyzeReader("stdin", cmd.InOrStdin())
		if err != nil {
			return err
		}
		reports = []report.Report{rep}
	} else {
		var err error
		reports, err = a.AnalyzeFiles(ctx, args)
		if err != nil {
			return err
		}
	}

	if !statsNoHistory && cfg.History.Enabled {
		if err := saveToHistory(ctx, reports); err != nil {
			// History is best-effort; the analysis itself succeeded.
			logger.Warn("failed to save history", zap.Error(err))
		}
	}

	if statsJSON {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		if len(reports) == 1 {
			return enc.Encode(reports[0])
		}
		return enc.Encode(reports)
	}

	for _, rep := range reports {
		fmt.Fprintln(cmd.OutOrStdout(), renderReport(rep))
	}
	return nil
}

// statsAnalysisConfig applies the --top override on top of the loaded config.
func statsAnalysisConfig() config.AnalysisConfig {
	analysis := cfg.Analysis
	if statsTop > 0 {
		analysis.TopWords = statsTop
	}
	return analysis
}

func saveToHistory(ctx context.Context, reports []report.Report) error {
	store, err := history.NewStore(cfg.History.Dir)
	if err != nil {
		return err
	}
	defer store.Close()

	for _, rep := range reports {
		if err := store.Save(ctx, history.FromReport(rep)); err != nil {
			return err
		}
	}
	return store.Prune(ctx, cfg.History.Keep)
}
