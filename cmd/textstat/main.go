package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"textstat/internal/config"
)

const version = "0.1.0"

var (
	// Global flags
	cfgPath string
	verbose bool

	// Loaded in PersistentPreRunE, shared by all commands
	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "textstat",
	Short: "textstat - word statistics for plain text",
	Long: `textstat computes word statistics over plain text:
total words, unique words (case-insensitive), and average word length,
plus term frequencies and an LLM token estimate.

Tokens are runs of letters/digits; punctuation and whitespace are
separators and never part of a token.

Examples:
  textstat stats notes.txt
  cat notes.txt | textstat stats
  textstat watch docs/
  textstat history --limit 20`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			return err
		}

		zapCfg := zap.NewProductionConfig()
		if cfg.Logging.Development {
			zapCfg = zap.NewDevelopmentConfig()
		}
		level, err := zapcore.ParseLevel(cfg.Logging.Level)
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", cfg.Logging.Level, err)
		}
		if verbose {
			level = zapcore.DebugLevel
		}
		zapCfg.Level = zap.NewAtomicLevelAt(level)

		logger, err = zapCfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

// versionCmd prints the textstat version
var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the textstat version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "textstat %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "textstat.yaml", "path to YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(watchCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
