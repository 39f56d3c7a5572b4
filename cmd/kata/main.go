package main

import (
	"fmt"
	"os"

	"codekata/internal/config"
	"codekata/internal/logging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	// Global flags
	verbose    bool
	configPath string
	logFormat  string

	// Resolved once per invocation in PersistentPreRunE
	cfg    *config.Config
	logger *zap.Logger
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "kata",
		Short: "Code kata exercises: karate chop and data munging",
		Long: `kata runs small algorithm exercises from the command line.

  chop   binary narrowing search over an ascending list of numbers
  munge  report the day with the smallest temperature spread in a data file`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			loaded, err := config.Load(configPath)
			if err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			if logFormat != "" {
				loaded.Logging.Format = logFormat
			}
			if err := loaded.Validate(); err != nil {
				return fmt.Errorf("config error: %w", err)
			}
			cfg = loaded

			logger, err = logging.New(logging.Options{
				Level:   cfg.Logging.Level,
				Format:  cfg.Logging.Format,
				Verbose: verbose,
			})
			if err != nil {
				return err
			}
			logger.Debug("config loaded",
				zap.String("config", configPath),
				zap.String("mode", cfg.Munge.Mode),
			)
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if logger != nil {
				_ = logger.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log encoding: json or console (overrides config)")

	rootCmd.AddCommand(newChopCommand())
	rootCmd.AddCommand(newMungeCommand())
	return rootCmd
}

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
