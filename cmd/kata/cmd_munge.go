package main

import (
	"fmt"
	"os"
	"path/filepath"

	"codekata/internal/config"
	"codekata/internal/munging"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func newMungeCommand() *cobra.Command {
	var file, mode string

	cmd := &cobra.Command{
		Use:   "munge --file <path>",
		Short: "Report the day with the smallest temperature spread",
		Long: `Reads a weather data file and reports the day whose maximum and minimum
temperature are closest together. Each data line starts with the day number,
the maximum and the minimum temperature; any other line is skipped. When
several days share the smallest spread the one listed first wins.

Example:
  kata munge --file weather.dat
  kata munge -f weather.dat --mode integer`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			mungeCfg := config.DefaultConfig().Munge
			if cfg != nil {
				mungeCfg = cfg.Munge
			}
			mungeCfg.File = file
			if mode != "" {
				mungeCfg.Mode = mode
			}
			return runMunge(cmd, mungeCfg)
		},
	}

	cmd.Flags().StringVarP(&file, "file", "f", "", "Weather data file (required)")
	cmd.Flags().StringVar(&mode, "mode", "", "Temperature parsing: decimal or integer (overrides config)")
	_ = cmd.MarkFlagRequired("file")
	return cmd
}

func runMunge(cmd *cobra.Command, mungeCfg config.MungeConfig) error {
	if err := mungeCfg.Validate(); err != nil {
		return err
	}
	mode, err := munging.ParseMode(mungeCfg.Mode)
	if err != nil {
		return err
	}

	log := logger
	if log == nil {
		log = zap.NewNop()
	}
	log = log.Named("munge")

	path := mungeCfg.File
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	log.Debug("reading weather data", zap.String("path", path), zap.Stringer("mode", mode))

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read weather data: %w", err)
	}

	result, err := munging.Munge(string(data), munging.Options{Mode: mode, Logger: log})
	if err != nil {
		return fmt.Errorf("%s: %w", mungeCfg.File, err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), munging.Report(result))
	return err
}
