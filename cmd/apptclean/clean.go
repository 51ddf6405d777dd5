package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/apptclean/internal/clean"
	"github.com/gyeh/apptclean/internal/exitcode"
	"github.com/gyeh/apptclean/internal/logging"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Clean a raw appointments CSV and write the result",
	RunE:  runClean,
}

func init() {
	f := cleanCmd.Flags()
	f.StringVar(&cfg.InputPath, "in", "", "Path to raw appointments CSV (required)")
	f.StringVar(&cfg.OutputPath, "out", "", "Output path, .parquet or .csv (required)")
	_ = cleanCmd.MarkFlagRequired("in")
	_ = cleanCmd.MarkFlagRequired("out")
	rootCmd.AddCommand(cleanCmd)
}

func runClean(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)

	if configFile != "" {
		if err := cfg.LoadFromFile(configFile); err != nil {
			log.Error().Err(err).Msg("config file invalid")
			os.Exit(exitcode.UsageError)
		}
	}
	if err := cfg.ValidateWithOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	summary, err := clean.Run(log, &cfg)
	if err != nil {
		if pe, ok := err.(*clean.PipelineError); ok {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("clean failed")
			switch pe.Phase {
			case "load":
				os.Exit(exitcode.ValidationError)
			case "write":
				os.Exit(exitcode.WriteError)
			default:
				os.Exit(exitcode.CleanError)
			}
		}
		log.Error().Err(err).Msg("clean failed")
		os.Exit(exitcode.CleanError)
	}

	fmt.Printf("Clean complete: %d rows in, %d rows out, %d duplicates removed (%.1fs)\n",
		summary.RowsLoaded, summary.RowsOut, summary.DuplicatesRemoved, summary.DurationTotal.Seconds())
	return nil
}
