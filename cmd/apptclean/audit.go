package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/apptclean/internal/clean"
	"github.com/gyeh/apptclean/internal/csvread"
	"github.com/gyeh/apptclean/internal/exitcode"
	"github.com/gyeh/apptclean/internal/logging"
	"github.com/gyeh/apptclean/internal/model"
)

var auditCmd = &cobra.Command{
	Use:   "audit",
	Short: "Report raw categorical values outside the canonical vocabularies (no writes)",
	RunE:  runAudit,
}

func init() {
	auditCmd.Flags().StringVar(&cfg.InputPath, "in", "", "Path to raw appointments CSV (required)")
	_ = auditCmd.MarkFlagRequired("in")
	rootCmd.AddCommand(auditCmd)
}

func runAudit(cmd *cobra.Command, args []string) error {
	log := logging.Setup(cfg.LogFormat, verbose)

	if err := cfg.Validate(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	ds, err := csvread.Load(cfg.InputPath)
	if err != nil {
		log.Error().Err(err).Msg("load failed")
		os.Exit(exitcode.ValidationError)
	}

	report := clean.Audit(ds)

	fmt.Println("=== apptclean audit ===")
	fmt.Printf("File: %s\n", cfg.InputPath)
	fmt.Printf("Rows: %d\n\n", len(ds.Rows))

	if len(report.Unexpected) == 0 {
		fmt.Println("All observed categorical values match their canonical vocabularies.")
		return nil
	}

	for _, col := range model.CategoricalColumns {
		vals := report.Unexpected[col]
		if len(vals) == 0 {
			continue
		}
		fmt.Printf("%s (%d unexpected):\n", col, len(vals))
		for _, v := range vals {
			fmt.Printf("  %q\n", v)
		}
		fmt.Println()
	}
	return nil
}
