package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/gyeh/apptclean/internal/config"
	"github.com/gyeh/apptclean/internal/exitcode"
)

var (
	cfg        config.Config
	configFile string
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "apptclean",
	Short: "Appointment records CSV → analysis-ready dataset",
	Long:  "Cleans raw, inconsistently formatted appointment scheduling exports into an analysis-ready dataset with canonical categories, parsed timestamps, deduplicated rows, and derived duration metrics.",
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfg.LogFormat, "log-format", "text", "Log format: text or json")
	pf.StringVar(&configFile, "config", "", "Path to YAML config file")
	pf.BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(exitcode.UsageError)
	}
}
