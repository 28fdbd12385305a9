// custimport runs the customer CSV import pipeline and serves the
// read-only dashboard API over the resulting store.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/crmkit/custimport/internal/config"
	"github.com/crmkit/custimport/internal/logging"
)

// cfg is loaded once in the root PersistentPreRunE and shared by all
// subcommands.
var cfg *config.Config

var rootCmd = &cobra.Command{
	Use:   "custimport",
	Short: "Customer CSV import pipeline and dashboard API",
	Long: `custimport reads a delimited customer file, validates and normalizes
each row into a canonical record, appends the records to the JSON
customer store, and writes a per-row error report.

The serve subcommand exposes read-only aggregate endpoints (overview,
demographics, purchase behavior, yearly trends) over the same store.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// .env values take precedence over the inherited environment,
		// matching how the tool is run from a project checkout.
		if err := godotenv.Overload(); err == nil {
			slog.Info("loaded .env file")
		}

		var err error
		cfg, err = config.Load()
		if err != nil {
			return fmt.Errorf("load configuration: %w", err)
		}

		logging.Setup(cfg.Logging.Level, cfg.Logging.Format)
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
