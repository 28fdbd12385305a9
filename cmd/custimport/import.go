package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/crmkit/custimport/internal/importer"
	"github.com/crmkit/custimport/internal/schema"
)

var (
	importSource  string
	importMapping string
)

var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Run the customer import once",
	Long: `Reads the source file top to bottom, validates and normalizes every
row, appends the records to the customer store, and overwrites the
error report. Rows with invalid fields are reported but never dropped.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		mapping := schema.DefaultMapping()
		mappingPath := importMapping
		if mappingPath == "" {
			mappingPath = cfg.Import.MappingPath
		}
		if mappingPath != "" {
			m, err := schema.LoadMapping(mappingPath)
			if err != nil {
				return err
			}
			mapping = m
		}

		source := importSource
		if source == "" {
			source = cfg.Import.Source
		}

		pipeline := importer.New(importer.Options{
			Source:      source,
			StorePath:   cfg.Import.StorePath,
			ReportPath:  cfg.Import.ReportPath,
			HistoryPath: cfg.Import.HistoryPath,
			Mapping:     mapping,
		})

		summary, err := pipeline.Run(cmd.Context())
		if err != nil {
			return err
		}

		fmt.Printf("Import finished.\n")
		fmt.Printf("  %d records added (%d total in store).\n", summary.RecordsAdded, summary.StoreTotal)
		fmt.Printf("  %d errors logged in %s\n", summary.ErrorsLogged, cfg.Import.ReportPath)
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importSource, "source", "", "source CSV file (overrides IMPORT_SOURCE)")
	importCmd.Flags().StringVar(&importMapping, "mapping", "", "column-mapping YAML file (overrides IMPORT_MAPPING_PATH)")
	rootCmd.AddCommand(importCmd)
}
