package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/crmkit/custimport/internal/schema"
)

var templateSample bool

var templateCmd = &cobra.Command{
	Use:   "template",
	Short: "Print a CSV header template for the customer source file",
	Long: `Prints the canonical source header line so operators can hand a valid
template to whoever produces the export. With --sample, one example
data row is included.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		headers := make([]string, len(schema.CustomerFields))
		for i, f := range schema.CustomerFields {
			headers[i] = f.Aliases[0]
		}
		fmt.Println(strings.Join(headers, ","))

		if templateSample {
			cells := make([]string, len(schema.CustomerFields))
			for i, f := range schema.CustomerFields {
				cells[i] = sampleValue(f)
			}
			fmt.Println(strings.Join(cells, ","))
		}
		return nil
	},
}

// sampleValue returns an example cell that passes validation for the
// field's type.
func sampleValue(f schema.FieldSpec) string {
	switch f.Name {
	case "gender":
		return "F"
	case "membership":
		return "silver"
	case "email":
		return "ana@example.com"
	case "phone":
		return "5511987654321"
	case "lastPurchaseAt":
		return "2021-02-10"
	}

	switch f.Type {
	case schema.FieldInt:
		return "30"
	case schema.FieldNumeric:
		return "150.50"
	case schema.FieldDate:
		return "2020-01-15"
	case schema.FieldBool:
		return "no"
	default:
		return "example"
	}
}

func init() {
	templateCmd.Flags().BoolVar(&templateSample, "sample", false, "include one example data row")
	rootCmd.AddCommand(templateCmd)
}
