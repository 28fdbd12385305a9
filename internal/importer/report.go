package importer

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// reportHeader is the fixed first line of the error report.
const reportHeader = "Row Number,Error Description"

// RowError is one reportable validation failure.
type RowError struct {
	RowNumber   int
	Description string
}

// WriteReport overwrites path with the error report: the header line
// followed by one rowNumber,description line per entry in input order.
// The report is replaced every run, never merged with prior runs.
func WriteReport(path string, entries []RowError) error {
	var b strings.Builder
	b.WriteString(reportHeader)
	for _, e := range entries {
		b.WriteByte('\n')
		b.WriteString(strconv.Itoa(e.RowNumber))
		b.WriteByte(',')
		b.WriteString(e.Description)
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("write error report %s: %w", path, err)
	}
	return nil
}
