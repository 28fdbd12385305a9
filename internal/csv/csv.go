// Package csv reads delimited source files into header-keyed rows.
//
// Source files come from spreadsheet exports, so cells are cleaned of
// the usual Excel artifacts (UTF-8 BOM, ="..." formula quoting,
// surrounding whitespace) before any validation sees them.
package csv

import (
	stdcsv "encoding/csv"
	"fmt"
	"os"
	"strings"
)

// RawRow maps a lowercased source column header to its cell value for
// one data line. RawRows live only for the duration of a run.
type RawRow map[string]string

// CleanHeader normalizes a header cell: BOM strip, trim, formula
// unwrap, lowercase. Row keys are built from cleaned headers.
func CleanHeader(s string) string {
	return strings.ToLower(CleanCell(s))
}

// CleanCell strips the UTF-8 BOM, trims surrounding whitespace, and
// unwraps Excel's ="..." formula quoting without changing case.
func CleanCell(s string) string {
	s = strings.TrimPrefix(s, "\ufeff")
	s = strings.TrimSpace(s)
	if strings.HasPrefix(s, `="`) && strings.HasSuffix(s, `"`) && len(s) >= 3 {
		s = s[2 : len(s)-1]
	}
	return s
}

// Read parses the file at path and returns all rows including the
// header. Ragged rows are tolerated; absent cells surface as missing
// columns during decoding.
func Read(path string) ([][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open source file: %w", err)
	}
	defer f.Close()

	r := stdcsv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("parse source file %s: %w", path, err)
	}
	return rows, nil
}

// Decode reads the file at path and returns one RawRow per data line,
// using the first line as the field-name header. Any read or parse
// failure is fatal for the run: the caller must not have written any
// output yet.
func Decode(path string) ([]RawRow, error) {
	rows, err := Read(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("source file %s has no header row", path)
	}

	header := make([]string, len(rows[0]))
	for i, h := range rows[0] {
		header[i] = CleanHeader(h)
	}

	out := make([]RawRow, 0, len(rows)-1)
	for _, row := range rows[1:] {
		rr := make(RawRow, len(header))
		for i, h := range header {
			if h == "" || i >= len(row) {
				continue
			}
			rr[h] = CleanCell(row[i])
		}
		out = append(out, rr)
	}
	return out, nil
}
