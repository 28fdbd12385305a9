// Package importer implements the customer import pipeline: decode a
// delimited source file, validate and normalize each row, append the
// records to the persisted customer store, and write the error report.
package importer

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/crmkit/custimport/internal/csv"
	"github.com/crmkit/custimport/internal/schema"
	"github.com/crmkit/custimport/internal/store"
)

// contextCheckInterval is how often (in rows) cancellation is checked.
const contextCheckInterval = 100

// Options configure a Pipeline run.
type Options struct {
	Source      string // delimited input file with a header row
	StorePath   string // customer store JSON document, overwritten per run
	ReportPath  string // error report, overwritten per run
	HistoryPath string // run history JSON; empty disables history
	Mapping     schema.Mapping
}

// Pipeline orchestrates one import run. Runs are single-threaded and
// single-pass; concurrent invocations against the same output paths
// race and are not supported.
type Pipeline struct {
	opts      Options
	processor *Processor
}

// New returns a Pipeline for the given options.
func New(opts Options) *Pipeline {
	return &Pipeline{opts: opts, processor: NewProcessor(opts.Mapping)}
}

// Summary is the operator-facing outcome of a run.
type Summary struct {
	RunID        string
	RecordsAdded int
	ErrorsLogged int
	StoreTotal   int
}

// Run executes the import once.
//
// Source decoding failures abort before any output is written. A
// missing or corrupt prior store is recovered as an empty store.
// Output-write failures are fatal and surfaced to the caller; by then
// some outputs may already have been replaced, writes are not atomic
// across files.
func (p *Pipeline) Run(ctx context.Context) (Summary, error) {
	started := time.Now().UTC()
	runID := uuid.NewString()
	log := slog.Default().With("run_id", runID, "source", p.opts.Source)

	rows, err := csv.Decode(p.opts.Source)
	if err != nil {
		return Summary{}, err
	}
	log.Info("source decoded", "rows", len(rows))

	records := make([]store.Customer, 0, len(rows))
	var entries []RowError
	for i, row := range rows {
		if i%contextCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return Summary{}, fmt.Errorf("import cancelled at row %d: %w", i+headerOffset, err)
			}
		}
		res := p.processor.Process(row, i)
		records = append(records, res.Customer)
		for _, desc := range res.Errors {
			entries = append(entries, RowError{RowNumber: res.RowNumber, Description: desc})
		}
	}

	doc := store.Load(p.opts.StorePath)
	doc.Append(records...)

	if err := doc.Save(p.opts.StorePath); err != nil {
		return Summary{}, err
	}
	if err := WriteReport(p.opts.ReportPath, entries); err != nil {
		return Summary{}, err
	}

	summary := Summary{
		RunID:        runID,
		RecordsAdded: len(records),
		ErrorsLogged: len(entries),
		StoreTotal:   len(doc.Customers),
	}

	if p.opts.HistoryPath != "" {
		hist := store.LoadHistory(p.opts.HistoryPath)
		hist.Append(store.Run{
			ID:           runID,
			Source:       p.opts.Source,
			StartedAt:    started,
			FinishedAt:   time.Now().UTC(),
			RecordsAdded: summary.RecordsAdded,
			ErrorsLogged: summary.ErrorsLogged,
		})
		if err := hist.Save(p.opts.HistoryPath); err != nil {
			return Summary{}, err
		}
	}

	log.Info("import complete",
		"records_added", summary.RecordsAdded,
		"errors_logged", summary.ErrorsLogged,
		"store_total", summary.StoreTotal,
		"duration", time.Since(started),
	)
	return summary, nil
}
