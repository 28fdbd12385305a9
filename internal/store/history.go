package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"time"
)

// Run records one completed import invocation.
type Run struct {
	ID           string    `json:"id"`
	Source       string    `json:"source"`
	StartedAt    time.Time `json:"startedAt"`
	FinishedAt   time.Time `json:"finishedAt"`
	RecordsAdded int       `json:"recordsAdded"`
	ErrorsLogged int       `json:"errorsLogged"`
}

// History is the persisted run log, one entry per import, oldest first.
type History struct {
	Runs []Run `json:"runs"`
}

// LoadHistory reads the run log at path. The history is operational
// metadata, so a missing or corrupt file is recovered as empty under
// the same degraded policy as the customer store.
func LoadHistory(path string) *History {
	h := &History{Runs: []Run{}}
	raw, err := os.ReadFile(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("run history unreadable, starting empty", "path", path, "error", err)
		}
		return h
	}
	if err := json.Unmarshal(raw, h); err != nil {
		slog.Warn("run history malformed, starting empty", "path", path, "error", err)
		return &History{Runs: []Run{}}
	}
	if h.Runs == nil {
		h.Runs = []Run{}
	}
	return h
}

// Append adds a run to the end of the log.
func (h *History) Append(run Run) {
	h.Runs = append(h.Runs, run)
}

// Save overwrites path with the indented JSON log.
func (h *History) Save(path string) error {
	data, err := json.MarshalIndent(h, "", "  ")
	if err != nil {
		return fmt.Errorf("encode run history: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write run history %s: %w", path, err)
	}
	return nil
}
