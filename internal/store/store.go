package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
)

// Document is the persisted customer store: a single "customers" field
// holding the ordered record list. Records are append-only across
// imports; no de-duplication by id is performed.
type Document struct {
	Customers []Customer `json:"customers"`
}

// Read parses the document at path, failing on any read or decode
// error. Use Load when a broken prior store should not stop a run.
func Read(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read customer store %s: %w", path, err)
	}
	doc := &Document{}
	if err := json.Unmarshal(raw, doc); err != nil {
		return nil, fmt.Errorf("decode customer store %s: %w", path, err)
	}
	if doc.Customers == nil {
		doc.Customers = []Customer{}
	}
	return doc, nil
}

// Load reads the document at path, recovering from a missing, empty,
// or malformed file with an empty document. A corrupt prior store must
// not abort a new import, so failures are logged and swallowed here.
func Load(path string) *Document {
	doc, err := Read(path)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			slog.Warn("customer store unreadable, starting empty", "path", path, "error", err)
		}
		return &Document{Customers: []Customer{}}
	}
	return doc
}

// Append adds records to the end of the collection in order.
func (d *Document) Append(records ...Customer) {
	d.Customers = append(d.Customers, records...)
}

// Save overwrites path with the indented JSON document.
func (d *Document) Save(path string) error {
	data, err := json.MarshalIndent(d, "", "  ")
	if err != nil {
		return fmt.Errorf("encode customer store: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write customer store %s: %w", path, err)
	}
	return nil
}
