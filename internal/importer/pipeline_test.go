package importer

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/crmkit/custimport/internal/schema"
	"github.com/crmkit/custimport/internal/store"
)

const testCSV = `customer_id,first_name,last_name,age,gender,postal_code,email,phone_number,membership_status,join_date,last_purchase_date,total_spending,average_order_value,frequency,preferred_category,churned
7,Ana,Silva,30,F,01000,ANA@EX.com,(11) 98765-4321,Basic,2020/01/15,2021-02-10,150.5,50.1,3,Books,no
8,Bo,Diaz,,M,02000,bo@ex.com,1234567890,gold,2019-05-01,2018-01-01,,,,N/A,yes
`

func writeTestPaths(t *testing.T) (Options, string) {
	t.Helper()
	dir := t.TempDir()
	source := filepath.Join(dir, "customers.csv")
	if err := os.WriteFile(source, []byte(testCSV), 0o644); err != nil {
		t.Fatal(err)
	}
	return Options{
		Source:      source,
		StorePath:   filepath.Join(dir, "database.json"),
		ReportPath:  filepath.Join(dir, "error_report.csv"),
		HistoryPath: filepath.Join(dir, "import_history.json"),
		Mapping:     schema.DefaultMapping(),
	}, dir
}

func TestRun_EndToEnd(t *testing.T) {
	opts, _ := writeTestPaths(t)

	summary, err := New(opts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if summary.RecordsAdded != 2 {
		t.Errorf("RecordsAdded = %d, want 2", summary.RecordsAdded)
	}
	if summary.StoreTotal != 2 {
		t.Errorf("StoreTotal = %d, want 2", summary.StoreTotal)
	}
	if summary.RunID == "" {
		t.Error("RunID is empty")
	}

	doc, err := store.Read(opts.StorePath)
	if err != nil {
		t.Fatalf("Read store: %v", err)
	}
	if len(doc.Customers) != 2 {
		t.Fatalf("store has %d customers, want 2", len(doc.Customers))
	}

	ana := doc.Customers[0]
	if ana.Email != "ana@ex.com" || ana.Membership != "bronze" || ana.JoinedAt != "2020-01-15" {
		t.Errorf("first record not normalized: %+v", ana)
	}

	// second row: missing age, purchase before join
	bo := doc.Customers[1]
	if bo.Age.Valid {
		t.Errorf("Age = %+v, want empty marker", bo.Age)
	}
	if bo.LastPurchaseAt != "" {
		t.Errorf("LastPurchaseAt = %q, want empty", bo.LastPurchaseAt)
	}
	if bo.PreferredCategory != "" {
		t.Errorf("PreferredCategory = %q, want empty", bo.PreferredCategory)
	}
	if !bo.Churned.Valid || !bo.Churned.Value {
		t.Errorf("Churned = %+v, want true", bo.Churned)
	}
}

func TestRun_ErrorReport(t *testing.T) {
	opts, _ := writeTestPaths(t)

	summary, err := New(opts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	raw, err := os.ReadFile(opts.ReportPath)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}
	lines := strings.Split(string(raw), "\n")

	if lines[0] != "Row Number,Error Description" {
		t.Errorf("header = %q", lines[0])
	}
	if len(lines)-1 != summary.ErrorsLogged {
		t.Errorf("report has %d entries, summary says %d", len(lines)-1, summary.ErrorsLogged)
	}

	// row 2 (Ana) is clean, row 3 (Bo) has age and purchase-date errors
	for _, want := range []string{"3,Invalid age", "3,Invalid or earlier last purchase date"} {
		found := false
		for _, line := range lines[1:] {
			if line == want {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("report missing line %q, got:\n%s", want, raw)
		}
	}
	for _, line := range lines[1:] {
		if strings.HasPrefix(line, "2,") {
			t.Errorf("unexpected error for clean row: %q", line)
		}
	}
}

func TestRun_AppendOnlyNoDedup(t *testing.T) {
	// Importing the same source twice doubles the store. That is the
	// documented behavior, not a bug to fix here.
	opts, _ := writeTestPaths(t)
	p := New(opts)

	if _, err := p.Run(context.Background()); err != nil {
		t.Fatalf("first run: %v", err)
	}
	summary, err := p.Run(context.Background())
	if err != nil {
		t.Fatalf("second run: %v", err)
	}

	if summary.StoreTotal != 4 {
		t.Errorf("StoreTotal after double import = %d, want 4", summary.StoreTotal)
	}
	doc, err := store.Read(opts.StorePath)
	if err != nil {
		t.Fatal(err)
	}
	if len(doc.Customers) != 4 {
		t.Errorf("store has %d customers, want 4", len(doc.Customers))
	}
	if doc.Customers[0].ID != doc.Customers[2].ID {
		t.Errorf("duplicate records differ: %q vs %q", doc.Customers[0].ID, doc.Customers[2].ID)
	}
}

func TestRun_MissingSourceWritesNothing(t *testing.T) {
	opts, dir := writeTestPaths(t)
	opts.Source = filepath.Join(dir, "nope.csv")

	if _, err := New(opts).Run(context.Background()); err == nil {
		t.Fatal("expected error for missing source")
	}

	for _, path := range []string{opts.StorePath, opts.ReportPath, opts.HistoryPath} {
		if _, err := os.Stat(path); !os.IsNotExist(err) {
			t.Errorf("output %s written despite fatal source error", path)
		}
	}
}

func TestRun_CorruptStoreRecovered(t *testing.T) {
	opts, _ := writeTestPaths(t)
	if err := os.WriteFile(opts.StorePath, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	summary, err := New(opts).Run(context.Background())
	if err != nil {
		t.Fatalf("Run with corrupt store: %v", err)
	}
	if summary.StoreTotal != 2 {
		t.Errorf("StoreTotal = %d, want 2 (corrupt store treated as empty)", summary.StoreTotal)
	}
}

func TestRun_CancelledContext(t *testing.T) {
	opts, _ := writeTestPaths(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := New(opts).Run(ctx); err == nil {
		t.Fatal("expected cancellation error")
	}
	if _, err := os.Stat(opts.StorePath); !os.IsNotExist(err) {
		t.Error("store written despite cancellation")
	}
}

func TestRun_HistoryAppended(t *testing.T) {
	opts, _ := writeTestPaths(t)
	p := New(opts)

	for i := 0; i < 2; i++ {
		if _, err := p.Run(context.Background()); err != nil {
			t.Fatalf("run %d: %v", i, err)
		}
	}

	raw, err := os.ReadFile(opts.HistoryPath)
	if err != nil {
		t.Fatalf("read history: %v", err)
	}
	var hist store.History
	if err := json.Unmarshal(raw, &hist); err != nil {
		t.Fatalf("decode history: %v", err)
	}
	if len(hist.Runs) != 2 {
		t.Fatalf("history has %d runs, want 2", len(hist.Runs))
	}
	first, second := hist.Runs[0], hist.Runs[1]
	if first.ID == second.ID || first.ID == "" {
		t.Errorf("run IDs not unique: %q, %q", first.ID, second.ID)
	}
	if first.RecordsAdded != 2 || second.RecordsAdded != 2 {
		t.Errorf("history counts wrong: %+v", hist.Runs)
	}
}

func TestWriteReport_Empty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.csv")
	if err := WriteReport(path, nil); err != nil {
		t.Fatal(err)
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(raw) != "Row Number,Error Description" {
		t.Errorf("empty report = %q", raw)
	}
}
