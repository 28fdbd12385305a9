package store

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func TestIntMarshal(t *testing.T) {
	tests := []struct {
		in   Int
		want string
	}{
		{Int{Value: 30, Valid: true}, "30"},
		{Int{Value: 0, Valid: true}, "0"},
		{Int{}, `""`},
	}

	for _, tt := range tests {
		got, err := json.Marshal(tt.in)
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != tt.want {
			t.Errorf("Marshal(%+v) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestIntUnmarshal(t *testing.T) {
	tests := []struct {
		in   string
		want Int
	}{
		{"30", Int{Value: 30, Valid: true}},
		{"0", Int{Value: 0, Valid: true}},
		{`""`, Int{}},
		{"null", Int{}},
	}

	for _, tt := range tests {
		var got Int
		if err := json.Unmarshal([]byte(tt.in), &got); err != nil {
			t.Fatalf("Unmarshal(%s): %v", tt.in, err)
		}
		if got != tt.want {
			t.Errorf("Unmarshal(%s) = %+v, want %+v", tt.in, got, tt.want)
		}
	}

	var bad Int
	if err := json.Unmarshal([]byte(`"abc"`), &bad); err == nil {
		t.Error("expected error for non-empty string age")
	}
}

func TestBoolRoundTrip(t *testing.T) {
	for _, in := range []Bool{{}, {Value: true, Valid: true}, {Value: false, Valid: true}} {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatal(err)
		}
		var out Bool
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatal(err)
		}
		if out != in {
			t.Errorf("round trip %+v -> %s -> %+v", in, data, out)
		}
	}
}

func testCustomer() Customer {
	return Customer{
		ID:                "7",
		FirstName:         "Ana",
		LastName:          "Silva",
		Age:               Int{Value: 30, Valid: true},
		Gender:            "F",
		PostalCode:        "01000",
		Email:             "ana@ex.com",
		Phone:             "11987654321",
		Membership:        "bronze",
		JoinedAt:          "2020-01-15",
		LastPurchaseAt:    "2021-02-10",
		TotalSpending:     150.5,
		AverageOrderValue: 50.1,
		Frequency:         3,
		PreferredCategory: "Books",
		Churned:           Bool{},
	}
}

func TestDocumentRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")

	doc := &Document{}
	doc.Append(testCustomer(), Customer{ID: "8"})
	if err := doc.Save(path); err != nil {
		t.Fatal(err)
	}

	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	loaded, err := Read(path)
	if err != nil {
		t.Fatal(err)
	}
	if !reflect.DeepEqual(loaded, doc) {
		t.Errorf("reloaded document differs:\n%+v\n%+v", loaded, doc)
	}

	// a second save must reproduce the file byte for byte
	if err := loaded.Save(path); err != nil {
		t.Fatal(err)
	}
	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(first, second) {
		t.Error("persist/reload cycle changed the document bytes")
	}
}

func TestLoadMissingFile(t *testing.T) {
	doc := Load(filepath.Join(t.TempDir(), "nope.json"))
	if doc == nil || len(doc.Customers) != 0 {
		t.Errorf("Load of missing file = %+v, want empty document", doc)
	}
}

func TestLoadCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	if err := os.WriteFile(path, []byte("{broken"), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := Load(path)
	if len(doc.Customers) != 0 {
		t.Errorf("Load of corrupt file = %+v, want empty document", doc)
	}
}

func TestLoadNullCustomers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	if err := os.WriteFile(path, []byte(`{"customers": null}`), 0o644); err != nil {
		t.Fatal(err)
	}
	doc := Load(path)
	if doc.Customers == nil {
		t.Error("Customers is nil, want empty slice")
	}
}

func TestHistoryDegradedLoad(t *testing.T) {
	dir := t.TempDir()

	h := LoadHistory(filepath.Join(dir, "nope.json"))
	if len(h.Runs) != 0 {
		t.Errorf("missing history = %+v, want empty", h)
	}

	path := filepath.Join(dir, "history.json")
	if err := os.WriteFile(path, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	h = LoadHistory(path)
	if len(h.Runs) != 0 {
		t.Errorf("corrupt history = %+v, want empty", h)
	}
}
