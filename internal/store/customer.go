// Package store persists the canonical customer collection and the
// per-run import history as JSON documents on disk.
//
// The store format uses the empty string uniformly for missing or
// failed values. For the two non-string fields (age, churned) that
// requires optional scalar types that serialize to "" when absent and
// to the bare value when present.
package store

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Int is an optional integer. Invalid values marshal to "".
type Int struct {
	Value int
	Valid bool
}

// Bool is an optional boolean. Invalid values marshal to "".
type Bool struct {
	Value bool
	Valid bool
}

var emptyMarker = []byte(`""`)

func (i Int) MarshalJSON() ([]byte, error) {
	if !i.Valid {
		return emptyMarker, nil
	}
	return json.Marshal(i.Value)
}

func (i *Int) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, emptyMarker) || bytes.Equal(data, []byte("null")) {
		*i = Int{}
		return nil
	}
	var v int
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode age value: %w", err)
	}
	*i = Int{Value: v, Valid: true}
	return nil
}

func (b Bool) MarshalJSON() ([]byte, error) {
	if !b.Valid {
		return emptyMarker, nil
	}
	return json.Marshal(b.Value)
}

func (b *Bool) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, emptyMarker) || bytes.Equal(data, []byte("null")) {
		*b = Bool{}
		return nil
	}
	var v bool
	if err := json.Unmarshal(data, &v); err != nil {
		return fmt.Errorf("decode churned value: %w", err)
	}
	*b = Bool{Value: v, Valid: true}
	return nil
}

// Customer is one canonical record. Field order matches the persisted
// document so a persist/reload cycle reproduces the file byte for byte.
type Customer struct {
	ID                string  `json:"id"`
	FirstName         string  `json:"firstName"`
	LastName          string  `json:"lastName"`
	Age               Int     `json:"age"`
	Gender            string  `json:"gender"`
	PostalCode        string  `json:"postalCode"`
	Email             string  `json:"email"`
	Phone             string  `json:"phone"`
	Membership        string  `json:"membership"`
	JoinedAt          string  `json:"joinedAt"`
	LastPurchaseAt    string  `json:"lastPurchaseAt"`
	TotalSpending     float64 `json:"totalSpending"`
	AverageOrderValue float64 `json:"averageOrderValue"`
	Frequency         float64 `json:"frequency"`
	PreferredCategory string  `json:"preferredCategory"`
	Churned           Bool    `json:"churned"`
}
