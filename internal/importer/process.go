package importer

import (
	"strings"

	"github.com/crmkit/custimport/internal/csv"
	"github.com/crmkit/custimport/internal/schema"
	"github.com/crmkit/custimport/internal/store"
)

// headerOffset converts a zero-based data-row index to the row number
// shown in the error report: +1 for the header line, +1 for 1-based
// display.
const headerOffset = 2

// Result is the outcome of processing a single source row.
type Result struct {
	Customer  store.Customer
	Errors    []string
	RowNumber int
}

// Processor validates and normalizes raw rows against a column
// mapping. It holds no mutable state and is safe to reuse across rows.
type Processor struct {
	mapping schema.Mapping
}

// NewProcessor returns a Processor using the given column mapping.
func NewProcessor(m schema.Mapping) *Processor {
	return &Processor{mapping: m}
}

// field returns the raw value for a canonical field, trying each
// mapped source header in order. First present column wins.
func (p *Processor) field(row csv.RawRow, name string) string {
	for _, h := range p.mapping.Headers(name) {
		if v, ok := row[strings.ToLower(h)]; ok {
			return v
		}
	}
	return ""
}

// Process validates one raw row. index is the zero-based position of
// the row within the data section of the source file.
//
// Failed required fields are reported but the record is still emitted
// with the empty marker in place: the import never drops a row.
func (p *Processor) Process(row csv.RawRow, index int) Result {
	var errs []string

	age := ParseAge(p.field(row, "age"))
	if !age.Valid {
		errs = append(errs, "Invalid age")
	}

	email := NormalizeEmail(p.field(row, "email"))
	if email == "" {
		errs = append(errs, "Invalid email format")
	}

	gender := NormalizeGender(p.field(row, "gender"))
	if gender == "" {
		errs = append(errs, "Invalid gender")
	}

	phone := NormalizePhone(p.field(row, "phone"))
	if phone == "" {
		errs = append(errs, "Phone number too short")
	}

	joinedAt := NormalizeDate(p.field(row, "joinedAt"))
	if joinedAt == "" {
		errs = append(errs, "Invalid join date")
	}

	// lastPurchaseAt must parse on its own and land strictly after
	// joinedAt. An invalid joinedAt invalidates lastPurchaseAt too: a
	// comparison against a missing anchor must not silently succeed.
	// YYYY-MM-DD strings order lexicographically, so < is date order.
	lastPurchaseAt := NormalizeDate(p.field(row, "lastPurchaseAt"))
	if lastPurchaseAt != "" && (joinedAt == "" || lastPurchaseAt <= joinedAt) {
		lastPurchaseAt = ""
	}
	if lastPurchaseAt == "" {
		errs = append(errs, "Invalid or earlier last purchase date")
	}

	c := store.Customer{
		ID:                p.field(row, "id"),
		FirstName:         p.field(row, "firstName"),
		LastName:          p.field(row, "lastName"),
		Age:               age,
		Gender:            gender,
		PostalCode:        p.field(row, "postalCode"),
		Email:             email,
		Phone:             phone,
		Membership:        NormalizeMembership(p.field(row, "membership")),
		JoinedAt:          joinedAt,
		LastPurchaseAt:    lastPurchaseAt,
		TotalSpending:     ParseAmount(p.field(row, "totalSpending")),
		AverageOrderValue: ParseAmount(p.field(row, "averageOrderValue")),
		Frequency:         ParseAmount(p.field(row, "frequency")),
		PreferredCategory: NormalizeCategory(p.field(row, "preferredCategory")),
		Churned:           ParseChurned(p.field(row, "churned")),
	}

	return Result{Customer: c, Errors: errs, RowNumber: index + headerOffset}
}
