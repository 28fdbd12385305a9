package importer

// validate.go holds the pure field validators. Each one takes the raw
// cell value and returns either a normalized value or the empty
// string, the uniform marker for missing or failed values. None of
// them touch any state, so they compose in any order; only the
// join-date/last-purchase cross-check lives outside this file.

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/crmkit/custimport/internal/store"
)

// emailPattern is the deliberately loose shape the source system has
// always accepted: non-space, @, non-space, dot, non-space.
var emailPattern = regexp.MustCompile(`\S+@\S+\.\S+`)

// dateLayouts lists the accepted source date forms. Only four-digit
// years; two-digit years are ambiguous and rejected outright.
var dateLayouts = []string{
	"2006-01-02", "2006/01/02", "2006.01.02",
	"1/2/2006", "01/02/2006", "1-2-2006", "01-02-2006",
	"Jan 2, 2006", "2 Jan 2006",
}

// Valid join/purchase dates must fall inside this year window.
const (
	minYear = 2000
	maxYear = 2025
)

// NormalizeEmail lowercases the address and checks the loose email
// shape.
func NormalizeEmail(s string) string {
	s = strings.ToLower(s)
	if !emailPattern.MatchString(s) {
		return ""
	}
	return s
}

// NormalizePhone strips every non-digit character and requires at
// least ten digits to remain.
func NormalizePhone(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	if b.Len() < 10 {
		return ""
	}
	return b.String()
}

// NormalizeDate parses a calendar date and reformats it to
// YYYY-MM-DD. Unparseable input or a year outside [2000, 2025] is
// rejected. Parsing is locale-independent: only the listed layouts
// are accepted.
func NormalizeDate(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	for _, layout := range dateLayouts {
		t, err := time.Parse(layout, s)
		if err != nil {
			continue
		}
		if t.Year() < minYear || t.Year() > maxYear {
			return ""
		}
		return t.Format("2006-01-02")
	}
	return ""
}

// NormalizeMembership maps membership tiers onto bronze/silver/gold.
// The legacy "basic" tier reads as bronze; every other value,
// including a literal "bronze", is outside the source vocabulary and
// rejected.
func NormalizeMembership(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "basic":
		return "bronze"
	case "silver":
		return "silver"
	case "gold":
		return "gold"
	}
	return ""
}

// NormalizeGender accepts only the M/F codes used by the source
// system.
func NormalizeGender(s string) string {
	if s == "M" || s == "F" {
		return s
	}
	return ""
}

// ParseChurned maps boolean-ish tokens onto a tri-state churn flag.
func ParseChurned(s string) store.Bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes", "1", "true":
		return store.Bool{Value: true, Valid: true}
	case "n", "no", "0", "false":
		return store.Bool{Value: false, Valid: true}
	}
	return store.Bool{}
}

// ParseAge parses a non-negative integer age.
func ParseAge(s string) store.Int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return store.Int{}
	}
	return store.Int{Value: n, Valid: true}
}

// categoryPlaceholders are source values that mean "not captured".
// Matching is case-sensitive on the trimmed value.
var categoryPlaceholders = map[string]struct{}{
	"Unknown":          {},
	"TBD":              {},
	"To Be Determined": {},
	"N/A":              {},
}

// NormalizeCategory collapses placeholder categories to the empty
// marker and passes everything else through unchanged.
func NormalizeCategory(s string) string {
	if _, ok := categoryPlaceholders[strings.TrimSpace(s)]; ok {
		return ""
	}
	return s
}

// ParseAmount parses a non-negative decimal, defaulting to zero when
// the cell is absent or unparseable. Money and frequency columns never
// produce validation errors.
func ParseAmount(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil || v < 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
