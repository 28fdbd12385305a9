// Package schema defines the customer source-column model: field
// specifications and the versioned mapping between source headers and
// canonical record fields.
package schema

// FieldType represents the expected data type for a source column.
type FieldType int

const (
	FieldText FieldType = iota
	FieldEnum
	FieldDate
	FieldNumeric
	FieldBool
	FieldInt
)

// FieldSpec describes one canonical customer field and the source
// columns it may be read from.
type FieldSpec struct {
	Name    string   // canonical field name: "joinedAt"
	Aliases []string // accepted source headers, first present column wins

	Type FieldType

	// Required marks fields whose failed validation is reported in the
	// error log. The record is still emitted either way; the import
	// never drops a row.
	Required bool
}
