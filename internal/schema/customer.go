package schema

// CustomerFields defines the expected source columns for customer
// data. The snake_case header is canonical; the camelCase form seen in
// older exports is accepted as an alias.
//
// Money and frequency columns are not marked Required: absent or
// unparseable values default to zero instead of producing an error.
var CustomerFields = []FieldSpec{
	{Name: "id", Aliases: []string{"customer_id", "id"}, Type: FieldText},
	{Name: "firstName", Aliases: []string{"first_name", "firstName"}, Type: FieldText},
	{Name: "lastName", Aliases: []string{"last_name", "lastName"}, Type: FieldText},
	{Name: "age", Aliases: []string{"age"}, Type: FieldInt, Required: true},
	{Name: "gender", Aliases: []string{"gender"}, Type: FieldEnum, Required: true},
	{Name: "postalCode", Aliases: []string{"postal_code", "postalCode"}, Type: FieldText},
	{Name: "email", Aliases: []string{"email"}, Type: FieldText, Required: true},
	{Name: "phone", Aliases: []string{"phone_number", "phone"}, Type: FieldText, Required: true},
	{Name: "membership", Aliases: []string{"membership_status", "membership"}, Type: FieldEnum},
	{Name: "joinedAt", Aliases: []string{"join_date", "joinedAt"}, Type: FieldDate, Required: true},
	{Name: "lastPurchaseAt", Aliases: []string{"last_purchase_date", "lastPurchaseAt"}, Type: FieldDate, Required: true},
	{Name: "totalSpending", Aliases: []string{"total_spending", "totalSpending"}, Type: FieldNumeric},
	{Name: "averageOrderValue", Aliases: []string{"average_order_value", "averageOrderValue"}, Type: FieldNumeric},
	{Name: "frequency", Aliases: []string{"frequency"}, Type: FieldNumeric},
	{Name: "preferredCategory", Aliases: []string{"preferred_category", "preferredCategory"}, Type: FieldText},
	{Name: "churned", Aliases: []string{"churned"}, Type: FieldBool},
}

// FieldByName returns the field definition for a canonical field name.
func FieldByName(name string) (FieldSpec, bool) {
	for _, f := range CustomerFields {
		if f.Name == name {
			return f, true
		}
	}
	return FieldSpec{}, false
}
