// Package registry is the static catalog of record types the service serves.
// Every route group, migration and attachment directory is driven from the
// schemas below, so adding a record type is a registry entry plus a model.
package registry

// KeyKind says how an entity key appears in a URL path.
type KeyKind int

const (
	// KeyString keys are natural identifiers (names, plate numbers).
	KeyString KeyKind = iota
	// KeyInt keys are auto-increment row ids.
	KeyInt
)

// DocumentSchema describes the attachments table tied to an entity.
type DocumentSchema struct {
	// Table is the attachment rows table.
	Table string
	// Dir is the directory under the upload root holding the files.
	Dir string
	// Typed entities file documents under a named slot (visa, license, ...)
	// and accumulate rows; untyped entities hold receipts with no slot.
	Typed bool
	// Replace makes an upload displace the previous receipt instead of
	// accumulating.
	Replace bool
	// Prefix is prepended to stored file names, when the legacy layout
	// used one.
	Prefix string
}

// Schema describes one record type.
type Schema struct {
	// Name is the plural route segment, e.g. "employees".
	Name string
	// Table is the database table.
	Table string
	// KeyField is the key column.
	KeyField string
	// KeyKind is how the key parses from the path.
	KeyKind KeyKind
	// Columns are the non-key columns, in declaration order. Updates write
	// exactly this set so a full replace clears omitted fields.
	Columns []string
	// Documents is nil for entities without attachments.
	Documents *DocumentSchema
}

var schemas = map[string]Schema{
	"employees": {
		Name:     "employees",
		Table:    "employees",
		KeyField: "employee",
		KeyKind:  KeyString,
		Columns: []string{
			"refered_as", "designation", "contact_no", "whatsapp_no",
			"salary", "visa_outstanding", "advance_avl", "visa_under",
			"visa_exp", "nationality", "eid", "health_ins_exp",
			"emp_ins_exp", "license_exp",
		},
		Documents: &DocumentSchema{
			Table: "employee_documents",
			Dir:   "EmployeeDocs",
			Typed: true,
		},
	},
	"other-employees": {
		Name:     "other-employees",
		Table:    "other_employees",
		KeyField: "employee",
		KeyKind:  KeyString,
		Columns: []string{
			"owner", "refered_as", "designation", "contact_no",
			"whatsapp_no", "visa_under", "visa_exp", "nationality",
			"eid", "health_ins_exp", "emp_ins_exp", "license_exp",
		},
		Documents: &DocumentSchema{
			Table: "other_employee_documents",
			Dir:   "OtherEmployeeDocs",
			Typed: true,
		},
	},
	"trucks": {
		Name:     "trucks",
		Table:    "trucks",
		KeyField: "truck_number",
		KeyKind:  KeyString,
		Columns: []string{
			"driver", "year", "vehicle_under", "trailer_no", "country",
			"mulkiya_exp", "ins_exp", "truck_value",
		},
		Documents: &DocumentSchema{
			Table: "truck_documents",
			Dir:   "TruckDocs",
			Typed: true,
		},
	},
	"other-trucks": {
		Name:     "other-trucks",
		Table:    "other_trucks",
		KeyField: "truck_number",
		KeyKind:  KeyString,
		Columns: []string{
			"owner", "driver", "year", "vehicle_under", "trailer_no",
			"country", "mulkiya_exp", "ins_exp",
		},
		Documents: &DocumentSchema{
			Table: "other_truck_documents",
			Dir:   "OtherTruckDocs",
			Typed: true,
		},
	},
	"trailers": {
		Name:     "trailers",
		Table:    "trailers",
		KeyField: "trailer_no",
		KeyKind:  KeyString,
		Columns: []string{
			"company_under", "mulkiya_exp", "oman_ins_exp", "asset_value",
		},
		Documents: &DocumentSchema{
			Table: "trailer_documents",
			Dir:   "TrailerDocs",
			Typed: true,
		},
	},
	"other-trailers": {
		Name:     "other-trailers",
		Table:    "other_trailer",
		KeyField: "trailer_no",
		KeyKind:  KeyString,
		Columns: []string{
			"owner", "company_under", "mulkiya_exp", "oman_ins_exp",
		},
		Documents: &DocumentSchema{
			Table: "other_trailer_documents",
			Dir:   "OtherTrailerDocs",
			Typed: true,
		},
	},
	"clients": {
		Name:     "clients",
		Table:    "clients",
		KeyField: "name",
		KeyKind:  KeyString,
		Columns: []string{
			"address", "tel_no", "po_box", "trn_no", "contact_person",
			"person_number",
		},
	},
	"suppliers": {
		Name:     "suppliers",
		Table:    "suppliers",
		KeyField: "name",
		KeyKind:  KeyString,
		Columns: []string{
			"tel_no", "contact_person", "phone_no", "about",
		},
	},
	"other-owners": {
		Name:     "other-owners",
		Table:    "other_owner",
		KeyField: "name",
		KeyKind:  KeyString,
		Columns: []string{
			"contact", "remarks", "eid",
		},
	},
	// company is a bare name list; nothing to update besides the key.
	"companies": {
		Name:     "companies",
		Table:    "company",
		KeyField: "Name",
		KeyKind:  KeyString,
	},
	"maintenance": {
		Name:     "maintenance",
		Table:    "truckmaintenance",
		KeyField: "id",
		KeyKind:  KeyInt,
		Columns: []string{
			"date", "driver_name", "truck_number", "vehicle_under",
			"maintenance_detail", "credit_card", "bank", "cash", "vat",
			"total", "status", "supplier",
		},
		Documents: &DocumentSchema{
			Table:   "truckmaintenance_receipts",
			Dir:     "TruckMaintenanceDocs",
			Replace: true,
		},
	},
	"fines": {
		Name:     "fines",
		Table:    "fines",
		KeyField: "id",
		KeyKind:  KeyInt,
		Columns: []string{
			"trip_id", "reason", "truck_number", "driver_name",
			"driver_fault", "fine_date", "amount", "payment_status",
		},
		Documents: &DocumentSchema{
			Table:   "fine_documents",
			Dir:     "FineDocs",
			Replace: true,
		},
	},
	"salaries": {
		Name:     "salaries",
		Table:    "salary",
		KeyField: "id",
		KeyKind:  KeyInt,
		Columns: []string{
			"employee", "month_year", "base_salary", "working_days",
			"trip_allowance", "visa_deduction", "fine_deduction",
			"advance_deduction", "net_salary", "generated_at",
		},
		Documents: &DocumentSchema{
			Table:   "salary_documents",
			Dir:     "SalaryDocs",
			Replace: true,
			Prefix:  "salary_",
		},
	},
	"trips": {
		Name:     "trips",
		Table:    "trips",
		KeyField: "trip_id",
		KeyKind:  KeyInt,
		Columns: []string{
			"return_load", "date", "destination_country",
			"service_provider", "client", "trip_description", "truck_no",
			"driver", "other_truck_no", "other_driver",
			"other_driver_contact", "company_rate", "driver_rate",
			"diesel", "diesel_sold", "advance", "advance_usage_details",
			"advance_expense", "trip_rate", "uae_border",
			"uae_border_details", "international_border",
			"international_border_details", "extra_delivery",
			"extra_delivery_details", "driver_extra_rate", "extra_charges",
			"extra_charges_details", "lpo_no", "dio_no", "tir_no",
			"tir_price", "investor1_share", "investor2_share",
			"investor3_share", "investor4_share", "investor5_share",
			"custom", "paid_by_client", "paid_by_client_details",
			"receivable_client", "receivable_status", "outsource_payment",
			"payable_status", "truck_profit", "company_profit",
			"other_owner", "other_owner_number",
		},
	},
	"inventory": {
		Name:     "inventory",
		Table:    "inventory",
		KeyField: "id",
		KeyKind:  KeyInt,
		Columns: []string{
			"name", "supplier", "supplier_contact", "remarks", "quantity",
		},
	},
	"investors": {
		Name:     "investors",
		Table:    "investors",
		KeyField: "id",
		KeyKind:  KeyInt,
		Columns: []string{
			"name", "contact_no", "details",
		},
	},
	"investor1-accounts": {
		Name:     "investor1-accounts",
		Table:    "investor1_accounts",
		KeyField: "id",
		KeyKind:  KeyInt,
		Columns: []string{
			"investor_id", "trip_id", "fixed_tir_price", "sold_tir_price",
			"amount_due", "paid",
		},
	},
	"investor2-accounts": {
		Name:     "investor2-accounts",
		Table:    "investor2_accounts",
		KeyField: "id",
		KeyKind:  KeyInt,
		Columns: []string{
			"investor_id", "trip_id", "amount_due", "paid",
		},
	},
}

// Describe returns the schema for an entity name. Unknown names are a wiring
// bug, so it panics rather than returning an error.
func Describe(name string) Schema {
	s, ok := schemas[name]
	if !ok {
		panic("registry: unknown entity " + name)
	}
	return s
}

// DocumentTables lists every attachments table for migration.
func DocumentTables() []string {
	var tables []string
	for _, s := range schemas {
		if s.Documents != nil {
			tables = append(tables, s.Documents.Table)
		}
	}
	return tables
}
