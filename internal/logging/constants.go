package logging

// Standardized field names for structured logging.
// These constants keep log output consistent across the application,
// making it easier to parse, filter, and analyze.
const (
	FieldFile       = "file_path"
	FieldDelimiter  = "delimiter"
	FieldLine       = "line"
	FieldRecordID   = "record_id"
	FieldCustomer   = "customer"
	FieldBalance    = "balance"
	FieldAgingDays  = "aging_days"
	FieldStatus     = "status"
	FieldReason     = "reason"
	FieldCount      = "count"
	FieldError      = "error"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
)
