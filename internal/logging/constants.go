package logging

// Standardized field names for structured logging.
const (
	FieldMerchantKey   = "merchant_key"
	FieldMatchedKey    = "matched_key"
	FieldDescription   = "description"
	FieldTransactionID = "transaction_id"
	FieldCategory      = "category"
	FieldPrevious      = "previous_category"
	FieldStrategy      = "strategy"
	FieldOperation     = "operation"
	FieldCount         = "count"
	FieldUpdated       = "updated"
	FieldDatabase      = "database"
	FieldFile          = "file_path"
	FieldRow           = "row"
	FieldDuration      = "duration_ms"
)
