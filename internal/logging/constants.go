package logging

// Standardized field names for structured logging.
const (
	FieldMerchant   = "merchant"
	FieldCategory   = "category"
	FieldPattern    = "pattern"
	FieldSource     = "source"
	FieldStrategy   = "strategy"
	FieldConfidence = "confidence"
	FieldBatchSize  = "batch_size"
	FieldBatchIndex = "batch_index"
	FieldCount      = "count"
	FieldFile       = "file_path"
	FieldInputFile  = "input_file"
	FieldOutputFile = "output_file"
	FieldProvider   = "provider"
	FieldModel      = "model"
)
