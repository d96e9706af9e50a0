package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details.
const (
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"
	ErrMsgGardenUnavailable     = "Garden is not running"
	ErrMsgExportFailed          = "Failed to export save"
	ErrMsgImportInvalid         = "Save data is invalid"
	ErrMsgImportFailed          = "Failed to import save"
	ErrMsgNotReady              = "Garden loop is not responding"
)

// Log messages
const (
	LogMsgDecodeFailed     = "Failed to decode request"
	LogMsgValidationFailed = "Request validation failed"
	LogMsgCommandRejected  = "Garden command rejected"
	LogMsgCommandFailed    = "Garden command could not run"
	LogMsgEncodeFailed     = "Failed to encode JSON response"
	LogMsgWriteFailed      = "Failed to write response buffer"
	LogMsgImported         = "Save imported"
	LogMsgReadinessFailed  = "Readiness check failed"
)
