package errs

type Errorf struct {
	Type      string
	Message   string
	Error     error
	ReturnRaw bool
}

// Generic Errors
const (
	ErrInternal     = "INTERNAL_ERROR"
	ErrUnknown      = "UNKNOWN_ERROR"
	ErrActionFailed = "ACTION_FAILED"
)

// Validation & Input Errors
const (
	ErrInvalidInput  = "INVALID_INPUT"
	ErrMissingField  = "MISSING_FIELD"
	ErrMismatch      = "MISMATCH"
	ErrInvalidFormat = "INVALID_FORMAT"
)

// Crypto Errors
const (
	ErrAuthFailed     = "AUTHENTICATION_FAILED"
	ErrUnsupportedAlg = "UNSUPPORTED_ALGORITHM"
	ErrNotText        = "NOT_UTF8_TEXT"
)

// File & Storage Errors
const (
	ErrFileIO        = "FILE_IO"
	ErrFileNotFound  = "FILE_NOT_FOUND"
	ErrPermission    = "PERMISSION_DENIED"
	ErrStorageFailed = "STORAGE_OPERATION_FAILED"
)
