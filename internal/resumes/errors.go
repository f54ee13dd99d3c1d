package resumes

import "errors"

var (
	ErrNoFile    = errors.New("no file uploaded")
	ErrEmptyFile = errors.New("empty file uploaded")
	ErrNotFound  = errors.New("not found")
	ErrStorage   = errors.New("storage failure")
)

const (
	ErrorCodeNoFile            = "no_file"
	ErrorCodeEmptyFile         = "empty_file"
	ErrorCodeUnsupportedFormat = "unsupported_format"
	ErrorCodeCorruptDocument   = "corrupt_document"
	ErrorCodeEmptyExtraction   = "empty_extraction"
	ErrorCodeValidation        = "validation_error"
	ErrorCodeConfig            = "config_error"
	ErrorCodeAIService         = "ai_service_error"
	ErrorCodeStorage           = "storage_error"
	ErrorCodeNotFound          = "not_found"
	ErrorCodeInternal          = "internal_error"
)
