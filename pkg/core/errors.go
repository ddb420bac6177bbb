package core

import (
	"fmt"
)

// ErrorCategory classifies a report generation failure.
type ErrorCategory int

const (
	ErrCategoryNone       ErrorCategory = iota // No error
	ErrCategoryInput                           // Data file missing or unparsable
	ErrCategoryValidation                      // Payload missing fields or invalid reportType
	ErrCategoryWrite                           // Directory or file write failed
	ErrCategoryLink                            // Latest-pointer maintenance failed (recoverable)
)

// String returns the string representation of ErrorCategory.
func (c ErrorCategory) String() string {
	switch c {
	case ErrCategoryNone:
		return "none"
	case ErrCategoryInput:
		return "input"
	case ErrCategoryValidation:
		return "validation"
	case ErrCategoryWrite:
		return "write"
	case ErrCategoryLink:
		return "link"
	default:
		return "unknown"
	}
}

// IsFatal returns true if errors in this category abort report generation.
// Link errors are degraded to a fallback instead of failing the run.
func (c ErrorCategory) IsFatal() bool {
	return c == ErrCategoryInput || c == ErrCategoryValidation || c == ErrCategoryWrite
}

// ReportError represents a structured error with category and a stable
// message prefix callers can pattern-match on.
type ReportError struct {
	Category ErrorCategory
	Code     string // Machine-readable code: data_file_not_found, invalid_report_type, etc.
	Message  string // Human-readable message, starts with the stable prefix
	Cause    error  // Underlying error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

// Unwrap returns the underlying error for errors.Is/As support.
func (e *ReportError) Unwrap() error {
	return e.Cause
}

// Is reports whether target is a ReportError with the same code, so
// predefined errors work with errors.Is after WithCause/WithDetail copies.
func (e *ReportError) Is(target error) bool {
	t, ok := target.(*ReportError)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithCause returns a copy of the error with the given cause.
func (e *ReportError) WithCause(cause error) *ReportError {
	return &ReportError{
		Category: e.Category,
		Code:     e.Code,
		Message:  e.Message,
		Cause:    cause,
	}
}

// WithDetail returns a copy of the error with detail appended to the
// message, keeping the stable prefix intact.
func (e *ReportError) WithDetail(format string, v ...interface{}) *ReportError {
	return &ReportError{
		Category: e.Category,
		Code:     e.Code,
		Message:  fmt.Sprintf("%s: %s", e.Message, fmt.Sprintf(format, v...)),
		Cause:    e.Cause,
	}
}

// Predefined errors. The message of each is the stable prefix documented in
// the failure surface; WithDetail appends the offending path or field list.
var (
	ErrDataFileNotFound = &ReportError{
		Category: ErrCategoryInput,
		Code:     "data_file_not_found",
		Message:  "Data file not found",
	}
	ErrDataFileParse = &ReportError{
		Category: ErrCategoryInput,
		Code:     "data_file_parse",
		Message:  "Failed to read data file",
	}
	ErrMissingFields = &ReportError{
		Category: ErrCategoryValidation,
		Code:     "missing_required_fields",
		Message:  "Missing required fields in data",
	}
	ErrInvalidReportType = &ReportError{
		Category: ErrCategoryValidation,
		Code:     "invalid_report_type",
		Message:  "Invalid reportType",
	}
	ErrReportWrite = &ReportError{
		Category: ErrCategoryWrite,
		Code:     "report_write_failed",
		Message:  "Failed to generate report",
	}
	ErrLatestLink = &ReportError{
		Category: ErrCategoryLink,
		Code:     "latest_link_failed",
		Message:  "Failed to update latest report link",
	}
)
