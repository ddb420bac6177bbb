package core

import (
	"errors"
	"strings"
	"testing"
)

func TestReportError_Error(t *testing.T) {
	err := &ReportError{
		Category: ErrCategoryValidation,
		Code:     "test_error",
		Message:  "test message",
	}

	if got := err.Error(); got != "test message" {
		t.Errorf("Error() = %q, want %q", got, "test message")
	}
}

func TestReportError_ErrorWithCause(t *testing.T) {
	cause := errors.New("underlying error")
	err := &ReportError{
		Category: ErrCategoryWrite,
		Code:     "test_error",
		Message:  "test message",
		Cause:    cause,
	}

	got := err.Error()
	if !strings.Contains(got, "test message") {
		t.Errorf("Error() = %q, should contain 'test message'", got)
	}
	if !strings.Contains(got, "underlying error") {
		t.Errorf("Error() = %q, should contain 'underlying error'", got)
	}
}

func TestReportError_Unwrap(t *testing.T) {
	cause := errors.New("underlying error")
	err := ErrReportWrite.WithCause(cause)

	if got := err.Unwrap(); got != cause {
		t.Errorf("Unwrap() = %v, want %v", got, cause)
	}
	if !errors.Is(err, ErrReportWrite) {
		t.Error("errors.Is(err, ErrReportWrite) = false after WithCause")
	}
}

func TestReportError_WithDetail(t *testing.T) {
	err := ErrDataFileNotFound.WithDetail("/tmp/missing.json")

	if !strings.HasPrefix(err.Message, "Data file not found") {
		t.Errorf("message %q lost its stable prefix", err.Message)
	}
	if !strings.Contains(err.Message, "/tmp/missing.json") {
		t.Errorf("message %q missing detail", err.Message)
	}
	if err.Code != ErrDataFileNotFound.Code {
		t.Error("WithDetail() changed the code")
	}
	if !errors.Is(err, ErrDataFileNotFound) {
		t.Error("errors.Is(err, ErrDataFileNotFound) = false after WithDetail")
	}
}

func TestStablePrefixes(t *testing.T) {
	tests := []struct {
		err    *ReportError
		prefix string
	}{
		{ErrDataFileNotFound, "Data file not found"},
		{ErrDataFileParse, "Failed to read data file"},
		{ErrMissingFields, "Missing required fields in data"},
		{ErrInvalidReportType, "Invalid reportType"},
		{ErrReportWrite, "Failed to generate report"},
	}

	for _, tt := range tests {
		if !strings.HasPrefix(tt.err.Message, tt.prefix) {
			t.Errorf("%s message = %q, want prefix %q", tt.err.Code, tt.err.Message, tt.prefix)
		}
	}
}

func TestErrorCategory_IsFatal(t *testing.T) {
	fatal := []ErrorCategory{ErrCategoryInput, ErrCategoryValidation, ErrCategoryWrite}
	for _, c := range fatal {
		if !c.IsFatal() {
			t.Errorf("%s.IsFatal() = false", c)
		}
	}
	if ErrCategoryLink.IsFatal() {
		t.Error("link errors must be recoverable")
	}
	if ErrCategoryNone.IsFatal() {
		t.Error("none category must not be fatal")
	}
}
