package request

import (
	"errors"
	"strings"
	"testing"

	"github.com/devicelab-dev/testreport/pkg/core"
)

func validTestRequest() *ReportRequest {
	return &ReportRequest{
		ReportType: TypeTest,
		ReportData: &ReportData{
			TestCase:  &TestCaseInput{Single: &TestCase{Name: "T"}},
			Execution: &Execution{Status: core.StatusPassed},
		},
	}
}

func TestValidate_OK(t *testing.T) {
	if err := Validate(validTestRequest()); err != nil {
		t.Errorf("Validate: %v", err)
	}

	suite := &ReportRequest{
		ReportType: TypeSuite,
		ReportData: &ReportData{
			Suite:   &Suite{Name: "S"},
			Results: []SuiteResult{},
		},
	}
	if err := Validate(suite); err != nil {
		t.Errorf("Validate(suite): %v", err)
	}
}

func TestValidate_MissingTopLevel(t *testing.T) {
	tests := []struct {
		name string
		req  *ReportRequest
		want string
	}{
		{"no reportData", &ReportRequest{ReportType: TypeTest}, "Missing required fields in data: reportData"},
		{"no reportType", &ReportRequest{ReportData: &ReportData{}}, "Missing required fields in data: reportType"},
		{"both missing", &ReportRequest{}, "Missing required fields in data: reportType, reportData"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.want) {
				t.Errorf("error = %q, want substring %q", err, tt.want)
			}
			if !errors.Is(err, core.ErrMissingFields) {
				t.Error("expected ErrMissingFields kind")
			}
		})
	}
}

func TestValidate_InvalidReportType(t *testing.T) {
	req := &ReportRequest{ReportType: "benchmark", ReportData: &ReportData{}}

	err := Validate(req)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if !strings.Contains(err.Error(), "Invalid reportType") {
		t.Errorf("error = %q, want 'Invalid reportType' prefix", err)
	}
	if !strings.Contains(err.Error(), "benchmark") {
		t.Errorf("error = %q, should name the offending value", err)
	}
	if !errors.Is(err, core.ErrInvalidReportType) {
		t.Error("expected ErrInvalidReportType kind")
	}
}

func TestValidate_MissingTypeSpecificFields(t *testing.T) {
	tests := []struct {
		name string
		req  *ReportRequest
		want []string
	}{
		{
			"test without testCase and execution",
			&ReportRequest{ReportType: TypeTest, ReportData: &ReportData{}},
			[]string{"testCase", "execution"},
		},
		{
			"suite without results",
			&ReportRequest{ReportType: TypeSuite, ReportData: &ReportData{Suite: &Suite{}}},
			[]string{"results"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.req)
			if err == nil {
				t.Fatal("expected validation error")
			}
			for _, field := range tt.want {
				if !strings.Contains(err.Error(), field) {
					t.Errorf("error = %q, should name %q", err, field)
				}
			}
		})
	}
}

func TestValidate_NestedDataNotInspected(t *testing.T) {
	// Garbage nested values pass validation; builders degrade instead.
	req := validTestRequest()
	req.ReportData.Execution.Status = core.Status("exploded")

	if err := Validate(req); err != nil {
		t.Errorf("nested data must not be validated, got %v", err)
	}
}
