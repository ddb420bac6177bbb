package request

import (
	"strings"

	"github.com/devicelab-dev/testreport/pkg/core"
)

// Validate enforces the minimal structural contract for a payload before
// any rendering begins. It reports every missing field in one message, not
// just the first found.
//
// Nested fields are deliberately not validated here: partial or malformed
// nested data still produces a best-effort report, with the builders
// substituting display defaults.
func Validate(req *ReportRequest) error {
	var missing []string
	if req.ReportType == "" {
		missing = append(missing, "reportType")
	}
	if req.ReportData == nil {
		missing = append(missing, "reportData")
	}
	if len(missing) > 0 {
		return core.ErrMissingFields.WithDetail("%s", strings.Join(missing, ", "))
	}

	switch req.ReportType {
	case TypeTest:
		if req.ReportData.TestCase == nil {
			missing = append(missing, "testCase")
		}
		if req.ReportData.Execution == nil {
			missing = append(missing, "execution")
		}
	case TypeSuite:
		if req.ReportData.Suite == nil {
			missing = append(missing, "suite")
		}
		if req.ReportData.Results == nil {
			missing = append(missing, "results")
		}
	default:
		return core.ErrInvalidReportType.WithDetail("%s (expected %q or %q)", req.ReportType, TypeTest, TypeSuite)
	}

	if len(missing) > 0 {
		return core.ErrMissingFields.WithDetail("%s", strings.Join(missing, ", "))
	}

	return nil
}
