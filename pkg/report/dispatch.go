package report

import "github.com/devicelab-dev/testreport/pkg/request"

// Variant identifies which content builder and aggregation rule applies.
type Variant int

// Report variants.
const (
	VariantSingle Variant = iota // one test case, one execution
	VariantBatch                 // a sequence of test cases
	VariantSuite                 // suite metadata plus per-test results
)

// String returns the string representation of the variant.
func (v Variant) String() string {
	switch v {
	case VariantSingle:
		return "single-test"
	case VariantBatch:
		return "batch-test"
	case VariantSuite:
		return "suite"
	default:
		return "unknown"
	}
}

// Family returns the artifact family the variant belongs to. Single and
// batch reports share the "test" family and therefore a "latest" pointer.
func (v Variant) Family() string {
	if v == VariantSuite {
		return "suite"
	}
	return "test"
}

// Dispatch decides the render path for a validated payload. The decision is
// total: every payload that passed validation maps to exactly one variant.
func Dispatch(req *request.ReportRequest) Variant {
	if req.ReportType == request.TypeSuite {
		return VariantSuite
	}
	if req.ReportData != nil && req.ReportData.TestCase != nil && req.ReportData.TestCase.IsBatch() {
		return VariantBatch
	}
	return VariantSingle
}
