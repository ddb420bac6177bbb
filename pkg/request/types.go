// Package request defines the report request payload produced by the test
// runner, the data-file loader, and the structural validator.
//
// A payload describes one of three report variants:
//   - single test: reportType "test", testCase is a single record
//   - batch: reportType "test", testCase is a sequence
//   - suite: reportType "suite", with suite metadata and per-test results
//
// Shape polymorphism in the payload (testCase record vs sequence, step
// string vs object) is decided once at decode time; downstream code never
// re-inspects raw JSON.
package request

import (
	"bytes"
	"encoding/json"

	"github.com/devicelab-dev/testreport/pkg/core"
)

// Report type values accepted in a payload.
const (
	TypeTest  = "test"
	TypeSuite = "suite"
)

// Report style values accepted in config.
const (
	StyleOverview = "overview"
	StyleDetailed = "detailed"
)

// ReportRequest is the top-level payload. It is constructed externally by
// the test runner and is immutable input to the report engine.
type ReportRequest struct {
	ReportType  string        `json:"reportType"`
	ReportData  *ReportData   `json:"reportData"`
	Config      *ReportConfig `json:"config,omitempty"`
	Environment EnvOverrides  `json:"environment,omitempty"`
}

// Style returns the requested report style, or StyleOverview when absent.
func (r *ReportRequest) Style() string {
	if r.Config != nil && r.Config.ReportStyle == StyleDetailed {
		return StyleDetailed
	}
	return StyleOverview
}

// ReportData carries the variant-specific content. Which fields are
// required depends on reportType; see Validate.
type ReportData struct {
	TestCase  *TestCaseInput `json:"testCase,omitempty"`
	Execution *Execution     `json:"execution,omitempty"`
	Suite     *Suite         `json:"suite,omitempty"`
	Results   []SuiteResult  `json:"results,omitempty"`
}

// ReportConfig is a rendering switch only; it never affects pass/fail
// computation.
type ReportConfig struct {
	Environment string `json:"environment,omitempty"`
	ReportStyle string `json:"reportStyle,omitempty"`
}

// TestCase describes one test. All fields are optional; the builders
// substitute display defaults for anything absent.
type TestCase struct {
	Name        string   `json:"name,omitempty"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Steps       []Step   `json:"steps,omitempty"`
}

// Step is either plain text or a structured {action, description} record.
// Exactly one of Text or Action is set after decoding.
type Step struct {
	Text        string
	Action      string
	Description string
}

// UnmarshalJSON accepts both the plain-text and the structured step forms.
func (s *Step) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		s.Text = text
		return nil
	}

	var obj struct {
		Action      string `json:"action"`
		Description string `json:"description"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	s.Action = obj.Action
	s.Description = obj.Description
	return nil
}

// Execution describes how a test (or batch of tests) ran. The presence of
// TestResults signals a batch execution even when only one test case is
// given.
type Execution struct {
	Status      core.Status  `json:"status"`
	Duration    *float64     `json:"duration,omitempty"` // milliseconds
	TestResults []TestResult `json:"testResults,omitempty"`
}

// TestResult is a per-test outcome within a batch execution. Results are
// zipped positionally with the batch's test cases.
type TestResult struct {
	Name     string      `json:"name,omitempty"`
	Status   core.Status `json:"status"`
	Duration *float64    `json:"duration,omitempty"` // milliseconds
}

// Suite is suite-level metadata.
type Suite struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// SuiteResult is one entry in a suite's results sequence.
type SuiteResult struct {
	TestName    string      `json:"testName"`
	Description string      `json:"description,omitempty"`
	Status      core.Status `json:"status"`
	Steps       int         `json:"steps,omitempty"`    // step count
	Duration    *float64    `json:"duration,omitempty"` // milliseconds
}

// TestCaseInput is the tagged union for the testCase field, which may hold
// a single record or a sequence. The shape is inspected exactly once, here.
type TestCaseInput struct {
	Single *TestCase
	Batch  []TestCase
}

// IsBatch returns true if the input held a sequence (including an empty
// one).
func (t *TestCaseInput) IsBatch() bool {
	return t.Batch != nil
}

// UnmarshalJSON decodes either form of the testCase field.
func (t *TestCaseInput) UnmarshalJSON(data []byte) error {
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		batch := []TestCase{}
		if err := json.Unmarshal(data, &batch); err != nil {
			return err
		}
		t.Batch = batch
		return nil
	}

	var single TestCase
	if err := json.Unmarshal(data, &single); err != nil {
		return err
	}
	t.Single = &single
	return nil
}

// EnvOverrides is the optional key/value override map supplied with the
// request. A null or non-map value decodes as an absent map rather than
// failing, so a sloppy payload cannot abort generation.
type EnvOverrides map[string]string

// UnmarshalJSON tolerates null and non-object values.
func (e *EnvOverrides) UnmarshalJSON(data []byte) error {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		*e = nil
		return nil
	}
	*e = m
	return nil
}

// ReportPath returns the output-root override, if one was supplied.
func (e EnvOverrides) ReportPath() string {
	return e["REPORT_PATH"]
}
