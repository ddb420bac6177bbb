package report

import (
	"html/template"

	"github.com/devicelab-dev/testreport/pkg/core"
	"github.com/devicelab-dev/testreport/pkg/request"
)

// batchPage is the template data for a batch-test report.
type batchPage struct {
	pageMeta
	HeaderColor   template.CSS
	Percentage    int
	Counts        tally
	TotalDuration string
	Rows          []batchRow
}

// batchRow is one test case row, carrying its own status when a matching
// testResults entry exists by position.
type batchRow struct {
	Number      int
	Name        string
	Status      string
	StatusIcon  string
	StatusColor template.CSS
	Duration    string
}

// buildBatchHTML renders the batch-test variant. Test cases are zipped
// positionally with execution.testResults; cases without a matching result
// render with unknown status.
func buildBatchHTML(data *request.ReportData, meta pageMeta) (string, error) {
	var cases []request.TestCase
	if data.TestCase != nil {
		cases = data.TestCase.Batch
	}

	var results []request.TestResult
	var totalDuration *float64
	if data.Execution != nil {
		results = data.Execution.TestResults
		totalDuration = data.Execution.Duration
	}

	var counts tally
	rows := make([]batchRow, len(cases))
	for i, tc := range cases {
		status := core.StatusUnknown
		var duration *float64
		if i < len(results) {
			status = results[i].Status.Normalize()
			duration = results[i].Duration
		}
		counts.add(status)

		rows[i] = batchRow{
			Number:      i + 1,
			Name:        displayName(tc.Name),
			Status:      status.String(),
			StatusIcon:  statusIcon(status),
			StatusColor: statusColor(status),
			Duration:    formatDuration(duration),
		}
	}

	page := batchPage{
		pageMeta:      meta,
		HeaderColor:   counts.Color(),
		Percentage:    counts.Percentage(),
		Counts:        counts,
		TotalDuration: formatDuration(totalDuration),
		Rows:          rows,
	}

	return renderTemplate("batch", batchTemplate, page)
}

const batchTemplate = htmlHead + `
        <div class="card">
            <div class="summary">
                <span class="percentage">{{.Percentage}}%</span>
                <span class="status-badge" style="background: {{.HeaderColor}}">{{.Counts.Passed}}/{{.Counts.Total}} passed</span>
                <span class="counts">
                    {{.Counts.Passed}} passed · {{.Counts.Failed}} failed · {{.Counts.Total}} total<br>
                    Total duration: {{.TotalDuration}}
                </span>
            </div>
        </div>
        <div class="card">
            {{range .Rows}}
            <div class="row">
                <span>{{.StatusIcon}}</span>
                <span class="row-name">{{.Number}}. {{.Name}}</span>
                <span class="status-badge" style="background: {{.StatusColor}}">{{.Status}}</span>
                <span class="row-meta">{{.Duration}}</span>
            </div>
            {{else}}
            <div class="row-meta">No test cases in this batch.</div>
            {{end}}
        </div>
` + htmlFoot
