package report

import (
	"html/template"

	"github.com/devicelab-dev/testreport/pkg/request"
)

// suitePage is the template data for a suite report.
type suitePage struct {
	pageMeta
	HeaderColor   template.CSS
	SuiteName     string
	SuiteDesc     string
	Percentage    int
	Counts        tally
	TotalDuration string
	Rows          []suiteRow
}

// suiteRow is one SuiteResult row.
type suiteRow struct {
	Number      int
	Name        string
	Status      string
	StatusIcon  string
	StatusColor template.CSS
	Steps       int
	Duration    string
}

// buildSuiteHTML renders the suite variant: a header aggregate over the
// full results sequence followed by one row per result.
func buildSuiteHTML(data *request.ReportData, meta pageMeta) (string, error) {
	suite := data.Suite
	if suite == nil {
		suite = &request.Suite{}
	}

	var counts tally
	durations := make([]*float64, len(data.Results))
	rows := make([]suiteRow, len(data.Results))
	for i, r := range data.Results {
		status := r.Status.Normalize()
		counts.add(status)
		durations[i] = r.Duration

		rows[i] = suiteRow{
			Number:      i + 1,
			Name:        displayName(r.TestName),
			Status:      status.String(),
			StatusIcon:  statusIcon(status),
			StatusColor: statusColor(status),
			Steps:       r.Steps,
			Duration:    formatDuration(r.Duration),
		}
	}

	page := suitePage{
		pageMeta:      meta,
		HeaderColor:   counts.Color(),
		SuiteName:     suiteDisplayName(suite.Name),
		SuiteDesc:     suite.Description,
		Percentage:    counts.Percentage(),
		Counts:        counts,
		TotalDuration: formatDuration(sumDurations(durations)),
		Rows:          rows,
	}

	return renderTemplate("suite", suiteTemplate, page)
}

func suiteDisplayName(name string) string {
	if name == "" {
		return "Unnamed Suite"
	}
	return name
}

const suiteTemplate = htmlHead + `
        <div class="card">
            <h2 style="font-size: 18px;">{{.SuiteName}}</h2>
            {{if .SuiteDesc}}<p style="margin-top: 4px; color: var(--text-secondary); font-size: 14px;">{{.SuiteDesc}}</p>{{end}}
            <div class="summary" style="margin-top: 16px;">
                <span class="percentage">{{.Percentage}}%</span>
                <span class="status-badge" style="background: {{.HeaderColor}}">{{.Counts.Passed}}/{{.Counts.Total}} passed</span>
                <span class="counts">
                    {{.Counts.Passed}} passed · {{.Counts.Failed}} failed · {{.Counts.Skipped}} skipped · {{.Counts.Total}} total<br>
                    Total duration: {{.TotalDuration}}
                </span>
            </div>
        </div>
        <div class="card">
            {{range .Rows}}
            <div class="row">
                <span>{{.StatusIcon}}</span>
                <span class="row-name">{{.Number}}. {{.Name}}</span>
                <span class="row-meta">{{.Steps}} steps</span>
                <span class="status-badge" style="background: {{.StatusColor}}">{{.Status}}</span>
                <span class="row-meta">{{.Duration}}</span>
            </div>
            {{else}}
            <div class="row-meta">No results recorded for this suite.</div>
            {{end}}
        </div>
` + htmlFoot
