package report

import (
	"html/template"

	"github.com/devicelab-dev/testreport/pkg/core"
	"github.com/devicelab-dev/testreport/pkg/request"
)

// singlePage is the template data for a single-test report.
type singlePage struct {
	pageMeta
	HeaderColor template.CSS
	Name        string
	Description string
	Status      string
	StatusIcon  string
	StatusColor template.CSS
	Duration    string
	Tags        []string
	Steps       []stepView
	ShowSteps   bool
}

// stepView is one rendered step row.
type stepView struct {
	Number      int
	Action      string
	Description string
}

// buildSingleHTML renders the single-test variant. It is pure: all
// per-invocation values arrive through meta, and malformed nested data
// degrades to display defaults instead of failing.
func buildSingleHTML(data *request.ReportData, meta pageMeta) (string, error) {
	tc := &request.TestCase{}
	if data.TestCase != nil && data.TestCase.Single != nil {
		tc = data.TestCase.Single
	}

	status := core.StatusUnknown
	var duration *float64
	if data.Execution != nil {
		status = data.Execution.Status.Normalize()
		duration = data.Execution.Duration
	}

	page := singlePage{
		pageMeta:    meta,
		HeaderColor: statusColor(status),
		Name:        displayName(tc.Name),
		Description: tc.Description,
		Status:      status.String(),
		StatusIcon:  statusIcon(status),
		StatusColor: statusColor(status),
		Duration:    formatDuration(duration),
		Tags:        tc.Tags,
		Steps:       buildStepViews(tc.Steps),
		ShowSteps:   meta.Detailed() && len(tc.Steps) > 0,
	}

	return renderTemplate("single", singleTemplate, page)
}

// displayName substitutes the default for an absent test name.
func displayName(name string) string {
	if name == "" {
		return "Unnamed Test"
	}
	return name
}

func buildStepViews(steps []request.Step) []stepView {
	views := make([]stepView, len(steps))
	for i, s := range steps {
		v := stepView{Number: i + 1}
		if s.Text != "" {
			v.Action = s.Text
		} else {
			v.Action = s.Action
			v.Description = s.Description
		}
		if v.Action == "" {
			v.Action = "Unnamed step"
		}
		views[i] = v
	}
	return views
}

const singleTemplate = htmlHead + `
        <div class="card">
            <div class="summary">
                <span class="status-badge" style="background: {{.StatusColor}}">{{.StatusIcon}} {{.Status}}</span>
                <span class="counts">Duration: {{.Duration}}</span>
            </div>
            <h2 style="margin-top: 16px; font-size: 18px;">{{.Name}}</h2>
            {{if .Description}}<p style="margin-top: 4px; color: var(--text-secondary); font-size: 14px;">{{.Description}}</p>{{end}}
            {{if .Tags}}
            <div style="margin-top: 12px;">
                {{range .Tags}}<span class="tag">{{.}}</span>{{end}}
            </div>
            {{end}}
            {{if .ShowSteps}}
            <div class="steps">
                <div class="section-title">Detailed Steps</div>
                {{range .Steps}}
                <div class="step">
                    <div>{{.Number}}. {{.Action}}</div>
                    {{if .Description}}<div class="step-desc">{{.Description}}</div>{{end}}
                </div>
                {{end}}
            </div>
            {{end}}
        </div>
` + htmlFoot
