package report

import (
	"bytes"
	"fmt"
	"html/template"
	"math"

	"github.com/devicelab-dev/testreport/pkg/core"
)

// Status icon literals. Anything outside the defined statuses gets the
// unknown icon rather than failing.
func statusIcon(s core.Status) string {
	switch s.Normalize() {
	case core.StatusPassed:
		return "✅"
	case core.StatusFailed:
		return "❌"
	case core.StatusSkipped:
		return "⏭️"
	case core.StatusPending:
		return "⏳"
	default:
		return "❓"
	}
}

// Color tokens embedded as literal style values in the generated markup.
const (
	colorPassed  template.CSS = "linear-gradient(135deg, #4caf50 0%, #45a049 100%)"
	colorFailed  template.CSS = "linear-gradient(135deg, #f44336 0%, #d32f2f 100%)"
	colorNeutral template.CSS = "linear-gradient(135deg, #9e9e9e 0%, #757575 100%)"
)

// statusColor maps a status to its gradient. Only passed and failed carry a
// signal color; everything else renders neutral gray.
func statusColor(s core.Status) template.CSS {
	switch s.Normalize() {
	case core.StatusPassed:
		return colorPassed
	case core.StatusFailed:
		return colorFailed
	default:
		return colorNeutral
	}
}

// tally counts statuses across a result sequence.
type tally struct {
	Total   int
	Passed  int
	Failed  int
	Skipped int
	Pending int
	Unknown int
}

func (t *tally) add(s core.Status) {
	t.Total++
	switch s.Normalize() {
	case core.StatusPassed:
		t.Passed++
	case core.StatusFailed:
		t.Failed++
	case core.StatusSkipped:
		t.Skipped++
	case core.StatusPending:
		t.Pending++
	default:
		t.Unknown++
	}
}

// Percentage returns round(passed/total*100), with 0/0 defined as 0.
func (t *tally) Percentage() int {
	return passPercentage(t.Passed, t.Total)
}

// Color selects the aggregate color: all passed green, any failed red,
// anything else (including an empty sequence) neutral.
func (t *tally) Color() template.CSS {
	switch {
	case t.Failed > 0:
		return colorFailed
	case t.Total > 0 && t.Passed == t.Total:
		return colorPassed
	default:
		return colorNeutral
	}
}

// passPercentage computes round(passed/total*100); 0/0 is 0, never NaN.
func passPercentage(passed, total int) int {
	if total == 0 {
		return 0
	}
	return int(math.Round(float64(passed) / float64(total) * 100))
}

// formatDuration renders a millisecond duration as seconds, truncated to
// one decimal. Absent duration renders a placeholder rather than 0.
func formatDuration(ms *float64) string {
	if ms == nil {
		return "-"
	}
	s := *ms / 1000
	if s == math.Trunc(s) {
		return fmt.Sprintf("%ds", int64(s))
	}
	return fmt.Sprintf("%.1fs", math.Trunc(s*10)/10)
}

// sumDurations totals the non-nil durations of a sequence; returns nil when
// no entry carries one, so the header shows the placeholder.
func sumDurations(durations []*float64) *float64 {
	var total float64
	found := false
	for _, d := range durations {
		if d != nil {
			total += *d
			found = true
		}
	}
	if !found {
		return nil
	}
	return &total
}

// pageMeta carries the per-invocation values shared by every builder, so
// the filename and the in-document timestamp can never diverge.
type pageMeta struct {
	Title       string
	Environment string
	Timestamp   string
	ReportID    string
	Style       string
}

// Detailed reports whether the expanded step-by-step section is requested.
func (m pageMeta) Detailed() bool {
	return m.Style == "detailed"
}

// renderTemplate executes an HTML template into a string.
func renderTemplate(name, text string, data interface{}) (string, error) {
	tmpl, err := template.New(name).Parse(text)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

// baseCSS is shared by all three variants so every artifact is a complete,
// self-contained document with no external assets.
const baseCSS = `
        :root {
            --bg-primary: #f5f6fa;
            --bg-card: #ffffff;
            --text-primary: #1f2937;
            --text-secondary: rgb(75, 85, 99);
            --text-muted: rgb(107, 114, 128);
            --border-color: #e5e7eb;
        }

        * {
            box-sizing: border-box;
            margin: 0;
            padding: 0;
        }

        body {
            font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, sans-serif;
            background: var(--bg-primary);
            color: var(--text-primary);
            line-height: 1.5;
        }

        .container {
            max-width: 860px;
            margin: 24px auto;
            padding: 0 16px;
        }

        .header {
            color: white;
            border-radius: 10px 10px 0 0;
            padding: 24px;
        }

        .header h1 {
            font-size: 22px;
            font-weight: 600;
        }

        .header-meta {
            margin-top: 4px;
            font-size: 12px;
            opacity: 0.85;
        }

        .env-badge {
            display: inline-block;
            margin-top: 8px;
            padding: 3px 10px;
            border-radius: 10px;
            background: rgba(255, 255, 255, 0.25);
            font-size: 12px;
            text-transform: uppercase;
            letter-spacing: 0.05em;
        }

        .card {
            background: var(--bg-card);
            border: 1px solid var(--border-color);
            border-top: none;
            padding: 20px 24px;
        }

        .summary {
            display: flex;
            gap: 24px;
            flex-wrap: wrap;
            align-items: center;
        }

        .percentage {
            font-size: 34px;
            font-weight: 700;
        }

        .counts {
            font-size: 13px;
            color: var(--text-secondary);
        }

        .status-badge {
            display: inline-block;
            color: white;
            padding: 4px 14px;
            border-radius: 14px;
            font-size: 13px;
            font-weight: 500;
        }

        .tag {
            display: inline-block;
            padding: 2px 10px;
            margin-right: 6px;
            border-radius: 10px;
            background: var(--bg-primary);
            border: 1px solid var(--border-color);
            font-size: 12px;
            color: var(--text-secondary);
        }

        .row {
            display: flex;
            align-items: center;
            gap: 12px;
            padding: 10px 0;
            border-bottom: 1px solid var(--border-color);
        }

        .row:last-child {
            border-bottom: none;
        }

        .row-name {
            flex: 1;
            font-size: 14px;
        }

        .row-meta {
            font-size: 12px;
            color: var(--text-muted);
        }

        .steps {
            margin-top: 12px;
        }

        .step {
            padding: 8px 0 8px 12px;
            border-left: 3px solid var(--border-color);
            margin-bottom: 6px;
            font-size: 14px;
        }

        .step-desc {
            font-size: 12px;
            color: var(--text-muted);
        }

        .section-title {
            font-size: 15px;
            font-weight: 600;
            margin-bottom: 8px;
        }

        .footer {
            display: flex;
            justify-content: space-between;
            padding: 12px 24px;
            background: var(--bg-card);
            border: 1px solid var(--border-color);
            border-top: none;
            border-radius: 0 0 10px 10px;
            font-size: 11px;
            color: var(--text-muted);
        }
`

// Shared document scaffold. Each variant template is head + body + foot.
const (
	htmlHead = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>{{.Title}}</title>
    <style>` + baseCSS + `</style>
</head>
<body>
    <div class="container">
        <div class="header" style="background: {{.HeaderColor}}">
            <h1>{{.Title}}</h1>
            <div class="header-meta">Generated at {{.Timestamp}}</div>
            {{if .Environment}}<span class="env-badge">{{.Environment}}</span>{{end}}
        </div>
`

	htmlFoot = `
        <div class="footer">
            <span>Report ID: {{.ReportID}}</span>
            <span>{{.Timestamp}}</span>
        </div>
    </div>
</body>
</html>
`
)
