// Package report is the report generation engine: variant dispatch, content
// building, artifact naming, output writing, and latest-pointer
// maintenance.
//
// Pipeline:
//
//	validate -> dispatch -> build -> name -> write -> update latest
//
// Each stage is synchronous; the whole pipeline is a single best-effort
// attempt per invocation with no retries. Concurrent invocations never
// overwrite each other's primary artifact (timestamped names); the shared
// "latest" pointer is last-writer-wins.
package report

import (
	"path/filepath"

	"github.com/google/uuid"

	"github.com/devicelab-dev/testreport/pkg/config"
	"github.com/devicelab-dev/testreport/pkg/core"
	"github.com/devicelab-dev/testreport/pkg/logger"
	"github.com/devicelab-dev/testreport/pkg/request"
)

// DefaultTitle is used when neither the options nor the workspace config
// set one.
const DefaultTitle = "Test Report"

// Options are caller-level settings threaded explicitly through the
// pipeline. The request's own environment overrides take precedence over
// anything here; shared process state is never mutated.
type Options struct {
	OutputDir   string // output root; empty means <home>/reports
	Home        string // project root for relative paths; empty means config home
	Title       string // report title; empty means DefaultTitle
	Style       string // default report style when the request does not set one
	Environment string // default environment badge when the request does not set one
}

// Artifact is the sole return value of a successful generation.
type Artifact struct {
	ReportPath string // absolute path of the written file
}

// Generate runs the full pipeline for one validated-or-not payload and
// returns the written artifact. All fatal failures carry one of the stable
// message prefixes; latest-pointer failures degrade silently.
func Generate(req *request.ReportRequest, opts Options) (*Artifact, error) {
	if err := request.Validate(req); err != nil {
		return nil, err
	}

	home := opts.Home
	if home == "" {
		home = config.GetHome()
	}
	outputDir := resolveOutputDir(req, opts, home)
	variant := Dispatch(req)

	timestamp := NewTimestamp()
	meta := pageMeta{
		Title:       opts.Title,
		Timestamp:   timestamp,
		ReportID:    reportID(timestamp),
		Style:       effectiveStyle(req, opts),
		Environment: effectiveEnvironment(req, opts),
	}
	if meta.Title == "" {
		meta.Title = DefaultTitle
	}

	var html string
	var err error
	switch variant {
	case VariantSuite:
		html, err = buildSuiteHTML(req.ReportData, meta)
	case VariantBatch:
		html, err = buildBatchHTML(req.ReportData, meta)
	default:
		html, err = buildSingleHTML(req.ReportData, meta)
	}
	if err != nil {
		return nil, core.ErrReportWrite.WithCause(err)
	}

	name := artifactName(variant, meta.Timestamp)
	path, err := writeArtifact(outputDir, name, html)
	if err != nil {
		return nil, core.ErrReportWrite.WithCause(err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}

	UpdateLatest(outputDir, latestFileName(variant), name)

	logger.Info("%s report written to %s", variant, abs)
	return &Artifact{ReportPath: abs}, nil
}

// resolveOutputDir picks the output root. Precedence: request environment
// override, explicit option, then <home>/reports.
func resolveOutputDir(req *request.ReportRequest, opts Options, home string) string {
	dir := req.Environment.ReportPath()
	if dir == "" {
		dir = opts.OutputDir
	}
	if dir == "" {
		return filepath.Join(home, "reports")
	}
	if !filepath.IsAbs(dir) {
		dir = filepath.Join(home, dir)
	}
	return dir
}

// effectiveStyle resolves the report style. The request wins over the
// caller's default; anything unrecognized renders the overview.
func effectiveStyle(req *request.ReportRequest, opts Options) string {
	if req.Config != nil && req.Config.ReportStyle != "" {
		if req.Config.ReportStyle == request.StyleDetailed {
			return request.StyleDetailed
		}
		return request.StyleOverview
	}
	if opts.Style == request.StyleDetailed {
		return request.StyleDetailed
	}
	return request.StyleOverview
}

// reportID derives the invocation ID from the timestamp, so two documents
// built from identical input differ only in timestamp-derived values and
// the filename.
func reportID(timestamp string) string {
	return uuid.NewSHA1(uuid.NameSpaceOID, []byte("testreport:"+timestamp)).String()
}

func effectiveEnvironment(req *request.ReportRequest, opts Options) string {
	if req.Config != nil && req.Config.Environment != "" {
		return req.Config.Environment
	}
	return opts.Environment
}
