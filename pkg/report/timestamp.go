package report

import (
	"fmt"
	"time"
)

// NewTimestamp produces the invocation timestamp in the fixed lexical
// format YYYY-MM-DD-HH-mm-ss-SSS. One timestamp is generated per
// invocation and shared by the artifact filename and the document body.
//
// Millisecond resolution is the sole collision guard for artifact names.
// Two invocations within the same millisecond can collide; that is an
// accepted limitation, not a cryptographic guarantee.
func NewTimestamp() string {
	return FormatTimestamp(time.Now())
}

// FormatTimestamp formats a time in the report timestamp format.
func FormatTimestamp(t time.Time) string {
	return t.Format("2006-01-02-15-04-05") + fmt.Sprintf("-%03d", t.Nanosecond()/int(time.Millisecond))
}

// artifactName derives the artifact filename from the variant family and
// the invocation timestamp.
func artifactName(v Variant, timestamp string) string {
	return fmt.Sprintf("%s-report-%s.html", v.Family(), timestamp)
}

// latestFileName is the stable "latest" name for a variant family.
func latestFileName(v Variant) string {
	return fmt.Sprintf("latest-%s-report.html", v.Family())
}
