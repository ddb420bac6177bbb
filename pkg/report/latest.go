package report

import (
	"fmt"
	"html"
	"os"
	"path/filepath"

	"github.com/devicelab-dev/testreport/pkg/core"
	"github.com/devicelab-dev/testreport/pkg/logger"
)

// symlink is swappable so tests can exercise the link-less fallback.
var symlink = os.Symlink

// UpdateLatest makes the stable "latest" name resolve to the just-written
// artifact. It prefers a symbolic link whose target is relative to the
// link's own directory, so the pointer survives moving the reports
// directory. When link creation fails (unsupported filesystem, permission
// denied), it falls back to a meta-refresh redirect document.
//
// Failures here never propagate: the primary artifact is already durably
// written, so a broken pointer is logged and tolerated.
func UpdateLatest(dir, latestName, artifactName string) {
	latestPath := filepath.Join(dir, latestName)

	// Link replacement is not atomic across platforms; clear any stale
	// entry before recreating.
	if err := os.Remove(latestPath); err != nil && !os.IsNotExist(err) {
		logger.Warn("remove stale latest pointer %s: %v", latestPath, err)
	}

	err := symlink(artifactName, latestPath)
	if err == nil {
		logger.Debug("latest pointer %s -> %s", latestName, artifactName)
		return
	}
	logger.Warn("symlink for %s unavailable, writing redirect document: %v", latestPath, err)

	doc := redirectDocument(artifactName)
	if err := os.WriteFile(latestPath, []byte(doc), 0o644); err != nil {
		logger.Error("%v", core.ErrLatestLink.WithCause(err))
	}
}

// redirectDocument builds a small standalone page that forwards to the
// artifact via meta refresh.
func redirectDocument(target string) string {
	escaped := html.EscapeString(target)
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta http-equiv="refresh" content="0; url=%s">
    <title>Latest Report</title>
</head>
<body>
    <p>Redirecting to the latest report: <a href="%s">%s</a></p>
</body>
</html>
`, escaped, escaped, escaped)
}
