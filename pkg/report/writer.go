package report

import (
	"os"
	"path/filepath"
)

// ensureDir creates a directory and its parents. Idempotent: an existing
// directory is not an error.
func ensureDir(dir string) error {
	return os.MkdirAll(dir, 0o755)
}

// writeArtifact ensures the destination directory exists and persists the
// document, returning the written path.
func writeArtifact(dir, name, html string) (string, error) {
	if err := ensureDir(dir); err != nil {
		return "", err
	}

	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(html), 0o644); err != nil {
		return "", err
	}

	return path, nil
}
