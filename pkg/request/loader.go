package request

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/devicelab-dev/testreport/pkg/core"
)

// ReadDataFile resolves a data source path, reads it, and parses the
// payload. Relative paths resolve against home.
//
// Fails with the "Data file not found" kind when the resolved path does not
// exist, and with the "Failed to read data file" kind when the contents are
// not valid JSON.
func ReadDataFile(path, home string) (*ReportRequest, error) {
	if !filepath.IsAbs(path) {
		path = filepath.Join(home, path)
	}

	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return nil, core.ErrDataFileNotFound.WithDetail("%s", path)
		}
		return nil, core.ErrDataFileNotFound.WithDetail("%s", path).WithCause(err)
	}

	data, err := os.ReadFile(path) //#nosec G304 -- user-provided data file
	if err != nil {
		return nil, core.ErrDataFileParse.WithDetail("%s", path).WithCause(err)
	}

	var req ReportRequest
	if err := json.Unmarshal(data, &req); err != nil {
		return nil, core.ErrDataFileParse.WithDetail("invalid JSON in %s", path).WithCause(err)
	}

	return &req, nil
}
