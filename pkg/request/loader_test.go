package request

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/devicelab-dev/testreport/pkg/core"
)

func TestReadDataFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "run.json")

	content := `{"reportType": "test", "reportData": {"testCase": {"name": "T"}, "execution": {"status": "passed"}}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	req, err := ReadDataFile(path, dir)
	if err != nil {
		t.Fatalf("ReadDataFile: %v", err)
	}
	if req.ReportType != TypeTest {
		t.Errorf("ReportType = %q, want %q", req.ReportType, TypeTest)
	}
}

func TestReadDataFile_RelativePath(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "run.json"), []byte(`{"reportType":"suite","reportData":{}}`), 0o644); err != nil {
		t.Fatal(err)
	}

	req, err := ReadDataFile("run.json", dir)
	if err != nil {
		t.Fatalf("ReadDataFile: %v", err)
	}
	if req.ReportType != TypeSuite {
		t.Errorf("ReportType = %q, want %q", req.ReportType, TypeSuite)
	}
}

func TestReadDataFile_NotFound(t *testing.T) {
	dir := t.TempDir()

	_, err := ReadDataFile(filepath.Join(dir, "missing.json"), dir)
	if err == nil {
		t.Fatal("expected error for missing file")
	}
	if !strings.Contains(err.Error(), "Data file not found") {
		t.Errorf("error = %q, want 'Data file not found' prefix", err)
	}
	if !errors.Is(err, core.ErrDataFileNotFound) {
		t.Error("expected ErrDataFileNotFound kind")
	}
}

func TestReadDataFile_InvalidJSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	_, err := ReadDataFile(path, dir)
	if err == nil {
		t.Fatal("expected error for invalid JSON")
	}
	if !strings.Contains(err.Error(), "Failed to read data file") {
		t.Errorf("error = %q, want 'Failed to read data file' prefix", err)
	}
	if !errors.Is(err, core.ErrDataFileParse) {
		t.Error("expected ErrDataFileParse kind")
	}
	// The raw decoder error is attached as cause, not leaked as the message.
	if strings.HasPrefix(err.Error(), "invalid character") {
		t.Error("raw parse error leaked as the top-level message")
	}
}
