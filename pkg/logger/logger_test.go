package logger

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestInitAndWrite(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "testreport.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	Info("report written to %s", "/tmp/report.html")
	Warn("symlink unsupported, using redirect")
	Error("write failed: %v", os.ErrPermission)

	content, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}

	out := string(content)
	for _, want := range []string{"[INFO]", "[WARN]", "[ERROR]", "/tmp/report.html", "redirect"} {
		if !strings.Contains(out, want) {
			t.Errorf("log missing %q:\n%s", want, out)
		}
	}
}

func TestDebugGatedByVerbose(t *testing.T) {
	logPath := filepath.Join(t.TempDir(), "testreport.log")

	if err := Init(logPath); err != nil {
		t.Fatalf("Init: %v", err)
	}
	defer Close()

	SetVerbose(false)
	Debug("hidden message")
	SetVerbose(true)
	Debug("visible message")
	SetVerbose(false)

	content, _ := os.ReadFile(logPath)
	out := string(content)

	if strings.Contains(out, "hidden message") {
		t.Error("debug logged while verbose disabled")
	}
	if !strings.Contains(out, "visible message") {
		t.Error("debug not logged while verbose enabled")
	}
}

func TestWriteWithoutInit(t *testing.T) {
	Close()
	// Must not panic.
	Info("no-op")
	Debug("no-op")
}
