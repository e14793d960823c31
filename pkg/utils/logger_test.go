package utils

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"
)

func TestLogFile(t *testing.T) {
	color.NoColor = true
	path := filepath.Join(t.TempDir(), "dataextract.log")

	if err := InitLogger(path); err != nil {
		t.Fatal(err)
	}
	SetVerbose(false)
	t.Setenv("DEBUG", "")

	LogInfo("extracting %s", "book.json")
	LogError("failed %d", 1)
	LogDebug("hidden")
	SetVerbose(true)
	LogDebug("shown")
	SetVerbose(false)
	CloseLogger()

	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	content := string(b)

	for _, want := range []string{"[INFO] extracting book.json", "[ERROR] failed 1", "[DEBUG] shown"} {
		if !strings.Contains(content, want) {
			t.Errorf("log file missing %q:\n%s", want, content)
		}
	}
	if strings.Contains(content, "hidden") {
		t.Error("debug line logged while not verbose")
	}
	if n := strings.Count(content, "\n"); n != 3 {
		t.Errorf("expected 3 lines, got %d", n)
	}
}
