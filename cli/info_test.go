package cli

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-barry/demos/core"
	"github.com/segmentio/encoding/json"
)

func TestInfoCommand_PrintsSummary(t *testing.T) {
	outputDir := t.TempDir()
	_ = os.MkdirAll(filepath.Join(outputDir, "demos"), 0755)
	_ = os.WriteFile(filepath.Join(outputDir, "index.html"), []byte("<html>index</html>"), 0644)
	_ = os.WriteFile(filepath.Join(outputDir, "demos", "grid.html"), []byte("<html>grid</html>"), 0644)
	_ = os.WriteFile(filepath.Join(outputDir, "demos", "grid.html.gz"), []byte("gz"), 0644)

	overrideLoadConfig(t, core.Config{OutputDir: outputDir, Port: 8080, DebugLogs: true})

	output, err := runCommand(InfoCommand, "info")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	assertContains := func(content string) {
		if !strings.Contains(output, content) {
			t.Errorf("expected output to contain %q, got:\n%s", content, output)
		}
	}

	assertContains("📁 Templates Directory: (embedded)")
	assertContains("📁 Output Directory: " + outputDir)
	assertContains("🔌 Port: 8080")
	assertContains("🔁 Debug Logs Enabled: true")
	assertContains("🔁 Debug Headers Enabled: false")
	assertContains("Tab Container")
	assertContains("tabcontainer.html")
	assertContains("📦 Templates Found: 10")
	assertContains("💾 Exported Pages: 2")
}

func TestInfoCommand_JSON(t *testing.T) {
	overrideLoadConfig(t, core.Config{OutputDir: filepath.Join(t.TempDir(), "none"), Port: 8081})

	output, err := runCommand(InfoCommand, "info", "--json")
	if err != nil {
		t.Fatalf("expected no error, got: %v", err)
	}

	var info projectInfo
	if err := json.Unmarshal([]byte(output), &info); err != nil {
		t.Fatalf("expected JSON output, got %q: %v", output, err)
	}
	if info.Port != 8081 || len(info.Demos) != 8 || info.ExportedPages != 0 {
		t.Errorf("unexpected info: %+v", info)
	}
	if info.Demos[7].Title != "AJAX" {
		t.Errorf("expected AJAX last, got %+v", info.Demos[7])
	}
}
