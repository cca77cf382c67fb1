package pipeline

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dashpack/dashpack/internal/config"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
}

func testConfig(t *testing.T, root string) *config.Config {
	t.Helper()
	work := t.TempDir()
	return &config.Config{
		Paths: config.PathsConfig{
			SearchRoots: []string{root},
			ReportPath:  filepath.Join(work, "report.txt"),
			OutputDir:   filepath.Join(work, "packed"),
		},
		Catalog: config.CatalogConfig{Categories: []config.CatalogCategory{
			{Name: "html", Files: []string{"index.html"}},
			{Name: "css", Files: []string{"styles.css"}},
			{Name: "js", Files: []string{"app.js"}},
		}},
		History: config.HistoryConfig{Enabled: true, DBPath: filepath.Join(work, "history.db")},
	}
}

func TestRunFullPipelinePasses(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<html>")
	writeFile(t, root, "styles.css", "body{}")
	writeFile(t, root, "app.js", "void 0")
	cfg := testConfig(t, root)

	res := Run(cfg, Options{Consolidate: true, WriteReport: true}, nil)
	if !res.OK() {
		t.Fatalf("expected passing run, got passed=%v error=%q", res.Validation.Passed, res.Error)
	}
	if res.RunID == "" || res.FinishedAt.Before(res.StartedAt) {
		t.Fatalf("run metadata not set: %+v", res)
	}
	if len(res.Validation.Found) != 3 || len(res.Validation.Missing) != 0 {
		t.Fatalf("expected 3 found / 0 missing, got %d/%d",
			len(res.Validation.Found), len(res.Validation.Missing))
	}

	data, err := os.ReadFile(res.ReportPath)
	if err != nil {
		t.Fatalf("report file not written: %v", err)
	}
	if !strings.Contains(string(data), "Verdict: PASS") {
		t.Fatalf("report verdict missing:\n%s", data)
	}
	if res.Copy == nil || len(res.Copy.Copied) != 3 {
		t.Fatalf("expected 3 files consolidated, got %+v", res.Copy)
	}
	if _, err := os.Stat(filepath.Join(cfg.Paths.OutputDir, "js", "app.js")); err != nil {
		t.Fatalf("consolidated js missing: %v", err)
	}
	if _, err := os.Stat(cfg.History.DBPath); err != nil {
		t.Fatalf("history db not created: %v", err)
	}
}

func TestRunFailsWhenJSMissing(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<html>")
	writeFile(t, root, "styles.css", "body{}")
	cfg := testConfig(t, root)

	res := Run(cfg, Options{WriteReport: false}, nil)
	if res.Error != "" {
		t.Fatalf("a failed verdict is not a run error: %q", res.Error)
	}
	if res.Validation.Passed {
		t.Fatalf("expected failing verdict without app.js")
	}
	if len(res.Validation.Missing) != 1 || res.Validation.Missing[0].Name != "app.js" {
		t.Fatalf("expected js/app.js missing, got %+v", res.Validation.Missing)
	}
	if !strings.Contains(res.Report, "js/app.js") {
		t.Fatalf("report must list the missing file:\n%s", res.Report)
	}
}

func TestRunSurvivesUnwritableReportPath(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<html>")
	writeFile(t, root, "styles.css", "body{}")
	writeFile(t, root, "app.js", "void 0")
	cfg := testConfig(t, root)
	// Point the report at a path whose parent is a regular file.
	blocker := filepath.Join(t.TempDir(), "blocker")
	writeFile(t, filepath.Dir(blocker), "blocker", "x")
	cfg.Paths.ReportPath = filepath.Join(blocker, "report.txt")

	res := Run(cfg, Options{WriteReport: true}, nil)
	if res.Error != "" {
		t.Fatalf("report write failure must not abort the run: %q", res.Error)
	}
	if res.ReportPath != "" {
		t.Fatalf("report path should be empty when the write failed")
	}
	if !res.Validation.Passed {
		t.Fatalf("validation outcome must be unaffected")
	}
}

func TestRunConsolidationErrorBecomesFailureResult(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.html", "<html>")
	cfg := testConfig(t, root)
	cfg.Paths.OutputDir = ""

	res := Run(cfg, Options{Consolidate: true}, nil)
	if res.Error == "" {
		t.Fatalf("expected failure result for unusable output dir")
	}
	if !strings.Contains(res.Error, "consolidation failed") {
		t.Fatalf("unexpected error text: %q", res.Error)
	}
}

func TestCatalogFromConfigFallsBackToDefault(t *testing.T) {
	cat := CatalogFromConfig(&config.Config{})
	if cat.Len() == 0 {
		t.Fatalf("expected built-in catalog when config has no override")
	}
	if _, ok := cat.Category("html"); !ok {
		t.Fatalf("default catalog must contain html")
	}
}
