package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	if len(cfg.Paths.SearchRoots) == 0 {
		t.Fatalf("default search roots must not be empty")
	}
	if cfg.Paths.SearchRoots[0] != "." {
		t.Fatalf("current directory must be probed first, got %q", cfg.Paths.SearchRoots[0])
	}
	if cfg.Paths.ReportPath == "" || cfg.Paths.OutputDir == "" {
		t.Fatalf("default paths incomplete: %+v", cfg.Paths)
	}
	if !cfg.History.Enabled {
		t.Fatalf("history should be enabled by default")
	}
}

func TestLoadFromExplicitConfigFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.json")
	file := Config{
		Paths: PathsConfig{
			SearchRoots: []string{"/srv/dashboard"},
			ReportPath:  "out/report.txt",
			OutputDir:   "out/packed",
		},
		Catalog: CatalogConfig{Categories: []CatalogCategory{
			{Name: "html", Files: []string{"index.html"}},
		}},
		History: HistoryConfig{Enabled: false},
	}
	data, err := json.Marshal(file)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv("DASHPACK_CONFIG", path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(cfg.Paths.SearchRoots) != 1 || cfg.Paths.SearchRoots[0] != "/srv/dashboard" {
		t.Fatalf("search roots not loaded: %+v", cfg.Paths.SearchRoots)
	}
	if cfg.Paths.ReportPath != "out/report.txt" {
		t.Fatalf("report path not loaded: %q", cfg.Paths.ReportPath)
	}
	if len(cfg.Catalog.Categories) != 1 {
		t.Fatalf("catalog override not loaded: %+v", cfg.Catalog)
	}
	if cfg.History.Enabled {
		t.Fatalf("history enabled flag not honored")
	}
}

func TestEnvOverridesFile(t *testing.T) {
	t.Setenv("DASHPACK_CONFIG", filepath.Join(t.TempDir(), "missing.json"))
	t.Setenv("DASHPACK_PATHS_OUTPUT_DIR", "/tmp/env-output")
	t.Setenv("DASHPACK_CONSOLIDATE_ENABLED", "true")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Paths.OutputDir != "/tmp/env-output" {
		t.Fatalf("env override not applied: %q", cfg.Paths.OutputDir)
	}
	if !cfg.Consolidate.Enabled {
		t.Fatalf("consolidate env override not applied")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	t.Setenv("DASHPACK_CONFIG", filepath.Join(t.TempDir(), "nope.json"))
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Paths.ReportPath != DefaultConfig().Paths.ReportPath {
		t.Fatalf("defaults not applied: %q", cfg.Paths.ReportPath)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.json")
	t.Setenv("DASHPACK_CONFIG", path)

	cfg := DefaultConfig()
	cfg.Paths.SearchRoots = []string{"/data/site"}
	if err := Save(cfg); err != nil {
		t.Fatalf("save: %v", err)
	}
	loaded, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded.Paths.SearchRoots) != 1 || loaded.Paths.SearchRoots[0] != "/data/site" {
		t.Fatalf("roundtrip mismatch: %+v", loaded.Paths.SearchRoots)
	}
}

func TestEnvFileDoesNotOverrideProcessEnv(t *testing.T) {
	envFile := filepath.Join(t.TempDir(), "env")
	content := "DASHPACK_TEST_MARKER=fromfile\nexport DASHPACK_TEST_EXPORTED=\"quoted\"\n# comment\n"
	if err := os.WriteFile(envFile, []byte(content), 0o600); err != nil {
		t.Fatalf("write env file: %v", err)
	}
	t.Setenv("DASHPACK_ENV_FILE", envFile)
	t.Setenv("DASHPACK_TEST_MARKER", "fromprocess")
	os.Unsetenv("DASHPACK_TEST_EXPORTED")
	defer os.Unsetenv("DASHPACK_TEST_EXPORTED")

	LoadEnvFileCandidates()
	if got := os.Getenv("DASHPACK_TEST_MARKER"); got != "fromprocess" {
		t.Fatalf("process env was overridden: %q", got)
	}
	if got := os.Getenv("DASHPACK_TEST_EXPORTED"); got != "quoted" {
		t.Fatalf("export line not parsed: %q", got)
	}
}
