// Package config provides configuration types and loading for dashpack.
package config

// Config is the root configuration struct.
// Top-level groups: Paths, Catalog, Consolidate, History.
type Config struct {
	Paths       PathsConfig       `json:"paths"`
	Catalog     CatalogConfig     `json:"catalog"`
	Consolidate ConsolidateConfig `json:"consolidate"`
	History     HistoryConfig     `json:"history"`
}

// PathsConfig groups all filesystem path settings.
type PathsConfig struct {
	// SearchRoots are probed in priority order; the first match wins.
	SearchRoots []string `json:"searchRoots" envconfig:"SEARCH_ROOTS"`
	ReportPath  string   `json:"reportPath" envconfig:"REPORT_PATH"`
	OutputDir   string   `json:"outputDir" envconfig:"OUTPUT_DIR"`
}

// CatalogConfig optionally replaces the built-in asset catalog.
type CatalogConfig struct {
	Categories []CatalogCategory `json:"categories,omitempty"`
}

// CatalogCategory is one category override in the config file.
type CatalogCategory struct {
	Name  string   `json:"name"`
	Files []string `json:"files"`
}

// ConsolidateConfig controls the optional copy stage.
type ConsolidateConfig struct {
	Enabled bool `json:"enabled" envconfig:"ENABLED"`
}

// HistoryConfig controls the run-history store.
type HistoryConfig struct {
	Enabled bool   `json:"enabled" envconfig:"ENABLED"`
	DBPath  string `json:"dbPath" envconfig:"DB_PATH"`
}

// DefaultConfig returns the configuration used when no file or env overrides
// are present.
func DefaultConfig() *Config {
	return &Config{
		Paths: PathsConfig{
			SearchRoots: []string{".", "dashboard", "public", "dist"},
			ReportPath:  "dashboard_report.txt",
			OutputDir:   "consolidated_dashboard",
		},
		Consolidate: ConsolidateConfig{Enabled: false},
		History:     HistoryConfig{Enabled: true, DBPath: "~/.dashpack/history.db"},
	}
}
