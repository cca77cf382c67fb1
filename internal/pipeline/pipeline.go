// Package pipeline runs the locate -> validate -> report -> consolidate
// sequence as one guarded unit.
package pipeline

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dashpack/dashpack/internal/catalog"
	"github.com/dashpack/dashpack/internal/config"
	"github.com/dashpack/dashpack/internal/consolidate"
	"github.com/dashpack/dashpack/internal/history"
	"github.com/dashpack/dashpack/internal/locator"
	"github.com/dashpack/dashpack/internal/report"
	"github.com/dashpack/dashpack/internal/validator"
)

// Options select the optional stages of one run.
type Options struct {
	Consolidate bool
	WriteReport bool
}

// RunResult is the structured outcome of one pipeline run.
type RunResult struct {
	RunID      string                  `json:"runId"`
	StartedAt  time.Time               `json:"startedAt"`
	FinishedAt time.Time               `json:"finishedAt"`
	Validation validator.Result        `json:"validation"`
	Report     string                  `json:"report"`
	ReportPath string                  `json:"reportPath,omitempty"`
	Copy       *consolidate.CopyResult `json:"copy,omitempty"`
	// Error is non-empty when an unexpected failure aborted the run. The
	// run still yields a result rather than a crash.
	Error string `json:"error,omitempty"`
}

// OK reports whether the run completed without an unexpected failure and the
// validation verdict passed.
func (r *RunResult) OK() bool {
	return r.Error == "" && r.Validation.Passed
}

// CatalogFromConfig returns the configured catalog override, or the built-in
// default when the config does not define one.
func CatalogFromConfig(cfg *config.Config) catalog.Catalog {
	if len(cfg.Catalog.Categories) == 0 {
		return catalog.Default()
	}
	cats := make([]catalog.Category, 0, len(cfg.Catalog.Categories))
	for _, c := range cfg.Catalog.Categories {
		cats = append(cats, catalog.Category{Name: c.Name, Files: c.Files})
	}
	return catalog.New(cats)
}

// Run executes the full pipeline. All errors are contained: per-file problems
// are recorded in the result, and anything unexpected is caught at this
// boundary, logged, and attached to the result instead of propagating.
func Run(cfg *config.Config, opts Options, log *slog.Logger) (res *RunResult) {
	if log == nil {
		log = slog.Default()
	}
	res = &RunResult{
		RunID:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	defer func() {
		if r := recover(); r != nil {
			log.Error("run aborted by unexpected error", "run_id", res.RunID, "error", r)
			res.Error = fmt.Sprintf("unexpected error: %v", r)
		}
		res.FinishedAt = time.Now().UTC()
		recordHistory(cfg, res, log)
	}()

	cat := CatalogFromConfig(cfg)
	log.Info("run started", "run_id", res.RunID, "roots", strings.Join(cfg.Paths.SearchRoots, ","), "expected", cat.Len())

	loc := locator.New(cfg.Paths.SearchRoots, log).Locate(cat)
	res.Validation = validator.Validate(loc, cat.Len(), log)
	res.Report = report.Render(res.Validation, res.StartedAt)

	if opts.WriteReport {
		path, err := writeReport(cfg.Paths.ReportPath, res.Report)
		if err != nil {
			log.Warn("could not write report file", "path", cfg.Paths.ReportPath, "error", err)
		} else {
			res.ReportPath = path
		}
	}

	if opts.Consolidate {
		copyRes, err := consolidate.Run(res.Validation.Found, cfg.Paths.OutputDir, log)
		if err != nil {
			log.Error("consolidation failed", "output", cfg.Paths.OutputDir, "error", err)
			res.Error = fmt.Sprintf("consolidation failed: %v", err)
			return res
		}
		res.Copy = copyRes
	}

	log.Info("run finished", "run_id", res.RunID, "passed", res.Validation.Passed,
		"found", len(res.Validation.Found), "missing", len(res.Validation.Missing))
	return res
}

func writeReport(path, text string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return "", fmt.Errorf("report path is empty")
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", err
		}
	}
	if err := os.WriteFile(path, []byte(text), 0o644); err != nil {
		return "", err
	}
	if abs, err := filepath.Abs(path); err == nil {
		return abs, nil
	}
	return path, nil
}

// recordHistory appends the run outcome to the history store. Best effort:
// history problems never fail a run.
func recordHistory(cfg *config.Config, res *RunResult, log *slog.Logger) {
	if !cfg.History.Enabled || strings.TrimSpace(cfg.History.DBPath) == "" {
		return
	}
	store, err := history.Open(cfg.History.DBPath)
	if err != nil {
		log.Warn("history store unavailable", "path", cfg.History.DBPath, "error", err)
		return
	}
	defer store.Close()
	entry := history.Entry{
		RunID:        res.RunID,
		StartedAt:    res.StartedAt,
		FinishedAt:   res.FinishedAt,
		Passed:       res.Validation.Passed,
		FoundCount:   len(res.Validation.Found),
		MissingCount: len(res.Validation.Missing),
		SkippedCount: len(res.Validation.Skipped),
		ReportPath:   res.ReportPath,
		ErrorText:    res.Error,
	}
	if res.Copy != nil {
		entry.CopiedCount = len(res.Copy.Copied)
	}
	if err := store.Record(entry); err != nil {
		log.Warn("could not record run history", "error", err)
	}
}
