// Package consolidate copies located asset files into a single output tree.
package consolidate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dashpack/dashpack/internal/locator"
)

// SkippedCopy records one source file that could not be copied.
type SkippedCopy struct {
	Source string `json:"source"`
	Reason string `json:"reason"`
}

// CopyResult summarizes one consolidation pass.
type CopyResult struct {
	OutputDir string        `json:"outputDir"`
	Copied    []string      `json:"copied"`
	Skipped   []SkippedCopy `json:"skipped,omitempty"`
}

// Run copies every found file into outDir: html files at the root, css/js
// under fixed subdirectories, everything else under assets/. Directory
// creation is idempotent. A copy failure for one file is logged and skipped;
// the rest still get copied.
func Run(found []locator.FoundFile, outDir string, log *slog.Logger) (*CopyResult, error) {
	if log == nil {
		log = slog.Default()
	}
	if outDir == "" {
		return nil, fmt.Errorf("output directory is required")
	}
	for _, sub := range []string{"", "css", "js", "assets"} {
		if err := os.MkdirAll(filepath.Join(outDir, sub), 0o755); err != nil {
			return nil, fmt.Errorf("create output directory: %w", err)
		}
	}

	res := &CopyResult{OutputDir: outDir}
	for _, f := range found {
		dst := filepath.Join(outDir, destSubdir(f.Category), filepath.Base(f.Path))
		if err := copyFile(f.Path, dst); err != nil {
			log.Warn("copy failed, skipping file", "source", f.Path, "error", err)
			res.Skipped = append(res.Skipped, SkippedCopy{Source: f.Path, Reason: err.Error()})
			continue
		}
		log.Info("file consolidated", "source", f.Path, "dest", dst)
		res.Copied = append(res.Copied, dst)
	}
	return res, nil
}

// destSubdir maps a catalog category to its place in the output tree. HTML
// lives at the root; unknown categories land in assets.
func destSubdir(category string) string {
	switch category {
	case "html":
		return ""
	case "css", "js":
		return category
	default:
		return "assets"
	}
}

func copyFile(src, dst string) error {
	data, err := os.ReadFile(src)
	if err != nil {
		return err
	}
	return os.WriteFile(dst, data, 0o644)
}
