// Package validator computes per-file stats and the overall pass/fail verdict
// for a locator result.
package validator

import (
	"crypto/sha256"
	"encoding/hex"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dashpack/dashpack/internal/locator"
)

// FileStat holds size and content hash for one found file.
type FileStat struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Size     int64  `json:"size"`
	SHA256   string `json:"sha256"`
}

// SkippedFile records a found file whose stats could not be read. The file
// stays counted as found; only its stats are omitted.
type SkippedFile struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	Reason   string `json:"reason"`
}

// Result aggregates validation output for one run.
type Result struct {
	Passed   bool                  `json:"passed"`
	Required int                   `json:"required"`
	Found    []locator.FoundFile   `json:"found"`
	Missing  []locator.MissingFile `json:"missing"`
	Stats    []FileStat            `json:"stats"`
	Skipped  []SkippedFile         `json:"skipped,omitempty"`
}

// FoundInCategory counts found files in the named category.
func (r Result) FoundInCategory(category string) int {
	n := 0
	for _, f := range r.Found {
		if f.Category == category {
			n++
		}
	}
	return n
}

// StatFor returns the computed stats for a found path, when available.
func (r Result) StatFor(path string) (FileStat, bool) {
	for _, s := range r.Stats {
		if s.Path == path {
			return s, true
		}
	}
	return FileStat{}, false
}

// Validate hashes and sizes every found file and derives the verdict. A read
// failure on one file is logged and recorded as skipped; it never aborts the
// run or affects other files.
func Validate(loc locator.Result, required int, log *slog.Logger) Result {
	if log == nil {
		log = slog.Default()
	}
	res := Result{
		Required: required,
		Found:    loc.Found,
		Missing:  loc.Missing,
	}
	for _, f := range loc.Found {
		data, err := os.ReadFile(f.Path)
		if err != nil {
			log.Warn("could not read found file, stats omitted", "path", f.Path, "error", err)
			res.Skipped = append(res.Skipped, SkippedFile{
				Category: f.Category,
				Name:     f.Name,
				Path:     f.Path,
				Reason:   err.Error(),
			})
			continue
		}
		sum := sha256.Sum256(data)
		res.Stats = append(res.Stats, FileStat{
			Category: f.Category,
			Name:     f.Name,
			Path:     f.Path,
			Size:     int64(len(data)),
			SHA256:   hex.EncodeToString(sum[:]),
		})
	}
	res.Passed = verdict(loc.Found)
	return res
}

// verdict is true iff some found path's base name contains "index.html"
// (case-insensitive) and the css and js categories each have at least one
// found entry. All other missing files are tolerated.
func verdict(found []locator.FoundFile) bool {
	hasIndex := false
	css := 0
	js := 0
	for _, f := range found {
		if strings.Contains(strings.ToLower(filepath.Base(f.Path)), "index.html") {
			hasIndex = true
		}
		switch f.Category {
		case "css":
			css++
		case "js":
			js++
		}
	}
	return hasIndex && css > 0 && js > 0
}
