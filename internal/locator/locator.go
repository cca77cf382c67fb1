// Package locator finds catalog files under a prioritized list of search
// roots.
package locator

import (
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/dashpack/dashpack/internal/catalog"
)

// FoundFile records where one expected file was located.
type FoundFile struct {
	Category string `json:"category"`
	Name     string `json:"name"`
	Path     string `json:"path"`
	// Exact is true when the file matched verbatim at root/name, false when
	// it was picked up by the case-insensitive fallback scan.
	Exact bool `json:"exact"`
}

// MissingFile records an expected file absent from every search root.
type MissingFile struct {
	Category string `json:"category"`
	Name     string `json:"name"`
}

// Result partitions every catalog pair into found or missing. Each pair
// appears in exactly one of the two lists.
type Result struct {
	Found   []FoundFile   `json:"found"`
	Missing []MissingFile `json:"missing"`
}

// Locator probes search roots in priority order. Read-only.
type Locator struct {
	roots []string
	log   *slog.Logger
}

// New returns a locator over the given roots. Roots are probed in the order
// given; the first hit wins.
func New(roots []string, log *slog.Logger) *Locator {
	if log == nil {
		log = slog.Default()
	}
	return &Locator{roots: roots, log: log}
}

// Locate resolves every (category, filename) pair in the catalog to either a
// found path or a miss. A miss is not an error.
func (l *Locator) Locate(cat catalog.Catalog) Result {
	pairs := cat.Pairs()
	paths := make([]string, len(pairs))
	exact := make([]bool, len(pairs))

	for i, p := range pairs {
		if hit := l.lookupExact(p.Filename); hit != "" {
			paths[i] = hit
			exact[i] = true
		}
	}

	// Fallback scan only for names the direct lookup missed. A single walk
	// per root serves all pending names.
	pending := map[string][]int{}
	for i, p := range pairs {
		if paths[i] == "" {
			key := strings.ToLower(p.Filename)
			pending[key] = append(pending[key], i)
		}
	}
	if len(pending) > 0 {
		for _, root := range l.roots {
			if len(pending) == 0 {
				break
			}
			l.scanRoot(root, pending, paths)
		}
	}

	var res Result
	for i, p := range pairs {
		if paths[i] == "" {
			l.log.Warn("expected file not found", "category", p.Category, "file", p.Filename)
			res.Missing = append(res.Missing, MissingFile{Category: p.Category, Name: p.Filename})
			continue
		}
		l.log.Info("file located", "category", p.Category, "file", p.Filename, "path", paths[i], "exact", exact[i])
		res.Found = append(res.Found, FoundFile{
			Category: p.Category,
			Name:     p.Filename,
			Path:     paths[i],
			Exact:    exact[i],
		})
	}
	return res
}

// lookupExact checks root/name in every root, first hit wins.
func (l *Locator) lookupExact(name string) string {
	for _, root := range l.roots {
		candidate := filepath.Join(root, name)
		info, err := os.Stat(candidate)
		if err != nil || !info.Mode().IsRegular() {
			continue
		}
		return resolvePath(candidate)
	}
	return ""
}

// scanRoot walks one root's subtree and assigns the first case-insensitive
// base-name match for each pending target. fs.WalkDir visits entries in
// lexical order, so when several case variants exist the lexicographically
// first path wins.
func (l *Locator) scanRoot(root string, pending map[string][]int, paths []string) {
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Unreadable subtree: skip it, keep scanning the rest.
			return nil
		}
		if d.IsDir() {
			return nil
		}
		key := strings.ToLower(d.Name())
		idxs, ok := pending[key]
		if !ok {
			return nil
		}
		resolved := resolvePath(path)
		for _, i := range idxs {
			paths[i] = resolved
		}
		delete(pending, key)
		if len(pending) == 0 {
			return fs.SkipAll
		}
		return nil
	})
}

// resolvePath normalizes to an absolute path with symlinks resolved. Failures
// fall back to the best form available; the caller still gets a usable path.
func resolvePath(p string) string {
	if abs, err := filepath.Abs(p); err == nil {
		p = abs
	}
	if real, err := filepath.EvalSymlinks(p); err == nil {
		p = real
	}
	return p
}
