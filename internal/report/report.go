// Package report renders validation results as human-readable text.
package report

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/dashpack/dashpack/internal/validator"
)

// Render produces the plain-text report: one section per category with path
// and size per entry, a trailing missing section, and the verdict. Pure
// formatting; writing to disk is the caller's responsibility.
func Render(res validator.Result, generatedAt time.Time) string {
	var b strings.Builder
	b.WriteString("Dashboard Asset Report\n")
	fmt.Fprintf(&b, "Generated: %s\n", generatedAt.UTC().Format(time.RFC3339))
	b.WriteString(strings.Repeat("-", 72) + "\n")

	skippedReason := map[string]string{}
	for _, s := range res.Skipped {
		skippedReason[s.Path] = s.Reason
	}

	for _, category := range categoryOrder(res) {
		fmt.Fprintf(&b, "\n[%s]\n", category)
		for _, f := range res.Found {
			if f.Category != category {
				continue
			}
			if stat, ok := res.StatFor(f.Path); ok {
				fmt.Fprintf(&b, "  %s (%d bytes)\n", stat.Path, stat.Size)
			} else if reason, ok := skippedReason[f.Path]; ok {
				fmt.Fprintf(&b, "  %s (stats unavailable: %s)\n", f.Path, reason)
			} else {
				fmt.Fprintf(&b, "  %s\n", f.Path)
			}
		}
	}

	b.WriteString("\nMissing:\n")
	if len(res.Missing) == 0 {
		b.WriteString("  none\n")
	}
	for _, m := range res.Missing {
		fmt.Fprintf(&b, "  %s/%s\n", m.Category, m.Name)
	}

	b.WriteString("\n" + strings.Repeat("-", 72) + "\n")
	fmt.Fprintf(&b, "Verdict: %s (%d/%d found)\n", verdictWord(res.Passed), len(res.Found), res.Required)
	return b.String()
}

// Pretty writes a colored summary to w for interactive use.
func Pretty(w io.Writer, res validator.Result) {
	fmt.Fprintf(w, "Found: %d/%d  Missing: %d  Skipped: %d\n",
		len(res.Found), res.Required, len(res.Missing), len(res.Skipped))
	for _, f := range res.Found {
		line := fmt.Sprintf("  + %s/%s -> %s", f.Category, f.Name, f.Path)
		if stat, ok := res.StatFor(f.Path); ok {
			line += fmt.Sprintf(" (%d bytes, sha256 %s)", stat.Size, shortHash(stat.SHA256))
		}
		fmt.Fprintln(w, color.GreenString(line))
	}
	for _, s := range res.Skipped {
		fmt.Fprintln(w, color.YellowString("  ~ %s/%s stats unavailable: %s", s.Category, s.Name, s.Reason))
	}
	for _, m := range res.Missing {
		fmt.Fprintln(w, color.RedString("  - %s/%s missing", m.Category, m.Name))
	}
	if res.Passed {
		fmt.Fprintln(w, color.GreenString("Verdict: PASS"))
	} else {
		fmt.Fprintln(w, color.RedString("Verdict: FAIL"))
	}
}

func verdictWord(passed bool) string {
	if passed {
		return "PASS"
	}
	return "FAIL"
}

func shortHash(h string) string {
	if len(h) <= 12 {
		return h
	}
	return h[:12]
}

// categoryOrder lists categories in first-seen order across found entries,
// then categories that only appear in the missing list.
func categoryOrder(res validator.Result) []string {
	seen := map[string]struct{}{}
	var out []string
	add := func(name string) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		out = append(out, name)
	}
	for _, f := range res.Found {
		add(f.Category)
	}
	for _, m := range res.Missing {
		add(m.Category)
	}
	return out
}
