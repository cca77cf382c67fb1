package catalog

import "testing"

func TestDefaultPairsCoverEveryCategory(t *testing.T) {
	cat := Default()
	pairs := cat.Pairs()
	if len(pairs) != cat.Len() {
		t.Fatalf("Pairs returned %d entries, Len says %d", len(pairs), cat.Len())
	}
	perCategory := map[string]int{}
	for _, p := range pairs {
		perCategory[p.Category]++
	}
	for _, want := range []string{"html", "css", "js", "assets"} {
		if perCategory[want] == 0 {
			t.Fatalf("default catalog has no files in category %q", want)
		}
	}
	if pairs[0].Category != "html" || pairs[0].Filename != "index.html" {
		t.Fatalf("expected index.html first, got %s/%s", pairs[0].Category, pairs[0].Filename)
	}
}

func TestCategoryLookup(t *testing.T) {
	cat := Default()
	css, ok := cat.Category("css")
	if !ok || len(css.Files) == 0 {
		t.Fatalf("css category missing from default catalog")
	}
	if _, ok := cat.Category("fonts"); ok {
		t.Fatalf("unexpected fonts category")
	}
}

func TestNewDropsEmptyEntries(t *testing.T) {
	cat := New([]Category{
		{Name: "html", Files: []string{"index.html", ""}},
		{Name: "", Files: []string{"x.css"}},
		{Name: "js", Files: nil},
	})
	if got := cat.Len(); got != 1 {
		t.Fatalf("expected 1 surviving file, got %d", got)
	}
	if cat.Categories[0].Name != "html" {
		t.Fatalf("expected html category, got %q", cat.Categories[0].Name)
	}
}
