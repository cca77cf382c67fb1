// Package catalog defines the fixed set of expected dashboard asset filenames.
package catalog

// Category groups expected filenames under a named asset class ("html",
// "css", "js", "assets"). Order is significant: it is the order files are
// probed and reported in.
type Category struct {
	Name  string
	Files []string
}

// Catalog is the ordered list of expected asset categories. It is built once
// at startup and never mutated.
type Catalog struct {
	Categories []Category
}

// Pair identifies one expected file within a category.
type Pair struct {
	Category string
	Filename string
}

// Default returns the built-in dashboard asset catalog.
func Default() Catalog {
	return Catalog{Categories: []Category{
		{Name: "html", Files: []string{"index.html", "dashboard.html"}},
		{Name: "css", Files: []string{"styles.css", "dashboard.css"}},
		{Name: "js", Files: []string{"app.js", "dashboard.js", "charts.js"}},
		{Name: "assets", Files: []string{"logo.png", "favicon.ico"}},
	}}
}

// New builds a catalog from explicit categories, dropping empty entries.
func New(categories []Category) Catalog {
	out := make([]Category, 0, len(categories))
	for _, c := range categories {
		if c.Name == "" || len(c.Files) == 0 {
			continue
		}
		files := make([]string, 0, len(c.Files))
		for _, f := range c.Files {
			if f != "" {
				files = append(files, f)
			}
		}
		if len(files) == 0 {
			continue
		}
		out = append(out, Category{Name: c.Name, Files: files})
	}
	return Catalog{Categories: out}
}

// Pairs enumerates every (category, filename) pair in catalog order.
func (c Catalog) Pairs() []Pair {
	pairs := make([]Pair, 0, c.Len())
	for _, cat := range c.Categories {
		for _, f := range cat.Files {
			pairs = append(pairs, Pair{Category: cat.Name, Filename: f})
		}
	}
	return pairs
}

// Len returns the total number of expected files across all categories.
func (c Catalog) Len() int {
	n := 0
	for _, cat := range c.Categories {
		n += len(cat.Files)
	}
	return n
}

// Category returns the named category when present.
func (c Catalog) Category(name string) (Category, bool) {
	for _, cat := range c.Categories {
		if cat.Name == name {
			return cat, true
		}
	}
	return Category{}, false
}
