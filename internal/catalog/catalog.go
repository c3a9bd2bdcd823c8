package catalog

import (
	_ "embed"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed default.yml
var defaultYAML []byte

var defaultCatalog = mustParse(defaultYAML)

// Catalog is an ordered, read-only list of pages. It is built once and never
// changes afterwards, so it is safe for concurrent use.
type Catalog struct {
	entries []PageEntry
	byLoc   map[string]int
}

// New validates entries and returns a catalog holding a private copy of them.
func New(entries []PageEntry) (*Catalog, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	c := &Catalog{
		entries: make([]PageEntry, 0, len(entries)),
		byLoc:   make(map[string]int, len(entries)),
	}
	for i, e := range entries {
		if strings.TrimSpace(e.Title) == "" {
			return nil, &EntryError{Index: i, Field: "title", Err: ErrEmptyTitle}
		}
		if strings.TrimSpace(e.Locator) == "" {
			return nil, &EntryError{Index: i, Field: "locator", Err: ErrEmptyLocator}
		}
		if _, dup := c.byLoc[e.Locator]; dup {
			return nil, &EntryError{Index: i, Field: "locator", Err: ErrDuplicateLocator}
		}
		for _, kw := range e.Keywords {
			if kw == "" || kw != strings.ToLower(kw) {
				return nil, &EntryError{Index: i, Field: fmt.Sprintf("keywords[%q]", kw), Err: ErrInvalidKeyword}
			}
		}
		c.byLoc[e.Locator] = i
		c.entries = append(c.entries, e.clone())
	}
	return c, nil
}

// Parse decodes a YAML catalog document.
func Parse(data []byte) (*Catalog, error) {
	var f file
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decoding catalog: %w", err)
	}
	return New(f.Pages)
}

// LoadFile reads a YAML catalog from path.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("loading catalog %s: %w", path, err)
	}
	return c, nil
}

// Load returns the catalog at path, or the built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	return LoadFile(path)
}

func mustParse(data []byte) *Catalog {
	c, err := Parse(data)
	if err != nil {
		panic(fmt.Sprintf("built-in catalog: %v", err))
	}
	return c
}

// Default returns the built-in catalog of the site's ten pages.
func Default() *Catalog { return defaultCatalog }

// Len returns the number of pages.
func (c *Catalog) Len() int { return len(c.entries) }

// Entries returns a copy of every page in catalog order.
func (c *Catalog) Entries() []PageEntry {
	out := make([]PageEntry, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.clone()
	}
	return out
}

// Search returns the pages whose title or any keyword contains query,
// ignoring case, in catalog order. The empty query matches every page.
func (c *Catalog) Search(query string) []PageEntry {
	q := strings.ToLower(query)
	results := make([]PageEntry, 0)
	for _, e := range c.entries {
		if matches(e, q) {
			results = append(results, e.clone())
		}
	}
	return results
}

// matches expects q to be lower-cased already.
func matches(e PageEntry, q string) bool {
	if strings.Contains(strings.ToLower(e.Title), q) {
		return true
	}
	for _, kw := range e.Keywords {
		if strings.Contains(kw, q) {
			return true
		}
	}
	return false
}

// Search queries the built-in catalog.
func Search(query string) []PageEntry {
	return defaultCatalog.Search(query)
}

// ByLocator returns the page with the given locator.
func (c *Catalog) ByLocator(locator string) (PageEntry, bool) {
	i, ok := c.byLoc[locator]
	if !ok {
		return PageEntry{}, false
	}
	return c.entries[i].clone(), true
}
