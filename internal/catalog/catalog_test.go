package catalog

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func titles(entries []PageEntry) []string {
	out := make([]string, len(entries))
	for i, e := range entries {
		out[i] = e.Title
	}
	return out
}

func TestDefaultCatalog(t *testing.T) {
	c := Default()
	if c.Len() != 10 {
		t.Fatalf("Len() = %d, want 10", c.Len())
	}
	entries := c.Entries()
	if entries[0].Title != "1939 - The War Begins" || entries[0].Locator != "pages/1939.html" {
		t.Errorf("first entry = %+v", entries[0])
	}
	if entries[9].Title != "Key Leaders" || entries[9].Locator != "pages/leaders.html" {
		t.Errorf("last entry = %+v", entries[9])
	}
	for i, e := range entries {
		if e.Title == "" || e.Locator == "" {
			t.Errorf("entry %d has empty title or locator: %+v", i, e)
		}
		for _, kw := range e.Keywords {
			if kw != strings.ToLower(kw) {
				t.Errorf("entry %d keyword %q is not lowercase", i, kw)
			}
		}
	}
}

func TestSearchSelfMatch(t *testing.T) {
	c := Default()
	for _, e := range c.Entries() {
		found := false
		for _, r := range c.Search(e.Title) {
			if r.Locator == e.Locator {
				found = true
			}
		}
		if !found {
			t.Errorf("Search(%q) does not include its own entry", e.Title)
		}
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	c := Default()
	got := c.Search("")
	if !reflect.DeepEqual(got, c.Entries()) {
		t.Errorf("Search(\"\") = %v, want every entry in order", titles(got))
	}
}

func TestSearchNoMatch(t *testing.T) {
	got := Search("nonexistent-zzz")
	if got == nil {
		t.Fatal("Search returned nil, want empty slice")
	}
	if len(got) != 0 {
		t.Errorf("Search(nonexistent-zzz) = %v, want none", titles(got))
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	upper := Search("BERLIN")
	lower := Search("berlin")
	if !reflect.DeepEqual(upper, lower) {
		t.Errorf("BERLIN = %v, berlin = %v", titles(upper), titles(lower))
	}
	if len(lower) != 1 || lower[0].Title != "1945 - Victory" {
		t.Errorf("Search(berlin) = %v, want [1945 - Victory]", titles(lower))
	}
}

func TestSearchScenarios(t *testing.T) {
	tests := []struct {
		query string
		want  []string
	}{
		{"dunkirk", []string{"1940 - The Fall of France"}},
		{"battle", []string{"1940 - The Fall of France", "Major Battles"}},
		{"Liberation", []string{"1944 - Liberation"}},
		{"d-day", []string{"1944 - Liberation"}},
		{"194", []string{
			"1940 - The Fall of France", "1941 - Global Conflict", "1942 - The Tide Turns",
			"1943 - Allied Advances", "1944 - Liberation", "1945 - Victory",
		}},
		{"stalin", []string{"1942 - The Tide Turns", "Key Leaders"}},
		{"war", []string{"1939 - The War Begins", "Major Battles"}},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			got := titles(Search(tt.query))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Search(%q) = %v, want %v", tt.query, got, tt.want)
			}
		})
	}
}

func TestSearchDunkirkExactEntry(t *testing.T) {
	got := Search("dunkirk")
	want := []PageEntry{{
		Title:    "1940 - The Fall of France",
		Locator:  "pages/1940.html",
		Keywords: []string{"france", "dunkirk", "battle of britain", "blitz"},
	}}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Search(dunkirk) = %+v, want %+v", got, want)
	}
}

func TestSearchIdempotent(t *testing.T) {
	c := Default()
	first := c.Search("an")
	second := c.Search("an")
	if !reflect.DeepEqual(first, second) {
		t.Errorf("repeated Search differs: %v vs %v", titles(first), titles(second))
	}
}

func TestResultsDoNotAliasCatalog(t *testing.T) {
	c := Default()
	got := c.Search("dunkirk")
	got[0].Title = "changed"
	got[0].Keywords[0] = "changed"

	again := c.Search("dunkirk")
	if again[0].Title != "1940 - The Fall of France" || again[0].Keywords[0] != "france" {
		t.Errorf("catalog was mutated through search results: %+v", again[0])
	}

	entries := c.Entries()
	entries[0].Keywords[0] = "changed"
	if c.Entries()[0].Keywords[0] != "poland" {
		t.Error("catalog was mutated through Entries")
	}
}

func TestNewCopiesInput(t *testing.T) {
	in := []PageEntry{{Title: "A", Locator: "a.html", Keywords: []string{"x"}}}
	c, err := New(in)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	in[0].Title = "B"
	in[0].Keywords[0] = "y"
	if got := c.Entries()[0]; got.Title != "A" || got.Keywords[0] != "x" {
		t.Errorf("catalog shares memory with its input: %+v", got)
	}
}

func TestNewValidation(t *testing.T) {
	tests := []struct {
		name    string
		entries []PageEntry
		wantErr error
		field   string
	}{
		{"empty", nil, ErrEmptyCatalog, ""},
		{"blank title", []PageEntry{{Title: "  ", Locator: "a.html"}}, ErrEmptyTitle, "title"},
		{"empty locator", []PageEntry{{Title: "A"}}, ErrEmptyLocator, "locator"},
		{"uppercase keyword", []PageEntry{{Title: "A", Locator: "a.html", Keywords: []string{"Berlin"}}}, ErrInvalidKeyword, `keywords["Berlin"]`},
		{"empty keyword", []PageEntry{{Title: "A", Locator: "a.html", Keywords: []string{""}}}, ErrInvalidKeyword, `keywords[""]`},
		{"duplicate locator", []PageEntry{
			{Title: "A", Locator: "a.html"},
			{Title: "B", Locator: "a.html"},
		}, ErrDuplicateLocator, "locator"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.entries)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("New error = %v, want %v", err, tt.wantErr)
			}
			if tt.field == "" {
				return
			}
			var entryErr *EntryError
			if !errors.As(err, &entryErr) {
				t.Fatalf("error %v is not an *EntryError", err)
			}
			if entryErr.Field != tt.field {
				t.Errorf("Field = %q, want %q", entryErr.Field, tt.field)
			}
		})
	}
}

func TestParse(t *testing.T) {
	data := []byte(`
pages:
  - title: Home
    locator: index.html
    keywords: [start]
  - title: Timeline
    locator: pages/timeline.html
`)
	c, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if c.Len() != 2 {
		t.Fatalf("Len() = %d, want 2", c.Len())
	}
	if got := titles(c.Search("START")); !reflect.DeepEqual(got, []string{"Home"}) {
		t.Errorf("Search(START) = %v", got)
	}
}

func TestParseInvalidYAML(t *testing.T) {
	if _, err := Parse([]byte("pages: [")); err == nil {
		t.Error("expected error for malformed YAML")
	}
}

func TestLoadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "catalog.yml")
	if err := os.WriteFile(path, []byte("pages:\n  - title: Only\n    locator: only.html\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	c, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	if c.Len() != 1 {
		t.Errorf("Len() = %d, want 1", c.Len())
	}

	if _, err := LoadFile(filepath.Join(dir, "missing.yml")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(dir, "bad.yml")
	if err := os.WriteFile(bad, []byte("pages:\n  - title: X\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFile(bad); !errors.Is(err, ErrEmptyLocator) {
		t.Errorf("LoadFile(bad) error = %v, want ErrEmptyLocator", err)
	}
}

func TestLoadEmptyPathUsesDefault(t *testing.T) {
	c, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if c != Default() {
		t.Error("Load(\"\") should return the built-in catalog")
	}
}

func TestByLocator(t *testing.T) {
	e, ok := Default().ByLocator("pages/holocaust.html")
	if !ok || e.Title != "The Holocaust" {
		t.Errorf("ByLocator = %+v, %v", e, ok)
	}
	if _, ok := Default().ByLocator("pages/nope.html"); ok {
		t.Error("expected miss for unknown locator")
	}
}

func TestYearLocator(t *testing.T) {
	if got := YearLocator(1942); got != "pages/1942.html" {
		t.Errorf("YearLocator(1942) = %q", got)
	}
	e, ok := Default().ByYear(1944)
	if !ok || e.Title != "1944 - Liberation" {
		t.Errorf("ByYear(1944) = %+v, %v", e, ok)
	}
	if _, ok := Default().ByYear(1938); ok {
		t.Error("expected no page for 1938")
	}
}
