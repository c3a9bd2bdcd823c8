package site

import (
	"bytes"
	"encoding/json"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting/v2"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"

	"github.com/ziadkadry99/ww2site/internal/catalog"
	"github.com/ziadkadry99/ww2site/internal/progress"
)

// SearchIndexFile is the name of the JSON catalog written next to the pages.
const SearchIndexFile = "search-index.json"

// Generator renders the catalog's pages into a static HTML site.
type Generator struct {
	Catalog    *catalog.Catalog
	ContentDir string
	StaticDir  string
	OutputDir  string
	SiteTitle  string
	Exclude    []string // glob patterns of static files to skip
	Reporter   progress.Reporter
}

// NewGenerator creates a Generator with the given directories.
func NewGenerator(cat *catalog.Catalog, contentDir, staticDir, outputDir, siteTitle string) *Generator {
	return &Generator{
		Catalog:    cat,
		ContentDir: contentDir,
		StaticDir:  staticDir,
		OutputDir:  outputDir,
		SiteTitle:  siteTitle,
		Reporter:   progress.Nop{},
	}
}

// pageData holds the data passed to the HTML templates.
type pageData struct {
	Title     string
	SiteTitle string
	Content   template.HTML
	Pages     []catalog.PageEntry
	BasePath  string
}

// Generate builds the site. Returns the number of catalog pages rendered.
func (g *Generator) Generate() (int, error) {
	if g.Catalog == nil {
		return 0, fmt.Errorf("no catalog to build")
	}
	reporter := g.Reporter
	if reporter == nil {
		reporter = progress.Nop{}
	}

	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return 0, fmt.Errorf("creating output dir: %w", err)
	}

	copied, err := g.copyStatic()
	if err != nil {
		return 0, fmt.Errorf("copying static assets: %w", err)
	}
	slog.Debug("static assets copied", "dir", g.StaticDir, "files", copied)

	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("github"),
			),
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	pageTmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing page template: %w", err)
	}
	indexTmpl, err := template.New("index").
		Funcs(template.FuncMap{"join": strings.Join}).
		Parse(indexTemplate)
	if err != nil {
		return 0, fmt.Errorf("parsing index template: %w", err)
	}

	pages := g.Catalog.Entries()
	reporter.Start(len(pages))
	for i, page := range pages {
		if err := g.renderPage(md, pageTmpl, pages, page); err != nil {
			return 0, fmt.Errorf("rendering %s: %w", page.Locator, err)
		}
		reporter.Update(i+1, page.Locator)
	}
	reporter.Finish()

	if _, ok := g.Catalog.ByLocator("index.html"); !ok {
		if err := g.renderIndex(md, indexTmpl, pages); err != nil {
			return 0, fmt.Errorf("rendering index: %w", err)
		}
	}

	if err := WriteSearchIndex(pages, filepath.Join(g.OutputDir, SearchIndexFile)); err != nil {
		return 0, fmt.Errorf("writing search index: %w", err)
	}

	return len(pages), nil
}

// renderPage converts one catalog entry's markdown source to an HTML page.
// Entries without a source file get a placeholder body.
func (g *Generator) renderPage(md goldmark.Markdown, tmpl *template.Template, pages []catalog.PageEntry, page catalog.PageEntry) error {
	locator, err := cleanLocator(page.Locator)
	if err != nil {
		return err
	}

	src := filepath.Join(g.ContentDir, filepath.FromSlash(sourcePath(locator)))
	content, err := os.ReadFile(src)
	if os.IsNotExist(err) {
		slog.Debug("no markdown source, rendering placeholder", "locator", locator, "source", src)
		content = placeholder(page)
	} else if err != nil {
		return err
	}

	var htmlBuf bytes.Buffer
	if err := md.Convert(content, &htmlBuf); err != nil {
		return fmt.Errorf("converting markdown: %w", err)
	}

	outPath := filepath.Join(g.OutputDir, filepath.FromSlash(locator))
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return err
	}

	data := pageData{
		Title:     page.Title,
		SiteTitle: g.SiteTitle,
		Content:   template.HTML(htmlBuf.String()),
		Pages:     pages,
		BasePath:  basePath(locator),
	}
	return writeTemplate(outPath, tmpl, data)
}

// renderIndex writes index.html, using content/index.md as the introduction when present.
func (g *Generator) renderIndex(md goldmark.Markdown, tmpl *template.Template, pages []catalog.PageEntry) error {
	var intro bytes.Buffer
	content, err := os.ReadFile(filepath.Join(g.ContentDir, "index.md"))
	if err == nil {
		if err := md.Convert(content, &intro); err != nil {
			return fmt.Errorf("converting index.md: %w", err)
		}
	} else if !os.IsNotExist(err) {
		return err
	}

	data := pageData{
		Title:     g.SiteTitle,
		SiteTitle: g.SiteTitle,
		Content:   template.HTML(intro.String()),
		Pages:     pages,
	}
	return writeTemplate(filepath.Join(g.OutputDir, "index.html"), tmpl, data)
}

// placeholder builds a markdown body for a page without a source file.
// Catalog text is escaped since the renderer passes raw HTML through.
func placeholder(page catalog.PageEntry) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n", template.HTMLEscapeString(page.Title))
	if len(page.Keywords) > 0 {
		b.WriteString("Topics covered on this page:\n\n")
		for _, kw := range page.Keywords {
			fmt.Fprintf(&b, "- %s\n", template.HTMLEscapeString(kw))
		}
	}
	return []byte(b.String())
}

func writeTemplate(outPath string, tmpl *template.Template, data pageData) error {
	f, err := os.Create(outPath)
	if err != nil {
		return err
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// copyStatic copies StaticDir into OutputDir, skipping excluded files.
// A missing StaticDir is not an error.
func (g *Generator) copyStatic() (int, error) {
	if g.StaticDir == "" {
		return 0, nil
	}
	if _, err := os.Stat(g.StaticDir); os.IsNotExist(err) {
		return 0, nil
	}

	outAbs, err := filepath.Abs(g.OutputDir)
	if err != nil {
		return 0, err
	}

	copied := 0
	err = filepath.WalkDir(g.StaticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			// OutputDir may live inside StaticDir; never copy the site into itself.
			if abs, err := filepath.Abs(path); err == nil && abs == outAbs {
				return filepath.SkipDir
			}
		}
		rel, err := filepath.Rel(g.StaticDir, path)
		if err != nil {
			return err
		}
		if rel == "." {
			return nil
		}
		if matchesAny(rel, g.Exclude) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		dst := filepath.Join(g.OutputDir, rel)
		if d.IsDir() {
			return os.MkdirAll(dst, 0o755)
		}
		if err := copyFile(path, dst); err != nil {
			return err
		}
		copied++
		return nil
	})
	return copied, err
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return err
	}
	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}

// WriteSearchIndex writes the pages as JSON to the given path.
func WriteSearchIndex(pages []catalog.PageEntry, outputPath string) error {
	data, err := json.MarshalIndent(pages, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(outputPath, data, 0o644)
}
