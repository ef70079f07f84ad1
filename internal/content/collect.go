// Package content discovers markdown files and turns them into pages
// and blog posts.
package content

import (
	"bytes"
	"cmp"
	"fmt"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/adrg/frontmatter"
	"github.com/goliatone/go-slug"

	"blog/internal/render"
)

const blogDir = "blog"

// meta is the YAML frontmatter shape accepted in content files.
type meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	Date        string `yaml:"date"`
	Slug        string `yaml:"slug"`
	Template    string `yaml:"template"`
	Draft       bool   `yaml:"draft"`
}

// Collector walks a content directory and produces pages and posts.
type Collector struct {
	dir string
	loc *time.Location
}

// NewCollector returns a Collector rooted at dir. Dates in frontmatter are
// interpreted in loc.
func NewCollector(dir string, loc *time.Location) *Collector {
	return &Collector{dir: dir, loc: loc}
}

// Collect walks the content directory and returns all non-draft pages plus
// the blog posts among them, posts sorted newest first.
func (c *Collector) Collect() ([]*Page, []Post, error) {
	var pages []*Page
	var posts []Post

	err := filepath.WalkDir(c.dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if d.IsDir() || !strings.HasSuffix(path, ".md") {
			return nil
		}

		pg, err := c.collectPage(path)
		if err != nil {
			return fmt.Errorf("collecting %s: %w", path, err)
		}
		if pg == nil {
			return nil
		}

		pages = append(pages, pg)
		if pg.Kind == KindPost {
			posts = append(posts, Post{
				Title: pg.Title,
				Slug:  pg.Slug,
				URL:   pg.URL,
				Date:  pg.Date,
				Body:  pg.Body,
			})
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	slices.SortStableFunc(posts, func(a, b Post) int {
		return cmp.Compare(b.Date.Unix(), a.Date.Unix())
	})

	return pages, posts, nil
}

// collectPage parses a single content file. Drafts return (nil, nil).
func (c *Collector) collectPage(path string) (*Page, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	var fm meta
	body, err := frontmatter.Parse(bytes.NewReader(source), &fm)
	if err != nil {
		return nil, fmt.Errorf("parsing frontmatter: %w", err)
	}

	if fm.Draft {
		return nil, nil
	}

	rel := c.relPath(path)
	kind := classify(rel)

	pg := &Page{
		Title:       fm.Title,
		Description: fm.Description,
		Template:    fm.Template,
		Kind:        kind,
		Body:        template.HTML(render.Markdown(body)),
		Source:      source,
		Path:        rel,
	}

	if fm.Date != "" {
		t, err := time.ParseInLocation(time.DateOnly, fm.Date, c.loc)
		if err != nil {
			return nil, fmt.Errorf("parsing date %q: %w", fm.Date, err)
		}
		pg.Date = t
	}

	if err := c.assignSlugURL(pg, fm.Slug, rel); err != nil {
		return nil, err
	}

	// Posts without an explicit title fall back to the slug.
	if kind == KindPost && pg.Title == "" {
		pg.Title = strings.ReplaceAll(pg.Slug, "-", " ")
	}

	return pg, nil
}

// assignSlugURL sets the page slug and URL from frontmatter or the file path.
func (c *Collector) assignSlugURL(pg *Page, explicit, rel string) error {
	raw := explicit
	if raw == "" {
		raw = strings.TrimSuffix(filepath.Base(rel), ".md")
	}

	normalized, err := slug.Normalize(raw)
	if err != nil {
		return fmt.Errorf("normalizing slug %q: %w", raw, err)
	}
	pg.Slug = normalized

	switch pg.Kind {
	case KindHome:
		pg.URL = "/"
	case KindBlogIndex:
		pg.URL = "/" + blogDir
	case KindPost:
		pg.URL = "/" + blogDir + "/" + pg.Slug
	default:
		pg.URL = pageURL(rel, pg.Slug)
	}
	return nil
}

// pageURL mirrors the content path for plain pages.
func pageURL(rel, slug string) string {
	if dir, ok := isDirIndex(rel); ok {
		return "/" + filepath.ToSlash(dir)
	}
	dir := filepath.Dir(rel)
	if dir == "." {
		return "/" + slug
	}
	return "/" + filepath.ToSlash(dir) + "/" + slug
}

// classify determines the kind of content based on its relative path.
func classify(rel string) Kind {
	if rel == "index.md" {
		return KindHome
	}
	if rel == filepath.Join(blogDir, "index.md") {
		return KindBlogIndex
	}
	if strings.HasPrefix(rel, blogDir+string(filepath.Separator)) {
		return KindPost
	}
	return KindPage
}

// isDirIndex reports whether rel is a directory's index.md and returns the
// directory name.
func isDirIndex(rel string) (string, bool) {
	suffix := string(filepath.Separator) + "index.md"
	if strings.HasSuffix(rel, suffix) {
		return strings.TrimSuffix(rel, suffix), true
	}
	return "", false
}

// relPath returns the path relative to the content dir.
func (c *Collector) relPath(path string) string {
	return strings.TrimPrefix(path, c.dir+string(filepath.Separator))
}

// OutputPath returns where the rendered HTML for this page belongs under
// outputDir.
func (p *Page) OutputPath(outputDir string) string {
	if p.Path == "index.md" {
		return filepath.Join(outputDir, "index.html")
	}
	if dir, ok := isDirIndex(p.Path); ok {
		return filepath.Join(outputDir, dir+".html")
	}
	if p.Kind == KindPost {
		return filepath.Join(outputDir, blogDir, p.Slug+".html")
	}
	return filepath.Join(outputDir, strings.TrimSuffix(p.Path, ".md")+".html")
}
