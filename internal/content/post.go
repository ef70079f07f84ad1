package content

import (
	"html/template"
	"time"
)

// Kind classifies a content file by its place in the site.
type Kind int

const (
	KindPage Kind = iota
	KindHome
	KindBlogIndex
	KindPost
)

// Page represents a single content file after parsing and rendering.
type Page struct {
	Title       string
	Description string
	Date        time.Time
	Slug        string
	URL         string
	Template    string
	Kind        Kind
	Body        template.HTML
	Source      []byte // raw file bytes, frontmatter included
	Path        string // source path relative to the content dir
}

// HasDate reports whether the page carries a publish date.
func (p *Page) HasDate() bool {
	return !p.Date.IsZero()
}

// MarkdownURL returns the URL of the markdown mirror of this page.
func (p *Page) MarkdownURL() string {
	if p.URL == "/" {
		return "/index.md"
	}
	return p.URL + ".md"
}

// Post is a blog entry extracted from a page under blog/.
type Post struct {
	Title string
	Slug  string
	URL   string
	Date  time.Time
	Body  template.HTML
}

// DateDisplay formats the publish date for the source markdown listing.
func (p Post) DateDisplay() string {
	return p.Date.Format(time.DateOnly)
}

// DateRSS formats the publish date for RSS feeds.
func (p Post) DateRSS() string {
	return p.Date.Format(time.RFC1123Z)
}

// DateAtom formats the publish date for Atom feeds.
func (p Post) DateAtom() string {
	return p.Date.Format(time.RFC3339)
}
