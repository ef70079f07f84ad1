// Package theme carries the embedded default templates and layers
// site-local overrides on top of them.
package theme

import (
	"embed"
	"io/fs"
	"os"
)

//go:embed templates
var embedded embed.FS

// Page template names the builder expects to find.
const (
	TmplHome      = "home"
	TmplPage      = "page"
	TmplBlogPost  = "blog-post"
	TmplBlogIndex = "blog-index"
)

// PageTemplates lists every page template name.
func PageTemplates() []string {
	return []string{TmplHome, TmplPage, TmplBlogPost, TmplBlogIndex}
}

// FeedTemplates lists the feed template paths.
func FeedTemplates() []string {
	return []string{"feeds/blog.xml", "feeds/blog.atom"}
}

// FS returns the template filesystem. Files in overrideDir shadow the
// embedded defaults; an empty or missing overrideDir yields the defaults
// alone.
func FS(overrideDir string) fs.FS {
	base, err := fs.Sub(embedded, "templates")
	if err != nil {
		// The embedded tree always contains templates/.
		panic(err)
	}

	if overrideDir == "" {
		return base
	}
	if _, err := os.Stat(overrideDir); err != nil {
		return base
	}

	return layered{override: os.DirFS(overrideDir), base: base}
}

// layered is an fs.FS that consults the override first.
type layered struct {
	override fs.FS
	base     fs.FS
}

func (l layered) Open(name string) (fs.File, error) {
	if f, err := l.override.Open(name); err == nil {
		return f, nil
	}
	return l.base.Open(name)
}
