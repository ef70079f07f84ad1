package site

import (
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"

	"gopkg.in/yaml.v3"

	"blog/internal/content"
	"blog/internal/theme"
)

// templateData is passed to page templates.
type templateData struct {
	Page *content.Page
	Site *Site
}

// loadTemplates parses all page templates layered on base.html.
func (b *Builder) loadTemplates(fsys fs.FS) error {
	for _, name := range theme.PageTemplates() {
		tmpl, err := template.ParseFS(fsys, "base.html", name+".html")
		if err != nil {
			return fmt.Errorf("parsing template %s: %w", name, err)
		}
		b.templates[name] = tmpl
	}
	return nil
}

// loadFeedTemplates parses all feed templates.
func (b *Builder) loadFeedTemplates(fsys fs.FS) error {
	funcMap := texttemplate.FuncMap{
		"xml": escapeXML,
	}

	for _, name := range theme.FeedTemplates() {
		tmpl, err := texttemplate.New(filepath.Base(name)).Funcs(funcMap).ParseFS(fsys, name)
		if err != nil {
			return fmt.Errorf("parsing feed template %s: %w", name, err)
		}
		b.feedTemplates[name] = tmpl
	}
	return nil
}

// kindTemplate maps a content kind to its default template name.
func kindTemplate(kind content.Kind) string {
	switch kind {
	case content.KindHome:
		return theme.TmplHome
	case content.KindBlogIndex:
		return theme.TmplBlogIndex
	case content.KindPost:
		return theme.TmplBlogPost
	default:
		return theme.TmplPage
	}
}

// renderPages renders all collected pages.
func (b *Builder) renderPages(pages []*content.Page) error {
	for _, pg := range pages {
		outputPath := pg.OutputPath(b.cfg.OutputDir)
		if err := os.MkdirAll(filepath.Dir(outputPath), 0755); err != nil {
			return fmt.Errorf("creating directory for %s: %w", outputPath, err)
		}

		name := pg.Template
		if name == "" {
			name = kindTemplate(pg.Kind)
		}
		tmpl, ok := b.templates[name]
		if !ok {
			return fmt.Errorf("template %q not found for %s", name, pg.Path)
		}

		data := templateData{
			Page: pg,
			Site: b.site,
		}

		if err := writeTemplate(outputPath, tmpl, data); err != nil {
			return fmt.Errorf("rendering %s: %w", pg.Path, err)
		}

		// Write markdown version of the page
		if err := b.writeMarkdownPage(pg, outputPath); err != nil {
			return fmt.Errorf("writing markdown for %s: %w", pg.Path, err)
		}
	}
	return nil
}

// writeMarkdownPage writes the markdown version of a page.
func (b *Builder) writeMarkdownPage(pg *content.Page, outputPath string) error {
	mdOutputPath := strings.TrimSuffix(outputPath, ".html") + ".md"

	var mdContent []byte
	if pg.Kind == content.KindBlogIndex {
		mdContent = b.generateBlogIndexMarkdown(pg)
	} else {
		// For regular pages, use the original markdown source
		mdContent = pg.Source
	}

	// Ensure file ends with a newline
	if len(mdContent) > 0 && mdContent[len(mdContent)-1] != '\n' {
		mdContent = append(mdContent, '\n')
	}

	return os.WriteFile(mdOutputPath, mdContent, 0644)
}

// yamlScalar formats a string as a properly escaped YAML scalar value
func yamlScalar(s string) string {
	data, err := yaml.Marshal(s)
	if err != nil {
		return fmt.Sprintf("%q", s)
	}
	return strings.TrimSpace(string(data))
}

// writeFrontmatter writes YAML frontmatter with properly escaped values
func writeFrontmatter(sb *strings.Builder, pg *content.Page) {
	sb.WriteString("---\n")
	if pg.Title != "" {
		sb.WriteString(fmt.Sprintf("title: %s\n", yamlScalar(pg.Title)))
	}
	if pg.Description != "" {
		sb.WriteString(fmt.Sprintf("description: %s\n", yamlScalar(pg.Description)))
	}
	if pg.HasDate() {
		sb.WriteString(fmt.Sprintf("date: %s\n", yamlScalar(pg.Date.Format(time.DateOnly))))
	}
	sb.WriteString("---\n\n")
}

// generateBlogIndexMarkdown generates markdown content for the blog index
// with the post listing.
func (b *Builder) generateBlogIndexMarkdown(pg *content.Page) []byte {
	var sb strings.Builder

	writeFrontmatter(&sb, pg)

	sb.WriteString("# blog\n\n")

	for _, post := range b.site.Posts {
		sb.WriteString(fmt.Sprintf("- %s [%s](%s)\n", post.DateDisplay(), post.Title, post.URL))
	}

	return []byte(sb.String())
}

// writeTemplate creates a file and executes a template to it
func writeTemplate[T interface{ Execute(w io.Writer, data any) error }](path string, tmpl T, data any) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()
	return tmpl.Execute(f, data)
}
