package site

import (
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	texttemplate "text/template"
	"time"

	"blog/internal/config"
	"blog/internal/content"
	"blog/internal/theme"
)

// Builder handles the site build process.
type Builder struct {
	cfg           *config.Config
	templates     map[string]*template.Template
	feedTemplates map[string]*texttemplate.Template
	site          *Site
	location      *time.Location
}

// New creates a Builder from the given configuration.
func New(cfg *config.Config) (*Builder, error) {
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}

	b := &Builder{
		cfg:           cfg,
		templates:     make(map[string]*template.Template),
		feedTemplates: make(map[string]*texttemplate.Template),
		site: &Site{
			Title:     cfg.Title,
			BaseURL:   strings.TrimSuffix(cfg.BaseURL, "/"),
			Author:    cfg.Author,
			feedLimit: cfg.FeedLimit,
		},
		location: loc,
	}

	fsys := theme.FS(cfg.TemplatesDir)
	if err := b.loadTemplates(fsys); err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}
	if err := b.loadFeedTemplates(fsys); err != nil {
		return nil, fmt.Errorf("loading feed templates: %w", err)
	}

	return b, nil
}

// Build executes the full build process.
func (b *Builder) Build() error {
	if err := os.MkdirAll(b.cfg.OutputDir, 0755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	slog.Info("copying static files")
	if err := b.copyStatic(); err != nil {
		return fmt.Errorf("copying static files: %w", err)
	}

	slog.Info("processing content")
	pages, posts, err := content.NewCollector(b.cfg.ContentDir, b.location).Collect()
	if err != nil {
		return fmt.Errorf("collecting content: %w", err)
	}
	b.site.setPosts(posts)

	if err := b.renderPages(pages); err != nil {
		return fmt.Errorf("rendering pages: %w", err)
	}

	slog.Info("generating feeds")
	if err := b.buildFeeds(); err != nil {
		return fmt.Errorf("building feeds: %w", err)
	}

	slog.Info("build complete",
		"pages", len(pages),
		"posts", len(posts))

	return nil
}

// copyStatic copies static files to the output directory. A missing static
// dir is not an error.
func (b *Builder) copyStatic() error {
	if _, err := os.Stat(b.cfg.StaticDir); os.IsNotExist(err) {
		return nil
	}

	return filepath.WalkDir(b.cfg.StaticDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		rel := strings.TrimPrefix(path, b.cfg.StaticDir)
		if rel == "" {
			return nil
		}
		rel = strings.TrimPrefix(rel, string(filepath.Separator))
		outputPath := filepath.Join(b.cfg.OutputDir, rel)

		if d.IsDir() {
			return os.MkdirAll(outputPath, 0755)
		}

		return copyFile(path, outputPath)
	})
}
