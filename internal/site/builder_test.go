package site

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blog/internal/config"
)

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := &config.Config{
		Title:      "test blog",
		BaseURL:    "https://example.com",
		Author:     "tester",
		Timezone:   "UTC",
		ContentDir: filepath.Join(root, "content"),
		StaticDir:  filepath.Join(root, "static"),
		OutputDir:  filepath.Join(root, "public"),
		FeedLimit:  50,
	}
	require.NoError(t, os.MkdirAll(cfg.ContentDir, 0o755))
	return cfg
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(data)
}

func buildFixtureSite(t *testing.T, cfg *config.Config) {
	t.Helper()
	writeFile(t, filepath.Join(cfg.ContentDir, "index.md"), "---\ntitle: home\n---\nwelcome\n")
	writeFile(t, filepath.Join(cfg.ContentDir, "about.md"), "---\ntitle: about\n---\nabout me\n")
	writeFile(t, filepath.Join(cfg.ContentDir, "blog", "index.md"), "---\ntitle: blog\n---\n")
	writeFile(t, filepath.Join(cfg.ContentDir, "blog", "older-post.md"),
		"---\ntitle: older post\ndate: 2022-03-04\n---\nold body\n")
	writeFile(t, filepath.Join(cfg.ContentDir, "blog", "newer-post.md"),
		"---\ntitle: newer post\ndate: 2023-01-15\n---\nnew body\n")
	writeFile(t, filepath.Join(cfg.StaticDir, "css", "main.css"), "body{}\n")

	b, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, b.Build())
}

func TestBuildWritesPages(t *testing.T) {
	cfg := testConfig(t)
	buildFixtureSite(t, cfg)

	for _, rel := range []string{
		"index.html", "about.html", "blog.html",
		filepath.Join("blog", "older-post.html"),
		filepath.Join("blog", "newer-post.html"),
		"blog.xml", "blog.atom",
		filepath.Join("css", "main.css"),
	} {
		_, err := os.Stat(filepath.Join(cfg.OutputDir, rel))
		assert.NoError(t, err, "expected output file %s", rel)
	}
}

func TestBuildBlogIndexListing(t *testing.T) {
	cfg := testConfig(t)
	buildFixtureSite(t, cfg)

	index := readFile(t, filepath.Join(cfg.OutputDir, "blog.html"))

	assert.Contains(t, index, `<a href="/blog/newer-post"><h3>newer post</h3></a>`)
	assert.Contains(t, index, `<a href="/blog/older-post"><h3>older post</h3></a>`)
	assert.Contains(t, index, "<time>15.01.2023</time>")
	assert.Contains(t, index, "<time>04.03.2022</time>")

	// Newest first.
	assert.Less(t,
		strings.Index(index, "newer post"),
		strings.Index(index, "older post"))
}

func TestBuildPostPage(t *testing.T) {
	cfg := testConfig(t)
	buildFixtureSite(t, cfg)

	post := readFile(t, filepath.Join(cfg.OutputDir, "blog", "newer-post.html"))

	assert.Contains(t, post, "<h1>newer post</h1>")
	assert.Contains(t, post, "new body")
	assert.Contains(t, post, "<time>15.01.2023</time>")
	assert.Contains(t, post, "test blog")
}

func TestBuildFeeds(t *testing.T) {
	cfg := testConfig(t)
	buildFixtureSite(t, cfg)

	rss := readFile(t, filepath.Join(cfg.OutputDir, "blog.xml"))
	assert.Contains(t, rss, "<title>newer post</title>")
	assert.Contains(t, rss, "<link>https://example.com/blog/newer-post</link>")

	atom := readFile(t, filepath.Join(cfg.OutputDir, "blog.atom"))
	assert.Contains(t, atom, `<link href="https://example.com/blog/newer-post"/>`)
	assert.Contains(t, atom, "<name>tester</name>")
}

func TestBuildFeedLimit(t *testing.T) {
	cfg := testConfig(t)
	cfg.FeedLimit = 1
	buildFixtureSite(t, cfg)

	rss := readFile(t, filepath.Join(cfg.OutputDir, "blog.xml"))
	assert.Contains(t, rss, "newer post")
	assert.NotContains(t, rss, "older post")
}

func TestBuildMarkdownMirrors(t *testing.T) {
	cfg := testConfig(t)
	buildFixtureSite(t, cfg)

	about := readFile(t, filepath.Join(cfg.OutputDir, "about.md"))
	assert.Contains(t, about, "about me")

	blogIndex := readFile(t, filepath.Join(cfg.OutputDir, "blog.md"))
	assert.Contains(t, blogIndex, "- 2023-01-15 [newer post](/blog/newer-post)")
	assert.Contains(t, blogIndex, "- 2022-03-04 [older post](/blog/older-post)")
}

func TestBuildTemplateOverride(t *testing.T) {
	cfg := testConfig(t)
	cfg.TemplatesDir = filepath.Join(filepath.Dir(cfg.ContentDir), "templates")
	writeFile(t, filepath.Join(cfg.TemplatesDir, "page.html"),
		`{{define "content"}}OVERRIDDEN {{.Page.Title}}{{end}}`)
	buildFixtureSite(t, cfg)

	about := readFile(t, filepath.Join(cfg.OutputDir, "about.html"))
	assert.Contains(t, about, "OVERRIDDEN about")
}

func TestBuildUnknownTemplateName(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.ContentDir, "weird.md"), "---\ntitle: w\ntemplate: nope\n---\n")

	b, err := New(cfg)
	require.NoError(t, err)
	assert.Error(t, b.Build())
}

func TestBuildXMLEscaping(t *testing.T) {
	cfg := testConfig(t)
	writeFile(t, filepath.Join(cfg.ContentDir, "blog", "index.md"), "---\ntitle: blog\n---\n")
	writeFile(t, filepath.Join(cfg.ContentDir, "blog", "amp.md"),
		"---\ntitle: Q&A <session>\ndate: 2023-06-01\n---\n")

	b, err := New(cfg)
	require.NoError(t, err)
	require.NoError(t, b.Build())

	rss := readFile(t, filepath.Join(cfg.OutputDir, "blog.xml"))
	assert.Contains(t, rss, "Q&amp;A &lt;session&gt;")
}
