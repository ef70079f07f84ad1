package render

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMarkdownBasics(t *testing.T) {
	out := string(Markdown([]byte("# Hello World\n\nSome *emphasis* here.\n")))

	assert.Contains(t, out, `<h1 id="hello-world">Hello World</h1>`)
	assert.Contains(t, out, "<em>emphasis</em>")
}

func TestMarkdownExternalLinks(t *testing.T) {
	out := string(Markdown([]byte("[site](https://example.com/page)")))

	assert.Contains(t, out, `<a href="https://example.com/page" target="_blank" rel="noopener">`)
}

func TestMarkdownRelativeLinks(t *testing.T) {
	out := string(Markdown([]byte("[post](/blog/some-post)")))

	assert.Contains(t, out, `<a href="/blog/some-post">`)
	assert.NotContains(t, out, "target=")
}

func TestMarkdownBlocksUnsafeSchemes(t *testing.T) {
	for _, dest := range []string{"javascript:alert(1)", "data:text/html,x", "vbscript:x"} {
		out := string(Markdown([]byte("[x](" + dest + ")")))
		assert.Contains(t, out, `<a href="#">`, "scheme %s should be blocked", dest)
		assert.NotContains(t, out, dest)
	}
}

func TestIsSafeURL(t *testing.T) {
	tests := []struct {
		dest string
		want bool
	}{
		{"https://example.com", true},
		{"http://example.com", true},
		{"mailto:a@b.c", true},
		{"tel:+1234567890", true},
		{"/relative/path", true},
		{"relative/path", true},
		{"javascript:alert(1)", false},
		{"data:text/html,hi", false},
		{"JAVASCRIPT:alert(1)", false},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, isSafeURL(tt.dest), "dest %q", tt.dest)
	}
}
