// Package render converts Markdown content to HTML.
package render

import (
	"fmt"
	"html/template"
	"io"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
)

// Markdown converts markdown content to HTML.
func Markdown(content []byte) []byte {
	extensions := parser.CommonExtensions | parser.AutoHeadingIDs | parser.SuperSubscript
	p := parser.NewWithExtensions(extensions)
	doc := p.Parse(content)

	opts := html.RendererOptions{
		Flags:          html.CommonFlags,
		RenderNodeHook: renderLink,
	}
	renderer := html.NewRenderer(opts)

	return markdown.Render(doc, renderer)
}

// isSafeURL checks if a URL scheme is safe (not javascript:, data:, etc.)
func isSafeURL(dest string) bool {
	lower := strings.ToLower(dest)
	// Allow http, https, mailto, tel, and relative URLs
	if strings.HasPrefix(lower, "http://") ||
		strings.HasPrefix(lower, "https://") ||
		strings.HasPrefix(lower, "mailto:") ||
		strings.HasPrefix(lower, "tel:") {
		return true
	}
	// Block URLs with explicit schemes (javascript:, data:, vbscript:, etc.)
	if strings.Contains(lower, ":") && !strings.HasPrefix(lower, "/") {
		return false
	}
	// Allow relative URLs
	return true
}

// renderLink adds target="_blank" and rel="noopener" to external links
func renderLink(w io.Writer, node ast.Node, entering bool) (ast.WalkStatus, bool) {
	link, ok := node.(*ast.Link)
	if !ok {
		return ast.GoToNext, false
	}

	if entering {
		dest := string(link.Destination)

		// Block potentially dangerous URI schemes
		if !isSafeURL(dest) {
			fmt.Fprint(w, `<a href="#">`)
			return ast.GoToNext, true
		}

		escapedDest := template.HTMLEscapeString(dest)
		isExternal := strings.HasPrefix(dest, "http://") || strings.HasPrefix(dest, "https://")

		if isExternal {
			fmt.Fprintf(w, `<a href="%s" target="_blank" rel="noopener">`, escapedDest)
		} else {
			fmt.Fprintf(w, `<a href="%s">`, escapedDest)
		}
	} else {
		io.WriteString(w, "</a>")
	}

	return ast.GoToNext, true
}
