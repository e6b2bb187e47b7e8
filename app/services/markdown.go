package services

import (
	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/microcosm-cc/bluemonday"
)

var (
	ugcPolicy    = bluemonday.UGCPolicy()
	strictPolicy = bluemonday.StrictPolicy()
)

// renderContentHTML renders a post's markdown body to sanitized HTML.
func renderContentHTML(content string) string {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	doc := p.Parse([]byte(content))
	renderer := html.NewRenderer(html.RendererOptions{Flags: html.CommonFlags})
	maybeUnsafe := markdown.Render(doc, renderer)
	return string(ugcPolicy.SanitizeBytes(maybeUnsafe))
}
