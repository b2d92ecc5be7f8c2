package topics

import (
	"github.com/charmbracelet/glamour"
)

// GlamourRenderer renders markdown topics with glamour
type GlamourRenderer struct {
	Style string // "auto", a standard style such as "dark" or "notty", or a style file path
	Width int    // Word wrap width, 0 keeps glamour's default
}

// NewGlamourRenderer creates a markdown renderer that picks its style from
// the terminal
func NewGlamourRenderer(width int) *GlamourRenderer {
	return &GlamourRenderer{Style: "auto", Width: width}
}

// Render formats markdown content. Other formats are rendered plain and
// markdown glamour cannot render is returned unchanged.
func (r *GlamourRenderer) Render(content string, ext string) string {
	if ext != ".md" {
		return (&PlainRenderer{}).Render(content, ext)
	}

	var options []glamour.TermRendererOption
	if r.Style != "" && r.Style != "auto" {
		options = append(options, glamour.WithStylePath(r.Style))
	} else {
		options = append(options, glamour.WithAutoStyle())
	}
	if r.Width > 0 {
		options = append(options, glamour.WithWordWrap(r.Width))
	}

	renderer, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return content
	}
	rendered, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return rendered
}
