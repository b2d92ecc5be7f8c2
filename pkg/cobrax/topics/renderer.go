package topics

import "strings"

// Renderer turns topic content into what the help command prints. ext is
// the extension of the topic file, such as ".md".
type Renderer interface {
	Render(content string, ext string) string
}

// PlainRenderer prints topics as they are stored, ending with a newline
type PlainRenderer struct{}

// Render returns the content with a trailing newline
func (r *PlainRenderer) Render(content string, ext string) string {
	if content == "" || strings.HasSuffix(content, "\n") {
		return content
	}
	return content + "\n"
}
