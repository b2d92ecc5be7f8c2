// Package ui renders command results as rich terminal output, plain text or
// JSON behind a single Renderer interface.
package ui

import (
	"io"

	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/ui/json"
	"github.com/arthur-debert/carrierlock/pkg/ui/terminal"
	"github.com/arthur-debert/carrierlock/pkg/ui/text"
)

// Renderer writes command output in one format
type Renderer interface {
	// RenderResult renders a result from pkg/ui/display. Other values are
	// printed as they are.
	RenderResult(result interface{}) error
	RenderError(err error) error
	RenderMessage(msg string) error
}

// NewRenderer creates the renderer for format, resolving FormatAuto
// against output
func NewRenderer(format Format, output io.Writer) (Renderer, error) {
	switch format.Resolve(output) {
	case FormatTerminal:
		return terminal.New(output)
	case FormatText:
		return text.New(output)
	case FormatJSON:
		return json.New(output)
	}
	return nil, errors.Newf(errors.ErrInvalidInput, "unknown format: %v", format)
}
