package ui

import (
	"io"
	"os"
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
)

// Format selects how results are rendered
type Format int

const (
	// FormatAuto picks FormatTerminal on color terminals and FormatText
	// everywhere else
	FormatAuto Format = iota
	FormatTerminal
	FormatText
	FormatJSON
)

// Formats lists the format names accepted by ParseFormat, in help order
var Formats = []Format{FormatAuto, FormatTerminal, FormatText, FormatJSON}

var formatNames = map[Format]string{
	FormatAuto:     "auto",
	FormatTerminal: "term",
	FormatText:     "text",
	FormatJSON:     "json",
}

// Aliases accepted on input besides the canonical names
var formatAliases = map[string]Format{
	"":         FormatAuto,
	"terminal": FormatTerminal,
	"plain":    FormatText,
}

func (f Format) String() string {
	if name, ok := formatNames[f]; ok {
		return name
	}
	return "unknown"
}

// ParseFormat reads a format name, ignoring case
func ParseFormat(s string) (Format, error) {
	name := strings.ToLower(s)
	for f, n := range formatNames {
		if n == name {
			return f, nil
		}
	}
	if f, ok := formatAliases[name]; ok {
		return f, nil
	}
	return FormatAuto, errors.Newf(errors.ErrInvalidInput, "unknown output format %q, expected auto, term, text or json", s).
		WithDetail("format", s)
}

// Resolve replaces FormatAuto with the format suited to output. Writers
// other than files are never terminals.
func (f Format) Resolve(output io.Writer) Format {
	if f != FormatAuto {
		return f
	}
	if file, ok := output.(*os.File); ok {
		return DetectFormat(file)
	}
	return FormatText
}

// DetectFormat picks FormatTerminal for color terminals and FormatText for
// pipes, redirections, dumb terminals and when NO_COLOR is set
func DetectFormat(output *os.File) Format {
	if os.Getenv("NO_COLOR") != "" {
		return FormatText
	}
	if !isatty.IsTerminal(output.Fd()) && !isatty.IsCygwinTerminal(output.Fd()) {
		return FormatText
	}
	if termenv.NewOutput(output).ColorProfile() == termenv.Ascii {
		return FormatText
	}
	return FormatTerminal
}
