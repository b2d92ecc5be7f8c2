// Package styles holds the lipgloss styles used by the terminal renderer.
//
// Styles are defined in the embedded styles.yaml under semantic names such
// as Allowed, Denied and Pattern. Colors adapt to light and dark terminals.
package styles

import (
	_ "embed"

	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/charmbracelet/lipgloss"
	"gopkg.in/yaml.v3"
)

// ColorDef is an adaptive color definition
type ColorDef struct {
	Light string `yaml:"light"`
	Dark  string `yaml:"dark"`
}

// StyleDef is a style definition
type StyleDef struct {
	Bold         bool   `yaml:"bold,omitempty"`
	Italic       bool   `yaml:"italic,omitempty"`
	Underline    bool   `yaml:"underline,omitempty"`
	Foreground   string `yaml:"foreground,omitempty"`
	Width        int    `yaml:"width,omitempty"`
	Align        string `yaml:"align,omitempty"`
	MarginBottom int    `yaml:"marginBottom,omitempty"`
	PaddingLeft  int    `yaml:"paddingLeft,omitempty"`
	PaddingRight int    `yaml:"paddingRight,omitempty"`
}

// Config is the content of a styles file
type Config struct {
	Colors map[string]ColorDef `yaml:"colors"`
	Styles map[string]StyleDef `yaml:"styles"`
}

// Names of the styles every registry provides
var Names = []string{
	"Header", "Label", "Allowed", "Denied", "Rescued",
	"Pattern", "Code", "Muted", "Error", "Success",
}

// Registry maps style names to lipgloss styles
type Registry map[string]lipgloss.Style

//go:embed styles.yaml
var embeddedStyles []byte

var defaultRegistry Registry

func init() {
	reg, err := Parse(embeddedStyles)
	if err != nil {
		reg = Plain()
	}
	defaultRegistry = reg
}

// Default returns the registry built from the embedded styles
func Default() Registry {
	return defaultRegistry
}

// Plain returns a registry in which every style is unstyled
func Plain() Registry {
	reg := make(Registry, len(Names))
	for _, name := range Names {
		reg[name] = lipgloss.NewStyle()
	}
	return reg
}

// Parse builds a registry from YAML. Styles missing from data are unstyled.
func Parse(data []byte) (Registry, error) {
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrConfigParse, "failed to parse styles")
	}

	colors := make(map[string]lipgloss.AdaptiveColor, len(cfg.Colors))
	for name, def := range cfg.Colors {
		colors[name] = lipgloss.AdaptiveColor{Light: def.Light, Dark: def.Dark}
	}

	reg := Plain()
	for name, def := range cfg.Styles {
		style, err := buildStyle(def, colors)
		if err != nil {
			return nil, errors.Wrapf(err, errors.ErrConfigValid, "invalid style %s", name).
				WithDetail("style", name)
		}
		reg[name] = style
	}
	return reg, nil
}

func buildStyle(def StyleDef, colors map[string]lipgloss.AdaptiveColor) (lipgloss.Style, error) {
	style := lipgloss.NewStyle().
		Bold(def.Bold).
		Italic(def.Italic).
		Underline(def.Underline)

	if def.Foreground != "" {
		color, ok := colors[def.Foreground]
		if !ok {
			return style, errors.Newf(errors.ErrConfigValid, "unknown color %q", def.Foreground)
		}
		style = style.Foreground(color)
	}

	if def.Width > 0 {
		style = style.Width(def.Width)
	}
	switch def.Align {
	case "", "left":
	case "center":
		style = style.Align(lipgloss.Center)
	case "right":
		style = style.Align(lipgloss.Right)
	default:
		return style, errors.Newf(errors.ErrConfigValid, "unknown alignment %q", def.Align)
	}

	if def.MarginBottom > 0 {
		style = style.MarginBottom(def.MarginBottom)
	}
	if def.PaddingLeft > 0 {
		style = style.PaddingLeft(def.PaddingLeft)
	}
	if def.PaddingRight > 0 {
		style = style.PaddingRight(def.PaddingRight)
	}
	return style, nil
}

// Get returns the named style, or an unstyled one when it is not defined
func (r Registry) Get(name string) lipgloss.Style {
	if style, ok := r[name]; ok {
		return style
	}
	return lipgloss.NewStyle()
}

// Render applies the named style to text
func (r Registry) Render(name, text string) string {
	return r.Get(name).Render(text)
}
