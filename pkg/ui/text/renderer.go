// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
}

// New creates a new text renderer
func New(output io.Writer) (*Renderer, error) {
	return &Renderer{output: output}, nil
}

// RenderResult renders any result type as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder
	switch v := result.(type) {
	case *display.CheckResult:
		writeCheck(&b, v)
	case *display.RulesSummary:
		writeRules(&b, v)
	case *display.ValidationResult:
		writeValidation(&b, v)
	case *display.CauseList:
		for _, c := range v.Causes {
			fmt.Fprintf(&b, "%4d  %s\n", c.Code, c.Name)
		}
	case *display.Document:
		b.WriteString(v.Content)
		if !strings.HasSuffix(v.Content, "\n") {
			b.WriteString("\n")
		}
	default:
		// For unknown types, just print them
		fmt.Fprintf(&b, "%+v\n", result)
	}
	_, err := io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "Error: %v\n", err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func writeCheck(b *strings.Builder, v *display.CheckResult) {
	fmt.Fprintf(b, "rules: %s\n", v.Source)
	for _, d := range v.Decisions {
		fmt.Fprintf(b, "slot %d: %-7s %s (%s)\n",
			d.Slot, display.Verdict(d), display.Pattern(d.Identifier), display.Reason(d, v.Rules.Default))
	}
}

func writeRules(b *strings.Builder, v *display.RulesSummary) {
	if v.Source != "" {
		fmt.Fprintf(b, "source:    %s\n", v.Source)
	}
	fmt.Fprintf(b, "default:   %s\n", v.Default)
	fmt.Fprintf(b, "multi_sim: %s\n", v.MultiSim)
	if v.AllCarriersAllowed {
		b.WriteString("all carriers allowed\n")
		return
	}
	writeList(b, "allowed", v.Allowed)
	writeList(b, "excluded", v.Excluded)
}

func writeList(b *strings.Builder, name string, list []carrier.Identifier) {
	fmt.Fprintf(b, "%s:\n", name)
	if len(list) == 0 {
		b.WriteString("  (none)\n")
		return
	}
	for i, id := range list {
		fmt.Fprintf(b, "  [%d] %s\n", i, display.Pattern(id))
	}
}

func writeValidation(b *strings.Builder, v *display.ValidationResult) {
	for _, f := range v.Files {
		if f.Valid {
			fmt.Fprintf(b, "ok       %s\n", f.Path)
			continue
		}
		fmt.Fprintf(b, "invalid  %s: %s\n", f.Path, f.Error)
		for _, violation := range f.Violations {
			fmt.Fprintf(b, "  - %s\n", violation)
		}
	}
}
