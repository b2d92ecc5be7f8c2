// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
	"github.com/arthur-debert/carrierlock/pkg/ui/styles"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles and pterm
// tables
type Renderer struct {
	output io.Writer
	styles styles.Registry
}

// New creates a new terminal renderer
func New(output io.Writer) (*Renderer, error) {
	return NewWithStyles(output, styles.Default())
}

// NewWithStyles creates a terminal renderer using the given styles
func NewWithStyles(output io.Writer, reg styles.Registry) (*Renderer, error) {
	return &Renderer{output: output, styles: reg}, nil
}

// RenderResult renders any result type with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var b strings.Builder
	var err error
	switch v := result.(type) {
	case *display.CheckResult:
		r.writeCheck(&b, v)
	case *display.RulesSummary:
		err = r.writeRules(&b, v)
	case *display.ValidationResult:
		r.writeValidation(&b, v)
	case *display.CauseList:
		err = r.writeCauses(&b, v)
	case *display.Document:
		b.WriteString(v.Content)
		if !strings.HasSuffix(v.Content, "\n") {
			b.WriteString("\n")
		}
	default:
		// For unknown types, just print them
		fmt.Fprintf(&b, "%+v\n", result)
	}
	if err != nil {
		return err
	}
	_, err = io.WriteString(r.output, b.String())
	return err
}

// RenderError renders an error with error styling
func (r *Renderer) RenderError(err error) error {
	_, err2 := fmt.Fprintf(r.output, "%s %v\n", r.styles.Render("Error", "Error:"), err)
	return err2
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, msg)
	return err
}

func (r *Renderer) verdict(v string) string {
	label := strings.ToUpper(v)
	switch v {
	case display.VerdictAllowed:
		return r.styles.Render("Allowed", label)
	case display.VerdictRescued:
		return r.styles.Render("Rescued", label)
	default:
		return r.styles.Render("Denied", label)
	}
}

func (r *Renderer) writeCheck(b *strings.Builder, v *display.CheckResult) {
	b.WriteString(r.styles.Render("Header", "Carrier check against "+v.Source))
	b.WriteString("\n")
	for _, d := range v.Decisions {
		// Padding goes outside the styled text so escape codes do not shift
		// the columns
		verdict := display.Verdict(d)
		fmt.Fprintf(b, "  %s %d  %s%s  %s  %s\n",
			r.styles.Render("Label", "slot"),
			d.Slot,
			r.verdict(verdict),
			strings.Repeat(" ", 7-len(verdict)),
			r.styles.Render("Pattern", display.Pattern(d.Identifier)),
			r.styles.Render("Muted", display.Reason(d, v.Rules.Default)))
	}
	b.WriteString("\n")
	if v.AllAllowed() {
		b.WriteString(r.styles.Render("Success", "All slots allowed"))
	} else {
		denied := make([]string, 0, len(v.Decisions))
		for _, slot := range v.Denied() {
			denied = append(denied, strconv.Itoa(slot))
		}
		b.WriteString(r.styles.Render("Error", "Denied slots: "+strings.Join(denied, ", ")))
	}
	b.WriteString("\n")
}

func (r *Renderer) writeRules(b *strings.Builder, v *display.RulesSummary) error {
	title := "Carrier restriction rules"
	if v.Source != "" {
		title += " from " + v.Source
	}
	b.WriteString(r.styles.Render("Header", title))
	b.WriteString("\n")
	fmt.Fprintf(b, "%s %s\n", r.styles.Render("Label", "Default:  "), v.Default)
	fmt.Fprintf(b, "%s %s\n", r.styles.Render("Label", "Multi-SIM:"), v.MultiSim)

	if v.AllCarriersAllowed {
		b.WriteString(r.styles.Render("Success", "All carriers allowed"))
		b.WriteString("\n")
		return nil
	}

	data := pterm.TableData{{"List", "#", "MCC", "MNC", "SPN", "IMSI", "GID1", "GID2"}}
	data = appendRows(data, "allowed", v.Allowed)
	data = appendRows(data, "excluded", v.Excluded)
	if len(data) == 1 {
		b.WriteString(r.styles.Render("Muted", "No carrier entries"))
		b.WriteString("\n")
		return nil
	}

	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render rules table: %w", err)
	}
	b.WriteString("\n")
	b.WriteString(table)
	b.WriteString("\n")
	return nil
}

func appendRows(data pterm.TableData, list string, ids []carrier.Identifier) pterm.TableData {
	for i, id := range ids {
		data = append(data, []string{list, strconv.Itoa(i), id.MCC, id.MNC, id.SPN, id.IMSI, id.GID1, id.GID2})
	}
	return data
}

func (r *Renderer) writeValidation(b *strings.Builder, v *display.ValidationResult) {
	for _, f := range v.Files {
		if f.Valid {
			fmt.Fprintf(b, "%s %s\n", r.styles.Render("Allowed", "valid  "), f.Path)
			continue
		}
		fmt.Fprintf(b, "%s %s\n", r.styles.Render("Denied", "invalid"), f.Path)
		fmt.Fprintf(b, "        %s\n", f.Error)
		for _, violation := range f.Violations {
			fmt.Fprintf(b, "        %s\n", r.styles.Render("Muted", "- "+violation))
		}
	}
}

func (r *Renderer) writeCauses(b *strings.Builder, v *display.CauseList) error {
	data := pterm.TableData{{"Code", "Name"}}
	for _, c := range v.Causes {
		name := c.Name
		if !c.Valid {
			name = r.styles.Render("Muted", name)
		}
		data = append(data, []string{strconv.Itoa(c.Code), name})
	}
	table, err := pterm.DefaultTable.WithHasHeader().WithData(data).Srender()
	if err != nil {
		return fmt.Errorf("failed to render cause table: %w", err)
	}
	b.WriteString(table)
	b.WriteString("\n")
	return nil
}
