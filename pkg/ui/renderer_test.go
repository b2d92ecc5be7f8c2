package ui_test

import (
	"bytes"
	encjson "encoding/json"
	stderrors "errors"
	"strings"
	"testing"

	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/disconnect"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/restriction"
	"github.com/arthur-debert/carrierlock/pkg/ui"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRules() *restriction.Rules {
	return restriction.NewBuilder().
		SetAllowedCarriers([]carrier.Identifier{{MCC: "310", MNC: "001"}}).
		SetExcludedCarriers([]carrier.Identifier{{MCC: "310", MNC: "001", GID1: "b0"}}).
		Build()
}

func sampleCheck() *display.CheckResult {
	rules := sampleRules()
	return &display.CheckResult{
		Source: "rules.toml",
		Rules:  display.Summarize("rules.toml", rules),
		Decisions: rules.Explain([]carrier.Identifier{
			{MCC: "310", MNC: "001"},
			{MCC: "999", MNC: "99"},
		}),
	}
}

func sampleSummary() *display.RulesSummary {
	s := display.Summarize("rules.toml", sampleRules())
	return &s
}

func sampleCauses() *display.CauseList {
	return &display.CauseList{Causes: []display.Cause{
		display.NewCause(disconnect.Busy),
		display.NewCause(disconnect.Cause(56)),
	}}
}

func sampleValidation() *display.ValidationResult {
	return &display.ValidationResult{Files: []display.FileValidation{
		{Path: "good.toml", Valid: true},
		{Path: "bad.toml", Error: "schema validation failed", Violations: []string{"/default: value must be one of"}},
	}}
}

func render(t *testing.T, format ui.Format, result interface{}) string {
	t.Helper()
	var buf bytes.Buffer
	r, err := ui.NewRenderer(format, &buf)
	require.NoError(t, err)
	require.NoError(t, r.RenderResult(result))
	return buf.String()
}

func TestTextRenderer(t *testing.T) {
	t.Run("check", func(t *testing.T) {
		want := "rules: rules.toml\n" +
			"slot 0: allowed mcc=310,mnc=001 (matches allowed[0])\n" +
			"slot 1: denied  mcc=999,mnc=99 (no match, default not_allowed)\n"
		assert.Equal(t, want, render(t, ui.FormatText, sampleCheck()))
	})

	t.Run("rules", func(t *testing.T) {
		want := "source:    rules.toml\n" +
			"default:   not_allowed\n" +
			"multi_sim: none\n" +
			"allowed:\n" +
			"  [0] mcc=310,mnc=001\n" +
			"excluded:\n" +
			"  [0] mcc=310,mnc=001,gid1=b0\n"
		assert.Equal(t, want, render(t, ui.FormatText, sampleSummary()))
	})

	t.Run("all carriers allowed", func(t *testing.T) {
		s := display.Summarize("", restriction.NewBuilder().SetAllCarriersAllowed().Build())
		want := "default:   allowed\n" +
			"multi_sim: none\n" +
			"all carriers allowed\n"
		assert.Equal(t, want, render(t, ui.FormatText, &s))
	})

	t.Run("empty lists", func(t *testing.T) {
		s := display.Summarize("", restriction.NewBuilder().Build())
		out := render(t, ui.FormatText, &s)
		assert.Contains(t, out, "allowed:\n  (none)\n")
		assert.Contains(t, out, "excluded:\n  (none)\n")
	})

	t.Run("causes", func(t *testing.T) {
		assert.Equal(t, "   4  BUSY\n  56  INVALID: 56\n", render(t, ui.FormatText, sampleCauses()))
	})

	t.Run("validation", func(t *testing.T) {
		want := "ok       good.toml\n" +
			"invalid  bad.toml: schema validation failed\n" +
			"  - /default: value must be one of\n"
		assert.Equal(t, want, render(t, ui.FormatText, sampleValidation()))
	})

	t.Run("document gets a trailing newline", func(t *testing.T) {
		assert.Equal(t, "a = 1\n", render(t, ui.FormatText, &display.Document{Format: "toml", Content: "a = 1"}))
		assert.Equal(t, "a = 1\n", render(t, ui.FormatText, &display.Document{Format: "toml", Content: "a = 1\n"}))
	})

	t.Run("unknown type", func(t *testing.T) {
		assert.Equal(t, "42\n", render(t, ui.FormatText, 42))
	})
}

func TestTerminalRenderer(t *testing.T) {
	t.Run("check", func(t *testing.T) {
		out := render(t, ui.FormatTerminal, sampleCheck())
		assert.Contains(t, out, "Carrier check against rules.toml")
		assert.Contains(t, out, "ALLOWED")
		assert.Contains(t, out, "DENIED")
		assert.Contains(t, out, "mcc=999,mnc=99")
		assert.Contains(t, out, "no match, default not_allowed")
		assert.Contains(t, out, "Denied slots: 1")
	})

	t.Run("check all allowed", func(t *testing.T) {
		c := sampleCheck()
		c.Decisions = c.Decisions[:1]
		assert.Contains(t, render(t, ui.FormatTerminal, c), "All slots allowed")
	})

	t.Run("rules table", func(t *testing.T) {
		out := render(t, ui.FormatTerminal, sampleSummary())
		assert.Contains(t, out, "Carrier restriction rules from rules.toml")
		assert.Contains(t, out, "not_allowed")
		for _, cell := range []string{"MCC", "GID1", "allowed", "excluded", "310", "001", "b0"} {
			assert.Contains(t, out, cell)
		}
	})

	t.Run("rules without entries", func(t *testing.T) {
		s := display.Summarize("", restriction.NewBuilder().Build())
		assert.Contains(t, render(t, ui.FormatTerminal, &s), "No carrier entries")

		s = display.Summarize("", restriction.NewBuilder().SetAllCarriersAllowed().Build())
		assert.Contains(t, render(t, ui.FormatTerminal, &s), "All carriers allowed")
	})

	t.Run("causes", func(t *testing.T) {
		out := render(t, ui.FormatTerminal, sampleCauses())
		assert.Contains(t, out, "BUSY")
		assert.Contains(t, out, "INVALID: 56")
	})

	t.Run("validation", func(t *testing.T) {
		out := render(t, ui.FormatTerminal, sampleValidation())
		assert.Contains(t, out, "good.toml")
		assert.Contains(t, out, "invalid")
		assert.Contains(t, out, "- /default: value must be one of")
	})

	t.Run("error", func(t *testing.T) {
		var buf bytes.Buffer
		r, err := ui.NewRenderer(ui.FormatTerminal, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderError(stderrors.New("boom")))
		assert.Contains(t, buf.String(), "Error:")
		assert.Contains(t, buf.String(), "boom")
	})
}

func TestJSONRenderer(t *testing.T) {
	t.Run("check", func(t *testing.T) {
		var got map[string]interface{}
		require.NoError(t, encjson.Unmarshal([]byte(render(t, ui.FormatJSON, sampleCheck())), &got))

		assert.Equal(t, "rules.toml", got["source"])
		decisions := got["decisions"].([]interface{})
		require.Len(t, decisions, 2)
		first := decisions[0].(map[string]interface{})
		assert.Equal(t, true, first["allowed"])
		assert.Equal(t, float64(0), first["allowed_match"])
		second := decisions[1].(map[string]interface{})
		assert.Equal(t, false, second["allowed"])
		assert.Equal(t, float64(-1), second["excluded_match"])
	})

	t.Run("causes", func(t *testing.T) {
		out := render(t, ui.FormatJSON, sampleCauses())
		assert.JSONEq(t, `{"causes":[
			{"code":4,"name":"BUSY","valid":true},
			{"code":56,"name":"INVALID: 56","valid":true}]}`, out)
	})

	t.Run("error carries code and details", func(t *testing.T) {
		var buf bytes.Buffer
		r, err := ui.NewRenderer(ui.FormatJSON, &buf)
		require.NoError(t, err)

		cause := errors.New(errors.ErrFileNotFound, "rules file not found").WithDetail("path", "x.toml")
		require.NoError(t, r.RenderError(cause))
		assert.JSONEq(t, `{"error":"`+cause.Error()+`","code":"FILE_NOT_FOUND","details":{"path":"x.toml"}}`, buf.String())
	})

	t.Run("plain error", func(t *testing.T) {
		var buf bytes.Buffer
		r, err := ui.NewRenderer(ui.FormatJSON, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderError(stderrors.New("boom")))
		assert.JSONEq(t, `{"error":"boom","code":"UNKNOWN"}`, buf.String())
	})

	t.Run("message", func(t *testing.T) {
		var buf bytes.Buffer
		r, err := ui.NewRenderer(ui.FormatJSON, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderMessage("done"))
		assert.Equal(t, "{\n  \"message\": \"done\"\n}\n", buf.String())
	})
}

func TestRenderMessagePlain(t *testing.T) {
	for _, f := range []ui.Format{ui.FormatText, ui.FormatTerminal} {
		var buf bytes.Buffer
		r, err := ui.NewRenderer(f, &buf)
		require.NoError(t, err)
		require.NoError(t, r.RenderMessage("hello"))
		assert.Equal(t, "hello\n", buf.String())
		assert.False(t, strings.Contains(buf.String(), "\x1b"))
	}
}
