// Package commands provides the command implementations behind the CLI.
//
// Each command lives in its own subdirectory:
//   - check/     - Check, evaluates SIM slots against rules
//   - rules/     - Show, Validate, Convert and Schema for rules files
//   - causes/    - Lookup of disconnect causes
//   - genconfig/ - GenConfig, the commented default configuration
//
// This file re-exports them so the CLI depends on a single package.
package commands

import (
	"github.com/arthur-debert/carrierlock/pkg/commands/causes"
	"github.com/arthur-debert/carrierlock/pkg/commands/check"
	"github.com/arthur-debert/carrierlock/pkg/commands/genconfig"
	"github.com/arthur-debert/carrierlock/pkg/commands/rules"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
)

// Check evaluates SIM slots against a rules file.
type CheckOptions = check.CheckOptions

func Check(opts CheckOptions) (*display.CheckResult, error) {
	return check.Check(opts)
}

// ShowRules summarizes a rules file.
type ShowRulesOptions = rules.ShowOptions

func ShowRules(opts ShowRulesOptions) (*display.RulesSummary, error) {
	return rules.Show(opts)
}

// ValidateRules checks rules files against the schema.
type ValidateRulesOptions = rules.ValidateOptions

func ValidateRules(opts ValidateRulesOptions) (*display.ValidationResult, error) {
	return rules.Validate(opts)
}

// ConvertRules rewrites a rules file in another format.
type ConvertRulesOptions = rules.ConvertOptions

func ConvertRules(opts ConvertRulesOptions) (*display.Document, error) {
	return rules.Convert(opts)
}

// RulesSchema returns the JSON Schema of rules or slots files.
type RulesSchemaOptions = rules.SchemaOptions

func RulesSchema(opts RulesSchemaOptions) (*display.Document, error) {
	return rules.Schema(opts)
}

// LookupCauses resolves disconnect cause codes and names.
type LookupCausesOptions = causes.LookupOptions

func LookupCauses(opts LookupCausesOptions) (*display.CauseList, error) {
	return causes.Lookup(opts)
}

// GenConfig outputs or writes the default configuration.
type GenConfigOptions = genconfig.GenConfigOptions

func GenConfig(opts GenConfigOptions) (*genconfig.GenConfigResult, error) {
	return genconfig.GenConfig(opts)
}
