// Package display holds the results commands hand to the renderers
package display

import (
	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/disconnect"
	"github.com/arthur-debert/carrierlock/pkg/restriction"
)

// CheckResult is the outcome of evaluating SIM slots against rules
type CheckResult struct {
	// Source names where the rules came from, usually a file path
	Source    string                     `json:"source"`
	Rules     RulesSummary               `json:"rules"`
	Decisions []restriction.SlotDecision `json:"decisions"`
}

// AllAllowed reports whether every slot is allowed
func (r *CheckResult) AllAllowed() bool {
	for _, d := range r.Decisions {
		if !d.Allowed {
			return false
		}
	}
	return true
}

// Denied returns the slots that are not allowed
func (r *CheckResult) Denied() []int {
	var slots []int
	for _, d := range r.Decisions {
		if !d.Allowed {
			slots = append(slots, d.Slot)
		}
	}
	return slots
}

// RulesSummary describes a rule set for display
type RulesSummary struct {
	Source             string               `json:"source,omitempty"`
	Default            string               `json:"default"`
	MultiSim           string               `json:"multi_sim"`
	AllCarriersAllowed bool                 `json:"all_carriers_allowed"`
	Allowed            []carrier.Identifier `json:"allowed"`
	Excluded           []carrier.Identifier `json:"excluded"`
}

// Summarize builds the display form of rules
func Summarize(source string, rules *restriction.Rules) RulesSummary {
	return RulesSummary{
		Source:             source,
		Default:            rules.DefaultCarrierRestriction().String(),
		MultiSim:           rules.MultiSimPolicy().String(),
		AllCarriersAllowed: rules.IsAllCarriersAllowed(),
		Allowed:            rules.AllowedCarriers(),
		Excluded:           rules.ExcludedCarriers(),
	}
}

// ValidationResult reports the outcome of validating rules files
type ValidationResult struct {
	Files []FileValidation `json:"files"`
}

// Valid reports whether every file passed
func (r *ValidationResult) Valid() bool {
	for _, f := range r.Files {
		if !f.Valid {
			return false
		}
	}
	return true
}

// FileValidation is the validation outcome for one file
type FileValidation struct {
	Path       string   `json:"path"`
	Valid      bool     `json:"valid"`
	Error      string   `json:"error,omitempty"`
	Violations []string `json:"violations,omitempty"`
}

// Cause is a disconnect cause prepared for display
type Cause struct {
	Code  int    `json:"code"`
	Name  string `json:"name"`
	Valid bool   `json:"valid"`
}

// CauseList is the result of a disconnect cause lookup
type CauseList struct {
	Causes []Cause `json:"causes"`
}

// NewCause converts a disconnect cause for display
func NewCause(c disconnect.Cause) Cause {
	return Cause{Code: int(c), Name: c.String(), Valid: c.Valid()}
}

// Document is raw document content such as a converted rules file or a
// schema. Renderers write it unchanged, except JSON which wraps it.
type Document struct {
	Format  string `json:"format"`
	Content string `json:"content"`
}
