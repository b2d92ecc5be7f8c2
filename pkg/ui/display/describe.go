package display

import (
	"fmt"

	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/restriction"
)

// Verdict values
const (
	VerdictAllowed = "allowed"
	VerdictDenied  = "denied"
	VerdictRescued = "rescued"
)

// Verdict names the outcome of a slot decision
func Verdict(d restriction.SlotDecision) string {
	switch {
	case d.Rescued:
		return VerdictRescued
	case d.Allowed:
		return VerdictAllowed
	default:
		return VerdictDenied
	}
}

// Reason explains a slot decision in one line. defaultPolicy is the name of
// the default policy of the rules that produced it.
func Reason(d restriction.SlotDecision, defaultPolicy string) string {
	var reason string
	switch {
	case d.InAllowed && d.InExcluded:
		reason = fmt.Sprintf("matches allowed[%d] and excluded[%d], %s decides",
			d.AllowedMatch, d.ExcludedMatch, defaultPolicy)
	case d.InAllowed:
		reason = fmt.Sprintf("matches allowed[%d]", d.AllowedMatch)
	case d.InExcluded:
		reason = fmt.Sprintf("matches excluded[%d]", d.ExcludedMatch)
	default:
		reason = "no match, default " + defaultPolicy
	}
	if d.Rescued {
		reason += ", admitted by one_valid_sim_must_be_present"
	}
	return reason
}

// Pattern renders a rule entry or SIM identifier compactly
func Pattern(id carrier.Identifier) string {
	if s := id.Format(); s != "" {
		return s
	}
	return "(empty)"
}
