package restriction

import "github.com/arthur-debert/carrierlock/pkg/carrier"

// SlotDecision records how the rules reached the result for one SIM slot
type SlotDecision struct {
	Slot       int                `json:"slot"`
	Identifier carrier.Identifier `json:"identifier"`

	// InAllowed and InExcluded are the list memberships of the identifier
	InAllowed  bool `json:"in_allowed"`
	InExcluded bool `json:"in_excluded"`

	// AllowedMatch and ExcludedMatch are the indices of the first matching
	// entry of each list, -1 when nothing matched
	AllowedMatch  int `json:"allowed_match"`
	ExcludedMatch int `json:"excluded_match"`

	// SlotAllowed is the result before the multi-SIM policy
	SlotAllowed bool `json:"slot_allowed"`
	// Allowed is the final result
	Allowed bool `json:"allowed"`
	// Rescued is set when the multi-SIM policy admitted a slot that was
	// denied on its own
	Rescued bool `json:"rescued"`
}

// Explain evaluates the identifiers like AreCarrierIdentifiersAllowed and
// also reports which entries matched. Explain(ids)[i].Allowed always equals
// AreCarrierIdentifiersAllowed(ids)[i].
func (r *Rules) Explain(carrierIDs []carrier.Identifier) []SlotDecision {
	decisions := make([]SlotDecision, len(carrierIDs))
	anyAllowed := false
	for i, id := range carrierIDs {
		d := SlotDecision{
			Slot:          i,
			Identifier:    id,
			AllowedMatch:  FirstMatch(id, r.allowed),
			ExcludedMatch: FirstMatch(id, r.excluded),
		}
		d.InAllowed = d.AllowedMatch >= 0
		d.InExcluded = d.ExcludedMatch >= 0
		d.SlotAllowed = r.slotAllowed(d.InAllowed, d.InExcluded)
		d.Allowed = d.SlotAllowed
		anyAllowed = anyAllowed || d.SlotAllowed
		decisions[i] = d
	}

	if anyAllowed && r.multiSimPolicy == OneValidSimMustBePresent {
		for i := range decisions {
			decisions[i].Rescued = !decisions[i].SlotAllowed
			decisions[i].Allowed = true
		}
	}
	return decisions
}
