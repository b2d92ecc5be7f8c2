package restriction

import (
	"fmt"
	"slices"
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/carrier"
)

// Rules is an immutable carrier restriction configuration. Values are only
// produced by Builder.Build and may be shared between goroutines.
type Rules struct {
	allowed        []carrier.Identifier
	excluded       []carrier.Identifier
	defaultPolicy  DefaultPolicy
	multiSimPolicy MultiSimPolicy
}

// IsAllCarriersAllowed reports whether the rules admit every carrier: both
// lists are empty and the default policy is Allowed.
func (r *Rules) IsAllCarriersAllowed() bool {
	return len(r.allowed) == 0 && len(r.excluded) == 0 && r.defaultPolicy == Allowed
}

// AllowedCarriers returns a copy of the allowed list
func (r *Rules) AllowedCarriers() []carrier.Identifier {
	return cloneList(r.allowed)
}

// ExcludedCarriers returns a copy of the excluded list
func (r *Rules) ExcludedCarriers() []carrier.Identifier {
	return cloneList(r.excluded)
}

// DefaultCarrierRestriction returns the default policy
func (r *Rules) DefaultCarrierRestriction() DefaultPolicy {
	return r.defaultPolicy
}

// MultiSimPolicy returns the policy applied across SIM slots
func (r *Rules) MultiSimPolicy() MultiSimPolicy {
	return r.multiSimPolicy
}

// AreCarrierIdentifiersAllowed evaluates one identifier per SIM slot, in slot
// order, and returns whether each slot is allowed. The identifiers do not
// need to be the ones currently present in the device.
func (r *Rules) AreCarrierIdentifiersAllowed(carrierIDs []carrier.Identifier) []bool {
	result := make([]bool, len(carrierIDs))
	anyAllowed := false
	for i, id := range carrierIDs {
		result[i] = r.slotAllowed(MatchesAny(id, r.allowed), MatchesAny(id, r.excluded))
		anyAllowed = anyAllowed || result[i]
	}

	if anyAllowed && r.multiSimPolicy == OneValidSimMustBePresent {
		for i := range result {
			result[i] = true
		}
	}
	return result
}

// slotAllowed applies the default policy to the list membership of one slot.
// Which list wins on overlap depends on the default.
func (r *Rules) slotAllowed(inAllowed, inExcluded bool) bool {
	if r.defaultPolicy == NotAllowed {
		return inAllowed && !inExcluded
	}
	return !(inExcluded && !inAllowed)
}

// Equal reports whether both rule sets hold the same lists, in the same
// order, and the same policies
func (r *Rules) Equal(other *Rules) bool {
	if r == nil || other == nil {
		return r == other
	}
	return r.defaultPolicy == other.defaultPolicy &&
		r.multiSimPolicy == other.multiSimPolicy &&
		slices.Equal(r.allowed, other.allowed) &&
		slices.Equal(r.excluded, other.excluded)
}

// String renders the rules in a single line for logs
func (r *Rules) String() string {
	return fmt.Sprintf("CarrierRestrictionRules(allowed:%s, excluded:%s, default:%d, multisim policy:%d)",
		formatList(r.allowed), formatList(r.excluded), int(r.defaultPolicy), int(r.multiSimPolicy))
}

func formatList(list []carrier.Identifier) string {
	parts := make([]string, len(list))
	for i, id := range list {
		parts[i] = id.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

func cloneList(list []carrier.Identifier) []carrier.Identifier {
	out := make([]carrier.Identifier, len(list))
	copy(out, list)
	return out
}

// Builder accumulates a configuration and produces Rules. A Builder must not
// be used from more than one goroutine at a time. Every call to Build returns
// an independent snapshot; later changes to the builder do not affect Rules
// that were already built.
type Builder struct {
	rules Rules
}

// NewBuilder returns a builder for rules that, unless changed, allow nothing:
// both lists empty, default NotAllowed, multi-SIM policy None.
func NewBuilder() *Builder {
	return &Builder{
		rules: Rules{
			allowed:        []carrier.Identifier{},
			excluded:       []carrier.Identifier{},
			defaultPolicy:  NotAllowed,
			multiSimPolicy: None,
		},
	}
}

// Build returns the immutable rules
func (b *Builder) Build() *Rules {
	return &Rules{
		allowed:        cloneList(b.rules.allowed),
		excluded:       cloneList(b.rules.excluded),
		defaultPolicy:  b.rules.defaultPolicy,
		multiSimPolicy: b.rules.multiSimPolicy,
	}
}

// SetAllCarriersAllowed clears both lists and sets the default policy to
// Allowed, discarding anything set before.
func (b *Builder) SetAllCarriersAllowed() *Builder {
	b.rules.allowed = []carrier.Identifier{}
	b.rules.excluded = []carrier.Identifier{}
	b.rules.defaultPolicy = Allowed
	return b
}

// SetAllowedCarriers replaces the allowed list. A nil list is a programming
// error and panics; pass an empty slice to clear the list.
func (b *Builder) SetAllowedCarriers(allowedCarriers []carrier.Identifier) *Builder {
	if allowedCarriers == nil {
		panic("restriction: SetAllowedCarriers called with nil list")
	}
	b.rules.allowed = cloneList(allowedCarriers)
	return b
}

// SetExcludedCarriers replaces the excluded list. A nil list is a programming
// error and panics; pass an empty slice to clear the list.
func (b *Builder) SetExcludedCarriers(excludedCarriers []carrier.Identifier) *Builder {
	if excludedCarriers == nil {
		panic("restriction: SetExcludedCarriers called with nil list")
	}
	b.rules.excluded = cloneList(excludedCarriers)
	return b
}

// SetDefaultCarrierRestriction sets the default policy. Values other than
// NotAllowed and Allowed panic.
func (b *Builder) SetDefaultCarrierRestriction(policy DefaultPolicy) *Builder {
	if !policy.Valid() {
		panic(fmt.Sprintf("restriction: invalid default policy %d", int(policy)))
	}
	b.rules.defaultPolicy = policy
	return b
}

// SetMultiSimPolicy sets the multi-SIM policy. Values other than None and
// OneValidSimMustBePresent panic.
func (b *Builder) SetMultiSimPolicy(policy MultiSimPolicy) *Builder {
	if !policy.Valid() {
		panic(fmt.Sprintf("restriction: invalid multi-SIM policy %d", int(policy)))
	}
	b.rules.multiSimPolicy = policy
	return b
}
