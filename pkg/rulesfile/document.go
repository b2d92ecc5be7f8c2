// Package rulesfile reads and writes carrier restriction rules as TOML, YAML,
// JSON or XML documents.
//
// A rules document looks like this in TOML:
//
//	default = "not_allowed"
//	multi_sim = "none"
//
//	[[allowed]]
//	mcc = "310"
//	mnc = "00?"
//
//	[[excluded]]
//	mcc = "310"
//	mnc = "001"
//	gid1 = "ab"
//
// Identifier fields are strings and must be quoted in every format, since
// leading zeros in an MNC are significant.
package rulesfile

import (
	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/restriction"
	"github.com/invopop/jsonschema"
)

// Entry is one carrier pattern of the allowed or excluded list
type Entry struct {
	MCC  string `json:"mcc,omitempty" yaml:"mcc,omitempty" toml:"mcc,omitempty" koanf:"mcc" jsonschema:"maxLength=3,pattern=^[0-9?]*$" jsonschema_description:"Mobile country code, '?' matches any digit"`
	MNC  string `json:"mnc,omitempty" yaml:"mnc,omitempty" toml:"mnc,omitempty" koanf:"mnc" jsonschema:"maxLength=3,pattern=^[0-9?]*$" jsonschema_description:"Mobile network code, '?' matches any digit"`
	SPN  string `json:"spn,omitempty" yaml:"spn,omitempty" toml:"spn,omitempty" koanf:"spn" jsonschema_description:"Service provider name, ignored when empty"`
	IMSI string `json:"imsi,omitempty" yaml:"imsi,omitempty" toml:"imsi,omitempty" koanf:"imsi" jsonschema:"maxLength=15,pattern=^[0-9?]*$" jsonschema_description:"IMSI prefix"`
	GID1 string `json:"gid1,omitempty" yaml:"gid1,omitempty" toml:"gid1,omitempty" koanf:"gid1" jsonschema:"pattern=^[0-9a-fA-F?]*$" jsonschema_description:"Group identifier level 1 prefix, hexadecimal"`
	GID2 string `json:"gid2,omitempty" yaml:"gid2,omitempty" toml:"gid2,omitempty" koanf:"gid2" jsonschema:"pattern=^[0-9a-fA-F?]*$" jsonschema_description:"Group identifier level 2 prefix, hexadecimal"`
}

// Identifier converts the entry to a carrier identifier
func (e Entry) Identifier() carrier.Identifier {
	return carrier.Identifier(e)
}

// EntryFrom converts a carrier identifier to an entry
func EntryFrom(id carrier.Identifier) Entry {
	return Entry(id)
}

// DefaultValue is the serialized default policy. Besides the names it
// accepts the numeric codes, so "1" and 1 both mean allowed.
type DefaultValue string

// JSONSchema restricts the default policy to its known spellings
func (DefaultValue) JSONSchema() *jsonschema.Schema {
	return policySchema("Policy for carriers in neither list, and which list wins on overlap",
		restriction.NotAllowed.String(), restriction.Allowed.String(),
		"CARRIER_RESTRICTION_DEFAULT_NOT_ALLOWED", "CARRIER_RESTRICTION_DEFAULT_ALLOWED")
}

// MultiSimValue is the serialized multi-SIM policy
type MultiSimValue string

// JSONSchema restricts the multi-SIM policy to its known spellings
func (MultiSimValue) JSONSchema() *jsonschema.Schema {
	return policySchema("How results are combined across SIM slots",
		restriction.None.String(), restriction.OneValidSimMustBePresent.String(),
		"MULTISIM_POLICY_NONE", "MULTISIM_POLICY_ONE_VALID_SIM_MUST_BE_PRESENT")
}

func policySchema(description string, names ...string) *jsonschema.Schema {
	enum := []any{"0", "1"}
	for _, n := range names {
		enum = append(enum, n)
	}
	return &jsonschema.Schema{
		Description: description,
		OneOf: []*jsonschema.Schema{
			{Type: "string", Enum: enum},
			{Type: "integer", Enum: []any{0, 1}},
		},
	}
}

// Document is the serialized form of restriction rules
type Document struct {
	Default  DefaultValue  `json:"default,omitempty" yaml:"default,omitempty" toml:"default,omitempty" koanf:"default"`
	MultiSim MultiSimValue `json:"multi_sim,omitempty" yaml:"multi_sim,omitempty" toml:"multi_sim,omitempty" koanf:"multi_sim"`
	Allowed  []Entry       `json:"allowed,omitempty" yaml:"allowed,omitempty" toml:"allowed,omitempty" koanf:"allowed"`
	Excluded []Entry       `json:"excluded,omitempty" yaml:"excluded,omitempty" toml:"excluded,omitempty" koanf:"excluded"`
}

// Rules builds restriction rules from the document. A missing default or
// multi-SIM policy takes the builder default.
func (d *Document) Rules() (*restriction.Rules, error) {
	defaultPolicy, err := restriction.ParseDefaultPolicy(string(d.Default))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRulesInvalid, "invalid default policy").
			WithDetail("default", string(d.Default))
	}
	multiSimPolicy, err := restriction.ParseMultiSimPolicy(string(d.MultiSim))
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrRulesInvalid, "invalid multi-SIM policy").
			WithDetail("multi_sim", string(d.MultiSim))
	}

	return restriction.NewBuilder().
		SetAllowedCarriers(toIdentifiers(d.Allowed)).
		SetExcludedCarriers(toIdentifiers(d.Excluded)).
		SetDefaultCarrierRestriction(defaultPolicy).
		SetMultiSimPolicy(multiSimPolicy).
		Build(), nil
}

// FromRules returns the document for rules, with both policies spelled out
func FromRules(rules *restriction.Rules) *Document {
	return &Document{
		Default:  DefaultValue(rules.DefaultCarrierRestriction().String()),
		MultiSim: MultiSimValue(rules.MultiSimPolicy().String()),
		Allowed:  toEntries(rules.AllowedCarriers()),
		Excluded: toEntries(rules.ExcludedCarriers()),
	}
}

// SlotsDocument lists the carrier identity found in each SIM slot, in slot
// order
type SlotsDocument struct {
	Slots []Entry `json:"slots" yaml:"slots" toml:"slots" koanf:"slots"`
}

// Identifiers returns the slot identities
func (d *SlotsDocument) Identifiers() []carrier.Identifier {
	return toIdentifiers(d.Slots)
}

func toIdentifiers(entries []Entry) []carrier.Identifier {
	ids := make([]carrier.Identifier, len(entries))
	for i, e := range entries {
		ids[i] = e.Identifier()
	}
	return ids
}

func toEntries(ids []carrier.Identifier) []Entry {
	if len(ids) == 0 {
		return nil
	}
	entries := make([]Entry, len(ids))
	for i, id := range ids {
		entries[i] = EntryFrom(id)
	}
	return entries
}
