// Package carrier defines the identity of a mobile network subscription as
// read from a SIM card, or as written in a restriction rule.
//
// The same Identifier type serves both roles. When it is read from a SIM the
// fields hold concrete values; when it is used as a rule entry the fields are
// patterns in which '?' matches any single character (see pkg/restriction).
package carrier

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/errors"
)

// Identifier identifies a carrier subscription. Every field is optional and an
// absent value is the empty string.
type Identifier struct {
	// MCC is the mobile country code, e.g. "310"
	MCC string `json:"mcc,omitempty" yaml:"mcc,omitempty" toml:"mcc,omitempty" koanf:"mcc"`
	// MNC is the mobile network code, e.g. "260" or "01"
	MNC string `json:"mnc,omitempty" yaml:"mnc,omitempty" toml:"mnc,omitempty" koanf:"mnc"`
	// SPN is the service provider name
	SPN string `json:"spn,omitempty" yaml:"spn,omitempty" toml:"spn,omitempty" koanf:"spn"`
	// IMSI is the international mobile subscriber identity
	IMSI string `json:"imsi,omitempty" yaml:"imsi,omitempty" toml:"imsi,omitempty" koanf:"imsi"`
	// GID1 is the group identifier level 1
	GID1 string `json:"gid1,omitempty" yaml:"gid1,omitempty" toml:"gid1,omitempty" koanf:"gid1"`
	// GID2 is the group identifier level 2
	GID2 string `json:"gid2,omitempty" yaml:"gid2,omitempty" toml:"gid2,omitempty" koanf:"gid2"`
}

// Field names accepted by Parse, in display order
var fieldNames = []string{"mcc", "mnc", "spn", "imsi", "gid1", "gid2"}

// String renders the identifier with every field, empty ones included
func (id Identifier) String() string {
	return fmt.Sprintf("CarrierIdentifier{mcc=%s, mnc=%s, spn=%s, imsi=%s, gid1=%s, gid2=%s}",
		id.MCC, id.MNC, id.SPN, id.IMSI, id.GID1, id.GID2)
}

// IsEmpty reports whether no field is set
func (id Identifier) IsEmpty() bool {
	return id == Identifier{}
}

// Get returns a field by its lowercase name
func (id Identifier) Get(field string) (string, bool) {
	switch strings.ToLower(field) {
	case "mcc":
		return id.MCC, true
	case "mnc":
		return id.MNC, true
	case "spn":
		return id.SPN, true
	case "imsi":
		return id.IMSI, true
	case "gid1":
		return id.GID1, true
	case "gid2":
		return id.GID2, true
	}
	return "", false
}

// Set assigns a field by its lowercase name
func (id *Identifier) Set(field, value string) error {
	switch strings.ToLower(field) {
	case "mcc":
		id.MCC = value
	case "mnc":
		id.MNC = value
	case "spn":
		id.SPN = value
	case "imsi":
		id.IMSI = value
	case "gid1":
		id.GID1 = value
	case "gid2":
		id.GID2 = value
	default:
		return errors.Newf(errors.ErrInvalidInput, "unknown carrier field %q", field).
			WithDetail("field", field).
			WithDetail("valid", strings.Join(fieldNames, ","))
	}
	return nil
}

// Parse reads the compact form used on the command line:
//
//	mcc=310,mnc=260,spn=Example,imsi=310260,gid1=ba01,gid2=
//
// Keys are case-insensitive and may appear in any order. Values are taken
// verbatim; surrounding whitespace around keys is ignored. An empty string
// parses to the empty Identifier.
func Parse(s string) (Identifier, error) {
	var id Identifier
	if strings.TrimSpace(s) == "" {
		return id, nil
	}

	for _, part := range strings.Split(s, ",") {
		key, value, ok := strings.Cut(part, "=")
		if !ok {
			return Identifier{}, errors.Newf(errors.ErrInvalidInput,
				"malformed carrier field %q, expected key=value", part).
				WithDetail("input", s)
		}
		if err := id.Set(strings.TrimSpace(key), value); err != nil {
			return Identifier{}, err
		}
	}
	return id, nil
}

// Format renders the identifier in the form accepted by Parse, omitting
// empty fields
func (id Identifier) Format() string {
	parts := make([]string, 0, len(fieldNames))
	for _, name := range fieldNames {
		if v, _ := id.Get(name); v != "" {
			parts = append(parts, name+"="+v)
		}
	}
	return strings.Join(parts, ",")
}
