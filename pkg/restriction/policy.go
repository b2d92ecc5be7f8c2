package restriction

import (
	"fmt"
	"strconv"
	"strings"
)

// DefaultPolicy selects the behaviour for carriers that appear in neither
// list, and which list wins when a carrier appears in both.
type DefaultPolicy int

const (
	// NotAllowed only admits carriers present in the allowed list and not
	// present in the excluded list. The excluded list wins on overlap.
	NotAllowed DefaultPolicy = 0
	// Allowed admits every carrier except those present in the excluded list
	// and not present in the allowed list. The allowed list wins on overlap.
	Allowed DefaultPolicy = 1
)

// MultiSimPolicy selects how per-slot results are combined on devices with
// more than one SIM slot.
type MultiSimPolicy int

const (
	// None applies the rules to every slot independently
	None MultiSimPolicy = 0
	// OneValidSimMustBePresent admits every slot as soon as one slot is
	// admitted on its own
	OneValidSimMustBePresent MultiSimPolicy = 1
)

// String returns the configuration name of the policy
func (p DefaultPolicy) String() string {
	switch p {
	case NotAllowed:
		return "not_allowed"
	case Allowed:
		return "allowed"
	default:
		return fmt.Sprintf("DefaultPolicy(%d)", int(p))
	}
}

// Valid reports whether p is one of the defined policies
func (p DefaultPolicy) Valid() bool {
	return p == NotAllowed || p == Allowed
}

// MarshalText implements encoding.TextMarshaler
func (p DefaultPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid default policy %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *DefaultPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseDefaultPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseDefaultPolicy accepts the configuration name, the upper-case constant
// name, or the integer code
func ParseDefaultPolicy(s string) (DefaultPolicy, error) {
	switch normalizeName(s, "carrier_restriction_default_") {
	case "", "not_allowed", "0":
		return NotAllowed, nil
	case "allowed", "1":
		return Allowed, nil
	}
	return NotAllowed, fmt.Errorf("unknown default policy %q (want not_allowed or allowed)", s)
}

// String returns the configuration name of the policy
func (p MultiSimPolicy) String() string {
	switch p {
	case None:
		return "none"
	case OneValidSimMustBePresent:
		return "one_valid_sim_must_be_present"
	default:
		return fmt.Sprintf("MultiSimPolicy(%d)", int(p))
	}
}

// Valid reports whether p is one of the defined policies
func (p MultiSimPolicy) Valid() bool {
	return p == None || p == OneValidSimMustBePresent
}

// MarshalText implements encoding.TextMarshaler
func (p MultiSimPolicy) MarshalText() ([]byte, error) {
	if !p.Valid() {
		return nil, fmt.Errorf("invalid multi-SIM policy %d", int(p))
	}
	return []byte(p.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (p *MultiSimPolicy) UnmarshalText(text []byte) error {
	parsed, err := ParseMultiSimPolicy(string(text))
	if err != nil {
		return err
	}
	*p = parsed
	return nil
}

// ParseMultiSimPolicy accepts the configuration name, the upper-case
// constant name, or the integer code
func ParseMultiSimPolicy(s string) (MultiSimPolicy, error) {
	switch normalizeName(s, "multisim_policy_") {
	case "", "none", "0":
		return None, nil
	case "one_valid_sim_must_be_present", "1":
		return OneValidSimMustBePresent, nil
	}
	return None, fmt.Errorf("unknown multi-SIM policy %q (want none or one_valid_sim_must_be_present)", s)
}

func normalizeName(s, prefix string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.ReplaceAll(s, "-", "_")
	s = strings.TrimPrefix(s, prefix)
	if n, err := strconv.Atoi(s); err == nil {
		return strconv.Itoa(n)
	}
	return s
}
