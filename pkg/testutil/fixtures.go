package testutil

// The sample rules admit operator 310/001 except its "b0" sub-brand and the
// whole 234 country, deny everything else, and rescue other slots once one
// SIM is admitted. Every format below encodes the same rules.

// SampleRulesTOML is the sample rules document in TOML
const SampleRulesTOML = `default = "not_allowed"
multi_sim = "one_valid_sim_must_be_present"

[[allowed]]
mcc = "310"
mnc = "001"

[[allowed]]
mcc = "234"
mnc = "??"

[[excluded]]
mcc = "310"
mnc = "001"
gid1 = "b0"
`

// SampleRulesYAML is the sample rules document in YAML
const SampleRulesYAML = `default: not_allowed
multi_sim: one_valid_sim_must_be_present
allowed:
  - mcc: "310"
    mnc: "001"
  - mcc: "234"
    mnc: "??"
excluded:
  - mcc: "310"
    mnc: "001"
    gid1: b0
`

// SampleRulesJSON is the sample rules document in JSON
const SampleRulesJSON = `{
  "default": "not_allowed",
  "multi_sim": "one_valid_sim_must_be_present",
  "allowed": [
    {"mcc": "310", "mnc": "001"},
    {"mcc": "234", "mnc": "??"}
  ],
  "excluded": [
    {"mcc": "310", "mnc": "001", "gid1": "b0"}
  ]
}
`

// SampleRulesXML is the sample rules document in XML
const SampleRulesXML = `<?xml version="1.0" encoding="UTF-8"?>
<carrier-restrictions default="not_allowed" multi-sim="one_valid_sim_must_be_present">
  <allowed>
    <carrier mcc="310" mnc="001"/>
    <carrier mcc="234" mnc="??"/>
  </allowed>
  <excluded>
    <carrier mcc="310" mnc="001" gid1="b0"/>
  </excluded>
</carrier-restrictions>
`

// SampleSlotsTOML describes a dual-SIM device with a foreign SIM in slot 0
// and an admitted SIM in slot 1
const SampleSlotsTOML = `[[slots]]
mcc = "999"
mnc = "99"

[[slots]]
mcc = "310"
mnc = "001"
spn = "Example"
imsi = "310001123456789"
`
