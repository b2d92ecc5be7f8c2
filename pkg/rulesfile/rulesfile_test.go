package rulesfile

import (
	"encoding/json"
	"testing"

	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/filesystem"
	"github.com/arthur-debert/carrierlock/pkg/restriction"
	"github.com/arthur-debert/carrierlock/pkg/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRules() *restriction.Rules {
	return restriction.NewBuilder().
		SetAllowedCarriers([]carrier.Identifier{
			{MCC: "310", MNC: "001"},
			{MCC: "234", MNC: "??"},
		}).
		SetExcludedCarriers([]carrier.Identifier{
			{MCC: "310", MNC: "001", GID1: "b0"},
		}).
		SetDefaultCarrierRestriction(restriction.NotAllowed).
		SetMultiSimPolicy(restriction.OneValidSimMustBePresent).
		Build()
}

func TestLoadSampleInEveryFormat(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{"toml", "rules.toml", testutil.SampleRulesTOML},
		{"yaml", "rules.yaml", testutil.SampleRulesYAML},
		{"yml", "rules.yml", testutil.SampleRulesYAML},
		{"json", "rules.json", testutil.SampleRulesJSON},
		{"xml", "rules.xml", testutil.SampleRulesXML},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := testutil.CreateFile(t, t.TempDir(), tt.file, tt.content)

			rules, err := Load(path)
			require.NoError(t, err)
			assert.True(t, sampleRules().Equal(rules), "got %s", rules)
		})
	}
}

func TestEncodeDecodeRoundTrip(t *testing.T) {
	rules := restriction.NewBuilder().
		SetAllowedCarriers([]carrier.Identifier{
			{MCC: "310", MNC: "260", SPN: "Example Mobile", IMSI: "31026012", GID1: "BA", GID2: "ff"},
		}).
		SetExcludedCarriers([]carrier.Identifier{{MCC: "3??", MNC: "???"}}).
		SetDefaultCarrierRestriction(restriction.Allowed).
		Build()

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(rules, format)
			require.NoError(t, err)

			decoded, err := Decode(data, format)
			require.NoError(t, err, "document:\n%s", data)
			assert.True(t, rules.Equal(decoded), "got %s from\n%s", decoded, data)
		})
	}
}

func TestEncodeEmptyRules(t *testing.T) {
	rules := restriction.NewBuilder().SetAllCarriersAllowed().Build()

	for _, format := range Formats {
		t.Run(string(format), func(t *testing.T) {
			data, err := Encode(rules, format)
			require.NoError(t, err)

			decoded, err := Decode(data, format)
			require.NoError(t, err, "document:\n%s", data)
			assert.True(t, decoded.IsAllCarriersAllowed())
		})
	}
}

func TestEncodeJSON(t *testing.T) {
	data, err := Encode(sampleRules(), FormatJSON)
	require.NoError(t, err)
	assert.JSONEq(t, testutil.SampleRulesJSON, string(data))
}

func TestEncodeXMLLayout(t *testing.T) {
	data, err := Encode(sampleRules(), FormatXML)
	require.NoError(t, err)

	xml := string(data)
	assert.Contains(t, xml, `<carrier-restrictions default="not_allowed" multi-sim="one_valid_sim_must_be_present">`)
	assert.Contains(t, xml, `<carrier mcc="234" mnc="??"/>`)
	assert.Contains(t, xml, `<carrier mcc="310" mnc="001" gid1="b0"/>`)
}

func TestDecodeDefaults(t *testing.T) {
	rules, err := Decode([]byte(`[[allowed]]
mcc = "310"
mnc = "001"
`), FormatTOML)
	require.NoError(t, err)

	assert.Equal(t, restriction.NotAllowed, rules.DefaultCarrierRestriction())
	assert.Equal(t, restriction.None, rules.MultiSimPolicy())
	assert.Empty(t, rules.ExcludedCarriers())
}

func TestDecodeNumericPolicies(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"toml integers", FormatTOML, "default = 1\nmulti_sim = 1\n"},
		{"toml strings", FormatTOML, "default = \"1\"\nmulti_sim = \"1\"\n"},
		{"yaml integers", FormatYAML, "default: 1\nmulti_sim: 1\n"},
		{"json integers", FormatJSON, `{"default": 1, "multi_sim": 1}`},
		{"constant names", FormatJSON, `{"default": "CARRIER_RESTRICTION_DEFAULT_ALLOWED", "multi_sim": "MULTISIM_POLICY_ONE_VALID_SIM_MUST_BE_PRESENT"}`},
		{"xml codes", FormatXML, `<carrier-restrictions default="1" multi-sim="1"/>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules, err := Decode([]byte(tt.data), tt.format)
			require.NoError(t, err)
			assert.Equal(t, restriction.Allowed, rules.DefaultCarrierRestriction())
			assert.Equal(t, restriction.OneValidSimMustBePresent, rules.MultiSimPolicy())
		})
	}
}

func TestDecodeSchemaViolations(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"unknown top-level key", FormatTOML, "defaults = \"allowed\"\n"},
		{"unknown entry key", FormatTOML, "[[allowed]]\nmcc = \"310\"\nmccmnc = \"310001\"\n"},
		{"mcc too long", FormatTOML, "[[allowed]]\nmcc = \"3100\"\n"},
		{"mcc not digits", FormatJSON, `{"allowed": [{"mcc": "31a"}]}`},
		{"gid not hex", FormatJSON, `{"excluded": [{"mcc": "310", "mnc": "001", "gid1": "zz"}]}`},
		{"unquoted mcc", FormatYAML, "allowed:\n  - mcc: 310\n"},
		{"bad default", FormatJSON, `{"default": "deny"}`},
		{"default out of range", FormatJSON, `{"default": 2}`},
		{"bad multi_sim", FormatYAML, "multi_sim: all\n"},
		{"boolean default", FormatTOML, "default = true\n"},
		{"xml bad mcc", FormatXML, `<carrier-restrictions><allowed><carrier mcc="abc"/></allowed></carrier-restrictions>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid), "got %v", err)

			details := errors.GetErrorDetails(err)
			assert.NotEmpty(t, details["violations"])
		})
	}
}

func TestDecodeWithoutValidation(t *testing.T) {
	loader := &Loader{Validate: false}

	// Unquoted YAML numbers are accepted once the schema is out of the way
	rules, err := loader.Decode([]byte("allowed:\n  - mcc: 310\n    mnc: 260\n"), FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, []carrier.Identifier{{MCC: "310", MNC: "260"}}, rules.AllowedCarriers())

	// Policies are still checked when the rules are built
	_, err = loader.Decode([]byte(`{"default": "deny"}`), FormatJSON)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrRulesInvalid))
}

func TestDecodeRejectsBooleanPolicies(t *testing.T) {
	loader := &Loader{Validate: false}

	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"toml default", FormatTOML, "default = true\n"},
		{"toml multi_sim", FormatTOML, "multi_sim = false\n"},
		{"yaml default", FormatYAML, "default: true\n"},
		{"json multi_sim", FormatJSON, `{"multi_sim": true}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
			assert.Contains(t, err.Error(), "boolean")
		})
	}
}

func TestDecodeParseErrors(t *testing.T) {
	tests := []struct {
		name   string
		format Format
		data   string
	}{
		{"toml", FormatTOML, "default = \n"},
		{"yaml", FormatYAML, "allowed: [\n"},
		{"json", FormatJSON, `{"allowed": `},
		{"xml", FormatXML, `<carrier-restrictions default=allowed/>`},
		{"xml wrong root", FormatXML, `<rules/>`},
		{"xml unknown section", FormatXML, `<carrier-restrictions><permitted/></carrier-restrictions>`},
		{"xml unknown element", FormatXML, `<carrier-restrictions><allowed><operator/></allowed></carrier-restrictions>`},
		{"xml unknown attribute", FormatXML, `<carrier-restrictions><allowed><carrier plmn="310001"/></allowed></carrier-restrictions>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Decode([]byte(tt.data), tt.format)
			require.Error(t, err)
			assert.True(t, errors.IsErrorCode(err, errors.ErrConfigParse), "got %v", err)
		})
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(dir + "/missing.toml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))

	path := testutil.CreateFile(t, dir, "rules.ini", "default = allowed\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnsupported))

	path = testutil.CreateFile(t, dir, "rules", "")
	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnsupported))

	path = testutil.CreateFile(t, dir, "bad.toml", "[[allowed]]\nmcc = \"3100\"\n")
	_, err = Load(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
	assert.Equal(t, path, errors.GetErrorDetails(err)["path"])
}

func TestLoaderFilesystem(t *testing.T) {
	fsys := filesystem.NewMemory()
	require.NoError(t, filesystem.Save(fsys, "/etc/carrierlock/rules.yaml", []byte(testutil.SampleRulesYAML), false))
	require.NoError(t, filesystem.Save(fsys, "/etc/carrierlock/slots.toml", []byte(testutil.SampleSlotsTOML), false))

	loader := &Loader{Validate: true, FS: fsys}
	rules, err := loader.Load("/etc/carrierlock/rules.yaml")
	require.NoError(t, err)
	assert.True(t, sampleRules().Equal(rules), "got %s", rules)

	ids, err := loader.LoadIdentifiers("/etc/carrierlock/slots.toml")
	require.NoError(t, err)
	assert.Len(t, ids, 2)

	_, err = loader.Load("/etc/carrierlock/rules.toml")
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileNotFound))
}

func TestLoadIdentifiers(t *testing.T) {
	dir := t.TempDir()
	path := testutil.CreateFile(t, dir, "slots.toml", testutil.SampleSlotsTOML)

	ids, err := LoadIdentifiers(path)
	require.NoError(t, err)
	assert.Equal(t, []carrier.Identifier{
		{MCC: "999", MNC: "99"},
		{MCC: "310", MNC: "001", SPN: "Example", IMSI: "310001123456789"},
	}, ids)

	rules, err := Load(testutil.CreateFile(t, dir, "rules.toml", testutil.SampleRulesTOML))
	require.NoError(t, err)
	assert.Equal(t, []bool{true, true}, rules.AreCarrierIdentifiersAllowed(ids))
}

func TestLoadIdentifiersErrors(t *testing.T) {
	dir := t.TempDir()

	path := testutil.CreateFile(t, dir, "slots.xml", "<slots/>")
	_, err := LoadIdentifiers(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnsupported))

	path = testutil.CreateFile(t, dir, "slots.json", `{"slots": [{"mcc": "310", "msisdn": "555"}]}`)
	_, err = LoadIdentifiers(path)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrConfigValid))
}

func TestSchema(t *testing.T) {
	data, err := Schema()
	require.NoError(t, err)

	var schema map[string]interface{}
	require.NoError(t, json.Unmarshal(data, &schema))
	assert.NotContains(t, schema, "$id")
	assert.Contains(t, string(data), `"multi_sim"`)
	assert.Contains(t, string(data), `"one_valid_sim_must_be_present"`)
	assert.Contains(t, string(data), `"^[0-9?]*$"`)

	// A document produced by the encoder always validates
	assert.NoError(t, Validate(FromRules(sampleRules())))
}

func TestFormatFromPath(t *testing.T) {
	tests := []struct {
		path    string
		want    Format
		wantErr bool
	}{
		{"rules.toml", FormatTOML, false},
		{"/etc/carrierlock/rules.YAML", FormatYAML, false},
		{"rules.yml", FormatYAML, false},
		{"rules.json", FormatJSON, false},
		{"carrier_restrictions.xml", FormatXML, false},
		{"rules.txt", "", true},
		{"rules", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			got, err := FormatFromPath(tt.path)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, errors.IsErrorCode(err, errors.ErrFormatUnsupported))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
