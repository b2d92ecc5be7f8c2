package carrier

import (
	"testing"

	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected Identifier
	}{
		{
			name:     "empty input",
			input:    "",
			expected: Identifier{},
		},
		{
			name:     "mcc and mnc",
			input:    "mcc=310,mnc=260",
			expected: Identifier{MCC: "310", MNC: "260"},
		},
		{
			name:  "all fields in any order",
			input: "gid2=ff,imsi=310260123456789,mnc=260,mcc=310,spn=Example,gid1=ba01",
			expected: Identifier{
				MCC: "310", MNC: "260", SPN: "Example",
				IMSI: "310260123456789", GID1: "ba01", GID2: "ff",
			},
		},
		{
			name:     "keys are case insensitive",
			input:    "MCC=310, MNC=26?",
			expected: Identifier{MCC: "310", MNC: "26?"},
		},
		{
			name:     "empty value",
			input:    "mcc=310,mnc=260,gid1=",
			expected: Identifier{MCC: "310", MNC: "260"},
		},
		{
			name:     "value keeps spaces",
			input:    "spn=My Carrier",
			expected: Identifier{SPN: "My Carrier"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, id)
		})
	}
}

func TestParseErrors(t *testing.T) {
	t.Run("missing equals", func(t *testing.T) {
		_, err := Parse("mcc=310,mnc")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
	})

	t.Run("unknown field", func(t *testing.T) {
		_, err := Parse("mcc=310,iccid=8901")
		require.Error(t, err)
		assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))
		assert.Equal(t, "iccid", errors.GetErrorDetails(err)["field"])
	})
}

func TestFormatRoundTrip(t *testing.T) {
	id := Identifier{MCC: "310", MNC: "260", IMSI: "3102601", GID2: "ab"}

	formatted := id.Format()
	assert.Equal(t, "mcc=310,mnc=260,imsi=3102601,gid2=ab", formatted)

	parsed, err := Parse(formatted)
	require.NoError(t, err)
	assert.Equal(t, id, parsed)
}

func TestString(t *testing.T) {
	id := Identifier{MCC: "310", MNC: "260", SPN: "Example"}
	assert.Equal(t,
		"CarrierIdentifier{mcc=310, mnc=260, spn=Example, imsi=, gid1=, gid2=}",
		id.String())
}

func TestGetSet(t *testing.T) {
	var id Identifier
	assert.True(t, id.IsEmpty())

	require.NoError(t, id.Set("GID1", "ab"))
	v, ok := id.Get("gid1")
	assert.True(t, ok)
	assert.Equal(t, "ab", v)
	assert.False(t, id.IsEmpty())

	_, ok = id.Get("carrier_id")
	assert.False(t, ok)
}
