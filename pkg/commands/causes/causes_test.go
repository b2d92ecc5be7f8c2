package causes_test

import (
	"strings"
	"testing"

	"github.com/arthur-debert/carrierlock/pkg/commands/causes"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	tests := []struct {
		name    string
		queries []string
		want    []display.Cause
	}{
		{
			name:    "by code",
			queries: []string{"2", "124"},
			want: []display.Cause{
				{Code: 2, Name: "NORMAL", Valid: true},
				{Code: 124, Name: "NON_SELECTED_USER_CLEARING", Valid: true},
			},
		},
		{
			name:    "by name in any case",
			queries: []string{"busy", "Out-Of-Service"},
			want: []display.Cause{
				{Code: 4, Name: "BUSY", Valid: true},
				{Code: 18, Name: "OUT_OF_SERVICE", Valid: true},
			},
		},
		{
			name:    "codes without a name",
			queries: []string{"56", "6", "-1", "200"},
			want: []display.Cause{
				{Code: 56, Name: "INVALID: 56", Valid: true},
				{Code: 6, Name: "INVALID: 6", Valid: true},
				{Code: -1, Name: "INVALID: -1", Valid: false},
				{Code: 200, Name: "INVALID: 200", Valid: false},
			},
		},
		{
			name:    "historical spelling",
			queries: []string{"maximum_number_of_calls_reached"},
			want:    []display.Cause{{Code: 53, Name: "MAXIMUM_NUMER_OF_CALLS_REACHED", Valid: true}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := causes.Lookup(causes.LookupOptions{Queries: tt.queries})
			require.NoError(t, err)
			assert.Equal(t, tt.want, result.Causes)
		})
	}
}

func TestLookupAll(t *testing.T) {
	result, err := causes.Lookup(causes.LookupOptions{All: true, Queries: []string{"ignored"}})
	require.NoError(t, err)

	require.Len(t, result.Causes, 123)
	assert.Equal(t, 0, result.Causes[0].Code)
	assert.Equal(t, 124, result.Causes[len(result.Causes)-1].Code)
	for _, c := range result.Causes {
		// Names such as INVALID_NUMBER are real causes, only the fallback is excluded
		assert.False(t, strings.HasPrefix(c.Name, "INVALID: "), "code %d has no name", c.Code)
	}
}

func TestLookupErrors(t *testing.T) {
	_, err := causes.Lookup(causes.LookupOptions{})
	assert.True(t, errors.IsErrorCode(err, errors.ErrInvalidInput))

	_, err = causes.Lookup(causes.LookupOptions{Queries: []string{"busy", "no_such_cause"}})
	assert.True(t, errors.IsErrorCode(err, errors.ErrNotFound))
}
