package errors_test

import (
	stderrors "errors"
	"fmt"
	"testing"

	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestErrorString(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"new", errors.New(errors.ErrNotFound, "no such cause"), "[NOT_FOUND] no such cause"},
		{"newf", errors.Newf(errors.ErrInvalidInput, "bad field %q", "iccid"), `[INVALID_INPUT] bad field "iccid"`},
		{
			"wrap",
			errors.Wrap(stderrors.New("permission denied"), errors.ErrFileAccess, "cannot read rules.toml"),
			"[FILE_ACCESS] cannot read rules.toml: permission denied",
		},
		{
			"nested",
			errors.Wrapf(errors.New(errors.ErrConfigValid, "2 violations"), errors.ErrConfigValid, "failed to load %s", "rules.json"),
			"[CONFIG_INVALID] failed to load rules.json: [CONFIG_INVALID] 2 violations",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestWrapNil(t *testing.T) {
	assert.Nil(t, errors.Wrap(nil, errors.ErrInternal, "unused"))
	assert.Nil(t, errors.Wrapf(nil, errors.ErrInternal, "unused %d", 1))
}

func TestCodes(t *testing.T) {
	base := stderrors.New("open rules.toml: no such file or directory")
	coded := errors.Wrap(base, errors.ErrFileNotFound, "file not found: rules.toml")
	outer := fmt.Errorf("check: %w", coded)

	assert.True(t, errors.IsErrorCode(outer, errors.ErrFileNotFound))
	assert.False(t, errors.IsErrorCode(outer, errors.ErrFileAccess))
	assert.Equal(t, errors.ErrFileNotFound, errors.GetErrorCode(outer))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(base))
	assert.Equal(t, errors.ErrUnknown, errors.GetErrorCode(nil))

	assert.ErrorIs(t, outer, base)
	assert.ErrorIs(t, outer, errors.New(errors.ErrFileNotFound, "any message"))
	assert.NotErrorIs(t, outer, errors.New(errors.ErrFileWrite, "any message"))
}

func TestDetails(t *testing.T) {
	inner := errors.New(errors.ErrConfigValid, "document does not match the schema").
		WithDetail("violations", []string{"/default: value must be one of ..."}).
		WithDetail("path", "inner")
	outer := errors.Wrap(inner, errors.ErrConfigValid, "failed to load rules.json").
		WithDetail("path", "rules.json")

	details := errors.GetErrorDetails(outer)
	require.Len(t, details, 2)
	assert.Equal(t, "rules.json", details["path"])
	assert.Equal(t, []string{"/default: value must be one of ..."}, details["violations"])

	v, ok := errors.Detail(outer, "violations")
	require.True(t, ok)
	assert.Len(t, v, 1)

	_, ok = errors.Detail(outer, "slots")
	assert.False(t, ok)

	assert.Nil(t, errors.GetErrorDetails(stderrors.New("plain")))
}

func TestWithDetailOnLiteral(t *testing.T) {
	err := (&errors.CarrierlockError{Code: errors.ErrSimDenied, Message: "1 of 2 SIM slots denied"}).
		WithDetail("slots", []int{0})
	assert.Equal(t, []int{0}, err.Details["slots"])
}
