package causes

import (
	"strconv"
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/disconnect"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/logging"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
)

// LookupOptions defines the options for the Lookup command
type LookupOptions struct {
	// Queries are cause codes or names
	Queries []string
	// All lists every named cause, ignoring Queries
	All bool
}

// Lookup resolves disconnect causes. A numeric query always resolves, to an
// "INVALID: n" entry when the code has no name; an unknown name is an
// error.
func Lookup(opts LookupOptions) (*display.CauseList, error) {
	log := logging.GetLogger("commands.causes")
	log.Debug().Str("command", "Lookup").Strs("queries", opts.Queries).Bool("all", opts.All).Msg("Executing command")

	result := &display.CauseList{}
	if opts.All {
		for _, c := range disconnect.All() {
			result.Causes = append(result.Causes, display.NewCause(c))
		}
		return result, nil
	}

	if len(opts.Queries) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "give a cause code or name, or use --all")
	}
	for _, q := range opts.Queries {
		if code, err := strconv.Atoi(strings.TrimSpace(q)); err == nil {
			result.Causes = append(result.Causes, display.NewCause(disconnect.Cause(code)))
			continue
		}
		c, err := disconnect.Parse(q)
		if err != nil {
			return nil, err
		}
		result.Causes = append(result.Causes, display.NewCause(c))
	}
	return result, nil
}
