package check

import (
	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/logging"
	"github.com/arthur-debert/carrierlock/pkg/rulesfile"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
)

// CheckOptions defines the options for the Check command
type CheckOptions struct {
	// RulesPath is the rules file to evaluate against
	RulesPath string
	// SIMs are identifiers in key=value form, one per slot, e.g.
	// "mcc=310,mnc=260,gid1=ba01"
	SIMs []string
	// SlotsPath is a slots file; its slots come before SIMs
	SlotsPath string
	// Strict turns a denied slot into an error
	Strict bool
	// Loader reads the files, rulesfile.DefaultLoader when nil
	Loader *rulesfile.Loader
}

// Check evaluates the SIM slots against the rules. With Strict set, the
// result is returned together with a SIM_DENIED error when a slot is denied.
func Check(opts CheckOptions) (*display.CheckResult, error) {
	log := logging.GetLogger("commands.check")
	log.Debug().Str("command", "Check").Str("rules", opts.RulesPath).Msg("Executing command")

	if opts.RulesPath == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no rules file given, use --rules or set rules.path")
	}
	loader := opts.Loader
	if loader == nil {
		loader = rulesfile.DefaultLoader
	}

	var ids []carrier.Identifier
	if opts.SlotsPath != "" {
		slots, err := loader.LoadIdentifiers(opts.SlotsPath)
		if err != nil {
			return nil, err
		}
		ids = append(ids, slots...)
	}
	for _, sim := range opts.SIMs {
		id, err := carrier.Parse(sim)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	if len(ids) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no SIM slots given, use --sim or --sims")
	}

	rules, err := loader.Load(opts.RulesPath)
	if err != nil {
		return nil, err
	}

	done := logging.LogOperationStart(log, "evaluate")
	result := &display.CheckResult{
		Source:    opts.RulesPath,
		Rules:     display.Summarize(opts.RulesPath, rules),
		Decisions: rules.Explain(ids),
	}
	done()

	denied := result.Denied()
	log.Info().
		Str("command", "Check").
		Int("slots", len(ids)).
		Ints("denied", denied).
		Msg("Command finished")

	if opts.Strict && len(denied) > 0 {
		return result, errors.Newf(errors.ErrSimDenied, "%d of %d SIM slots denied", len(denied), len(ids)).
			WithDetail("slots", denied)
	}
	return result, nil
}
