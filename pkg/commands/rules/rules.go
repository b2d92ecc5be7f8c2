// Package rules implements the commands that inspect and transform rules
// files
package rules

import (
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/logging"
	"github.com/arthur-debert/carrierlock/pkg/rulesfile"
	"github.com/arthur-debert/carrierlock/pkg/ui/display"
)

// ShowOptions defines the options for the Show command
type ShowOptions struct {
	Path   string
	Loader *rulesfile.Loader
}

// Show loads a rules file and summarizes it
func Show(opts ShowOptions) (*display.RulesSummary, error) {
	log := logging.GetLogger("commands.rules")
	log.Debug().Str("command", "Show").Str("path", opts.Path).Msg("Executing command")

	if opts.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no rules file given")
	}
	rules, err := loaderOrDefault(opts.Loader).Load(opts.Path)
	if err != nil {
		return nil, err
	}
	summary := display.Summarize(opts.Path, rules)
	return &summary, nil
}

// ValidateOptions defines the options for the Validate command
type ValidateOptions struct {
	Paths []string
}

// Validate checks each file against the schema and builds its rules. A file
// that fails is reported in the result; the error return is kept for
// problems with the request itself.
func Validate(opts ValidateOptions) (*display.ValidationResult, error) {
	log := logging.GetLogger("commands.rules")
	log.Debug().Str("command", "Validate").Strs("paths", opts.Paths).Msg("Executing command")

	if len(opts.Paths) == 0 {
		return nil, errors.New(errors.ErrInvalidInput, "no rules files given")
	}

	loader := &rulesfile.Loader{Validate: true}
	result := &display.ValidationResult{Files: make([]display.FileValidation, 0, len(opts.Paths))}
	for _, path := range opts.Paths {
		fv := display.FileValidation{Path: path, Valid: true}
		if _, err := loader.Load(path); err != nil {
			fv.Valid = false
			fv.Error = err.Error()
			fv.Violations = violations(err)
			log.Warn().Str("path", path).Err(err).Msg("Rules file is invalid")
		}
		result.Files = append(result.Files, fv)
	}

	log.Info().Str("command", "Validate").Bool("valid", result.Valid()).Msg("Command finished")
	return result, nil
}

// violations finds the schema violations recorded anywhere in the error
// chain
func violations(err error) []string {
	v, _ := errors.Detail(err, "violations")
	list, _ := v.([]string)
	return list
}

// ConvertOptions defines the options for the Convert command
type ConvertOptions struct {
	Path string
	// To is the target format name, e.g. "yaml"
	To     string
	Loader *rulesfile.Loader
}

// Convert rewrites a rules file in another format
func Convert(opts ConvertOptions) (*display.Document, error) {
	log := logging.GetLogger("commands.rules")
	log.Debug().Str("command", "Convert").Str("path", opts.Path).Str("to", opts.To).Msg("Executing command")

	format, err := rulesfile.ParseFormat(opts.To)
	if err != nil {
		return nil, err
	}
	if opts.Path == "" {
		return nil, errors.New(errors.ErrInvalidInput, "no rules file given")
	}

	rules, err := loaderOrDefault(opts.Loader).Load(opts.Path)
	if err != nil {
		return nil, err
	}
	data, err := rulesfile.Encode(rules, format)
	if err != nil {
		return nil, err
	}

	// The converted document must read back as the same rules
	back, err := (&rulesfile.Loader{}).Decode(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "converted %s document does not load", format)
	}
	if !rules.Equal(back) {
		return nil, errors.Newf(errors.ErrInternal, "converting to %s changed the rules", format).
			WithDetail("path", opts.Path)
	}
	return &display.Document{Format: string(format), Content: string(data)}, nil
}

// SchemaOptions defines the options for the Schema command
type SchemaOptions struct {
	// Slots selects the schema of SIM slots files instead of rules files
	Slots bool
}

// Schema returns the JSON Schema of rules or slots files
func Schema(opts SchemaOptions) (*display.Document, error) {
	var (
		data []byte
		err  error
	)
	if opts.Slots {
		data, err = rulesfile.SlotsSchema()
	} else {
		data, err = rulesfile.Schema()
	}
	if err != nil {
		return nil, err
	}
	return &display.Document{Format: "json", Content: string(data)}, nil
}

func loaderOrDefault(l *rulesfile.Loader) *rulesfile.Loader {
	if l == nil {
		return rulesfile.DefaultLoader
	}
	return l
}
