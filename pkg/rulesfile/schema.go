package rulesfile

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"fmt"
	"sort"
	"sync"

	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/invopop/jsonschema"
	sjsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

const (
	rulesSchemaName = "carrierlock-rules.json"
	slotsSchemaName = "carrierlock-slots.json"
)

var (
	compileOnce sync.Once
	compiled    map[string]*sjsonschema.Schema
	compileErr  error
)

// Schema returns the JSON Schema of a rules document
func Schema() ([]byte, error) {
	return reflectSchema(&Document{})
}

// SlotsSchema returns the JSON Schema of a SIM slots document
func SlotsSchema() ([]byte, error) {
	return reflectSchema(&SlotsDocument{})
}

func reflectSchema(v any) ([]byte, error) {
	r := &jsonschema.Reflector{Anonymous: true}
	data, err := json.MarshalIndent(r.Reflect(v), "", "  ")
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrInternal, "failed to marshal schema")
	}
	return data, nil
}

func compileSchemas() (map[string]*sjsonschema.Schema, error) {
	compileOnce.Do(func() {
		sources := map[string]func() ([]byte, error){
			rulesSchemaName: Schema,
			slotsSchemaName: SlotsSchema,
		}

		compiler := sjsonschema.NewCompiler()
		for name, source := range sources {
			data, err := source()
			if err != nil {
				compileErr = err
				return
			}
			if err := compiler.AddResource(name, bytes.NewReader(data)); err != nil {
				compileErr = errors.Wrapf(err, errors.ErrInternal, "failed to add schema %s", name)
				return
			}
		}

		compiled = make(map[string]*sjsonschema.Schema, len(sources))
		for name := range sources {
			sch, err := compiler.Compile(name)
			if err != nil {
				compileErr = errors.Wrapf(err, errors.ErrInternal, "invalid schema %s", name)
				return
			}
			compiled[name] = sch
		}
	})
	return compiled, compileErr
}

// Validate checks a decoded rules document (a *Document or the generic map
// produced by a parser) against the rules schema
func Validate(doc any) error {
	return validateAgainst(rulesSchemaName, doc)
}

// ValidateSlots checks a decoded SIM slots document against its schema
func ValidateSlots(doc any) error {
	return validateAgainst(slotsSchemaName, doc)
}

func validateAgainst(name string, doc any) error {
	schemas, err := compileSchemas()
	if err != nil {
		return err
	}

	// Round-trip through JSON so parser specific types become plain values
	b, err := json.Marshal(doc)
	if err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to prepare document for validation")
	}
	var obj interface{}
	if err := json.Unmarshal(b, &obj); err != nil {
		return errors.Wrap(err, errors.ErrConfigParse, "failed to prepare document for validation")
	}

	if err := schemas[name].Validate(obj); err != nil {
		var ve *sjsonschema.ValidationError
		if stderrors.As(err, &ve) {
			violations := leafViolations(ve)
			return errors.Wrapf(err, errors.ErrConfigValid, "document does not match the schema (%d problems)", len(violations)).
				WithDetail("violations", violations)
		}
		return errors.Wrap(err, errors.ErrConfigValid, "document does not match the schema")
	}
	return nil
}

// leafViolations flattens a validation error tree into one line per failing
// location
func leafViolations(ve *sjsonschema.ValidationError) []string {
	var out []string
	var walk func(*sjsonschema.ValidationError)
	walk = func(e *sjsonschema.ValidationError) {
		if len(e.Causes) == 0 {
			loc := e.InstanceLocation
			if loc == "" {
				loc = "/"
			}
			out = append(out, fmt.Sprintf("%s: %s", loc, e.Message))
			return
		}
		for _, c := range e.Causes {
			walk(c)
		}
	}
	walk(ve)
	sort.Strings(out)
	return out
}
