package rulesfile

import (
	"encoding/json"
	stderrors "errors"
	"fmt"
	"io/fs"
	"reflect"

	"github.com/arthur-debert/carrierlock/pkg/carrier"
	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/filesystem"
	"github.com/arthur-debert/carrierlock/pkg/logging"
	"github.com/arthur-debert/carrierlock/pkg/restriction"
	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/v2"
)

type rawBytesProvider struct{ bytes []byte }

func (r *rawBytesProvider) ReadBytes() ([]byte, error) { return r.bytes, nil }
func (r *rawBytesProvider) Read() (map[string]interface{}, error) {
	return nil, stderrors.New("not implemented")
}

// jsonParser implements koanf.Parser on top of encoding/json
type jsonParser struct{}

func (jsonParser) Unmarshal(b []byte) (map[string]interface{}, error) {
	var out map[string]interface{}
	if err := json.Unmarshal(b, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func (jsonParser) Marshal(o map[string]interface{}) ([]byte, error) {
	return json.Marshal(o)
}

func parserFor(format Format) (koanf.Parser, error) {
	switch format {
	case FormatTOML:
		return toml.Parser(), nil
	case FormatYAML:
		return yaml.Parser(), nil
	case FormatJSON:
		return jsonParser{}, nil
	}
	return nil, errors.Newf(errors.ErrFormatUnsupported, "format %s cannot be read through koanf", format).
		WithDetail("format", string(format))
}

// Loader reads rules and slot documents
type Loader struct {
	// Validate checks documents against the JSON Schema before they are
	// decoded
	Validate bool
	// FS is where files are read from, the OS filesystem when nil
	FS filesystem.FS
}

// DefaultLoader validates every document
var DefaultLoader = &Loader{Validate: true}

// Load reads a rules file, picking the format from its extension
func Load(path string) (*restriction.Rules, error) {
	return DefaultLoader.Load(path)
}

// Decode reads rules from data in the given format
func Decode(data []byte, format Format) (*restriction.Rules, error) {
	return DefaultLoader.Decode(data, format)
}

// LoadIdentifiers reads a SIM slots file
func LoadIdentifiers(path string) ([]carrier.Identifier, error) {
	return DefaultLoader.LoadIdentifiers(path)
}

// Load reads a rules file, picking the format from its extension
func (l *Loader) Load(path string) (*restriction.Rules, error) {
	logger := logging.GetLogger("rulesfile")

	doc, err := l.LoadDocument(path)
	if err != nil {
		return nil, err
	}
	rules, err := doc.Rules()
	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrRulesInvalid, "invalid rules in %s", path).
			WithDetail("path", path)
	}

	logger.Debug().
		Str("path", path).
		Int("allowed", len(doc.Allowed)).
		Int("excluded", len(doc.Excluded)).
		Str("default", rules.DefaultCarrierRestriction().String()).
		Str("multi_sim", rules.MultiSimPolicy().String()).
		Msg("Loaded rules")
	return rules, nil
}

// LoadDocument reads a rules file without building rules from it
func (l *Loader) LoadDocument(path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := l.readFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := l.DecodeDocument(data, format)
	if err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to load %s", path).
			WithDetail("path", path)
	}
	return doc, nil
}

// Decode reads rules from data in the given format
func (l *Loader) Decode(data []byte, format Format) (*restriction.Rules, error) {
	doc, err := l.DecodeDocument(data, format)
	if err != nil {
		return nil, err
	}
	return doc.Rules()
}

// DecodeDocument reads a rules document from data in the given format
func (l *Loader) DecodeDocument(data []byte, format Format) (*Document, error) {
	if format == FormatXML {
		doc, err := decodeXML(data)
		if err != nil {
			return nil, err
		}
		if l.Validate {
			if err := Validate(doc); err != nil {
				return nil, err
			}
		}
		return doc, nil
	}

	var doc Document
	if err := l.unmarshal(data, format, &doc, Validate); err != nil {
		return nil, err
	}
	return &doc, nil
}

// LoadIdentifiers reads a SIM slots file. XML is not supported for slots.
func (l *Loader) LoadIdentifiers(path string) ([]carrier.Identifier, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := l.readFile(path)
	if err != nil {
		return nil, err
	}

	var doc SlotsDocument
	if err := l.unmarshal(data, format, &doc, ValidateSlots); err != nil {
		return nil, errors.Wrapf(err, errors.GetErrorCode(err), "failed to load %s", path).
			WithDetail("path", path)
	}

	logger := logging.GetLogger("rulesfile")
	logger.Debug().
		Str("path", path).
		Int("slots", len(doc.Slots)).
		Msg("Loaded SIM slots")
	return doc.Identifiers(), nil
}

// unmarshal loads data through koanf, optionally validates the raw values,
// and decodes them into out
func (l *Loader) unmarshal(data []byte, format Format, out interface{}, validate func(any) error) error {
	parser, err := parserFor(format)
	if err != nil {
		return err
	}

	k := koanf.New(".")
	if err := k.Load(&rawBytesProvider{bytes: data}, parser); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to parse %s document", format).
			WithDetail("format", string(format))
	}

	if l.Validate {
		if err := validate(k.Raw()); err != nil {
			return err
		}
	}

	unmarshalConf := koanf.UnmarshalConf{
		Tag: "koanf",
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           out,
			WeaklyTypedInput: true,
			DecodeHook:       rejectBoolPolicy,
		},
	}
	if err := k.UnmarshalWithConf("", out, unmarshalConf); err != nil {
		return errors.Wrapf(err, errors.ErrConfigParse, "failed to decode %s document", format).
			WithDetail("format", string(format))
	}
	return nil
}

var policyTypes = map[reflect.Type]bool{
	reflect.TypeOf(DefaultValue("")):  true,
	reflect.TypeOf(MultiSimValue("")): true,
}

// rejectBoolPolicy stops weak typing from turning `default = true` into "1",
// which would otherwise parse as a policy
func rejectBoolPolicy(from, to reflect.Type, data interface{}) (interface{}, error) {
	if from.Kind() == reflect.Bool && policyTypes[to] {
		return nil, fmt.Errorf("policy must be a name or a number, got boolean %v", data)
	}
	return data, nil
}

func (l *Loader) readFile(path string) ([]byte, error) {
	fsys := l.FS
	if fsys == nil {
		fsys = filesystem.NewOS()
	}
	data, err := fsys.ReadFile(path)
	if err != nil {
		if stderrors.Is(err, fs.ErrNotExist) {
			return nil, errors.Wrapf(err, errors.ErrFileNotFound, "file not found: %s", path).
				WithDetail("path", path)
		}
		return nil, errors.Wrapf(err, errors.ErrFileAccess, "cannot read %s", path).
			WithDetail("path", path)
	}
	return data, nil
}
