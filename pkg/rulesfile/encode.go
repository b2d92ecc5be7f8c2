package rulesfile

import (
	"bytes"
	"encoding/json"

	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/restriction"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Encode serializes rules in the given format. Both policies are always
// written out, so the result does not depend on reader defaults.
func Encode(rules *restriction.Rules, format Format) ([]byte, error) {
	return EncodeDocument(FromRules(rules), format)
}

// EncodeDocument serializes a document in the given format
func EncodeDocument(doc *Document, format Format) ([]byte, error) {
	var (
		data []byte
		err  error
	)

	switch format {
	case FormatTOML:
		data, err = toml.Marshal(doc)
	case FormatYAML:
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(2)
		if err = enc.Encode(doc); err == nil {
			err = enc.Close()
		}
		data = buf.Bytes()
	case FormatJSON:
		data, err = json.MarshalIndent(doc, "", "  ")
		if err == nil {
			data = append(data, '\n')
		}
	case FormatXML:
		return encodeXML(doc)
	default:
		return nil, errors.Newf(errors.ErrFormatUnsupported, "unsupported format %q", format).
			WithDetail("format", string(format))
	}

	if err != nil {
		return nil, errors.Wrapf(err, errors.ErrInternal, "failed to encode rules as %s", format)
	}
	return data, nil
}
