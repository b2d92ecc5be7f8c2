package rulesfile

import (
	"path/filepath"
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/errors"
)

// Format is a serialization format for rules documents
type Format string

const (
	FormatTOML Format = "toml"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
	FormatXML  Format = "xml"
)

// Formats lists every supported format
var Formats = []Format{FormatTOML, FormatYAML, FormatJSON, FormatXML}

// ParseFormat parses a format name. "yml" is accepted for YAML.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "toml":
		return FormatTOML, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "json":
		return FormatJSON, nil
	case "xml":
		return FormatXML, nil
	}
	return "", errors.Newf(errors.ErrFormatUnsupported, "unsupported format %q", s).
		WithDetail("format", s).
		WithDetail("supported", "toml,yaml,json,xml")
}

// FormatFromPath picks the format from the file extension
func FormatFromPath(path string) (Format, error) {
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if ext == "" {
		return "", errors.Newf(errors.ErrFormatUnsupported, "cannot tell the format of %s without an extension", path).
			WithDetail("path", path)
	}
	f, err := ParseFormat(ext)
	if err != nil {
		return "", errors.Wrapf(err, errors.ErrFormatUnsupported, "unsupported file extension for %s", path).
			WithDetail("path", path)
	}
	return f, nil
}
