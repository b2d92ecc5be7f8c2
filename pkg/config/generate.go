package config

import (
	"strings"

	"github.com/arthur-debert/carrierlock/pkg/filesystem"
)

// GenerateConfigContent returns the built-in defaults with every value
// commented out, ready to be edited into a user config file
func GenerateConfigContent() string {
	return commentOutConfigValues(GetDefaultsContent())
}

// commentOutConfigValues prefixes assignments with "# ". Blank lines,
// comments and table headers are kept.
func commentOutConfigValues(content string) string {
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		switch trimmed := strings.TrimSpace(line); {
		case trimmed == "", strings.HasPrefix(trimmed, "#"):
		case strings.HasPrefix(trimmed, "[") && strings.HasSuffix(trimmed, "]"):
		default:
			lines[i] = "# " + line
		}
	}
	return strings.Join(lines, "\n")
}

// WriteUserConfig writes the generated configuration to path, creating
// parent directories. An existing file is only replaced with force.
func WriteUserConfig(path string, force bool) error {
	return filesystem.Save(filesystem.NewOS(), path, []byte(GenerateConfigContent()), force)
}
