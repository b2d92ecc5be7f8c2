package config

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/arthur-debert/carrierlock/pkg/errors"
	"github.com/arthur-debert/carrierlock/pkg/testutil"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateConfigContent(t *testing.T) {
	content := GenerateConfigContent()

	assert.Contains(t, content, "[rules]")
	assert.Contains(t, content, "[output]")
	assert.Contains(t, content, "[log]")
	assert.Contains(t, content, `# format = "auto"`)
	assert.Contains(t, content, "# validate = true")

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "[") {
			continue
		}
		t.Errorf("line is not commented out: %q", line)
	}

	// The generated file parses and, being all comments, sets nothing
	k := koanf.New(".")
	require.NoError(t, k.Load(&rawBytesProvider{bytes: []byte(content)}, toml.Parser()))
	assert.Empty(t, k.String("output.format"))
}

func TestCommentOutConfigValues(t *testing.T) {
	input := "# heading\n\n[section]\nkey = 1\n  other = \"x\"\n"
	want := "# heading\n\n[section]\n# key = 1\n#   other = \"x\"\n"
	assert.Equal(t, want, commentOutConfigValues(input))
}

func TestWriteUserConfig(t *testing.T) {
	root := testutil.IsolateXDG(t)
	path := UserConfigPath()

	require.NoError(t, WriteUserConfig(path, false))
	testutil.AssertFileContent(t, path, GenerateConfigContent())
	assert.Equal(t, filepath.Join(root, "config", "carrierlock", "config.toml"), path)

	err := WriteUserConfig(path, false)
	require.Error(t, err)
	assert.True(t, errors.IsErrorCode(err, errors.ErrFileWrite))

	require.NoError(t, WriteUserConfig(path, true))

	// The written file loads cleanly back into the defaults
	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "auto", cfg.Output.Format)
}
