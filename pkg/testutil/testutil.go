package testutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// CreateFile writes content to dir/name, creating parent directories, and
// returns the path
func CreateFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

// FileExists reports whether path is an existing regular file
func FileExists(t *testing.T, path string) bool {
	t.Helper()
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// ReadFile returns the content of path
func ReadFile(t *testing.T, path string) string {
	t.Helper()
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(content)
}

// AssertFileContent checks that path holds exactly expected
func AssertFileContent(t *testing.T, path, expected string) {
	t.Helper()
	require.True(t, FileExists(t, path), "file %s does not exist", path)
	assert.Equal(t, expected, ReadFile(t, path), "content of %s", path)
}

// envKeys are the CARRIERLOCK_* variables the configuration reads
var envKeys = []string{
	"CARRIERLOCK_RULES_PATH",
	"CARRIERLOCK_RULES_VALIDATE",
	"CARRIERLOCK_OUTPUT_FORMAT",
	"CARRIERLOCK_OUTPUT_WIDTH",
	"CARRIERLOCK_LOG_FILE",
}

// IsolateXDG points HOME and the XDG base directories at a fresh temporary
// tree and unsets the CARRIERLOCK_* variables, so tests never touch the real
// user configuration. It returns the root of the tree.
func IsolateXDG(t *testing.T) string {
	t.Helper()

	root := t.TempDir()
	t.Setenv("HOME", root)
	for _, dir := range []string{"config", "state", "data", "cache"} {
		t.Setenv("XDG_"+strings.ToUpper(dir)+"_HOME", filepath.Join(root, dir))
	}

	for _, key := range envKeys {
		// Setenv registers the restore, Unsetenv leaves it unset meanwhile
		t.Setenv(key, "")
		require.NoError(t, os.Unsetenv(key))
	}
	return root
}
