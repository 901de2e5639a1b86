package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.yaml.in/yaml/v3"
)

func setupHome(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("FSATTR_HOME", dir)
	viper.Reset()
	t.Cleanup(viper.Reset)
	return dir
}

func TestDirHonorsHomeOverride(t *testing.T) {
	dir := setupHome(t)

	assert.Equal(t, dir, Dir())
	assert.Equal(t, filepath.Join(dir, "config.yaml"), FilePath())
}

func TestLoadDefaults(t *testing.T) {
	setupHome(t)
	Load()

	assert.Equal(t, "warn", LogLevel())
	assert.Equal(t, "text", LogFormat())
	assert.Equal(t, "stderr", LogOutput())
	assert.Equal(t, "table", Output())
}

func TestEnvOverride(t *testing.T) {
	setupHome(t)
	t.Setenv("FSATTR_LOG_LEVEL", "debug")
	Load()

	assert.Equal(t, "debug", LogLevel())
}

func TestSetPersists(t *testing.T) {
	dir := setupHome(t)
	Load()

	require.NoError(t, Set(KeyOutput, "json"))

	viper.Reset()
	Load()
	assert.Equal(t, "json", Get(KeyOutput))

	result, err := ValidateFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)
	assert.True(t, result.Valid, "%+v", result.Issues)
}

func TestSetRejectsInvalidValue(t *testing.T) {
	dir := setupHome(t)
	Load()

	err := Set(KeyLogLevel, "loud")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.level")

	_, statErr := os.Stat(filepath.Join(dir, "config.yaml"))
	assert.True(t, os.IsNotExist(statErr), "config file must not be created")
	assert.Equal(t, "warn", LogLevel())
}

func TestSetKeepsExistingFileOnInvalidValue(t *testing.T) {
	dir := setupHome(t)
	path := filepath.Join(dir, "config.yaml")
	original := []byte("output: json\n")
	require.NoError(t, os.WriteFile(path, original, 0644))
	Load()

	require.Error(t, Set(KeyLogFormat, "xml"))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, original, data)
}

func TestSetWritesOnlyExplicitKeys(t *testing.T) {
	dir := setupHome(t)
	Load()

	require.NoError(t, Set(KeyOutput, "raw"))

	data, err := os.ReadFile(filepath.Join(dir, "config.yaml"))
	require.NoError(t, err)

	var written map[string]any
	require.NoError(t, yaml.Unmarshal(data, &written))
	assert.Equal(t, map[string]any{"output": "raw"}, written)
}

func TestSetRepairsInvalidFile(t *testing.T) {
	dir := setupHome(t)
	path := filepath.Join(dir, "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("output: json\nlog:\n  level: loud\n"), 0644))
	Load()

	require.NoError(t, Set(KeyLogLevel, "debug"))

	result, err := ValidateFile(path)
	require.NoError(t, err)
	assert.True(t, result.Valid, "%+v", result.Issues)

	viper.Reset()
	Load()
	assert.Equal(t, "debug", LogLevel())
	assert.Equal(t, "json", Output())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		valid   bool
		keyword string
	}{
		{"empty file", "", true, ""},
		{"full config", "log:\n  level: info\n  format: json\n  output: /tmp/x.log\noutput: raw\n", true, ""},
		{"bad level", "log:\n  level: loud\n", false, "enum"},
		{"bad output", "output: xml\n", false, "enum"},
		{"unknown key", "colour: blue\n", false, "additionalProperties"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Validate([]byte(tt.yaml))
			require.NoError(t, err)
			assert.Equal(t, tt.valid, result.Valid)
			if !tt.valid {
				require.NotEmpty(t, result.Issues)
				assert.Equal(t, tt.keyword, result.Issues[0].Keyword)
			}
		})
	}
}

func TestValidateMalformedYAML(t *testing.T) {
	_, err := Validate([]byte("log: [unclosed"))
	assert.Error(t, err)
}

func TestValidateFileMissing(t *testing.T) {
	_, err := ValidateFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
