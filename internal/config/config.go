package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ecruz165/fsattr/internal/branding"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Keys understood by the CLI.
const (
	KeyLogLevel  = "log.level"
	KeyLogFormat = "log.format"
	KeyLogOutput = "log.output"
	KeyOutput    = "output"
)

var defaults = map[string]string{
	KeyLogLevel:  "warn",
	KeyLogFormat: "text",
	KeyLogOutput: "stderr",
	KeyOutput:    "table",
}

// Dir returns the path to the config directory: $FSATTR_HOME if set,
// otherwise ~/.fsattr/.
func Dir() string {
	if dir := os.Getenv(branding.EnvVar("HOME")); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file.
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
// FSATTR_LOG_LEVEL overrides log.level, and so on.
func Load() {
	for k, v := range defaults {
		viper.SetDefault(k, v)
	}
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// LogLevel returns the configured logrus level name.
func LogLevel() string { return viper.GetString(KeyLogLevel) }

// LogFormat returns "text" or "json".
func LogFormat() string { return viper.GetString(KeyLogFormat) }

// LogOutput returns "stderr", "stdout" or a file path.
func LogOutput() string { return viper.GetString(KeyLogOutput) }

// Output returns the default rendering for command results.
func Output() string { return viper.GetString(KeyOutput) }

// Default returns the built-in value for key, or "" if it has none.
func Default(key string) string {
	return defaults[key]
}

// Set writes a config key-value pair and saves the config file. Only keys
// already in the file plus key are written; defaults stay out of the file.
// The merged settings are checked against the schema first, and the file is
// left untouched if they are invalid.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	configFile := FilePath()

	file := viper.New()
	file.SetConfigFile(configFile)
	file.SetConfigType(fileType)
	if _, err := os.Stat(configFile); err == nil {
		if err := file.ReadInConfig(); err != nil {
			return fmt.Errorf("reading config file %s: %w", configFile, err)
		}
	}
	file.Set(key, value)

	data, err := yaml.Marshal(file.AllSettings())
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	result, err := Validate(data)
	if err != nil {
		return err
	}
	if !result.Valid {
		issue := result.Issues[0]
		return fmt.Errorf("invalid value %q for %s: %s", value, key, issue.Message)
	}

	if err := file.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	viper.Set(key, value)
	return nil
}
