// Package config loads CLI settings from config.yaml, ADDRESSBOOK_*
// environment variables, and command-line flags, in increasing order of
// precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

const (
	configFileName = "config"
	configFileType = "yaml"

	// FileName is the config file looked up in the config directory.
	FileName = "config.yaml"

	// EnvPrefix prefixes environment overrides, e.g. ADDRESSBOOK_OUTPUT.
	EnvPrefix = "ADDRESSBOOK"
)

// Config keys.
const (
	KeyOutput   = "output"
	KeyLogLevel = "log_level"
	KeyColor    = "color"
)

// Output formats.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// Config holds the settings shared by every CLI command.
type Config struct {
	Output   string `mapstructure:"output" yaml:"output"`
	LogLevel string `mapstructure:"log_level" yaml:"log_level"`
	Color    bool   `mapstructure:"color" yaml:"color"`
}

// Config validation errors.
var (
	ErrOutputUnknown   = errors.New("unknown output format")
	ErrLogLevelUnknown = errors.New("unknown log level")
)

var knownOutputs = map[string]bool{
	OutputText: true,
	OutputJSON: true,
	OutputYAML: true,
}

var knownLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// flagKeys maps flag names to the config keys they override.
var flagKeys = map[string]string{
	"output":    KeyOutput,
	"log-level": KeyLogLevel,
	"color":     KeyColor,
}

// Default returns the settings used when nothing overrides them.
func Default() Config {
	return Config{
		Output:   OutputText,
		LogLevel: "warn",
		Color:    true,
	}
}

// Validate checks that the Config is well-formed. It returns a sentinel
// error from this package on failure.
func (c Config) Validate() error {
	if !knownOutputs[c.Output] {
		return fmt.Errorf("%w: %q", ErrOutputUnknown, c.Output)
	}
	if !knownLogLevels[c.LogLevel] {
		return fmt.Errorf("%w: %q", ErrLogLevelUnknown, c.LogLevel)
	}
	return nil
}

// Load reads config.yaml from configDir, applies environment and flag
// overrides, and validates the result. A missing config.yaml is not an
// error. Only flags that were set on the command line override the file.
// flags may be nil.
func Load(configDir string, flags *pflag.FlagSet) (Config, error) {
	def := Default()

	v := viper.New()
	v.SetDefault(KeyOutput, def.Output)
	v.SetDefault(KeyLogLevel, def.LogLevel)
	v.SetDefault(KeyColor, def.Color)
	v.SetConfigName(configFileName)
	v.SetConfigType(configFileType)
	v.AddConfigPath(configDir)
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			f := flags.Lookup(name)
			if f == nil || !f.Changed {
				continue
			}
			if err := v.BindPFlag(key, f); err != nil {
				return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

const defaultHeader = `# addressbook CLI configuration
# Every key can be overridden with an ADDRESSBOOK_<KEY> environment
# variable or the matching command-line flag.
`

// WriteDefault creates configDir and a config.yaml holding the default
// settings. An existing config.yaml is left untouched. Returns the file
// path and whether it was created.
func WriteDefault(configDir string) (string, bool, error) {
	path := filepath.Join(configDir, FileName)

	if err := os.MkdirAll(configDir, 0o755); err != nil {
		return path, false, fmt.Errorf("create config directory: %w", err)
	}

	_, err := os.Stat(path)
	if err == nil {
		return path, false, nil
	}
	if !os.IsNotExist(err) {
		return path, false, fmt.Errorf("stat config file: %w", err)
	}

	def := Default()
	data, err := yaml.Marshal(&def)
	if err != nil {
		return path, false, fmt.Errorf("marshal config: %w", err)
	}

	if err := os.WriteFile(path, append([]byte(defaultHeader), data...), 0o644); err != nil {
		return path, false, fmt.Errorf("write config: %w", err)
	}
	return path, true, nil
}
