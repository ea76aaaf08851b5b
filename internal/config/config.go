// Package config defines the configuration of journey-calc and loads it from
// a YAML file, the environment and command line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/iwvelando/journey-calc/pkg/constants"
	"github.com/iwvelando/journey-calc/pkg/validation"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Configuration holds all configuration for journey-calc.
type Configuration struct {
	Logging LoggingConfig `mapstructure:"logging" yaml:"logging,omitempty"`
	Output  OutputConfig  `mapstructure:"output" yaml:"output,omitempty"`
	Shell   ShellConfig   `mapstructure:"shell" yaml:"shell,omitempty"`
}

// LoggingConfig holds logging configuration options
type LoggingConfig struct {
	Level      string `mapstructure:"level" yaml:"level,omitempty"`           // debug, info, warn, error
	Format     string `mapstructure:"format" yaml:"format,omitempty"`         // json, console
	OutputFile string `mapstructure:"outputFile" yaml:"outputFile,omitempty"` // optional file output
}

// OutputConfig holds output format configuration options
type OutputConfig struct {
	Format string `mapstructure:"format" yaml:"format,omitempty"` // pretty, csv, yaml
}

// ShellConfig holds options for the interactive session.
type ShellConfig struct {
	HistoryFile string `mapstructure:"historyFile" yaml:"historyFile,omitempty"` // empty disables history
}

// flagKeys maps command line flag names to configuration keys.
var flagKeys = map[string]string{
	"log-level":     "logging.level",
	"log-format":    "logging.format",
	"log-file":      "logging.outputFile",
	"output-format": "output.format",
	"history":       "shell.historyFile",
}

// DefaultHistoryFile is where line history is kept unless configured otherwise.
func DefaultHistoryFile() string {
	return filepath.Join(os.TempDir(), ".journey_calc_history")
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("logging.level", constants.DefaultLogLevel)
	v.SetDefault("logging.format", constants.DefaultLogFormat)
	v.SetDefault("logging.outputFile", "")
	v.SetDefault("output.format", constants.OutputFormatPretty)
	v.SetDefault("shell.historyFile", DefaultHistoryFile())
}

// LoadConfiguration loads the YAML-formatted configuration at configPath,
// layering environment variables (JOURNEY_CALC_OUTPUT_FORMAT and so on) and
// any changed flags on top. A missing file is not an error; defaults are used.
// flags may be nil.
func LoadConfiguration(configPath string, flags *pflag.FlagSet) (*Configuration, error) {
	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix(constants.EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		for name, key := range flagKeys {
			flag := flags.Lookup(name)
			if flag == nil {
				continue
			}
			if err := v.BindPFlag(key, flag); err != nil {
				return nil, fmt.Errorf("unable to bind flag %s, %w", name, err)
			}
		}
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		v.SetConfigType("yml")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.Is(err, fs.ErrNotExist) && !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file, %w", err)
			}
		}
	}

	var configuration Configuration
	if err := v.Unmarshal(&configuration); err != nil {
		return nil, fmt.Errorf("unable to decode into struct, %w", err)
	}

	return &configuration, nil
}

// Validate checks the settings that can be checked before the logger exists.
func (c *Configuration) Validate() error {
	if err := validation.ValidateOutputFormat(c.Output.Format); err != nil {
		return err
	}
	switch c.Logging.Format {
	case "json", "console":
	default:
		return fmt.Errorf("invalid log format: %s", c.Logging.Format)
	}
	return nil
}
