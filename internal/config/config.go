// Package config handles loading and validation of the configdrift
// configuration file.
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/k0ns0l/configdrift/internal/errors"
	"github.com/k0ns0l/configdrift/internal/logging"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// DefaultConfigFileName is the config file looked up when --config is not given
const DefaultConfigFileName = ".configdrift.yaml"

// Config represents the complete configdrift configuration. Everything here
// is a default for the corresponding CLI flag; flags always win.
type Config struct {
	Logging logging.LoggerConfig `yaml:"logging" mapstructure:"logging"`
	Output  OutputConfig         `yaml:"output" mapstructure:"output"`
}

// OutputConfig contains defaults for report output behavior
type OutputConfig struct {
	Quiet bool `yaml:"quiet" mapstructure:"quiet"`
}

// DefaultConfig returns the built-in defaults
func DefaultConfig() *Config {
	return &Config{
		Logging: logging.DefaultLoggerConfig(),
		Output:  OutputConfig{Quiet: false},
	}
}

// LoadConfig loads configuration from the given file, or from
// .configdrift.yaml in the working directory or home directory when cfgFile
// is empty. A missing config file is not an error; the defaults apply.
// Environment variables with the CONFIGDRIFT_ prefix override file values.
func LoadConfig(cfgFile string) (*Config, error) {
	v := viper.New()

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.SetConfigName(".configdrift")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	v.SetEnvPrefix("CONFIGDRIFT")
	v.AutomaticEnv()

	defaults := DefaultConfig()
	v.SetDefault("logging.level", string(defaults.Logging.Level))
	v.SetDefault("logging.format", string(defaults.Logging.Format))
	v.SetDefault("logging.time_format", defaults.Logging.TimeFormat)
	v.SetDefault("logging.add_source", defaults.Logging.AddSource)
	v.SetDefault("output.quiet", defaults.Output.Quiet)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			// An explicitly named file that does not exist is a hard error;
			// the implicit lookup falling through to defaults is not.
			if cfgFile != "" || !os.IsNotExist(err) {
				return nil, errors.WrapError(err, errors.ErrorTypeConfig, "CONFIG_INVALID",
					fmt.Sprintf("failed to read configuration file %s", v.ConfigFileUsed())).
					WithGuidance("Run 'configdrift config init' to regenerate a default configuration file")
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.WrapError(err, errors.ErrorTypeConfig, "CONFIG_INVALID",
			"failed to parse configuration").
			WithGuidance("Run 'configdrift config init' to regenerate a default configuration file")
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

func validate(cfg *Config) error {
	switch cfg.Logging.Level {
	case logging.LogLevelDebug, logging.LogLevelInfo, logging.LogLevelWarn, logging.LogLevelError:
	default:
		return errors.NewError(errors.ErrorTypeConfig, "CONFIG_INVALID",
			fmt.Sprintf("invalid logging level %q", cfg.Logging.Level)).
			WithGuidance("Valid levels are debug, info, warn, error")
	}

	switch cfg.Logging.Format {
	case logging.LogFormatText, logging.LogFormatJSON:
	default:
		return errors.NewError(errors.ErrorTypeConfig, "CONFIG_INVALID",
			fmt.Sprintf("invalid logging format %q", cfg.Logging.Format)).
			WithGuidance("Valid formats are text and json")
	}

	return nil
}

// GetConfigFilePath resolves the config file path that would be used
func GetConfigFilePath(cfgFile string) string {
	if cfgFile != "" {
		return cfgFile
	}
	if cwd, err := os.Getwd(); err == nil {
		local := filepath.Join(cwd, DefaultConfigFileName)
		if ConfigExists(local) {
			return local
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		return filepath.Join(home, DefaultConfigFileName)
	}
	return DefaultConfigFileName
}

// ConfigExists reports whether a config file exists at path
func ConfigExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

// Save writes the configuration as YAML to path
func (c *Config) Save(path string) error {
	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.WrapError(err, errors.ErrorTypeConfig, "CONFIG_WRITE",
			"failed to encode configuration")
	}

	if err := os.WriteFile(path, data, 0o600); err != nil {
		return errors.WrapError(err, errors.ErrorTypeConfig, "CONFIG_WRITE",
			fmt.Sprintf("failed to write configuration file %s", path)).
			WithGuidance("Check permissions on the destination directory")
	}

	return nil
}
