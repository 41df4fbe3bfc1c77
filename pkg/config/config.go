// Package config loads pagewright's YAML configuration: keyword
// overrides for the detection heuristics plus logging and output
// settings. Missing fields keep their defaults, so a config file only
// states what it changes.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/odvcencio/pagewright/pkg/errors"
	"github.com/odvcencio/pagewright/pkg/logging"
	"github.com/odvcencio/pagewright/pkg/pagedetect"
)

// Output formats understood by the CLI.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// Config is the root configuration document.
type Config struct {
	Keywords pagedetect.Keywords `yaml:"keywords"`
	Logging  LoggingConfig       `yaml:"logging"`
	Output   OutputConfig        `yaml:"output"`
}

// LoggingConfig controls the structured JSONL logger. An empty Dir
// disables logging entirely.
type LoggingConfig struct {
	Dir   string `yaml:"dir"`
	Level string `yaml:"level"`
}

// OutputConfig controls how detected segments are rendered.
type OutputConfig struct {
	Format        string  `yaml:"format"`
	MinConfidence float64 `yaml:"min_confidence"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() *Config {
	return &Config{
		Keywords: pagedetect.DefaultKeywords(),
		Logging: LoggingConfig{
			Level: string(logging.LevelInfo),
		},
		Output: OutputConfig{
			Format: FormatTable,
		},
	}
}

// Load reads and validates a configuration file. An empty path yields
// the defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigLoad, "failed to read config file").
			WithContext("path", path)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, errors.Wrap(err, errors.ErrCodeConfigParse, "failed to parse config file").
			WithContext("path", path)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

var validLevels = map[string]bool{
	string(logging.LevelDebug): true,
	string(logging.LevelInfo):  true,
	string(logging.LevelWarn):  true,
	string(logging.LevelError): true,
}

// Validate checks the configuration for values the CLI cannot act on.
func (c *Config) Validate() error {
	if c.Output.Format != FormatTable && c.Output.Format != FormatJSON {
		return errors.New(errors.ErrCodeConfigInvalid, "unknown output format").
			WithContext("format", c.Output.Format)
	}
	if c.Output.MinConfidence < 0 || c.Output.MinConfidence > 1 {
		return errors.New(errors.ErrCodeConfigInvalid, "min_confidence must be in [0, 1]").
			WithContext("min_confidence", c.Output.MinConfidence)
	}
	if c.Logging.Level != "" && !validLevels[c.Logging.Level] {
		return errors.New(errors.ErrCodeConfigInvalid, "unknown log level").
			WithContext("level", c.Logging.Level)
	}
	return nil
}
