package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// Config represents the optional YAML configuration file.
type Config struct {
	Logger Logger `yaml:"logger"`
	Export Export `yaml:"export"`
}

// Logger holds the settings passed to hclog.
type Logger struct {
	Level           string `yaml:"level"`
	DisableTime     *bool  `yaml:"disable_time"`
	JSONFormat      *bool  `yaml:"json_format"`
	IncludeLocation *bool  `yaml:"include_location"`
}

// Export holds the defaults for the conversion command.
type Export struct {
	Format      string `yaml:"format"`
	MinSeverity *int   `yaml:"min_severity"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Logger: Logger{
			Level: "info",
		},
		Export: Export{
			Format: "yaml",
		},
	}
}

// ValidateConfigPath checks that the config path points to a file.
func ValidateConfigPath(path string) error {
	s, err := os.Stat(path)
	if err != nil {
		return err
	}
	if s.IsDir() {
		return fmt.Errorf("'%s' is a directory, not a file", path)
	}
	return nil
}

// LoadYAML decodes the YAML file at configPath into data.
func LoadYAML(configPath string, data interface{}) error {
	if err := ValidateConfigPath(configPath); err != nil {
		return err
	}

	file, err := os.Open(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	d := yaml.NewDecoder(file)
	d.SetStrict(true)
	if err := d.Decode(data); err != nil && !errors.Is(err, io.EOF) {
		return err
	}

	return nil
}

// LoadConfig reads the config file at path on top of the defaults.
// An empty path returns the defaults.
func LoadConfig(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	if err := LoadYAML(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config file %q: %w", path, err)
	}
	return cfg, nil
}
