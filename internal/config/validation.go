package config

import (
	"fmt"
	"strings"
)

var validLogLevels = map[string]struct{}{
	"TRACE": {},
	"DEBUG": {},
	"INFO":  {},
	"WARN":  {},
	"ERROR": {},
}

var validFormats = map[string]struct{}{
	"yaml":      {},
	"yml":       {},
	"sarif":     {},
	"cyclonedx": {},
	"cdx":       {},
}

// ValidateConfig checks if the configuration has valid values.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("YAML config: configuration object is nil")
	}
	if err := ValidateLoggerConfig(&cfg.Logger); err != nil {
		return fmt.Errorf("YAML config: logger directive is invalid: %w", err)
	}
	if err := ValidateExportConfig(&cfg.Export); err != nil {
		return fmt.Errorf("YAML config: export directive is invalid: %w", err)
	}
	return nil
}

// ValidateLoggerConfig checks the logger level.
func ValidateLoggerConfig(logger *Logger) error {
	if logger.Level == "" {
		return nil
	}
	if _, ok := validLogLevels[strings.ToUpper(logger.Level)]; !ok {
		return fmt.Errorf("unknown level %q", logger.Level)
	}
	return nil
}

// ValidateExportConfig checks the export format and severity threshold.
func ValidateExportConfig(export *Export) error {
	if export.Format != "" {
		if _, ok := validFormats[strings.ToLower(export.Format)]; !ok {
			return fmt.Errorf("unknown format %q", export.Format)
		}
	}
	if export.MinSeverity != nil {
		if err := ValidateSeverity(*export.MinSeverity); err != nil {
			return err
		}
	}
	return nil
}

// ValidateSeverity checks that severity is within the Nessus range 0 (info) to 4 (critical).
func ValidateSeverity(severity int) error {
	if severity < 0 || severity > 4 {
		return fmt.Errorf("min_severity must be between 0 and 4: %d", severity)
	}
	return nil
}
