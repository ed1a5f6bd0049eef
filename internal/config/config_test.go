package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	tmpDir := t.TempDir()

	t.Run("Empty path returns defaults", func(t *testing.T) {
		cfg, err := LoadConfig("")
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("File overrides defaults", func(t *testing.T) {
		path := filepath.Join(tmpDir, "config.yml")
		content := `logger:
  level: debug
  json_format: true
export:
  format: sarif
  min_severity: 3
`
		require.NoError(t, os.WriteFile(path, []byte(content), 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logger.Level)
		assert.True(t, GetBoolValue(cfg, "Logger.JSONFormat", false))
		assert.True(t, GetBoolValue(cfg, "Logger.DisableTime", true))
		assert.Equal(t, "sarif", cfg.Export.Format)
		require.NotNil(t, cfg.Export.MinSeverity)
		assert.Equal(t, 3, *cfg.Export.MinSeverity)
	})

	t.Run("Empty file", func(t *testing.T) {
		path := filepath.Join(tmpDir, "empty.yml")
		require.NoError(t, os.WriteFile(path, nil, 0644))

		cfg, err := LoadConfig(path)
		require.NoError(t, err)
		assert.Equal(t, Default(), cfg)
	})

	t.Run("Unknown key", func(t *testing.T) {
		path := filepath.Join(tmpDir, "unknown.yml")
		require.NoError(t, os.WriteFile(path, []byte("http_client:\n  timeout: 5s\n"), 0644))

		_, err := LoadConfig(path)
		assert.Error(t, err)
	})

	t.Run("Missing file", func(t *testing.T) {
		_, err := LoadConfig(filepath.Join(tmpDir, "missing.yml"))
		assert.Error(t, err)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := LoadConfig(tmpDir)
		assert.ErrorContains(t, err, "is a directory, not a file")
	})
}

func TestValidateConfig(t *testing.T) {
	severity := func(v int) *int { return &v }

	tests := []struct {
		name    string
		cfg     *Config
		wantErr string
	}{
		{
			name: "Defaults",
			cfg:  Default(),
		},
		{
			name:    "Nil config",
			cfg:     nil,
			wantErr: "YAML config: configuration object is nil",
		},
		{
			name:    "Unknown log level",
			cfg:     &Config{Logger: Logger{Level: "verbose"}},
			wantErr: `YAML config: logger directive is invalid: unknown level "verbose"`,
		},
		{
			name:    "Unknown format",
			cfg:     &Config{Export: Export{Format: "csv"}},
			wantErr: `YAML config: export directive is invalid: unknown format "csv"`,
		},
		{
			name:    "Severity out of range",
			cfg:     &Config{Export: Export{MinSeverity: severity(5)}},
			wantErr: "YAML config: export directive is invalid: min_severity must be between 0 and 4: 5",
		},
		{
			name: "Valid severity",
			cfg:  &Config{Export: Export{Format: "cyclonedx", MinSeverity: severity(0)}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateConfig(tt.cfg)
			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.EqualError(t, err, tt.wantErr)
			}
		})
	}
}

func TestSetThen(t *testing.T) {
	assert.Equal(t, "yaml", SetThen("", "yaml"))
	assert.Equal(t, "sarif", SetThen("sarif", "yaml"))
	assert.Equal(t, 2, SetThen(0, 2))
}
