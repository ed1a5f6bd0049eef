package logger

import (
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"

	"github.com/scan-io-git/nessus-export/internal/config"
)

func TestDetermineLogLevel(t *testing.T) {
	tests := []struct {
		name     string
		env      string
		cfgLevel string
		nilCfg   bool
		want     hclog.Level
	}{
		{name: "Defaults to info", want: hclog.Info},
		{name: "Nil config", nilCfg: true, want: hclog.Info},
		{name: "Config level", cfgLevel: "debug", want: hclog.Debug},
		{name: "Env overrides config", env: "error", cfgLevel: "debug", want: hclog.Error},
		{name: "Unknown level", cfgLevel: "verbose", want: hclog.Info},
		{name: "Trace", env: "TRACE", want: hclog.Trace},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(LogLevelEnv, tt.env)

			var cfg *config.Config
			if !tt.nilCfg {
				cfg = config.Default()
				cfg.Logger.Level = tt.cfgLevel
			}
			assert.Equal(t, tt.want, determineLogLevel(cfg))
		})
	}
}

func TestNewLogger(t *testing.T) {
	t.Setenv(LogLevelEnv, "")

	cfg := config.Default()
	cfg.Logger.Level = "warn"

	logger := NewLogger(cfg, "core-convert")
	assert.Equal(t, "core-convert", logger.Name())
	assert.True(t, logger.IsWarn())
	assert.False(t, logger.IsInfo())
}
