package check

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigValid(t *testing.T) {
	cfg := DefaultConfig()
	require.NoError(t, cfg.Validate())
	require.Equal(t, 10, cfg.Workers)
	require.Equal(t, 1, cfg.StatusPortOffset)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(cfg *Config)
	}{
		{name: "zero workers", modify: func(cfg *Config) { cfg.Workers = 0 }},
		{name: "negative dial timeout", modify: func(cfg *Config) { cfg.DialTimeout = -time.Second }},
		{name: "zero status timeout", modify: func(cfg *Config) { cfg.StatusTimeout = 0 }},
		{name: "negative port offset", modify: func(cfg *Config) { cfg.StatusPortOffset = -1 }},
		{name: "negative height diff", modify: func(cfg *Config) { cfg.MaxHeightDiff = -1 }},
		{name: "negative max latency", modify: func(cfg *Config) { cfg.MaxLatency = -time.Millisecond }},
		{name: "negative top", modify: func(cfg *Config) { cfg.TopN = -1 }},
		{name: "unknown tie-break", modify: func(cfg *Config) { cfg.TieBreak = "fastest" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(&cfg)
			require.Error(t, cfg.Validate())
		})
	}
}

func TestConfigValidateDefaultsTieBreak(t *testing.T) {
	cfg := DefaultConfig()
	cfg.TieBreak = ""
	require.NoError(t, cfg.Validate())
	require.Equal(t, TieBreakNone, cfg.TieBreak)
}
