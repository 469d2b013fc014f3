package check

import (
	"fmt"
	"time"
)

const (
	DefaultWorkers          = 10
	DefaultDialTimeout      = 2 * time.Second
	DefaultStatusTimeout    = time.Second
	DefaultStatusPortOffset = 1
	DefaultTopN             = 40
)

// Config carries the thresholds and bounds of the evaluation pipeline.
type Config struct {
	// Workers is the width of the probing worker pool. It is independent
	// of the number of descriptors, which may be arbitrarily larger.
	Workers int
	// DialTimeout bounds the transport-layer connectivity probe.
	DialTimeout time.Duration
	// StatusTimeout bounds the status query against a peer's RPC port.
	StatusTimeout time.Duration
	// StatusPortOffset is added to a descriptor's transport port to reach
	// the peer's RPC service. The conventional layout puts RPC one port
	// above the transport port.
	StatusPortOffset int
	// MaxHeightDiff is the accepted absolute difference between a peer's
	// reported height and the reference height.
	MaxHeightDiff int64
	// MaxLatency excludes peers whose measured latency is above the bound.
	// Zero disables the bound.
	MaxLatency time.Duration
	// TopN is the number of ranked records the selection is truncated to.
	TopN int
	// TieBreak orders records reporting equal heights.
	TieBreak TieBreak
}

// DefaultConfig returns the default pipeline configuration.
func DefaultConfig() Config {
	return Config{
		Workers:          DefaultWorkers,
		DialTimeout:      DefaultDialTimeout,
		StatusTimeout:    DefaultStatusTimeout,
		StatusPortOffset: DefaultStatusPortOffset,
		TopN:             DefaultTopN,
		TieBreak:         TieBreakNone,
	}
}

// Validate performs basic validation of the config.
func (cfg *Config) Validate() error {
	if cfg.Workers < 1 {
		return fmt.Errorf("check: workers must be positive, got %d", cfg.Workers)
	}
	if cfg.DialTimeout <= 0 {
		return fmt.Errorf("check: dial timeout must be positive, got %s", cfg.DialTimeout)
	}
	if cfg.StatusTimeout <= 0 {
		return fmt.Errorf("check: status timeout must be positive, got %s", cfg.StatusTimeout)
	}
	if cfg.StatusPortOffset < 0 {
		return fmt.Errorf("check: status port offset must not be negative, got %d", cfg.StatusPortOffset)
	}
	if cfg.MaxHeightDiff < 0 {
		return fmt.Errorf("check: accepted height difference must not be negative, got %d", cfg.MaxHeightDiff)
	}
	if cfg.MaxLatency < 0 {
		return fmt.Errorf("check: max latency must not be negative, got %s", cfg.MaxLatency)
	}
	if cfg.TopN < 0 {
		return fmt.Errorf("check: top must not be negative, got %d", cfg.TopN)
	}
	if cfg.TieBreak == "" {
		cfg.TieBreak = TieBreakNone
	}
	if !cfg.TieBreak.valid() {
		return fmt.Errorf("check: unknown tie-break %q", cfg.TieBreak)
	}
	return nil
}
