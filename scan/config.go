package scan

import (
	"io"
	"os"

	"github.com/BurntSushi/toml"

	"github.com/comet-tools/peerscan/check"
	"github.com/comet-tools/peerscan/core"
	"github.com/comet-tools/peerscan/report"
)

// Config is the main configuration structure for a run. It combines the
// configuration units of all subsystems.
type Config struct {
	// PeersFile points at a comma-delimited descriptor list to evaluate.
	// When empty, descriptors are fetched from the reference endpoint's
	// net_info query instead.
	PeersFile string

	Core   core.Config
	Check  check.Config
	Report report.Config
}

// DefaultConfig provides a default Config.
func DefaultConfig() *Config {
	return &Config{
		Core:   core.DefaultConfig(),
		Check:  check.DefaultConfig(),
		Report: report.DefaultConfig(),
	}
}

// Validate performs basic validation of every subsystem config.
func (cfg *Config) Validate() error {
	if err := cfg.Core.Validate(); err != nil {
		return err
	}
	if err := cfg.Check.Validate(); err != nil {
		return err
	}
	return cfg.Report.Validate()
}

// SaveConfig saves Config 'cfg' under the given 'path'.
func SaveConfig(path string, cfg *Config) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	return cfg.Encode(f)
}

// LoadConfig loads Config from the given 'path'.
func LoadConfig(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var cfg Config
	return &cfg, cfg.Decode(f)
}

// Encode encodes a given Config into w.
func (cfg *Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(cfg)
}

// Decode decodes a Config from a given reader r.
func (cfg *Config) Decode(r io.Reader) error {
	_, err := toml.NewDecoder(r).Decode(cfg)
	return err
}
