package cmd

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/comet-tools/peerscan/scan"
)

var configFlag = "config"

// ConfigFlags gives the flag selecting a TOML config file.
func ConfigFlags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.String(
		configFlag,
		"",
		"Path to a TOML config file. Explicitly set flags override its values",
	)

	return flags
}

// ParseConfigFlag returns the run config, seeded from the config file when
// one is given and from defaults otherwise. Fields the file omits keep their
// defaults.
func ParseConfigFlag(cmd *cobra.Command) (*scan.Config, error) {
	cfg := scan.DefaultConfig()

	path := cmd.Flag(configFlag).Value.String()
	if path == "" {
		return cfg, nil
	}

	path, err := homedir.Expand(path)
	if err != nil {
		return nil, fmt.Errorf("cmd: expanding config path: %w", err)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("cmd: opening config: %w", err)
	}
	defer f.Close()

	if err := cfg.Decode(f); err != nil {
		return nil, fmt.Errorf("cmd: decoding config: %w", err)
	}
	return cfg, nil
}

// ParseFlags parses every flag group of the check command into a run config.
func ParseFlags(cmd *cobra.Command) (*scan.Config, error) {
	cfg, err := ParseConfigFlag(cmd)
	if err != nil {
		return nil, err
	}

	if err := ParseCoreFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := ParseCheckFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := ParseReportFlags(cmd, cfg); err != nil {
		return nil, err
	}
	if err := ParseMiscFlags(cmd); err != nil {
		return nil, err
	}

	return cfg, nil
}
