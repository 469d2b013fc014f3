package main

import (
	"fmt"
	"os"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"

	"github.com/comet-tools/peerscan/scan"
)

func init() {
	initCmd.Flags().StringP(
		"output",
		"o",
		"peerscan.toml",
		"Path the default config file is written to",
	)
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a config file populated with defaults",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		path, err := c.Flags().GetString("output")
		if err != nil {
			panic(err)
		}

		path, err = homedir.Expand(path)
		if err != nil {
			return fmt.Errorf("expanding output path: %w", err)
		}

		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config file already exists at %s", path)
		}

		c.SilenceUsage = true
		return scan.SaveConfig(path, scan.DefaultConfig())
	},
}
