package main

import (
	"github.com/spf13/cobra"

	"github.com/comet-tools/peerscan/cmd"
	"github.com/comet-tools/peerscan/scan"
)

func init() {
	checkCmd.Flags().AddFlagSet(cmd.ConfigFlags())
	checkCmd.Flags().AddFlagSet(cmd.CoreFlags())
	checkCmd.Flags().AddFlagSet(cmd.CheckFlags())
	checkCmd.Flags().AddFlagSet(cmd.ReportFlags())
	checkCmd.Flags().AddFlagSet(cmd.MiscFlags())
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe, filter and rank peers against the reference endpoint",
	Args:  cobra.NoArgs,
	RunE: func(c *cobra.Command, _ []string) error {
		cfg, err := cmd.ParseFlags(c)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
			return err
		}

		c.SilenceUsage = true
		_, err = scan.Run(c.Context(), cfg)
		return err
	},
}
