package cmd

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/comet-tools/peerscan/core"
	"github.com/comet-tools/peerscan/scan"
)

var (
	coreRemoteFlag  = "core.remote"
	coreTimeoutFlag = "core.timeout"
)

// CoreFlags gives a set of flags configuring the reference endpoint.
func CoreFlags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.String(
		coreRemoteFlag,
		"",
		"Reference endpoint peers are compared against. "+
			"Example: <protocol>://<ip>:<port>, tcp://127.0.0.1:26657",
	)

	flags.Duration(
		coreTimeoutFlag,
		core.DefaultRequestTimeout,
		"Timeout of requests against the reference endpoint",
	)

	return flags
}

// ParseCoreFlags parses reference endpoint flags from the given cmd and
// applies values to the config.
func ParseCoreFlags(cmd *cobra.Command, cfg *scan.Config) error {
	if coreRemote := cmd.Flag(coreRemoteFlag).Value.String(); coreRemote != "" {
		cfg.Core.Remote = coreRemote
	}

	if cmd.Flags().Changed(coreTimeoutFlag) {
		timeout, err := cmd.Flags().GetDuration(coreTimeoutFlag)
		if err != nil {
			panic(err)
		}
		cfg.Core.RequestTimeout = timeout
	}

	return nil
}
