package cmd

import (
	"time"

	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/comet-tools/peerscan/check"
	"github.com/comet-tools/peerscan/scan"
)

var (
	checkPeersFileFlag        = "check.peers-file"
	checkTopFlag              = "check.top"
	checkHeightDiffFlag       = "check.height-diff"
	checkMaxLatencyFlag       = "check.max-latency"
	checkWorkersFlag          = "check.workers"
	checkDialTimeoutFlag      = "check.dial-timeout"
	checkStatusTimeoutFlag    = "check.status-timeout"
	checkStatusPortOffsetFlag = "check.status-port-offset"
	checkTieBreakFlag         = "check.tie-break"
)

// CheckFlags gives a set of flags configuring the evaluation pipeline.
func CheckFlags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.String(
		checkPeersFileFlag,
		"",
		"Path to a comma-delimited peer descriptor file. When unset, peers are "+
			"fetched from the reference endpoint's net_info query",
	)

	flags.Int(
		checkTopFlag,
		check.DefaultTopN,
		"Number of top-ranked peers to save",
	)

	flags.Int64(
		checkHeightDiffFlag,
		0,
		"Accepted absolute difference between a peer's reported height and the reference height",
	)

	flags.Int64(
		checkMaxLatencyFlag,
		0,
		"Maximum accepted latency in milliseconds. 0 disables the bound",
	)

	flags.Int(
		checkWorkersFlag,
		check.DefaultWorkers,
		"Width of the probing worker pool",
	)

	flags.Duration(
		checkDialTimeoutFlag,
		check.DefaultDialTimeout,
		"Timeout of the transport-layer connectivity probe",
	)

	flags.Duration(
		checkStatusTimeoutFlag,
		check.DefaultStatusTimeout,
		"Timeout of the status query against a peer's RPC port",
	)

	flags.Int(
		checkStatusPortOffsetFlag,
		check.DefaultStatusPortOffset,
		"Offset added to a peer's transport port to reach its RPC service",
	)

	flags.String(
		checkTieBreakFlag,
		string(check.TieBreakNone),
		"Order of peers reporting equal heights: none, latency or id",
	)

	return flags
}

// ParseCheckFlags parses evaluation pipeline flags from the given cmd and
// applies values to the config.
func ParseCheckFlags(cmd *cobra.Command, cfg *scan.Config) error {
	if cmd.Flags().Changed(checkPeersFileFlag) {
		cfg.PeersFile = cmd.Flag(checkPeersFileFlag).Value.String()
	}

	if cmd.Flags().Changed(checkTopFlag) {
		top, err := cmd.Flags().GetInt(checkTopFlag)
		if err != nil {
			panic(err)
		}
		cfg.Check.TopN = top
	}

	if cmd.Flags().Changed(checkHeightDiffFlag) {
		diff, err := cmd.Flags().GetInt64(checkHeightDiffFlag)
		if err != nil {
			panic(err)
		}
		cfg.Check.MaxHeightDiff = diff
	}

	if cmd.Flags().Changed(checkMaxLatencyFlag) {
		latency, err := cmd.Flags().GetInt64(checkMaxLatencyFlag)
		if err != nil {
			panic(err)
		}
		cfg.Check.MaxLatency = time.Duration(latency) * time.Millisecond
	}

	if cmd.Flags().Changed(checkWorkersFlag) {
		workers, err := cmd.Flags().GetInt(checkWorkersFlag)
		if err != nil {
			panic(err)
		}
		cfg.Check.Workers = workers
	}

	if cmd.Flags().Changed(checkDialTimeoutFlag) {
		timeout, err := cmd.Flags().GetDuration(checkDialTimeoutFlag)
		if err != nil {
			panic(err)
		}
		cfg.Check.DialTimeout = timeout
	}

	if cmd.Flags().Changed(checkStatusTimeoutFlag) {
		timeout, err := cmd.Flags().GetDuration(checkStatusTimeoutFlag)
		if err != nil {
			panic(err)
		}
		cfg.Check.StatusTimeout = timeout
	}

	if cmd.Flags().Changed(checkStatusPortOffsetFlag) {
		offset, err := cmd.Flags().GetInt(checkStatusPortOffsetFlag)
		if err != nil {
			panic(err)
		}
		cfg.Check.StatusPortOffset = offset
	}

	if cmd.Flags().Changed(checkTieBreakFlag) {
		cfg.Check.TieBreak = check.TieBreak(cmd.Flag(checkTieBreakFlag).Value.String())
	}

	return nil
}
