package cmd

import (
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"

	"github.com/comet-tools/peerscan/report"
	"github.com/comet-tools/peerscan/scan"
)

var (
	reportOutputFlag = "report.output"
	reportJSONFlag   = "report.json"
)

// ReportFlags gives a set of flags configuring the output artifacts.
func ReportFlags() *flag.FlagSet {
	flags := &flag.FlagSet{}

	flags.String(
		reportOutputFlag,
		report.DefaultPath,
		"Path of the primary selection file. The ids-only and JSON artifacts derive their names from it",
	)

	flags.Bool(
		reportJSONFlag,
		false,
		"Additionally emit a JSON artifact describing every accepted peer",
	)

	return flags
}

// ParseReportFlags parses output flags from the given cmd and applies values
// to the config.
func ParseReportFlags(cmd *cobra.Command, cfg *scan.Config) error {
	if cmd.Flags().Changed(reportOutputFlag) {
		cfg.Report.Path = cmd.Flag(reportOutputFlag).Value.String()
	}

	if cmd.Flags().Changed(reportJSONFlag) {
		writeJSON, err := cmd.Flags().GetBool(reportJSONFlag)
		if err != nil {
			panic(err)
		}
		cfg.Report.WriteJSON = writeJSON
	}

	return nil
}
