package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rigspec-io/rigspec/internal/logging"
)

var (
	// Flags
	flagConfig   string
	flagLogLevel string
	flagOutHTML  string
	flagOutCard  string
	flagNoOpen   bool
	flagNoCard   bool
)

var rootCmd = &cobra.Command{
	Use:   "rigspec",
	Short: "Generate a hardware spec report for this machine",
	Long: `rigspec probes the local machine's hardware — motherboard, CPU, RAM,
GPU, and storage — through layered OS-specific providers, then renders a
styled HTML report and a PNG share card and opens the report.

Detection provenance can be traced into the report via the environment:
RIGSPEC_DEBUG_BOARD=1 or RIGSPEC_DEBUG_GPU=1 (RIGSPEC_DEBUG=1 for both).`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		logging.Setup(flagLogLevel)
	},
	RunE: runReport,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Config file path (default: rigspec.config.json next to the binary or in CWD)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagOutHTML, "out", "pc_specs.html", "Output path for the HTML report")
	rootCmd.Flags().StringVar(&flagOutCard, "card", "pc_specs.png", "Output path for the PNG share card")
	rootCmd.Flags().BoolVar(&flagNoOpen, "no-open", false, "Do not open the report in the browser")
	rootCmd.Flags().BoolVar(&flagNoCard, "no-card", false, "Skip share card generation")
}

// Execute runs the root command.
func Execute(version string) {
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(fmt.Sprintf("rigspec %s\n", version))
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
