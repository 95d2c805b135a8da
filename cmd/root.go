package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/pretty"
	"github.com/sbomweld/sbomweld/settings"
	"github.com/sbomweld/sbomweld/xviper"
)

var (
	debugFlag      bool
	traceFlag      bool
	silentFlag     bool
	noProgressFlag bool
	configOption   string
	settingsOption string
)

var rootCmd = &cobra.Command{
	Use:   "sbomweld",
	Short: "Generate and merge SPDX SBOM documents for third-party packages.",
	Long: `sbomweld reads a CSV of third-party packages, installs each one in an
isolated throwaway environment, scans the resulting lockfile or artifact
with trivy into an SPDX-JSON document, and merges the per-package documents
into one consolidated document per ecosystem.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		common.DefineVerbosity(silentFlag, debugFlag, traceFlag)
		common.NoProgress = noProgressFlag
		if len(configOption) > 0 {
			xviper.SetConfigFile(configOption)
		}
		err := settings.Initialize(settingsOption)
		pretty.Guard(err == nil, 1, "Could not load settings: %v", err)
		pretty.Setup()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		pretty.Exit(1, "Error: %v", err)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Show debug messages and subprocess output.")
	rootCmd.PersistentFlags().BoolVar(&traceFlag, "trace", false, "Show trace messages (implies --debug).")
	rootCmd.PersistentFlags().BoolVar(&silentFlag, "silent", false, "Be less verbose.")
	rootCmd.PersistentFlags().BoolVar(&noProgressFlag, "no-progress", false, "Disable the progress display.")
	rootCmd.PersistentFlags().StringVar(&configOption, "config", "", "Persistent tool configuration file to use.")
	rootCmd.PersistentFlags().StringVar(&settingsOption, "settings", "", "Settings yaml file to use instead of the default one.")
}
