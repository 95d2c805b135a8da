package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/pretty"
)

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate per-package SBOM documents without merging them.",
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Generate command lasted").Report()
		}
		requests := loadRequests()
		ctx, stop := signalAwareContext()
		defer stop()

		report := generate(ctx, requests)
		report.Show()
		pretty.Guard(report.Clean(), 2, "%d packages failed, see the log above.", report.Failed)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVarP(&inputOption, "input", "i", "", "CSV file listing the packages to process.")
	generateCmd.Flags().StringVarP(&outputOption, "output", "o", "", "Directory for per-package SBOM documents.")
	generateCmd.Flags().IntVarP(&workersOption, "workers", "w", 0, "Worker pool size (default: one per processing unit).")
}
