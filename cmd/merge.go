package cmd

import (
	"github.com/spf13/cobra"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/operations"
	"github.com/sbomweld/sbomweld/pretty"
	"github.com/sbomweld/sbomweld/sandbox"
	"github.com/sbomweld/sbomweld/spdx"
)

var ecosystemOption string

var mergeCmd = &cobra.Command{
	Use:   "merge",
	Short: "Merge already generated per-package documents into one per ecosystem.",
	Long: `Merge consolidates the per-package SPDX documents found in the output
directory. Re-running it over an unchanged directory produces the same
result. Do not run it while generation jobs are still writing documents.`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Merge command lasted").Report()
		}
		ecosystems := []string{spdx.EcosystemPython, spdx.EcosystemNodejs, spdx.EcosystemJava}
		if len(ecosystemOption) > 0 {
			tag := sandbox.Normalize(ecosystemOption)
			pretty.Guard(sandbox.Supported(tag), 1, "Unsupported ecosystem %q.", ecosystemOption)
			ecosystems = []string{tag}
		}
		err := operations.MergeAll(outputLocation(), ecosystems)
		pretty.Guard(err == nil, 2, "Merge failed: %v", err)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(mergeCmd)
	mergeCmd.Flags().StringVarP(&outputOption, "output", "o", "", "Directory holding the per-package SBOM documents.")
	mergeCmd.Flags().StringVarP(&ecosystemOption, "ecosystem", "e", "", "Merge only this ecosystem (python, nodejs, or java).")
}
