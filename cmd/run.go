package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/sbomweld/sbomweld/anywork"
	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/journal"
	"github.com/sbomweld/sbomweld/operations"
	"github.com/sbomweld/sbomweld/pretty"
	"github.com/sbomweld/sbomweld/sandbox"
	"github.com/sbomweld/sbomweld/settings"
	"github.com/sbomweld/sbomweld/shell"
	"github.com/sbomweld/sbomweld/xviper"
)

var (
	inputOption   string
	outputOption  string
	workersOption int
)

func inputLocation() string {
	if len(inputOption) > 0 {
		return inputOption
	}
	return settings.Global.InputFile
}

func outputLocation() string {
	if len(outputOption) > 0 {
		return outputOption
	}
	return settings.Global.OutputDir
}

func loadRequests() []sandbox.PackageRequest {
	requests, err := operations.ParseInputCSV(inputLocation())
	pretty.Guard(err == nil, 1, "Failed to read input %q: %v", inputLocation(), err)
	pretty.Guard(len(requests) > 0, 1, "No packages found in %q.", inputLocation())
	return requests
}

// signalAwareContext cancels in-flight jobs on interrupt. Sandbox teardown
// ignores the cancellation so that no partial environment is left behind.
func signalAwareContext() (context.Context, context.CancelFunc) {
	return signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
}

func generate(ctx context.Context, requests []sandbox.PackageRequest) *operations.Report {
	if workersOption > 0 {
		anywork.WorkerCount = workersOption
	} else {
		anywork.WorkerCount = settings.Global.WorkerCount()
	}
	anywork.AutoScale()

	common.Debug("Run %s #%d starting with %d workers over %d packages.",
		xviper.RunIdentity(), xviper.NextRunCounter(), anywork.Scale(), len(requests))

	report, err := operations.GenerateAll(ctx, requests, outputLocation())
	pretty.Guard(err == nil, 1, "Could not prepare output directory: %v", err)

	if ctx.Err() != nil {
		shell.TerminateStrays()
		report.Show()
		pretty.Exit(3, "Interrupted; sandboxes were cleaned up.")
	}
	return report
}

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Generate per-package SBOM documents and merge them per ecosystem.",
	Long: `Run the whole pipeline: one isolated install + scan job per input row
under the bounded worker pool, then one merged SPDX document per ecosystem.`,
	Run: func(cmd *cobra.Command, args []string) {
		if common.DebugFlag() {
			defer common.Stopwatch("Run command lasted").Report()
		}
		requests := loadRequests()
		ctx, stop := signalAwareContext()
		defer stop()

		report := generate(ctx, requests)
		err := operations.MergeAll(outputLocation(), operations.EcosystemsOf(requests))
		pretty.Guard(err == nil, 2, "Merge phase failed: %v", err)

		report.Show()
		common.Uncritical("journal", journal.Post("run", xviper.RunIdentity(),
			"%d/%d packages succeeded", report.Succeeded, report.Total))
		if common.DebugFlag() {
			if causes, err := operations.JournalCauses(); err == nil {
				common.Debug("Journal stages after this run: %v", causes)
			}
		}
		pretty.Guard(report.Clean(), 2, "%d packages failed, see the log above.", report.Failed)
		pretty.Ok()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&inputOption, "input", "i", "", "CSV file listing the packages to process.")
	runCmd.Flags().StringVarP(&outputOption, "output", "o", "", "Directory for per-package and merged SBOM documents.")
	runCmd.Flags().IntVarP(&workersOption, "workers", "w", 0, "Worker pool size (default: one per processing unit).")
}
