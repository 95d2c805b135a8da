// Package operations wires the pipeline together: input rows become
// independent jobs on the worker pool, each job owns one sandbox from
// install to teardown, and the merge phase runs strictly after the pool has
// drained.
package operations

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync/atomic"

	"github.com/sbomweld/sbomweld/anywork"
	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/depgraph"
	"github.com/sbomweld/sbomweld/journal"
	"github.com/sbomweld/sbomweld/pretty"
	"github.com/sbomweld/sbomweld/sandbox"
	"github.com/sbomweld/sbomweld/scanner"
	"github.com/sbomweld/sbomweld/spdx"
)

// GenerateAll runs one job per request under the bounded pool and returns
// the aggregate report. One job's failure never aborts its siblings.
func GenerateAll(ctx context.Context, requests []sandbox.PackageRequest, outputDir string) (*Report, error) {
	watch := common.Stopwatch("Package processing lasted")

	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, err
	}
	journal.SetJournalLocation(filepath.Join(outputDir, "journal.jsonl"))

	total := len(requests)
	report := NewReport(total)
	progress := pretty.NewProgress(total)
	progress.Start()

	completed := int64(0)
	for _, request := range requests {
		request := request
		anywork.Backlog(func() {
			outcome := processPackage(ctx, request, outputDir)
			report.absorb(outcome)
			done := int(atomic.AddInt64(&completed, 1))
			progress.Update(done, total, request.Identity())
		})
	}
	if err := anywork.Sync(); err != nil {
		common.Error("job pool", err)
	}
	progress.Stop(report.Clean())

	report.Elapsed = watch.Elapsed()
	return report, nil
}

// processPackage is the whole lifecycle of one package: install inside a
// private sandbox, scan, sanitize, map the dependency graph, and always
// tear the sandbox down. Cleanup ignores cancellation so that no partial
// sandbox is left behind when the run is interrupted.
func processPackage(ctx context.Context, request sandbox.PackageRequest, outputDir string) Outcome {
	watch := common.Stopwatch("Package %s lasted", request.Identity())

	if !sandbox.Supported(request.Ecosystem) {
		common.Log("Skipping unsupported ecosystem: %s", request.Ecosystem)
		common.Uncritical("journal", journal.Post(StageSkip, request.Tag(), "unsupported ecosystem %s", request.Ecosystem))
		return Outcome{
			Request: request,
			Skipped: true,
			Cause:   "unsupported",
			Elapsed: watch.Elapsed(),
		}
	}

	box, err := sandbox.New(request)
	if err != nil {
		return jobFailed(request, StageInstall, err, watch.Elapsed())
	}
	defer box.Close(context.WithoutCancel(ctx))

	artifact, err := box.Install(ctx)
	if err != nil {
		return jobFailed(request, StageInstall, err, watch.Elapsed())
	}

	outputPath := filepath.Join(outputDir, request.Filename())
	if err := scanner.Scan(ctx, artifact.Mode, artifact.Path, outputPath, box.Directory()); err != nil {
		return jobFailed(request, StageScan, err, watch.Elapsed())
	}

	if err := spdx.SanitizeFile(outputPath, request.Ecosystem); err != nil {
		return jobFailed(request, StageSanitize, err, watch.Elapsed())
	}

	if sandbox.GraphSupported(request.Ecosystem) {
		if err := mapDependencyGraph(ctx, box, request, outputPath); err != nil {
			return jobFailed(request, StageGraph, err, watch.Elapsed())
		}
	} else {
		common.Debug("No dependency graph source for %s, leaving scanner relationships as-is.", request.Identity())
	}

	common.Log("Individual SBOM saved: %s", outputPath)
	common.Uncritical("journal", journal.Post(StageDone, request.Tag(), "SBOM saved as %s", outputPath))
	return Outcome{
		Request: request,
		Success: true,
		Elapsed: watch.Elapsed(),
		Output:  outputPath,
	}
}

func mapDependencyGraph(ctx context.Context, box *sandbox.Handle, request sandbox.PackageRequest, outputPath string) error {
	blob, err := box.Graph(ctx)
	if err != nil {
		return err
	}
	edges, err := parseGraph(request.Ecosystem, blob)
	if err != nil {
		return err
	}
	return depgraph.ApplyToFile(outputPath, edges)
}

func parseGraph(ecosystem string, blob []byte) ([]depgraph.Edge, error) {
	switch sandbox.Normalize(ecosystem) {
	case spdx.EcosystemPython:
		return depgraph.ParsePipenvGraph(blob)
	case spdx.EcosystemNodejs:
		return depgraph.ParseNpmTree(blob)
	}
	return nil, fmt.Errorf("no dependency graph parser for ecosystem %q", ecosystem)
}

// JournalCauses reads the journal back and tallies its events per stage, for
// the debug summary at the end of a run.
func JournalCauses() (map[string]int, error) {
	events, err := journal.Events()
	if err != nil {
		return nil, err
	}
	causes := make(map[string]int)
	for _, event := range events {
		causes[event.Stage] += 1
	}
	return causes, nil
}

func jobFailed(request sandbox.PackageRequest, stage string, err error, elapsed common.Duration) Outcome {
	common.Log("Failed to generate SBOM for %s: %v", request.Identity(), err)
	common.Uncritical("journal", journal.Post(stage, request.Tag(), "failed: %v", err))
	return failure(request, stage, err, elapsed)
}

// EcosystemsOf lists the distinct supported ecosystems present in the
// request set, in stable order.
func EcosystemsOf(requests []sandbox.PackageRequest) []string {
	seen := make(map[string]bool)
	found := []string{}
	for _, request := range requests {
		tag := request.Ecosystem
		if sandbox.Supported(tag) && !seen[tag] {
			seen[tag] = true
			found = append(found, tag)
		}
	}
	sort.Strings(found)
	return found
}

// MergeAll consolidates per-package documents into one document per
// ecosystem. Strictly sequential: callers run it only after GenerateAll has
// drained the pool, since it reads the same directory the jobs write to.
func MergeAll(outputDir string, ecosystems []string) error {
	for _, ecosystem := range ecosystems {
		mergedPath := filepath.Join(outputDir, spdx.MergedFilename(ecosystem))
		if err := spdx.Merge(outputDir, ecosystem, mergedPath); err != nil {
			return err
		}
	}
	return nil
}
