package operations

import (
	"fmt"
	"sync"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/sandbox"
)

// Job stages, also used as the classified cause of a failure.
const (
	StageInstall  = "install"
	StageScan     = "scan"
	StageSanitize = "sanitize"
	StageGraph    = "graph"
	StageSkip     = "skip"
	StageDone     = "done"
)

// Outcome is the terminal state of one package job.
type Outcome struct {
	Request sandbox.PackageRequest
	Success bool
	Skipped bool
	Cause   string
	Reason  string
	Elapsed common.Duration
	Output  string
}

// Report aggregates job outcomes in completion order. Safe for concurrent
// absorption from the worker pool.
type Report struct {
	mu        sync.Mutex
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
	Outcomes  []Outcome
	Elapsed   common.Duration
}

func NewReport(total int) *Report {
	return &Report{
		Total:    total,
		Outcomes: make([]Outcome, 0, total),
	}
}

func (it *Report) absorb(outcome Outcome) {
	it.mu.Lock()
	defer it.mu.Unlock()
	it.Outcomes = append(it.Outcomes, outcome)
	switch {
	case outcome.Skipped:
		it.Skipped += 1
	case outcome.Success:
		it.Succeeded += 1
	default:
		it.Failed += 1
	}
}

// Clean tells whether every processed package either succeeded or was
// skipped as unsupported.
func (it *Report) Clean() bool {
	return it.Failed == 0
}

// Show writes the aggregate summary and each failure with its cause.
func (it *Report) Show() {
	common.Log("Processed %d packages: %d succeeded, %d failed, %d skipped.",
		it.Total, it.Succeeded, it.Failed, it.Skipped)
	for _, outcome := range it.Outcomes {
		if outcome.Success || outcome.Skipped {
			continue
		}
		common.Log("  failed [%s] %s: %s", outcome.Cause, outcome.Request.Identity(), outcome.Reason)
	}
	common.Log("Elapsed time: %s", it.Elapsed)
}

func failure(request sandbox.PackageRequest, stage string, err error, elapsed common.Duration) Outcome {
	return Outcome{
		Request: request,
		Cause:   stage,
		Reason:  fmt.Sprintf("%v", err),
		Elapsed: elapsed,
	}
}
