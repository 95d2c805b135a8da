package operations

import (
	"errors"
	"testing"

	"github.com/sbomweld/sbomweld/hamlet"
	"github.com/sbomweld/sbomweld/sandbox"
)

func TestReportCountsOutcomes(t *testing.T) {
	must, wont := hamlet.Specifications(t)

	report := NewReport(3)
	must.True(report.Clean())

	report.absorb(Outcome{
		Request: sandbox.PackageRequest{Ecosystem: "python", Name: "flask", Version: "2.0.1"},
		Success: true,
	})
	report.absorb(Outcome{
		Request: sandbox.PackageRequest{Ecosystem: "rust", Name: "serde", Version: "1.0"},
		Skipped: true,
		Cause:   "unsupported",
	})
	report.absorb(failure(
		sandbox.PackageRequest{Ecosystem: "nodejs", Name: "left-pad", Version: "1.3.0"},
		StageInstall,
		errors.New("npm install exited with 1"),
		0,
	))

	must.Equal(3, report.Total)
	must.Equal(1, report.Succeeded)
	must.Equal(1, report.Skipped)
	must.Equal(1, report.Failed)
	wont.True(report.Clean())

	broken := report.Outcomes[2]
	must.Equal(StageInstall, broken.Cause)
	must.Equal("npm install exited with 1", broken.Reason)
}
