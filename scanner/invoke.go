// Package scanner invokes the external vulnerability scanner (trivy) against
// an install artifact, producing one SPDX-JSON document per package.
package scanner

import (
	"context"
	"fmt"

	"github.com/sbomweld/sbomweld/settings"
	"github.com/sbomweld/sbomweld/shell"
)

// Mode selects the scanner target form: a lockfile path or a directory
// holding a downloaded artifact.
type Mode string

const (
	Filesystem Mode = "fs"
	RootFS     Mode = "rootfs"
)

// ScanError is a nonzero scanner exit or a broken scanner invocation. It is
// terminal for one package, never for the run.
type ScanError struct {
	Target string
	Code   int
	Reason error
}

func (it *ScanError) Error() string {
	return fmt.Sprintf("scan of %q failed with exit %d: %v", it.Target, it.Code, it.Reason)
}

func (it *ScanError) Unwrap() error {
	return it.Reason
}

// Command builds the scanner argv without running it.
func Command(mode Mode, target, outputPath string) ([]string, error) {
	parts, err := shell.Split(settings.Global.ScannerPath())
	if err != nil || len(parts) == 0 {
		return nil, fmt.Errorf("unusable scanner command %q: %v", settings.Global.ScannerPath(), err)
	}
	return append(parts, string(mode), target, "--format", "spdx-json", "--output", outputPath), nil
}

// Scan runs the scanner in the given working directory, writing SPDX-JSON to
// outputPath.
func Scan(ctx context.Context, mode Mode, target, outputPath, workdir string) error {
	command, err := Command(mode, target, outputPath)
	if err != nil {
		return &ScanError{Target: target, Code: -1, Reason: err}
	}
	code, err := shell.New(shell.CombineEnvironment(), workdir, command...).Execute(ctx)
	if err != nil || code != 0 {
		return &ScanError{Target: target, Code: code, Reason: err}
	}
	return nil
}
