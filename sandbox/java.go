package sandbox

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sbomweld/sbomweld/cloud"
	"github.com/sbomweld/sbomweld/scanner"
)

// installJava downloads the named artifact into the sandbox. There is no
// lockfile; the scanner walks the directory in rootfs mode.
func (it *Handle) installJava(ctx context.Context) (*LockArtifact, error) {
	if len(it.request.SourceUrl) == 0 {
		return nil, &InstallError{
			Identity: it.request.Identity(),
			Reason:   fmt.Errorf("java request without artifact url"),
		}
	}
	jar := filepath.Join(it.dir, fmt.Sprintf("%s-%s.jar", it.request.SafeName(), it.request.Version))
	if err := cloud.Download(ctx, it.request.SourceUrl, jar); err != nil {
		return nil, &InstallError{Identity: it.request.Identity(), Reason: err}
	}
	return &LockArtifact{
		Path: it.dir,
		Mode: scanner.RootFS,
	}, nil
}
