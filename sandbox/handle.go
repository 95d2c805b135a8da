package sandbox

import (
	"context"
	"fmt"
	"os"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/scanner"
	"github.com/sbomweld/sbomweld/spdx"
)

// LockArtifact is what the installer hands to the scanner: a lockfile path
// scanned in filesystem mode, or the sandbox directory scanned in rootfs
// mode for artifact-based ecosystems. Not valid beyond the handle's life.
type LockArtifact struct {
	Path string
	Mode scanner.Mode
}

// Handle is an exclusively-owned disposable working directory plus the
// ecosystem environment created inside it. Never shared between jobs.
type Handle struct {
	request PackageRequest
	dir     string
}

// New allocates a fresh private directory for the request.
func New(request PackageRequest) (*Handle, error) {
	dir, err := os.MkdirTemp("", fmt.Sprintf("sbomweld-%s-", request.Tag()))
	if err != nil {
		return nil, &InstallError{Identity: request.Identity(), Reason: err}
	}
	common.Trace("Sandbox %q created for %s.", dir, request.Identity())
	return &Handle{request: request, dir: dir}, nil
}

func (it *Handle) Directory() string {
	return it.dir
}

// Install runs the ecosystem-specific pathway and yields the scan target.
func (it *Handle) Install(ctx context.Context) (*LockArtifact, error) {
	switch Normalize(it.request.Ecosystem) {
	case spdx.EcosystemPython:
		return it.installPython(ctx)
	case spdx.EcosystemNodejs:
		return it.installNodejs(ctx)
	case spdx.EcosystemJava:
		return it.installJava(ctx)
	default:
		return nil, &UnsupportedError{Ecosystem: it.request.Ecosystem}
	}
}

// Close tears the environment down and discards the directory. It runs on
// every exit path; teardown failures are logged and swallowed so that they
// never mask the job's real outcome.
func (it *Handle) Close(ctx context.Context) {
	it.teardown(ctx)
	if err := os.RemoveAll(it.dir); err != nil {
		common.Uncritical("sandbox remove", err)
		return
	}
	common.Trace("Sandbox %q removed.", it.dir)
}

func (it *Handle) teardown(ctx context.Context) {
	switch Normalize(it.request.Ecosystem) {
	case spdx.EcosystemPython:
		it.teardownPython(ctx)
	case spdx.EcosystemNodejs:
		it.teardownNodejs(ctx)
	}
}

func (it *Handle) failed(step string, code int, err error) error {
	if err == nil {
		err = fmt.Errorf("%s exited with %d", step, code)
	} else {
		err = fmt.Errorf("%s: %w", step, err)
	}
	return &InstallError{Identity: it.request.Identity(), Reason: err}
}
