package sandbox

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/sbomweld/sbomweld/common"
	"github.com/sbomweld/sbomweld/scanner"
	"github.com/sbomweld/sbomweld/settings"
	"github.com/sbomweld/sbomweld/shell"
)

const nodejsLockfile = `package-lock.json`

func npmCommand(extra ...string) ([]string, error) {
	base, err := shell.Split(settings.Global.Tools.Npm)
	if err != nil || len(base) == 0 {
		return nil, fmt.Errorf("unusable npm command %q: %v", settings.Global.Tools.Npm, err)
	}
	return append(base, extra...), nil
}

func (it *Handle) npm(ctx context.Context, step string, extra ...string) error {
	command, err := npmCommand(extra...)
	if err != nil {
		return it.failed(step, -1, err)
	}
	code, err := shell.New(shell.CombineEnvironment(), it.dir, command...).Execute(ctx)
	if err != nil || code != 0 {
		return it.failed(step, code, err)
	}
	return nil
}

// installNodejs scaffolds a minimal project manifest and installs the
// pinned package, yielding the generated lockfile.
func (it *Handle) installNodejs(ctx context.Context) (*LockArtifact, error) {
	if err := it.npm(ctx, "project scaffold", "init", "-y"); err != nil {
		return nil, err
	}
	pin := fmt.Sprintf("%s@%s", it.request.Name, it.request.Version)
	if err := it.npm(ctx, "package install", "install", pin); err != nil {
		return nil, err
	}
	return &LockArtifact{
		Path: filepath.Join(it.dir, nodejsLockfile),
		Mode: scanner.Filesystem,
	}, nil
}

func (it *Handle) teardownNodejs(ctx context.Context) {
	command, err := npmCommand("uninstall", it.request.Name)
	if err != nil {
		common.Uncritical("npm teardown", err)
		return
	}
	code, err := shell.New(shell.CombineEnvironment(), it.dir, command...).Execute(ctx)
	if err != nil || code != 0 {
		common.Uncritical("npm teardown", fmt.Errorf("exit %d: %v", code, err))
	}
}
