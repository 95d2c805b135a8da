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

const pythonLockfile = `Pipfile.lock`

// pythonEnvironment forces pipenv into a fresh in-project virtualenv and
// keeps it away from any ambient one.
func pythonEnvironment() []string {
	return shell.CombineEnvironment(
		"PYTHONIOENCODING=utf-8",
		"PIPENV_VENV_IN_PROJECT=1",
		"PIPENV_IGNORE_VIRTUALENVS=1",
	)
}

func pipenvCommand(extra ...string) ([]string, error) {
	base, err := shell.Split(settings.Global.Tools.Pipenv)
	if err != nil || len(base) == 0 {
		return nil, fmt.Errorf("unusable pipenv command %q: %v", settings.Global.Tools.Pipenv, err)
	}
	return append(base, extra...), nil
}

func (it *Handle) pipenv(ctx context.Context, step string, extra ...string) error {
	command, err := pipenvCommand(extra...)
	if err != nil {
		return it.failed(step, -1, err)
	}
	code, err := shell.New(pythonEnvironment(), it.dir, command...).Execute(ctx)
	if err != nil || code != 0 {
		return it.failed(step, code, err)
	}
	return nil
}

// installPython creates an isolated virtualenv bound to the configured
// interpreter, installs the exact pin, and forces a lock regeneration.
func (it *Handle) installPython(ctx context.Context) (*LockArtifact, error) {
	err := it.pipenv(ctx, "environment setup", "--python", settings.Global.Tools.Python)
	if err != nil {
		return nil, err
	}
	pin := fmt.Sprintf("%s==%s", it.request.Name, it.request.Version)
	if err := it.pipenv(ctx, "package install", "install", pin); err != nil {
		return nil, err
	}
	// Install already wrote the lockfile, but lock again so the scan target
	// reflects the final resolution.
	if err := it.pipenv(ctx, "lock generation", "lock"); err != nil {
		return nil, err
	}
	return &LockArtifact{
		Path: filepath.Join(it.dir, pythonLockfile),
		Mode: scanner.Filesystem,
	}, nil
}

func (it *Handle) teardownPython(ctx context.Context) {
	command, err := pipenvCommand("--rm")
	if err != nil {
		common.Uncritical("pipenv teardown", err)
		return
	}
	code, err := shell.New(pythonEnvironment(), it.dir, command...).Execute(ctx)
	if err != nil || code != 0 {
		common.Uncritical("pipenv teardown", fmt.Errorf("exit %d: %v", code, err))
	}
}
