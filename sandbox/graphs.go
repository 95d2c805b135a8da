package sandbox

import (
	"context"
	"fmt"

	"github.com/sbomweld/sbomweld/shell"
	"github.com/sbomweld/sbomweld/spdx"
)

// PipenvGraph queries `pipenv graph --json` inside the sandbox.
func (it *Handle) PipenvGraph(ctx context.Context) ([]byte, error) {
	command, err := pipenvCommand("graph", "--json")
	if err != nil {
		return nil, it.failed("graph query", -1, err)
	}
	blob, code, err := shell.New(pythonEnvironment(), it.dir, command...).Output(ctx)
	if err != nil || code != 0 {
		return nil, it.failed("graph query", code, err)
	}
	return blob, nil
}

// NpmTree queries `npm ls --all --json` inside the sandbox. npm exits
// nonzero for peer dependency complaints while still printing a usable
// tree, so output wins over exit status.
func (it *Handle) NpmTree(ctx context.Context) ([]byte, error) {
	command, err := npmCommand("ls", "--all", "--json")
	if err != nil {
		return nil, it.failed("graph query", -1, err)
	}
	blob, code, err := shell.New(shell.CombineEnvironment(), it.dir, command...).Output(ctx)
	if len(blob) > 0 {
		return blob, nil
	}
	if err != nil || code != 0 {
		return nil, it.failed("graph query", code, err)
	}
	return blob, nil
}

// Graph dispatches to the ecosystem's native dependency graph query.
func (it *Handle) Graph(ctx context.Context) ([]byte, error) {
	switch Normalize(it.request.Ecosystem) {
	case spdx.EcosystemPython:
		return it.PipenvGraph(ctx)
	case spdx.EcosystemNodejs:
		return it.NpmTree(ctx)
	default:
		return nil, fmt.Errorf("no dependency graph source for ecosystem %q", it.request.Ecosystem)
	}
}
