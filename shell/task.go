// Package shell is the process-execution contract used for every external
// tool: package managers, the scanner, and graph queries. Commands always run
// with an explicit working directory and a duplicated environment plus
// overrides, and stay silent unless debugging is on.
package shell

import (
	"bytes"
	"context"
	"io"
	"os"
	"os/exec"

	"github.com/google/shlex"

	"github.com/sbomweld/sbomweld/common"
)

type Task struct {
	environment []string
	directory   string
	executable  string
	args        []string
}

func New(environment []string, directory string, task ...string) *Task {
	executable, args := task[0], task[1:]
	return &Task{
		environment: environment,
		directory:   directory,
		executable:  executable,
		args:        args,
	}
}

// Split turns an override command string from settings into argv form.
func Split(command string) ([]string, error) {
	return shlex.Split(command)
}

// CombineEnvironment duplicates the process environment and appends the
// given KEY=value overrides.
func CombineEnvironment(overrides ...string) []string {
	environment := os.Environ()
	return append(environment, overrides...)
}

func (it *Task) execute(ctx context.Context, stdout, stderr io.Writer) (int, error) {
	command := exec.CommandContext(ctx, it.executable, it.args...)
	command.Dir = it.directory
	command.Env = it.environment
	command.Stdout = stdout
	command.Stderr = stderr
	common.Trace("Running %q with arguments %q in %q.", it.executable, it.args, it.directory)
	err := command.Run()
	exit, ok := err.(*exec.ExitError)
	if ok {
		return exit.ExitCode(), err
	}
	if err != nil {
		return -500, err
	}
	return 0, nil
}

// Execute runs the task, discarding tool output unless debugging is on.
func (it *Task) Execute(ctx context.Context) (int, error) {
	if common.DebugFlag() {
		return it.execute(ctx, os.Stderr, os.Stderr)
	}
	return it.execute(ctx, io.Discard, io.Discard)
}

// Observed runs the task with both output streams captured into the sink.
func (it *Task) Observed(ctx context.Context, sink io.Writer) (int, error) {
	return it.execute(ctx, sink, sink)
}

// Output runs the task and returns its standard output.
func (it *Task) Output(ctx context.Context) ([]byte, int, error) {
	stdout := bytes.Buffer{}
	stderr := io.Discard
	if common.DebugFlag() {
		stderr = os.Stderr
	}
	code, err := it.execute(ctx, &stdout, stderr)
	return stdout.Bytes(), code, err
}
