// Package execute provides the process-spawning capability used by tasks.
// Tasks never call os/exec directly; they go through the Runner interface so
// tests can substitute a fake and assert on constructed argument lists
// without spawning real tools.
package execute

import (
	"context"
	"os"
	"os/exec"

	"github.com/summonkit/summon-python/internal/errors"
	"github.com/summonkit/summon-python/internal/logging"
)

// CommandSpec describes one external tool invocation.
type CommandSpec struct {
	// Args is the full argv, Args[0] being the executable name.
	Args []string
	// Dir is the working directory for the child process.
	// Empty means the current directory.
	Dir string
}

// Tool returns the executable name of the spec.
func (s CommandSpec) Tool() string {
	if len(s.Args) == 0 {
		return ""
	}
	return s.Args[0]
}

// Result is the outcome of one completed tool invocation.
// A non-zero ExitCode is a normal result, not an error: the child's exit
// status is surfaced verbatim as the task's result.
type Result struct {
	Args     []string
	ExitCode int
}

// Ok reports whether the tool exited successfully.
func (r Result) Ok() bool {
	return r.ExitCode == 0
}

// Runner executes external tool invocations.
type Runner interface {
	// Run executes the spec and blocks until the child process terminates.
	// It returns an error only when the process could not be started;
	// a started process that exits non-zero yields a nil error and the
	// child's exit code in the Result.
	Run(ctx context.Context, spec CommandSpec) (Result, error)
}

// ExecRunner runs commands with os/exec, inheriting the parent's standard
// streams so tool output is visible to the invoking user.
type ExecRunner struct {
	logger *logging.Logger
}

// NewExecRunner creates an ExecRunner. A nil logger is replaced with a
// no-op logger.
func NewExecRunner(logger *logging.Logger) *ExecRunner {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &ExecRunner{logger: logger}
}

// Run executes the spec and returns the child's exit code unchanged.
func (r *ExecRunner) Run(ctx context.Context, spec CommandSpec) (Result, error) {
	if len(spec.Args) == 0 {
		return Result{}, errors.NewToolError("empty command", errors.ErrToolStartFailed)
	}

	tool := spec.Tool()

	if _, err := exec.LookPath(tool); err != nil {
		return Result{}, errors.NewToolError("executable not in PATH", errors.ErrToolNotFound).
			WithTool(tool).
			WithDir(spec.Dir)
	}

	cmd := exec.CommandContext(ctx, tool, spec.Args[1:]...)
	cmd.Dir = spec.Dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr

	r.logger.WithTool(tool).Debug("spawning tool", "args", spec.Args, "dir", spec.Dir)

	err := cmd.Run()
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			// The tool ran and failed; that is a result, not an error.
			return Result{Args: spec.Args, ExitCode: exitErr.ExitCode()}, nil
		}
		return Result{}, errors.NewToolError("starting tool", errors.Join(errors.ErrToolStartFailed, err)).
			WithTool(tool).
			WithDir(spec.Dir)
	}

	return Result{Args: spec.Args, ExitCode: 0}, nil
}

// FirstFailure returns the exit code of the first non-zero result,
// or 0 when every result succeeded.
func FirstFailure(results []Result) int {
	for _, res := range results {
		if !res.Ok() {
			return res.ExitCode
		}
	}
	return 0
}
