package provision

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
)

// Exit code used when a step's command cannot be found or started,
// matching shell behavior for a missing binary.
const exitCommandNotFound = 127

// Step is one provisioning action, executed for its side effect on the host.
type Step interface {
	// Name identifies the step in logs and errors.
	Name() string
	// Run executes the step. A failure aborts the whole plan.
	Run(ctx context.Context) error
}

// StepError reports a failed provisioning step together with the exit code
// the process should propagate.
type StepError struct {
	Step     string
	ExitCode int
	Err      error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("step %q failed with exit code %d: %v", e.Step, e.ExitCode, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}

// CommandStep executes an external command, streaming its output through.
type CommandStep struct {
	name    string
	command string
	args    []string
	env     []string
	dir     string

	// Stdout/Stderr default to the process's own streams via the runner.
	Stdout io.Writer
	Stderr io.Writer
}

// Command creates a step that runs an external command.
func Command(name, command string, args ...string) *CommandStep {
	return &CommandStep{name: name, command: command, args: args}
}

// WithEnv appends KEY=VALUE entries to the command's environment.
func (s *CommandStep) WithEnv(env ...string) *CommandStep {
	s.env = append(s.env, env...)
	return s
}

// WithDir sets the working directory for the command.
func (s *CommandStep) WithDir(dir string) *CommandStep {
	s.dir = dir
	return s
}

// Name implements Step.
func (s *CommandStep) Name() string { return s.name }

// Run implements Step. The underlying tool's own output surfaces directly;
// no extra message is emitted on failure.
func (s *CommandStep) Run(ctx context.Context) error {
	cmd := exec.CommandContext(ctx, s.command, s.args...)
	cmd.Dir = s.dir
	cmd.Stdout = s.Stdout
	cmd.Stderr = s.Stderr
	if len(s.env) > 0 {
		cmd.Env = append(cmd.Environ(), s.env...)
	}

	err := cmd.Run()
	if err == nil {
		return nil
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &StepError{Step: s.name, ExitCode: exitErr.ExitCode(), Err: err}
	}

	var execErr *exec.Error
	if errors.As(err, &execErr) {
		return &StepError{Step: s.name, ExitCode: exitCommandNotFound, Err: err}
	}

	return &StepError{Step: s.name, ExitCode: 1, Err: err}
}

// FuncStep wraps an in-process action (e.g. a vendor installer library call).
type FuncStep struct {
	name string
	fn   func(ctx context.Context) error
}

// Func creates a step backed by a Go function.
func Func(name string, fn func(ctx context.Context) error) *FuncStep {
	return &FuncStep{name: name, fn: fn}
}

// Name implements Step.
func (s *FuncStep) Name() string { return s.name }

// Run implements Step. Library errors map to exit code 1 unless they already
// carry a StepError.
func (s *FuncStep) Run(ctx context.Context) error {
	err := s.fn(ctx)
	if err == nil {
		return nil
	}
	var stepErr *StepError
	if errors.As(err, &stepErr) {
		return err
	}
	return &StepError{Step: s.name, ExitCode: 1, Err: err}
}
