package provision

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
)

// Message printed after the last step, and only if every step succeeded.
const completionMessage = "Build complete!"

// Runner executes provisioning plans with fail-fast semantics.
type Runner struct {
	out    io.Writer
	logger *slog.Logger
}

// RunnerOption configures the runner.
type RunnerOption func(*Runner)

// WithOutput redirects step output and the completion message (tests).
func WithOutput(w io.Writer) RunnerOption {
	return func(r *Runner) {
		r.out = w
	}
}

// WithLogger sets the logger for step progress.
func WithLogger(logger *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner writing to Stdout.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		out:    os.Stdout,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes the plan's steps in declaration order.
// On the first failing step it stops immediately and returns a *StepError
// carrying that step's exit code; later steps never run. On full success it
// prints the completion message exactly once.
func (r *Runner) Run(ctx context.Context, plan Plan) error {
	for i, step := range plan.Steps {
		if err := ctx.Err(); err != nil {
			return err
		}

		r.logger.Info("running step", "plan", plan.Name, "step", step.Name(), "index", i)

		if cs, ok := step.(*CommandStep); ok {
			// Surface the underlying tool's own output on the runner's streams.
			if cs.Stdout == nil {
				cs.Stdout = r.out
			}
			if cs.Stderr == nil {
				cs.Stderr = os.Stderr
			}
		}

		if err := step.Run(ctx); err != nil {
			r.logger.Error("step failed", "plan", plan.Name, "step", step.Name(), "err", err)
			return err
		}
	}

	fmt.Fprintln(r.out, completionMessage)
	return nil
}
