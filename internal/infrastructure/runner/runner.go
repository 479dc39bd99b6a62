// Package runner provides the process-spawning adapter behind ports.CommandRunner.
package runner

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"time"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/ports"
)

// LocalRunner executes argument vectors on the host. Commands run without a
// shell: argv[0] is resolved through PATH and the remaining elements are
// passed as-is, so generated text never goes through shell interpretation.
type LocalRunner struct{}

// NewLocalRunner builds a new runner.
func NewLocalRunner() *LocalRunner {
	return &LocalRunner{}
}

// Run implements ports.CommandRunner.
func (r *LocalRunner) Run(ctx context.Context, argv []string) (domain.CommandResult, error) {
	if len(argv) == 0 {
		return domain.CommandResult{}, fmt.Errorf("empty command")
	}

	c := exec.CommandContext(ctx, argv[0], argv[1:]...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr

	start := time.Now()
	err := c.Run()
	duration := time.Since(start).Milliseconds()

	result := domain.CommandResult{
		Ran:        err == nil,
		Stdout:     stdout.String(),
		Stderr:     stderr.String(),
		DurationMS: duration,
	}
	if exitErr, ok := err.(*exec.ExitError); ok {
		result.ExitCode = exitErr.ExitCode()
		result.Err = err
		return result, err
	}
	if err != nil {
		result.Err = err
		return result, err
	}
	result.ExitCode = 0
	return result, nil
}

var _ ports.CommandRunner = (*LocalRunner)(nil)
