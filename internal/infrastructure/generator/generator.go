// Package generator invokes utility init commands and captures their output.
package generator

import (
	"context"
	"fmt"
	"strings"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/ports"
)

// GenerationError reports a failed init invocation. Stderr carries whatever
// the utility printed, for surfacing to the user.
type GenerationError struct {
	Command string
	Stderr  string
	Err     error
}

func (e *GenerationError) Error() string {
	return fmt.Sprintf("running %s: %v", e.Command, e.Err)
}

func (e *GenerationError) Unwrap() error {
	return e.Err
}

// ExecGenerator implements ports.ConfigGenerator over a command runner.
type ExecGenerator struct {
	runner ports.CommandRunner
	log    ports.Logger
}

// New builds a generator over the given runner.
func New(runner ports.CommandRunner, log ports.Logger) *ExecGenerator {
	return &ExecGenerator{runner: runner, log: log}
}

// Generate runs the descriptor's init command and returns the captured
// standard output verbatim. The text is opaque Nushell syntax and is
// written out exactly as produced, no trimming.
func (g *ExecGenerator) Generate(ctx context.Context, desc domain.UtilityDescriptor) (string, error) {
	if desc.Init == nil {
		return "", fmt.Errorf("%s has no init command", desc.Name)
	}

	res, err := g.runner.Run(ctx, desc.Init.Command)
	if err != nil {
		return "", &GenerationError{
			Command: strings.Join(desc.Init.Command, " "),
			Stderr:  res.Stderr,
			Err:     err,
		}
	}

	g.log.Debug("generated config", map[string]interface{}{
		"utility":     desc.Name,
		"bytes":       len(res.Stdout),
		"duration_ms": res.DurationMS,
	})
	return res.Stdout, nil
}

var _ ports.ConfigGenerator = (*ExecGenerator)(nil)
