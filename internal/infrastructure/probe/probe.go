// Package probe answers whether managed utilities are reachable on PATH.
package probe

import (
	"context"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/ports"
)

// ExecProbe tests presence by running each descriptor's check command with
// output suppressed. A missing binary is an expected outcome, not an error,
// so every failure mode collapses to false.
type ExecProbe struct {
	runner ports.CommandRunner
	log    ports.Logger
}

// New builds a probe over the given runner.
func New(runner ports.CommandRunner, log ports.Logger) *ExecProbe {
	return &ExecProbe{runner: runner, log: log}
}

// IsInstalled implements ports.InstallationProbe.
func (p *ExecProbe) IsInstalled(ctx context.Context, desc domain.UtilityDescriptor) bool {
	res, err := p.runner.Run(ctx, desc.CheckCommand)
	if err != nil {
		p.log.Debug("presence probe failed", map[string]interface{}{
			"utility": desc.Name,
			"error":   err.Error(),
		})
		return false
	}
	p.log.Debug("presence probe succeeded", map[string]interface{}{
		"utility":     desc.Name,
		"duration_ms": res.DurationMS,
	})
	return true
}

var _ ports.InstallationProbe = (*ExecProbe)(nil)
