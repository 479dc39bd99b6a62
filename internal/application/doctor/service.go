package doctor

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/pkg/filesystem"
	"github.com/doeshing/nuinit/internal/ports"
)

// Service runs environment diagnostics.
type Service struct {
	ConfigProvider ports.ConfigProvider
	Runner         ports.CommandRunner
	Resolver       ports.ConfigDirResolver
	Registry       ports.UtilityRegistry
	Probe          ports.InstallationProbe
}

// Run executes checks and returns a report.
func (s *Service) Run(ctx context.Context) (domain.HealthReport, error) {
	var checks []domain.HealthCheck

	cfg, err := s.ConfigProvider.Load(ctx)
	if err != nil {
		checks = append(checks, fail("Config file", fmt.Sprintf("load failed: %v", err)))
		return domain.HealthReport{Checks: checks}, err
	}
	checks = append(checks, ok("Config file", fmt.Sprintf("loaded, format version %s", cfg.ConfigFormatVersion)))

	checks = append(checks, s.nushellCheck(ctx))

	res, err := s.Resolver.Resolve(ctx)
	if err != nil {
		checks = append(checks, fail("Config directory", err.Error()))
		return domain.HealthReport{Checks: checks}, nil
	}
	checks = append(checks, ok("Config directory", fmt.Sprintf("%s (via %s)", res.Path, res.Source)))

	checks = append(checks, s.utilityCheck(ctx))
	checks = append(checks, s.configFilesCheck(res.Path))

	return domain.HealthReport{Checks: checks}, nil
}

func (s *Service) nushellCheck(ctx context.Context) domain.HealthCheck {
	res, err := s.Runner.Run(ctx, []string{"nu", "--version"})
	if err != nil {
		return warn("Nushell runtime", "nu not found in PATH (fallback paths will be used)")
	}
	return ok("Nushell runtime", fmt.Sprintf("nu %s", strings.TrimSpace(res.Stdout)))
}

func (s *Service) utilityCheck(ctx context.Context) domain.HealthCheck {
	all := s.Registry.All()
	present := 0
	for _, desc := range all {
		if s.Probe.IsInstalled(ctx, desc) {
			present++
		}
	}
	if present == 0 {
		return warn("Utilities", fmt.Sprintf("0 of %d registered utilities found in PATH", len(all)))
	}
	return ok("Utilities", fmt.Sprintf("%d of %d registered utilities present", present, len(all)))
}

func (s *Service) configFilesCheck(dir string) domain.HealthCheck {
	generating := 0
	present := 0
	for _, desc := range s.Registry.All() {
		if desc.Init == nil {
			continue
		}
		generating++
		if filesystem.Exists(filepath.Join(dir, desc.Init.OutputFile)) {
			present++
		}
	}
	return ok("Generated configs", fmt.Sprintf("%d of %d config files present", present, generating))
}

func ok(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthOK, Details: details}
}

func warn(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthWarn, Details: details}
}

func fail(name, details string) domain.HealthCheck {
	return domain.HealthCheck{Name: name, Status: domain.HealthError, Details: details}
}
