// Package install orchestrates the per-utility probe → generate → write
// workflow.
package install

import (
	"context"
	"os"
	"path/filepath"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/pkg/filesystem"
	"github.com/doeshing/nuinit/internal/ports"
)

// Service drives installs across one or many utilities. Each utility walks
// the same state machine; failures are isolated per item so one broken tool
// never aborts the batch. The only fatal condition is an unresolvable
// config directory.
type Service struct {
	Registry  ports.UtilityRegistry
	Resolver  ports.ConfigDirResolver
	Probe     ports.InstallationProbe
	Generator ports.ConfigGenerator
	Logger    ports.Logger
	Host      domain.Host
}

// InstallAll runs the install workflow over every registered utility in
// registry order.
func (s *Service) InstallAll(ctx context.Context, force bool) (domain.RunReport, error) {
	dir, err := s.Resolver.Resolve(ctx)
	if err != nil {
		return domain.RunReport{}, err
	}
	s.Logger.Debug("resolved config directory", map[string]interface{}{
		"path":   dir.Path,
		"source": string(dir.Source),
	})

	report := domain.RunReport{ConfigDir: dir.Path}
	for _, desc := range s.Registry.All() {
		report.Results = append(report.Results, s.processUtility(ctx, dir.Path, desc, force))
	}

	// Collect every generated file present after the pass, not just the ones
	// this run wrote: a config left behind by an earlier run still needs
	// sourcing from config.nu.
	for _, desc := range s.Registry.All() {
		if desc.Init == nil {
			continue
		}
		path := filepath.Join(dir.Path, desc.Init.OutputFile)
		if filesystem.Exists(path) {
			report.ExistingFiles = append(report.ExistingFiles, path)
		}
	}
	return report, nil
}

// Install runs the workflow for the named utilities only. Names absent from
// the registry yield an Unknown result and a warning; the rest of the batch
// still runs, and unknowns stay out of the success denominator.
func (s *Service) Install(ctx context.Context, names []string, force bool) (domain.RunReport, error) {
	dir, err := s.Resolver.Resolve(ctx)
	if err != nil {
		return domain.RunReport{}, err
	}
	s.Logger.Debug("resolved config directory", map[string]interface{}{
		"path":   dir.Path,
		"source": string(dir.Source),
	})

	report := domain.RunReport{ConfigDir: dir.Path}
	for _, name := range names {
		desc, ok := s.Registry.Lookup(name)
		if !ok {
			s.Logger.Warn("unknown utility requested", map[string]interface{}{"utility": name})
			report.Results = append(report.Results, domain.UtilityResult{
				Name: name,
				Kind: domain.OutcomeUnknown,
			})
			continue
		}
		report.Results = append(report.Results, s.processUtility(ctx, dir.Path, desc, force))
	}
	return report, nil
}

// Uninstall deletes generated config files for the named utilities. It only
// ever touches files a registered descriptor could have written.
func (s *Service) Uninstall(ctx context.Context, names []string) (domain.RemovalReport, error) {
	dir, err := s.Resolver.Resolve(ctx)
	if err != nil {
		return domain.RemovalReport{}, err
	}

	report := domain.RemovalReport{ConfigDir: dir.Path}
	for _, name := range names {
		desc, ok := s.Registry.Lookup(name)
		if !ok {
			s.Logger.Warn("unknown utility requested", map[string]interface{}{"utility": name})
			report.Results = append(report.Results, domain.RemovalResult{
				Name: name,
				Kind: domain.RemovalUnknown,
			})
			continue
		}
		if desc.Init == nil {
			report.Results = append(report.Results, domain.RemovalResult{
				Name: name,
				Kind: domain.RemovalNoConfig,
			})
			continue
		}

		path := filepath.Join(dir.Path, desc.Init.OutputFile)
		switch err := os.Remove(path); {
		case err == nil:
			s.Logger.Info("removed config", map[string]interface{}{"utility": name, "path": path})
			report.Results = append(report.Results, domain.RemovalResult{
				Name: name,
				Kind: domain.RemovalRemoved,
				Path: path,
			})
		case os.IsNotExist(err):
			report.Results = append(report.Results, domain.RemovalResult{
				Name: name,
				Kind: domain.RemovalAbsent,
				Path: path,
			})
		default:
			s.Logger.Error("failed to remove config", err, map[string]interface{}{"utility": name})
			report.Results = append(report.Results, domain.RemovalResult{
				Name: name,
				Kind: domain.RemovalFailed,
				Path: path,
				Err:  err,
			})
		}
	}
	return report, nil
}

// processUtility walks one utility through the install state machine:
//
//	probe failed                    → SkippedNotInstalled
//	installed, no init command      → CheckOnlyPresent
//	output exists and force unset   → AlreadyConfigured
//	generation failed               → Failed
//	otherwise write the output      → Installed (or Failed on write error)
func (s *Service) processUtility(ctx context.Context, dir string, desc domain.UtilityDescriptor, force bool) domain.UtilityResult {
	if !s.Probe.IsInstalled(ctx, desc) {
		return domain.UtilityResult{
			Name:        desc.Name,
			Kind:        domain.OutcomeSkippedNotInstalled,
			InstallHint: desc.Hints.For(s.Host.OS),
			InfoURL:     desc.Hints.URL,
		}
	}

	if desc.Init == nil {
		return domain.UtilityResult{Name: desc.Name, Kind: domain.OutcomeCheckOnlyPresent}
	}

	outputPath := filepath.Join(dir, desc.Init.OutputFile)
	if filesystem.Exists(outputPath) && !force {
		return domain.UtilityResult{
			Name:       desc.Name,
			Kind:       domain.OutcomeAlreadyConfigured,
			OutputPath: outputPath,
		}
	}

	text, err := s.Generator.Generate(ctx, desc)
	if err != nil {
		s.Logger.Error("config generation failed", err, map[string]interface{}{"utility": desc.Name})
		return domain.UtilityResult{Name: desc.Name, Kind: domain.OutcomeFailed, Err: err}
	}

	// The directory is created only now, immediately before the write.
	if err := os.MkdirAll(dir, domain.DirectoryPermissions); err != nil {
		return domain.UtilityResult{Name: desc.Name, Kind: domain.OutcomeFailed, Err: err}
	}
	if err := os.WriteFile(outputPath, []byte(text), domain.GeneratedFilePermissions); err != nil {
		return domain.UtilityResult{Name: desc.Name, Kind: domain.OutcomeFailed, Err: err}
	}

	s.Logger.Info("installed config", map[string]interface{}{
		"utility": desc.Name,
		"path":    outputPath,
		"bytes":   len(text),
	})
	return domain.UtilityResult{Name: desc.Name, Kind: domain.OutcomeInstalled, OutputPath: outputPath}
}
