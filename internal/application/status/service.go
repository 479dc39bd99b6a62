// Package status reports which utilities are installed and which
// generated configs are present in the Nushell config directory.
package status

import (
	"context"
	"os"
	"path/filepath"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/ports"
)

// Service inspects the host without modifying it.
type Service struct {
	Registry ports.UtilityRegistry
	Resolver ports.ConfigDirResolver
	Probe    ports.InstallationProbe
	Logger   ports.Logger
}

// Report probes every registered utility and stats its generated config
// file, if any. The config directory is resolved fresh on every call.
func (s *Service) Report(ctx context.Context) (domain.StatusReport, error) {
	res, err := s.Resolver.Resolve(ctx)
	if err != nil {
		return domain.StatusReport{}, err
	}

	report := domain.StatusReport{ConfigDir: res.Path}
	for _, desc := range s.Registry.All() {
		st := domain.UtilityStatus{
			Name:      desc.Name,
			Installed: s.Probe.IsInstalled(ctx, desc),
			Generates: desc.Generates(),
		}
		if desc.Generates() {
			st.ConfigFile = desc.Init.OutputFile
			path := filepath.Join(res.Path, desc.Init.OutputFile)
			if info, err := os.Stat(path); err == nil {
				st.ConfigPresent = true
				st.ConfigSize = info.Size()
				st.ConfigModTime = info.ModTime()
			}
		}
		report.Utilities = append(report.Utilities, st)
	}
	return report, nil
}
