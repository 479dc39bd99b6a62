// Package resolver determines the Nushell configuration directory.
package resolver

import (
	"context"
	"errors"
	"path/filepath"
	"strings"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/ports"
)

// ErrNoConfigDir is returned when every resolution strategy comes up empty.
// It is the one unrecoverable condition: without a target directory no
// probe result can be acted on.
var ErrNoConfigDir = errors.New("could not determine nushell config directory")

// nuConfigQuery asks the nu runtime for the path of its own config file.
const nuConfigQuery = "$nu.config-path"

// PathResolver resolves the config directory by querying the nu runtime,
// falling back to platform conventions from the host snapshot. Resolution
// is stateless; every call recomputes from scratch.
type PathResolver struct {
	runner ports.CommandRunner
	host   domain.Host
}

// New builds a resolver over the given runner and host snapshot.
func New(runner ports.CommandRunner, host domain.Host) *PathResolver {
	return &PathResolver{runner: runner, host: host}
}

// Resolve implements ports.ConfigDirResolver. Strategies in order:
//  1. Run `nu -c "$nu.config-path"` and take the parent directory.
//  2. On Windows, $APPDATA/nushell when APPDATA is set.
//  3. Elsewhere, $XDG_CONFIG_HOME/nushell when set, otherwise
//     <home>/.config/nushell.
//
// Resolve never creates the directory.
func (r *PathResolver) Resolve(ctx context.Context) (domain.DirResolution, error) {
	if res, err := r.runner.Run(ctx, []string{"nu", "-c", nuConfigQuery}); err == nil {
		if configPath := strings.TrimSpace(res.Stdout); configPath != "" {
			return domain.DirResolution{
				Path:   filepath.Dir(configPath),
				Source: domain.DirSourceRuntime,
			}, nil
		}
	}

	if r.host.OS == "windows" {
		if appData := r.host.Getenv("APPDATA"); appData != "" {
			return domain.DirResolution{
				Path:   filepath.Join(appData, domain.NushellDirName),
				Source: domain.DirSourceAppData,
			}, nil
		}
		return domain.DirResolution{}, ErrNoConfigDir
	}

	if xdg := r.host.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return domain.DirResolution{
			Path:   filepath.Join(xdg, domain.NushellDirName),
			Source: domain.DirSourceXDG,
		}, nil
	}
	if r.host.HomeDir != "" {
		return domain.DirResolution{
			Path:   filepath.Join(r.host.HomeDir, ".config", domain.NushellDirName),
			Source: domain.DirSourceHome,
		}, nil
	}
	return domain.DirResolution{}, ErrNoConfigDir
}

var _ ports.ConfigDirResolver = (*PathResolver)(nil)
