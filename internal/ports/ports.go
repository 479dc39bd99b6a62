// Package ports defines the interfaces (ports) for the hexagonal architecture.
//
// This package establishes the contract between the application core and external
// adapters (infrastructure). Following the Ports and Adapters (Hexagonal) pattern,
// these interfaces allow the application to remain independent of specific
// implementations like process spawning, filesystem layout, or CLI frameworks.
//
// Key architectural concepts:
//   - Ports: Interfaces defined here (e.g., CommandRunner, ConfigDirResolver)
//   - Adapters: Concrete implementations in the infrastructure layer
//   - Dependency inversion: Application depends on abstractions, not implementations
package ports

import (
	"context"

	"github.com/doeshing/nuinit/internal/domain"
)

// ConfigProvider loads the latest configuration from persistent storage.
// Implementations typically read from ~/.nuinit/config.yaml.
type ConfigProvider interface {
	Load(context.Context) (domain.Config, error)
}

// CommandRunner spawns an external process from an argument vector and
// captures its output. Presence probes, init invocations and the nu runtime
// query all go through this single capability so services can be tested
// with canned runners instead of real binaries.
type CommandRunner interface {
	Run(ctx context.Context, argv []string) (domain.CommandResult, error)
}

// UtilityRegistry exposes the ordered set of managed utility descriptors.
// Registries are read-only once constructed.
type UtilityRegistry interface {
	Lookup(name string) (domain.UtilityDescriptor, bool)
	All() []domain.UtilityDescriptor
	Names() []string
}

// ConfigDirResolver determines the Nushell configuration directory. The
// result is recomputed on every call and never cached.
type ConfigDirResolver interface {
	Resolve(ctx context.Context) (domain.DirResolution, error)
}

// InstallationProbe reports whether a utility's executable is reachable and
// runnable. Probe failures of any kind collapse to false.
type InstallationProbe interface {
	IsInstalled(ctx context.Context, desc domain.UtilityDescriptor) bool
}

// ConfigGenerator runs a utility's init command and returns its captured
// standard output verbatim.
type ConfigGenerator interface {
	Generate(ctx context.Context, desc domain.UtilityDescriptor) (string, error)
}

// Logger provides structured logging abstraction for the application layer.
// Implementations can route to different backends (stderr, files, external services).
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, err error, fields map[string]interface{})
}
