package app

import (
	"context"
	"fmt"
	"os"
	"runtime"
	"strings"

	"github.com/doeshing/nuinit/internal/application/doctor"
	"github.com/doeshing/nuinit/internal/application/install"
	"github.com/doeshing/nuinit/internal/application/status"
	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/infrastructure/config"
	"github.com/doeshing/nuinit/internal/infrastructure/generator"
	"github.com/doeshing/nuinit/internal/infrastructure/probe"
	"github.com/doeshing/nuinit/internal/infrastructure/resolver"
	"github.com/doeshing/nuinit/internal/infrastructure/runner"
	"github.com/doeshing/nuinit/internal/pkg/filesystem"
	"github.com/doeshing/nuinit/internal/pkg/logger"
	"github.com/doeshing/nuinit/internal/ports"
	"github.com/doeshing/nuinit/internal/registry"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	InstallService *install.Service
	StatusService  *status.Service
	DoctorService  *doctor.Service
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Registry       ports.UtilityRegistry
	Host           domain.Host
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	cfgLoader := config.NewFileLoader("")
	cfg, err := cfgLoader.Load(ctx)
	if err != nil {
		return nil, err
	}

	log := logger.New(verbose)
	host := currentHost()

	reg, err := registry.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	run := runner.NewLocalRunner()
	dirResolver := resolver.New(run, host)
	installProbe := probe.New(run, log)
	configGenerator := generator.New(run, log)

	installService := &install.Service{
		Registry:  reg,
		Resolver:  dirResolver,
		Probe:     installProbe,
		Generator: configGenerator,
		Logger:    log,
		Host:      host,
	}

	statusService := &status.Service{
		Registry: reg,
		Resolver: dirResolver,
		Probe:    installProbe,
		Logger:   log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Runner:         run,
		Resolver:       dirResolver,
		Registry:       reg,
		Probe:          installProbe,
	}

	return &Container{
		InstallService: installService,
		StatusService:  statusService,
		DoctorService:  doctorService,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Registry:       reg,
		Host:           host,
	}, nil
}

func currentHost() domain.Host {
	env := map[string]string{}
	for _, kv := range os.Environ() {
		if key, value, ok := strings.Cut(kv, "="); ok {
			env[key] = value
		}
	}
	return domain.Host{
		OS:      runtime.GOOS,
		Env:     env,
		HomeDir: filesystem.UserHomeDir(),
	}
}
