package doctor

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/registry"
)

type stubConfig struct {
	cfg domain.Config
	err error
}

func (s stubConfig) Load(context.Context) (domain.Config, error) { return s.cfg, s.err }

type stubRunner struct {
	res domain.CommandResult
	err error
}

func (s stubRunner) Run(context.Context, []string) (domain.CommandResult, error) {
	return s.res, s.err
}

type stubResolver struct {
	res domain.DirResolution
	err error
}

func (s stubResolver) Resolve(context.Context) (domain.DirResolution, error) {
	return s.res, s.err
}

type stubProbe struct {
	installed map[string]bool
}

func (s stubProbe) IsInstalled(_ context.Context, desc domain.UtilityDescriptor) bool {
	return s.installed[desc.Name]
}

func checkByName(t *testing.T, report domain.HealthReport, name string) domain.HealthCheck {
	t.Helper()
	for _, c := range report.Checks {
		if c.Name == name {
			return c
		}
	}
	t.Fatalf("check %q missing from report: %+v", name, report.Checks)
	return domain.HealthCheck{}
}

func TestRunAllHealthy(t *testing.T) {
	reg, err := registry.New(domain.Config{})
	if err != nil {
		t.Fatal(err)
	}
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "zoxide.nu"), []byte("zoxide init\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1"}},
		Runner:         stubRunner{res: domain.CommandResult{Ran: true, Stdout: "0.97.1\n"}},
		Resolver:       stubResolver{res: domain.DirResolution{Path: dir, Source: domain.DirSourceRuntime}},
		Registry:       reg,
		Probe:          stubProbe{installed: map[string]bool{"zoxide": true, "bat": true}},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Healthy() {
		t.Errorf("report not healthy: %+v", report.Checks)
	}

	if c := checkByName(t, report, "Nushell runtime"); c.Status != domain.HealthOK || !strings.Contains(c.Details, "0.97.1") {
		t.Errorf("nushell check = %+v", c)
	}
	if c := checkByName(t, report, "Config directory"); !strings.Contains(c.Details, "nu runtime") {
		t.Errorf("directory check must name the resolution source: %+v", c)
	}
	if c := checkByName(t, report, "Utilities"); !strings.Contains(c.Details, "2 of 7") {
		t.Errorf("utilities check = %+v", c)
	}
	if c := checkByName(t, report, "Generated configs"); !strings.Contains(c.Details, "1 of 3") {
		t.Errorf("config tally = %+v", c)
	}
}

func TestRunDegraded(t *testing.T) {
	reg, err := registry.New(domain.Config{})
	if err != nil {
		t.Fatal(err)
	}
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1"}},
		Runner:         stubRunner{err: errors.New("exec: nu not found")},
		Resolver:       stubResolver{res: domain.DirResolution{Path: filepath.Join(t.TempDir(), "nushell"), Source: domain.DirSourceXDG}},
		Registry:       reg,
		Probe:          stubProbe{},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v", err)
	}
	if !report.Healthy() {
		t.Error("warnings alone must not mark the report unhealthy")
	}
	if c := checkByName(t, report, "Nushell runtime"); c.Status != domain.HealthWarn {
		t.Errorf("nushell check = %+v, want warn", c)
	}
	if c := checkByName(t, report, "Utilities"); c.Status != domain.HealthWarn {
		t.Errorf("utilities check = %+v, want warn", c)
	}
	if c := checkByName(t, report, "Generated configs"); c.Status != domain.HealthOK {
		t.Errorf("config tally = %+v; an empty machine is not a health problem", c)
	}
}

func TestRunConfigLoadFailure(t *testing.T) {
	loadErr := errors.New("parse config.yaml: yaml: line 3")
	svc := &Service{ConfigProvider: stubConfig{err: loadErr}}

	report, err := svc.Run(context.Background())
	if !errors.Is(err, loadErr) {
		t.Fatalf("Run() error = %v, want load failure", err)
	}
	if report.Healthy() {
		t.Error("failed config load must mark the report unhealthy")
	}
}

func TestRunResolverFailure(t *testing.T) {
	reg, err := registry.New(domain.Config{})
	if err != nil {
		t.Fatal(err)
	}
	svc := &Service{
		ConfigProvider: stubConfig{cfg: domain.Config{ConfigFormatVersion: "1"}},
		Runner:         stubRunner{res: domain.CommandResult{Ran: true, Stdout: "0.97.1"}},
		Resolver:       stubResolver{err: errors.New("no config dir")},
		Registry:       reg,
		Probe:          stubProbe{},
	}

	report, err := svc.Run(context.Background())
	if err != nil {
		t.Fatalf("Run() error = %v, diagnostics should complete", err)
	}
	if report.Healthy() {
		t.Error("unresolvable config directory must mark the report unhealthy")
	}
	if c := checkByName(t, report, "Config directory"); c.Status != domain.HealthError {
		t.Errorf("directory check = %+v, want error", c)
	}
}
