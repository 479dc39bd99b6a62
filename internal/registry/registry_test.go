package registry

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/doeshing/nuinit/internal/domain"
)

func TestBuiltinOrderAndShape(t *testing.T) {
	reg, err := New(domain.Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wantNames := []string{"zoxide", "starship", "carapace", "bat", "ripgrep", "fd", "xh"}
	if diff := cmp.Diff(wantNames, reg.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}

	for _, desc := range reg.All() {
		if desc.Name == "" || len(desc.CheckCommand) == 0 {
			t.Errorf("descriptor %+v missing name or check command", desc)
		}
		if desc.Hints.URL == "" {
			t.Errorf("%s: missing reference URL", desc.Name)
		}
		if desc.Init != nil && (len(desc.Init.Command) == 0 || desc.Init.OutputFile == "") {
			t.Errorf("%s: init spec must carry both command and output file", desc.Name)
		}
	}
}

func TestBuiltinGeneratingSplit(t *testing.T) {
	reg, err := New(domain.Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	generating := map[string]string{
		"zoxide":   "zoxide.nu",
		"starship": "starship.nu",
		"carapace": "carapace.nu",
	}
	for _, desc := range reg.All() {
		want, shouldGenerate := generating[desc.Name]
		if desc.Generates() != shouldGenerate {
			t.Errorf("%s: Generates() = %v, want %v", desc.Name, desc.Generates(), shouldGenerate)
			continue
		}
		if shouldGenerate && desc.Init.OutputFile != want {
			t.Errorf("%s: output file = %q, want %q", desc.Name, desc.Init.OutputFile, want)
		}
	}
}

func TestLookup(t *testing.T) {
	reg, err := New(domain.Config{})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	desc, ok := reg.Lookup("ripgrep")
	if !ok {
		t.Fatal("Lookup(ripgrep) not found")
	}
	if got := desc.CheckCommand[0]; got != "rg" {
		t.Errorf("ripgrep check binary = %q, want rg", got)
	}

	if _, ok := reg.Lookup("bogus"); ok {
		t.Error("Lookup(bogus) should not be found")
	}
}

func TestNewAppendsCustomUtilities(t *testing.T) {
	cfg := domain.Config{
		Utilities: []domain.UtilityConfig{
			{
				Name:         "mcfly",
				CheckCommand: []string{"mcfly", "--version"},
				InitCommand:  []string{"mcfly", "init", "nu"},
				OutputFile:   "mcfly.nu",
			},
		},
	}

	reg, err := New(cfg)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	names := reg.Names()
	if names[len(names)-1] != "mcfly" {
		t.Fatalf("custom utility should sort after built-ins, got %v", names)
	}
	if _, ok := reg.Lookup("mcfly"); !ok {
		t.Fatal("Lookup(mcfly) not found after merge")
	}
}

func TestNewRejectsInvalidConfig(t *testing.T) {
	tests := []struct {
		name string
		cfg  domain.Config
	}{
		{
			name: "duplicate of built-in",
			cfg: domain.Config{
				Utilities: []domain.UtilityConfig{
					{Name: "zoxide", CheckCommand: []string{"zoxide", "--version"}},
				},
			},
		},
		{
			name: "invalid entry",
			cfg: domain.Config{
				Utilities: []domain.UtilityConfig{
					{Name: "broken", CheckCommand: []string{"broken"}, OutputFile: "broken.nu"},
				},
			},
		},
		{
			name: "disabling unregistered name",
			cfg: domain.Config{
				DisabledUtilities: []string{"bogus"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.cfg); err == nil {
				t.Fatal("New() should reject this config")
			}
		})
	}
}

func TestNewDisablesUtilities(t *testing.T) {
	reg, err := New(domain.Config{DisabledUtilities: []string{"xh", "zoxide"}})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	wantNames := []string{"starship", "carapace", "bat", "ripgrep", "fd"}
	if diff := cmp.Diff(wantNames, reg.Names()); diff != "" {
		t.Fatalf("Names() mismatch (-want +got):\n%s", diff)
	}
	if _, ok := reg.Lookup("zoxide"); ok {
		t.Error("disabled utility should not resolve")
	}
	for _, name := range wantNames {
		if _, ok := reg.Lookup(name); !ok {
			t.Errorf("Lookup(%s) broken after disable reindex", name)
		}
	}
}
