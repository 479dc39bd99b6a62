// Package registry holds the built-in utility descriptors and merges in
// user-defined entries from the settings file.
package registry

import (
	"fmt"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/ports"
)

// Registry is the ordered, read-only set of managed utilities. Order is
// insertion order: built-ins first, then user-defined entries.
type Registry struct {
	entries []domain.UtilityDescriptor
	index   map[string]int
}

// New builds a registry from the built-in descriptors plus the utilities
// declared in cfg. User entries are validated and appended after the
// built-ins; names listed in disabled_utilities are removed entirely.
func New(cfg domain.Config) (*Registry, error) {
	r := &Registry{index: map[string]int{}}
	for _, desc := range Builtin() {
		r.add(desc)
	}
	for _, entry := range cfg.Utilities {
		desc, err := entry.Descriptor()
		if err != nil {
			return nil, err
		}
		if _, exists := r.index[desc.Name]; exists {
			return nil, fmt.Errorf("utility %s is already registered", desc.Name)
		}
		r.add(desc)
	}
	for _, name := range cfg.DisabledUtilities {
		if _, exists := r.index[name]; !exists {
			return nil, fmt.Errorf("disabled utility %s is not registered", name)
		}
		r.remove(name)
	}
	return r, nil
}

func (r *Registry) add(desc domain.UtilityDescriptor) {
	r.index[desc.Name] = len(r.entries)
	r.entries = append(r.entries, desc)
}

func (r *Registry) remove(name string) {
	i := r.index[name]
	r.entries = append(r.entries[:i], r.entries[i+1:]...)
	delete(r.index, name)
	for j := i; j < len(r.entries); j++ {
		r.index[r.entries[j].Name] = j
	}
}

// Lookup implements ports.UtilityRegistry.
func (r *Registry) Lookup(name string) (domain.UtilityDescriptor, bool) {
	i, ok := r.index[name]
	if !ok {
		return domain.UtilityDescriptor{}, false
	}
	return r.entries[i], true
}

// All implements ports.UtilityRegistry.
func (r *Registry) All() []domain.UtilityDescriptor {
	return r.entries
}

// Names implements ports.UtilityRegistry.
func (r *Registry) Names() []string {
	names := make([]string, len(r.entries))
	for i, desc := range r.entries {
		names[i] = desc.Name
	}
	return names
}

// Builtin returns the descriptors shipped with the binary, in install order.
func Builtin() []domain.UtilityDescriptor {
	return []domain.UtilityDescriptor{
		{
			Name:         "zoxide",
			CheckCommand: []string{"zoxide", "--version"},
			Init: &domain.InitSpec{
				Command:    []string{"zoxide", "init", "nushell"},
				OutputFile: "zoxide.nu",
			},
			Hints: domain.InstallHints{
				URL:     "https://github.com/ajeetdsouza/zoxide",
				Windows: "winget install ajeetdsouza.zoxide",
				MacOS:   "brew install zoxide",
				Linux:   "cargo install zoxide  # or use your package manager",
			},
		},
		{
			Name:         "starship",
			CheckCommand: []string{"starship", "--version"},
			Init: &domain.InitSpec{
				Command:    []string{"starship", "init", "nu"},
				OutputFile: "starship.nu",
			},
			Hints: domain.InstallHints{
				URL:     "https://starship.rs/",
				Windows: "winget install Starship.Starship",
				MacOS:   "brew install starship",
				Linux:   "cargo install starship  # or use your package manager",
			},
		},
		{
			Name:         "carapace",
			CheckCommand: []string{"carapace", "--version"},
			Init: &domain.InitSpec{
				Command:    []string{"carapace", "_carapace", "nushell"},
				OutputFile: "carapace.nu",
			},
			Hints: domain.InstallHints{
				URL:     "https://github.com/carapace-sh/carapace-bin",
				Windows: "winget install carapace-sh.carapace",
				MacOS:   "brew install carapace",
				Linux:   "cargo install carapace  # or download from GitHub releases",
			},
		},
		{
			Name:         "bat",
			CheckCommand: []string{"bat", "--version"},
			Hints: domain.InstallHints{
				URL:     "https://github.com/sharkdp/bat",
				Windows: "cargo install bat",
				MacOS:   "cargo install bat",
				Linux:   "cargo install bat",
			},
		},
		{
			Name:         "ripgrep",
			CheckCommand: []string{"rg", "--version"},
			Hints: domain.InstallHints{
				URL:     "https://github.com/BurntSushi/ripgrep",
				Windows: "cargo install ripgrep",
				MacOS:   "cargo install ripgrep",
				Linux:   "cargo install ripgrep",
			},
		},
		{
			Name:         "fd",
			CheckCommand: []string{"fd", "--version"},
			Hints: domain.InstallHints{
				URL:     "https://github.com/sharkdp/fd",
				Windows: "cargo install fd-find",
				MacOS:   "cargo install fd-find",
				Linux:   "cargo install fd-find",
			},
		},
		{
			Name:         "xh",
			CheckCommand: []string{"xh", "--version"},
			Hints: domain.InstallHints{
				URL:     "https://github.com/ducaale/xh",
				Windows: "cargo install xh",
				MacOS:   "cargo install xh",
				Linux:   "cargo install xh",
			},
		},
	}
}

var _ ports.UtilityRegistry = (*Registry)(nil)
