package domain

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Descriptor converts a user-defined utility entry into a registry
// descriptor, enforcing the structural rules the built-ins satisfy by
// construction: a name, a check command, and init command plus output file
// either both present or both absent.
func (u UtilityConfig) Descriptor() (UtilityDescriptor, error) {
	name := strings.TrimSpace(u.Name)
	if name == "" {
		return UtilityDescriptor{}, fmt.Errorf("utility entry missing name")
	}
	if len(u.CheckCommand) == 0 {
		return UtilityDescriptor{}, fmt.Errorf("utility %s: check_command is required", name)
	}
	hasInit := len(u.InitCommand) > 0
	hasOutput := u.OutputFile != ""
	if hasInit != hasOutput {
		return UtilityDescriptor{}, fmt.Errorf("utility %s: init_command and output_file must be set together", name)
	}
	if hasOutput {
		if base := filepath.Base(u.OutputFile); base != u.OutputFile || base == "." || base == ".." {
			return UtilityDescriptor{}, fmt.Errorf("utility %s: output_file must be a bare filename", name)
		}
	}

	desc := UtilityDescriptor{
		Name:         name,
		CheckCommand: u.CheckCommand,
		Hints: InstallHints{
			URL:     u.Install.URL,
			Windows: u.Install.Windows,
			MacOS:   u.Install.MacOS,
			Linux:   u.Install.Linux,
		},
	}
	if hasInit {
		desc.Init = &InitSpec{Command: u.InitCommand, OutputFile: u.OutputFile}
	}
	return desc, nil
}
