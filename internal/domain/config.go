package domain

// Config mirrors ~/.nuinit/config.yaml.
type Config struct {
	ConfigFormatVersion string          `yaml:"config_format_version"`
	Utilities           []UtilityConfig `yaml:"utilities"`
	DisabledUtilities   []string        `yaml:"disabled_utilities"`
}

// UtilityConfig declares a user-defined utility in the settings file. It is
// the YAML-facing shape of a descriptor; Descriptor converts and validates.
type UtilityConfig struct {
	Name         string      `yaml:"name"`
	CheckCommand []string    `yaml:"check_command"`
	InitCommand  []string    `yaml:"init_command,omitempty"`
	OutputFile   string      `yaml:"output_file,omitempty"`
	Install      InstallInfo `yaml:"install,omitempty"`
}

// InstallInfo is the YAML shape of InstallHints.
type InstallInfo struct {
	URL     string `yaml:"url,omitempty"`
	Windows string `yaml:"windows,omitempty"`
	MacOS   string `yaml:"macos,omitempty"`
	Linux   string `yaml:"linux,omitempty"`
}
