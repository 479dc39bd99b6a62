package domain

// UtilityDescriptor describes one external utility under management: how to
// detect it, how to generate its Nushell integration, and where to point
// users who do not have it installed yet.
type UtilityDescriptor struct {
	Name         string
	CheckCommand []string
	Init         *InitSpec
	Hints        InstallHints
}

// InitSpec couples a utility's init invocation with the file its captured
// output is written to. Descriptors without an InitSpec are check-only:
// probed and reported but never configured.
type InitSpec struct {
	Command    []string
	OutputFile string
}

// Generates reports whether the utility produces a config file.
func (d UtilityDescriptor) Generates() bool {
	return d.Init != nil
}

// InstallHints carries advisory install commands per platform plus a
// reference URL. Hints are shown to the user, never executed.
type InstallHints struct {
	URL     string
	Windows string
	MacOS   string
	Linux   string
}

// For returns the install hint matching a GOOS value. Platforms without a
// dedicated hint fall back to the Linux instructions.
func (h InstallHints) For(goos string) string {
	switch goos {
	case "windows":
		return h.Windows
	case "darwin":
		return h.MacOS
	default:
		return h.Linux
	}
}
