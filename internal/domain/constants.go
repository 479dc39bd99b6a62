package domain

// File permission constants
const (
	// DirectoryPermissions is the permission for created config directories (rwxr-xr-x)
	DirectoryPermissions = 0o755
	// GeneratedFilePermissions is the permission for generated utility configs (rw-r--r--)
	GeneratedFilePermissions = 0o644
	// SettingsFilePermissions is the permission for the tool's own settings file (rw-------)
	SettingsFilePermissions = 0o600
)

// Path constants
const (
	// NushellDirName is the subdirectory appended to fallback roots when the
	// nu runtime cannot be queried for its config path.
	NushellDirName = "nushell"
)

// Settings schema constants
const (
	// ConfigFormatVersion is the settings schema version this build understands.
	ConfigFormatVersion = "1"
)
