package domain

// DirSource identifies which strategy produced the resolved directory.
type DirSource string

const (
	// DirSourceRuntime means the nu runtime answered the config-path query.
	DirSourceRuntime DirSource = "nu runtime"
	// DirSourceAppData means the Windows APPDATA fallback was used.
	DirSourceAppData DirSource = "APPDATA"
	// DirSourceXDG means the XDG_CONFIG_HOME fallback was used.
	DirSourceXDG DirSource = "XDG_CONFIG_HOME"
	// DirSourceHome means the per-user default path was used.
	DirSourceHome DirSource = "home default"
)

// DirResolution is the outcome of one config-directory resolution pass.
// It is recomputed on every run and never cached across runs.
type DirResolution struct {
	Path   string
	Source DirSource
}
