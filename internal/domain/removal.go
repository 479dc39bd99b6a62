package domain

// RemovalKind classifies the uninstall outcome for one utility.
type RemovalKind string

const (
	// RemovalRemoved means the generated config file was deleted.
	RemovalRemoved RemovalKind = "removed"
	// RemovalAbsent means no file existed at the expected path.
	RemovalAbsent RemovalKind = "absent"
	// RemovalNoConfig means the utility is check-only and owns no file.
	RemovalNoConfig RemovalKind = "no_config"
	// RemovalUnknown means the requested name is not registered.
	RemovalUnknown RemovalKind = "unknown"
	// RemovalFailed means the delete itself failed.
	RemovalFailed RemovalKind = "failed"
)

// RemovalResult records the uninstall outcome for one utility.
type RemovalResult struct {
	Name string
	Kind RemovalKind
	Path string
	Err  error
}

// RemovalReport aggregates one uninstall pass.
type RemovalReport struct {
	ConfigDir string
	Results   []RemovalResult
}

// Removed counts files actually deleted.
func (r RemovalReport) Removed() int {
	n := 0
	for _, res := range r.Results {
		if res.Kind == RemovalRemoved {
			n++
		}
	}
	return n
}

// HasFailures reports whether any delete failed.
func (r RemovalReport) HasFailures() bool {
	for _, res := range r.Results {
		if res.Kind == RemovalFailed {
			return true
		}
	}
	return false
}
