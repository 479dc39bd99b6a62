package domain

import "time"

// UtilityStatus is one row of the live status listing.
type UtilityStatus struct {
	Name          string
	Installed     bool
	Generates     bool
	ConfigFile    string
	ConfigPresent bool
	ConfigSize    int64
	ConfigModTime time.Time
}

// StatusReport is the full listing produced by one status pass. Like install
// reports it is derived fresh from probes and the filesystem each time.
type StatusReport struct {
	ConfigDir string
	Utilities []UtilityStatus
}
