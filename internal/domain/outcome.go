package domain

// OutcomeKind classifies what happened to one utility during an install run.
type OutcomeKind string

const (
	// OutcomeInstalled means init output was generated and written.
	OutcomeInstalled OutcomeKind = "installed"
	// OutcomeAlreadyConfigured means the output file exists and force was not set.
	OutcomeAlreadyConfigured OutcomeKind = "already_configured"
	// OutcomeSkippedNotInstalled means the presence probe failed.
	OutcomeSkippedNotInstalled OutcomeKind = "skipped_not_installed"
	// OutcomeCheckOnlyPresent means a check-only utility probed installed.
	OutcomeCheckOnlyPresent OutcomeKind = "check_only_present"
	// OutcomeUnknown means the requested name is not registered.
	OutcomeUnknown OutcomeKind = "unknown"
	// OutcomeFailed means generation or the file write failed.
	OutcomeFailed OutcomeKind = "failed"
)

// UtilityResult records the outcome for one utility in an install run.
type UtilityResult struct {
	Name        string
	Kind        OutcomeKind
	OutputPath  string // written or skipped file, when the utility generates one
	InstallHint string // platform install command, set when the probe failed
	InfoURL     string // project page, set when the probe failed
	Err         error  // underlying failure for OutcomeFailed
}

// Success reports whether the utility ended the run present and ready: a
// freshly written config or a check-only tool that probed installed.
// Existing configs left untouched do not count as new successes.
func (r UtilityResult) Success() bool {
	return r.Kind == OutcomeInstalled || r.Kind == OutcomeCheckOnlyPresent
}

// RunReport aggregates one orchestration pass. Reports are rebuilt on every
// invocation; nothing here persists between runs.
type RunReport struct {
	ConfigDir     string
	Results       []UtilityResult
	ExistingFiles []string // generated files present after the run, registry order
}

// Succeeded counts results in the success set.
func (r RunReport) Succeeded() int {
	n := 0
	for _, res := range r.Results {
		if res.Success() {
			n++
		}
	}
	return n
}

// Known counts results for registered utilities. Unknown names stay out of
// the success denominator.
func (r RunReport) Known() int {
	n := 0
	for _, res := range r.Results {
		if res.Kind != OutcomeUnknown {
			n++
		}
	}
	return n
}

// Failures counts utilities whose generation or write failed.
func (r RunReport) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Kind == OutcomeFailed {
			n++
		}
	}
	return n
}
