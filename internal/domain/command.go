package domain

// CommandResult captures one external process invocation.
type CommandResult struct {
	Ran        bool // process spawned and exited zero
	Stdout     string
	Stderr     string
	ExitCode   int
	DurationMS int64
	Err        error
}
