package cli

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/doeshing/nuinit/internal/domain"
	"github.com/doeshing/nuinit/internal/infrastructure/generator"
)

// renderRunReport prints per-utility outcome lines, the summary and the
// next-steps block. allMode selects the wording used when every registered
// utility was processed rather than an explicit selection.
func renderRunReport(out, errOut io.Writer, report domain.RunReport, allMode bool) {
	if allMode {
		fmt.Fprintf(out, "Installing Nushell utilities to: %s\n\n", report.ConfigDir)
	} else {
		fmt.Fprintf(out, "Installing utilities to: %s\n\n", report.ConfigDir)
	}

	for _, res := range report.Results {
		switch res.Kind {
		case domain.OutcomeSkippedNotInstalled:
			fmt.Fprintf(out, "[!] %s is not installed or not in PATH\n", res.Name)
			if res.InstallHint != "" {
				fmt.Fprintf(out, "    Install it with: %s\n", res.InstallHint)
			}
			if res.InfoURL != "" {
				fmt.Fprintf(out, "    More info: %s\n", res.InfoURL)
			}
		case domain.OutcomeCheckOnlyPresent:
			fmt.Fprintf(out, "[OK] %s is already installed\n", res.Name)
		case domain.OutcomeAlreadyConfigured:
			fmt.Fprintf(out, "Skip: %s already exists (use --force to overwrite)\n", res.OutputPath)
		case domain.OutcomeInstalled:
			fmt.Fprintf(out, "[OK] Installed: %s\n", res.OutputPath)
		case domain.OutcomeFailed:
			renderFailure(errOut, res)
		case domain.OutcomeUnknown:
			fmt.Fprintf(out, "Warning: Unknown utility '%s' (skipping)\n", res.Name)
		}
	}

	fmt.Fprintf(out, "\nInstalled %d/%d utilities\n", report.Succeeded(), report.Known())

	if report.Succeeded() > 0 {
		fmt.Fprint(out, "\nNext steps:\n")
		fmt.Fprint(out, "  1. Restart your shell or run: source $nu.config-path\n")
		if allMode {
			fmt.Fprint(out, "  2. Ensure utilities are sourced in your config.nu:\n")
			for _, path := range report.ExistingFiles {
				fmt.Fprintf(out, "     source %s\n", path)
			}
		} else {
			fmt.Fprint(out, "  2. Ensure utilities are sourced in your config.nu\n")
		}
	}
}

func renderFailure(errOut io.Writer, res domain.UtilityResult) {
	var genErr *generator.GenerationError
	if errors.As(res.Err, &genErr) {
		fmt.Fprintf(errOut, "Error running %s\n", genErr.Command)
		if genErr.Stderr != "" {
			fmt.Fprintf(errOut, "  %s\n", strings.TrimRight(genErr.Stderr, "\n"))
		}
		return
	}
	fmt.Fprintf(errOut, "Error: %v\n", res.Err)
}

func renderStatusReport(out io.Writer, report domain.StatusReport, long bool) {
	fmt.Fprintf(out, "Nushell config directory: %s\n\n", report.ConfigDir)
	fmt.Fprint(out, "Available utilities:\n\n")
	for _, st := range report.Utilities {
		fmt.Fprintf(out, "  %s\n", st.Name)
		fmt.Fprintf(out, "    Installed: %s\n", yesNo(st.Installed))
		switch {
		case !st.Generates:
			fmt.Fprint(out, "    Config:    N/A (no config file)\n")
		case st.ConfigPresent && long:
			fmt.Fprintf(out, "    Config:    [YES] (%s, %s, updated %s)\n",
				st.ConfigFile, humanize.Bytes(uint64(st.ConfigSize)), humanize.Time(st.ConfigModTime))
		case st.ConfigPresent:
			fmt.Fprintf(out, "    Config:    [YES] (%s)\n", st.ConfigFile)
		default:
			fmt.Fprintf(out, "    Config:    [NO] (%s)\n", st.ConfigFile)
		}
		fmt.Fprintln(out)
	}
}

func yesNo(v bool) string {
	if v {
		return "[YES]"
	}
	return "[NO]"
}

func renderRemovalReport(out io.Writer, report domain.RemovalReport) {
	fmt.Fprintf(out, "Removing generated configs from: %s\n\n", report.ConfigDir)
	for _, res := range report.Results {
		switch res.Kind {
		case domain.RemovalRemoved:
			fmt.Fprintf(out, "[OK] Removed: %s\n", res.Path)
		case domain.RemovalAbsent:
			fmt.Fprintf(out, "Skip: %s does not exist\n", res.Path)
		case domain.RemovalNoConfig:
			fmt.Fprintf(out, "Skip: %s has no config file\n", res.Name)
		case domain.RemovalUnknown:
			fmt.Fprintf(out, "Warning: Unknown utility '%s' (skipping)\n", res.Name)
		case domain.RemovalFailed:
			fmt.Fprintf(out, "Error: could not remove %s: %v\n", res.Path, res.Err)
		}
	}
	fmt.Fprintf(out, "\nRemoved %d config file(s)\n", report.Removed())
}

func renderDoctorReport(out io.Writer, report domain.HealthReport) {
	for _, check := range report.Checks {
		fmt.Fprintf(out, "[%s] %s - %s\n", strings.ToUpper(string(check.Status)), check.Name, check.Details)
	}
}
