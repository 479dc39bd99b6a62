package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/doeshing/nuinit/internal/app"
	"github.com/doeshing/nuinit/internal/domain"
)

// Options holds CLI-level configuration.
type Options struct {
	Verbose bool
}

// ErrUsage reports that the root command was invoked without utilities,
// --all, or --list. Help has already been printed when it is returned.
var ErrUsage = errors.New("no utilities specified")

// NewRootCmd wires the cobra root command.
func NewRootCmd(ctx context.Context, opts Options) (*cobra.Command, error) {
	container, err := app.BuildContainer(ctx, opts.Verbose)
	if err != nil {
		return nil, err
	}

	var (
		all   bool
		list  bool
		force bool
	)

	root := &cobra.Command{
		Use:   "nuinit [utility...]",
		Short: "nuinit - Nushell utility bootstrapper",
		Long: "nuinit probes popular CLI utilities, runs their init subcommands and writes\n" +
			"the captured output into your Nushell config directory.",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			switch {
			case list:
				return runList(cmd.Context(), cmd.OutOrStdout(), container, false)
			case all:
				report, err := container.InstallService.InstallAll(cmd.Context(), force)
				if err != nil {
					return err
				}
				renderRunReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), report, true)
				return failuresError(report)
			case len(args) > 0:
				report, err := container.InstallService.Install(cmd.Context(), args, force)
				if err != nil {
					return err
				}
				renderRunReport(cmd.OutOrStdout(), cmd.ErrOrStderr(), report, false)
				return failuresError(report)
			default:
				if err := cmd.Help(); err != nil {
					return err
				}
				return ErrUsage
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().BoolVar(&all, "all", false, "Install every registered utility")
	root.Flags().BoolVar(&list, "list", false, "List utilities and their status instead of installing")
	root.Flags().BoolVarP(&force, "force", "f", false, "Overwrite existing config files")
	root.PersistentFlags().BoolVar(&opts.Verbose, "verbose", opts.Verbose, "Enable debug logging")

	root.AddCommand(newListCommand(container))
	root.AddCommand(newUninstallCommand(container))
	root.AddCommand(newDoctorCommand(container))
	root.AddCommand(newConfigCommand(container))
	root.AddCommand(newVersionCommand())
	return root, nil
}

func failuresError(report domain.RunReport) error {
	if n := report.Failures(); n > 0 {
		return fmt.Errorf("%d of %d utilities failed", n, report.Known())
	}
	return nil
}
