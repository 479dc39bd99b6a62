package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/doeshing/nuinit/internal/app"
	appconfig "github.com/doeshing/nuinit/internal/application/config"
	"github.com/doeshing/nuinit/internal/infrastructure/config"
	"github.com/doeshing/nuinit/internal/version"
)

func newListCommand(container *app.Container) *cobra.Command {
	var long bool
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List utilities and their installation status",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runList(cmd.Context(), cmd.OutOrStdout(), container, long)
		},
	}
	cmd.Flags().BoolVarP(&long, "long", "l", false, "Show config file sizes and modification times")
	return cmd
}

func runList(ctx context.Context, out io.Writer, container *app.Container, long bool) error {
	report, err := container.StatusService.Report(ctx)
	if err != nil {
		return err
	}
	renderStatusReport(out, report, long)
	return nil
}

func newUninstallCommand(container *app.Container) *cobra.Command {
	var all bool
	cmd := &cobra.Command{
		Use:   "uninstall [utility...]",
		Short: "Remove generated config files",
		RunE: func(cmd *cobra.Command, args []string) error {
			names := args
			if all {
				names = container.Registry.Names()
			}
			if len(names) == 0 {
				return fmt.Errorf("specify utilities to uninstall or pass --all")
			}
			report, err := container.InstallService.Uninstall(cmd.Context(), names)
			if err != nil {
				return err
			}
			renderRemovalReport(cmd.OutOrStdout(), report)
			if report.HasFailures() {
				return fmt.Errorf("some config files could not be removed")
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&all, "all", false, "Remove configs for every registered utility")
	return cmd
}

func newDoctorCommand(container *app.Container) *cobra.Command {
	return &cobra.Command{
		Use:   "doctor",
		Short: "Diagnose environment setup",
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := container.DoctorService.Run(cmd.Context())
			renderDoctorReport(cmd.OutOrStdout(), report)
			if err != nil {
				return err
			}
			if !report.Healthy() {
				return fmt.Errorf("environment has problems")
			}
			return nil
		},
	}
}

func newConfigCommand(container *app.Container) *cobra.Command {
	configCmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect nuinit configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}

	showCmd := &cobra.Command{
		Use:   "show",
		Short: "Show full configuration",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigShow(cmd.Context(), cmd.OutOrStdout(), container)
		},
	}

	pathCmd := &cobra.Command{
		Use:   "path",
		Short: "Print the configuration file path",
		RunE: func(cmd *cobra.Command, args []string) error {
			loader, err := configLoader(container)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), loader.Path())
			return nil
		},
	}

	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate configuration file",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigProvider.Load(cmd.Context())
			if err != nil {
				return err
			}
			if err := appconfig.Validate(cfg); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), "Configuration valid")
			return nil
		},
	}

	diffCmd := &cobra.Command{
		Use:   "diff",
		Short: "Show how the configuration differs from the defaults",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := container.ConfigProvider.Load(cmd.Context())
			if err != nil {
				return err
			}
			defaults, err := config.Default()
			if err != nil {
				return err
			}
			diff := cmp.Diff(defaults, cfg)
			if diff == "" {
				fmt.Fprintln(cmd.OutOrStdout(), "Configuration matches the defaults")
				return nil
			}
			fmt.Fprint(cmd.OutOrStdout(), diff)
			return nil
		},
	}

	editCmd := &cobra.Command{
		Use:   "edit",
		Short: "Edit configuration in $EDITOR",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfigEdit(container)
		},
	}

	configCmd.AddCommand(showCmd, pathCmd, validateCmd, diffCmd, editCmd)
	return configCmd
}

func runConfigShow(ctx context.Context, out io.Writer, container *app.Container) error {
	cfg, err := container.ConfigProvider.Load(ctx)
	if err != nil {
		return err
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Fprint(out, string(data))
	return nil
}

func runConfigEdit(container *app.Container) error {
	loader, err := configLoader(container)
	if err != nil {
		return err
	}
	editor := os.Getenv("EDITOR")
	if editor == "" {
		editor = "vi"
	}
	cmd := exec.Command(editor, loader.Path())
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	return cmd.Run()
}

func configLoader(container *app.Container) (*config.FileLoader, error) {
	if container.ConfigLoader == nil {
		return nil, fmt.Errorf("config loader unavailable")
	}
	return container.ConfigLoader, nil
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "nuinit %s\n", version.Version)
			if version.Commit != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "commit: %s\n", version.Commit)
			}
			if version.BuildDate != "" {
				fmt.Fprintf(cmd.OutOrStdout(), "built:  %s\n", version.BuildDate)
			}
		},
	}
}
