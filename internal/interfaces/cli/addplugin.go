package cli

import (
	"errors"
	"fmt"
	"strings"
	"text/tabwriter"

	"fcube.dev/cli/internal/application/services"
	"fcube.dev/cli/internal/core/plugin"
	"github.com/spf13/cobra"
)

// AddPluginFlags holds command-line flags for the addplugin command.
type AddPluginFlags struct {
	List   bool
	DryRun bool
	Force  bool
	Dir    string
}

// NewAddPluginCommand creates the addplugin command.
func NewAddPluginCommand(container *CLIContainer) *cobra.Command {
	flags := &AddPluginFlags{}

	cmd := &cobra.Command{
		Use:   "addplugin [plugin-name]",
		Short: "Add a pre-built plugin module to your project",
		Long: `Install a pre-built plugin module into the current project.

The plugin's dependencies are checked against the target directory, the
files it would create are planned, and the plan is either previewed
(--dry-run) or written to disk. Existing files are never overwritten
unless --force is given.`,
		Example: `  # List available plugins
  fcube addplugin --list

  # Preview what the referral plugin would create
  fcube addplugin referral --dry-run

  # Install it
  fcube addplugin referral

  # Install into a non-default app directory, overwriting existing files
  fcube addplugin referral --dir src/app --force`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if flags.List || len(args) == 0 {
				return runPluginList(cmd, container)
			}
			return runAddPlugin(cmd, container, args[0], flags)
		},
	}

	cmd.Flags().BoolVarP(&flags.List, "list", "l", false, "List available plugins")
	cmd.Flags().BoolVar(&flags.DryRun, "dry-run", false, "Preview the plan without writing any files")
	cmd.Flags().BoolVarP(&flags.Force, "force", "f", false, "Overwrite existing files")
	cmd.Flags().StringVarP(&flags.Dir, "dir", "d", "", "Target app directory (default from config / .fcube.yaml)")

	return cmd
}

// runPluginList prints every registered plugin. No planning happens here.
func runPluginList(cmd *cobra.Command, container *CLIContainer) error {
	available := container.Registry.List()
	if len(available) == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No plugins available.")
		return nil
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "\nAvailable Plugins (%d):\n\n", len(available))

	w := tabwriter.NewWriter(out, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tVERSION\tDESCRIPTION\tDEPENDENCIES")
	fmt.Fprintln(w, "----\t-------\t-----------\t------------")
	for _, m := range available {
		deps := "None"
		if len(m.Dependencies) > 0 {
			deps = strings.Join(m.Dependencies, ", ")
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", m.Name, m.Version, m.Description, deps)
	}
	w.Flush()

	fmt.Fprintln(out, "\nTo install a plugin, run: fcube addplugin <plugin-name>")
	return nil
}

// runAddPlugin performs one install invocation: lookup, dependency
// check, plan, and then preview or apply.
func runAddPlugin(cmd *cobra.Command, container *CLIContainer, name string, flags *AddPluginFlags) error {
	targetDir := resolveTargetDir(container, flags.Dir)
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "\nAdding plugin: %s\n\n", name)

	outcome, err := container.Installer.Install(name, targetDir, services.InstallOptions{
		Force:  flags.Force,
		DryRun: flags.DryRun,
	})
	if err != nil {
		return withHint(err)
	}

	renderer := NewRenderer(container.Config.PlainOutput)

	if outcome.DryRun {
		fmt.Fprint(out, renderer.RenderPreview(outcome.Plan))
		return nil
	}

	meta, getErr := container.Registry.Get(name)
	if getErr != nil {
		return getErr
	}
	fmt.Fprint(out, renderer.RenderApplied(outcome, meta, targetDir))
	return nil
}

// resolveTargetDir picks the target directory: explicit flag, then the
// project manifest / CLI config default.
func resolveTargetDir(container *CLIContainer, flagDir string) string {
	if flagDir != "" {
		return flagDir
	}
	return container.Config.AppDir
}

// withHint augments well-known failures with a next-step suggestion, in
// the same spirit as the registry's known-names list.
func withHint(err error) error {
	var missing *plugin.MissingDependencyError
	if errors.As(err, &missing) {
		hints := make([]string, 0, len(missing.Missing))
		for _, dep := range missing.Missing {
			if dep == "user" {
				hints = append(hints, "fcube adduser --auth-type email")
			} else {
				hints = append(hints, "fcube startmodule "+dep)
			}
		}
		return fmt.Errorf("%w\nAdd the missing module(s) first:\n  %s", err, strings.Join(hints, "\n  "))
	}
	return err
}
