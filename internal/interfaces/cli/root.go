package cli

import (
	"fmt"
	"os"
	"runtime"
	"runtime/debug"

	"fcube.dev/cli/internal/application/services"
	"fcube.dev/cli/internal/config"
	"fcube.dev/cli/internal/core/plugin"
	"github.com/spf13/cobra"
)

var (
	Version   = "dev"     // Overridden by ldflags
	BuildTime = "unknown" // Overridden by ldflags
)

// CLIContainer holds the dependencies CLI commands need.
type CLIContainer struct {
	Registry  *plugin.Registry
	Installer *services.InstallService
	Config    *config.Config
}

// NewRootCommand builds the base command when called without subcommands.
func NewRootCommand(container *CLIContainer) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "fcube",
		Short: "FCube CLI - FastAPI project and plugin generator",
		Long: `FCube CLI scaffolds FastAPI projects and installs pre-built feature
plugins into them.

The addplugin command looks a plugin up in the built-in registry, checks
its module dependencies against the target project, plans the files it
would create, and either previews that plan (--dry-run) or writes it to
disk.`,
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf("{{.Name}} version {{.Version}}\nBuild time: %s\nGo version: %s\nPlatform: %s/%s\n",
		BuildTime, goVersion(), runtime.GOOS, runtime.GOARCH))

	rootCmd.AddCommand(NewAddPluginCommand(container))
	rootCmd.AddCommand(NewBrowseCommand(container))

	return rootCmd
}

// goVersion returns the Go version used to build the binary.
func goVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok {
		return info.GoVersion
	}
	return "unknown"
}

// Execute runs the root command and translates any failure into a
// non-zero exit with the message on stderr.
func Execute(container *CLIContainer) {
	rootCmd := NewRootCommand(container)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
