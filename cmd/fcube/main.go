package main

import (
	"fmt"
	"os"

	"fcube.dev/cli/internal/application/services"
	"fcube.dev/cli/internal/config"
	"fcube.dev/cli/internal/core/plugin"
	"fcube.dev/cli/internal/infrastructure/project"
	"fcube.dev/cli/internal/infrastructure/scaffold"
	"fcube.dev/cli/internal/interfaces/cli"
	"fcube.dev/cli/internal/plugins"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// A project manifest can relocate the app directory; an explicit
	// config file or environment override still wins.
	if cfg.AppDir == project.DefaultAppDir {
		if manifest, err := project.DetectManifest("."); err == nil {
			cfg.AppDir = manifest.AppDir
		}
	}

	registry := plugins.NewRegistry(os.Stderr)

	installer := services.NewInstallService(
		registry,
		services.NewInstallPlanner(),
		func(targetDir string) plugin.PresenceProbe {
			return project.NewModuleProbe(targetDir)
		},
		scaffold.NewWriter(),
	)

	cli.Execute(&cli.CLIContainer{
		Registry:  registry,
		Installer: installer,
		Config:    cfg,
	})
}
