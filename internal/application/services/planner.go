package services

import (
	"fmt"
	"os"
	"path/filepath"

	"fcube.dev/cli/internal/core/plugin"
)

// InstallPlanner turns a plugin's content generator output into an
// InstallPlan annotated with live filesystem state.
type InstallPlanner struct{}

// NewInstallPlanner creates a planner.
func NewInstallPlanner() *InstallPlanner {
	return &InstallPlanner{}
}

// Plan invokes the plugin's content generator for targetDir and builds
// the ordered plan. Generator order is preserved: presentation order
// must match installation order. The only live inputs are the existence
// probes, so two back-to-back calls with an unchanged filesystem yield
// identical plans.
func (p *InstallPlanner) Plan(m plugin.Metadata, targetDir string) (*plugin.InstallPlan, error) {
	if m.Generator == nil {
		return nil, &plugin.InstallerNotCallableError{Name: m.Name}
	}

	files := m.Generator(targetDir)
	if len(files) == 0 {
		return nil, fmt.Errorf("plugin %q generated no files for %s", m.Name, targetDir)
	}

	entries := make([]plugin.FilePlanEntry, 0, len(files))
	for _, f := range files {
		path := f.Path
		if !filepath.IsAbs(path) {
			path = filepath.Join(targetDir, path)
		}

		exists := false
		if _, err := os.Stat(path); err == nil {
			exists = true
		}

		action := plugin.ActionCreate
		if exists {
			action = plugin.ActionOverwrite
		}

		entries = append(entries, plugin.FilePlanEntry{
			Path:          path,
			Content:       f.Content,
			SizeBytes:     len(f.Content),
			ExistsAlready: exists,
			Action:        action,
		})
	}

	return &plugin.InstallPlan{
		PluginName:       m.Name,
		Version:          m.Version,
		PostInstallNotes: m.PostInstallNotes,
		Entries:          entries,
	}, nil
}
