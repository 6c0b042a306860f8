// Package plugins holds the static table of built-in plugins and
// populates the process registry from it. There is no runtime plugin
// discovery: every installable plugin is listed here at compile time,
// which keeps the installable surface auditable.
package plugins

import (
	"fmt"
	"io"

	"fcube.dev/cli/internal/core/plugin"
	"fcube.dev/cli/internal/plugins/deployvps"
	"fcube.dev/cli/internal/plugins/referral"
)

// Table returns the compile-time list of built-in plugin descriptors.
func Table() []plugin.Metadata {
	return []plugin.Metadata{
		referral.Metadata(),
		deployvps.Metadata(),
	}
}

// Populate registers every table entry into registry. A plugin that
// fails validation is logged to warnings and skipped; one bad entry
// never blocks the rest of the table.
func Populate(registry *plugin.Registry, warnings io.Writer) {
	for _, m := range Table() {
		if err := registry.Register(m); err != nil {
			fmt.Fprintf(warnings, "warning: skipping plugin %q: %v\n", m.Name, err)
		}
	}
}

// NewRegistry builds the registry used for the rest of the process.
// Callers must not register into it afterwards.
func NewRegistry(warnings io.Writer) *plugin.Registry {
	registry := plugin.NewRegistry()
	Populate(registry, warnings)
	return registry
}
