package project

import (
	"os"
	"path/filepath"
)

// ModuleProbe treats a dependency as satisfied when a module directory
// with that name exists under the app directory. This mirrors how
// generated projects are laid out (app/user, app/booking, ...).
//
// The probe is a heuristic: a directory created by hand satisfies it
// just as well as one created by this tool. There is no authoritative
// installed-plugins ledger.
type ModuleProbe struct {
	appDir string
}

// NewModuleProbe creates a probe rooted at appDir.
func NewModuleProbe(appDir string) *ModuleProbe {
	return &ModuleProbe{appDir: appDir}
}

// Present reports whether a module directory named name exists.
func (p *ModuleProbe) Present(name string) bool {
	info, err := os.Stat(filepath.Join(p.appDir, name))
	return err == nil && info.IsDir()
}
