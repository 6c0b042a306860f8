package plugin

import (
	"fmt"
	"strings"
)

// InvalidNameError reports a plugin name that is not a bare identifier.
type InvalidNameError struct {
	Name string
}

func (e *InvalidNameError) Error() string {
	if e.Name == "" {
		return "plugin name is empty"
	}
	return fmt.Sprintf("plugin name %q is not a valid identifier (letters, digits and underscore only, must not start with a digit)", e.Name)
}

// MissingDescriptionError reports an empty or whitespace-only description.
type MissingDescriptionError struct {
	Name string
}

func (e *MissingDescriptionError) Error() string {
	return fmt.Sprintf("plugin %q has no description", e.Name)
}

// InvalidVersionError reports a version string that is not a strict
// MAJOR.MINOR.PATCH triple.
type InvalidVersionError struct {
	Name    string
	Version string
}

func (e *InvalidVersionError) Error() string {
	return fmt.Sprintf("plugin %q has invalid version %q (expected MAJOR.MINOR.PATCH)", e.Name, e.Version)
}

// InstallerNotCallableError reports a missing content generator.
type InstallerNotCallableError struct {
	Name string
}

func (e *InstallerNotCallableError) Error() string {
	return fmt.Sprintf("plugin %q has no content generator", e.Name)
}

// MissingPostInstallNotesError reports empty post-install notes.
type MissingPostInstallNotesError struct {
	Name string
}

func (e *MissingPostInstallNotesError) Error() string {
	return fmt.Sprintf("plugin %q has no post-install notes", e.Name)
}

// EmptyFileListError reports an empty FilesGenerated declaration.
type EmptyFileListError struct {
	Name string
}

func (e *EmptyFileListError) Error() string {
	return fmt.Sprintf("plugin %q declares no generated files", e.Name)
}

// ValidationError aggregates every violation found in one metadata
// record. Validation never short-circuits, so plugin authors see all
// problems at once.
type ValidationError struct {
	Name       string
	Violations []error
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Violations))
	for i, v := range e.Violations {
		msgs[i] = v.Error()
	}
	return fmt.Sprintf("plugin %q failed validation: %s", e.Name, strings.Join(msgs, "; "))
}

// DuplicatePluginError reports an attempt to register a name twice.
type DuplicatePluginError struct {
	Name string
}

func (e *DuplicatePluginError) Error() string {
	return fmt.Sprintf("plugin %q is already registered", e.Name)
}

// PluginNotFoundError reports a failed registry lookup. Known carries
// the sorted list of registered names so the command layer can suggest
// alternatives.
type PluginNotFoundError struct {
	Name  string
	Known []string
}

func (e *PluginNotFoundError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("unknown plugin %q (no plugins registered)", e.Name)
	}
	return fmt.Sprintf("unknown plugin %q (available: %s)", e.Name, strings.Join(e.Known, ", "))
}

// MissingDependencyError reports every unsatisfied dependency of a
// plugin at once.
type MissingDependencyError struct {
	Plugin  string
	Missing []string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("plugin %q requires missing module(s): %s", e.Plugin, strings.Join(e.Missing, ", "))
}

// FileConflictError reports every planned path that already exists on
// disk. Raised only in apply mode, before any write happens.
type FileConflictError struct {
	Plugin string
	Paths  []string
}

func (e *FileConflictError) Error() string {
	return fmt.Sprintf("plugin %q would overwrite %d existing file(s): %s (use --force to overwrite)",
		e.Plugin, len(e.Paths), strings.Join(e.Paths, ", "))
}

// PartialWriteError reports an apply that failed partway through.
// Written enumerates the files that made it to disk before the failure
// so an operator can clean up or re-run with --force.
type PartialWriteError struct {
	Plugin  string
	Written []string
	Err     error
}

func (e *PartialWriteError) Error() string {
	if len(e.Written) == 0 {
		return fmt.Sprintf("plugin %q install failed before any file was written: %v", e.Plugin, e.Err)
	}
	return fmt.Sprintf("plugin %q install failed after writing %d file(s) (%s): %v",
		e.Plugin, len(e.Written), strings.Join(e.Written, ", "), e.Err)
}

func (e *PartialWriteError) Unwrap() error {
	return e.Err
}
