package services

import (
	"fmt"
	"os"

	"fcube.dev/cli/internal/core/plugin"
)

// InstallOptions control a single install invocation.
type InstallOptions struct {
	// Force allows planned overwrites to proceed in apply mode.
	Force bool

	// DryRun plans and previews without touching the filesystem.
	DryRun bool
}

// InstallOutcome is the result of a completed install invocation.
type InstallOutcome struct {
	Plan             *plugin.InstallPlan
	DryRun           bool
	WrittenPaths     []string
	PostInstallNotes string
}

// PlanWriter materializes plan entries to disk in order. WriteAll
// returns the paths written so far even when it fails, so the caller
// can report exactly what landed before the error.
type PlanWriter interface {
	WriteAll(entries []plugin.FilePlanEntry) (written []string, err error)
}

// ProbeFactory builds the dependency presence probe for a target
// directory.
type ProbeFactory func(targetDir string) plugin.PresenceProbe

// InstallService orchestrates a plugin install:
// lookup -> dependency check -> plan -> preview or apply. Preview and
// apply share every stage up to the final write, so the two modes
// cannot drift apart.
type InstallService struct {
	registry *plugin.Registry
	planner  *InstallPlanner
	probeFor ProbeFactory
	writer   PlanWriter
}

// NewInstallService wires an install service.
func NewInstallService(registry *plugin.Registry, planner *InstallPlanner, probeFor ProbeFactory, writer PlanWriter) *InstallService {
	return &InstallService{
		registry: registry,
		planner:  planner,
		probeFor: probeFor,
		writer:   writer,
	}
}

// Install runs one install invocation against targetDir.
//
// Dry-run invocations terminate after planning with zero filesystem
// writes. Apply invocations fail fast with a FileConflictError listing
// every conflicting path before any write when Force is off; otherwise
// they write every entry in plan order, creating parent directories as
// needed. A write failure partway through surfaces as a
// PartialWriteError naming the files already on disk.
func (s *InstallService) Install(name, targetDir string, opts InstallOptions) (*InstallOutcome, error) {
	meta, err := s.registry.Get(name)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(targetDir)
	if err != nil {
		return nil, fmt.Errorf("target directory %s not found (run this from the project root, or pass --dir)", targetDir)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("target %s is not a directory", targetDir)
	}

	// Dependencies are checked before planning; an unsatisfied
	// dependency means the content generator is never invoked.
	if err := plugin.CheckDependencies(meta, s.probeFor(targetDir)); err != nil {
		return nil, err
	}

	plan, err := s.planner.Plan(meta, targetDir)
	if err != nil {
		return nil, err
	}

	if opts.DryRun {
		return &InstallOutcome{
			Plan:             plan,
			DryRun:           true,
			PostInstallNotes: plan.PostInstallNotes,
		}, nil
	}

	if !opts.Force {
		if conflicts := plan.Conflicts(); len(conflicts) > 0 {
			return nil, &plugin.FileConflictError{Plugin: meta.Name, Paths: conflicts}
		}
	}

	written, err := s.writer.WriteAll(plan.Entries)
	if err != nil {
		return nil, &plugin.PartialWriteError{Plugin: meta.Name, Written: written, Err: err}
	}

	return &InstallOutcome{
		Plan:             plan,
		WrittenPaths:     written,
		PostInstallNotes: plan.PostInstallNotes,
	}, nil
}
