package plugin

// Action describes what applying a plan entry would do to the target
// path.
type Action string

const (
	ActionCreate    Action = "create"
	ActionOverwrite Action = "overwrite"
)

// FilePlanEntry is one planned file operation. Entries are transient:
// they belong to the plan that produced them and are never persisted or
// shared across installs.
type FilePlanEntry struct {
	// Path is the absolute path the file would be written to.
	Path string

	// Content is the full file content.
	Content string

	// SizeBytes is len(Content).
	SizeBytes int

	// ExistsAlready reflects the live filesystem at plan time.
	ExistsAlready bool

	// Action is ActionOverwrite when the path existed at plan time,
	// ActionCreate otherwise.
	Action Action
}

// InstallPlan is the ordered set of file operations a real install
// would perform, plus the owning plugin's identity and notes. It is a
// snapshot valid only for the instant it was computed; the filesystem
// may change between planning and execution.
type InstallPlan struct {
	PluginName       string
	Version          string
	PostInstallNotes string
	Entries          []FilePlanEntry
}

// TotalSize returns the summed size of all planned entries in bytes.
func (p *InstallPlan) TotalSize() int {
	total := 0
	for _, e := range p.Entries {
		total += e.SizeBytes
	}
	return total
}

// Conflicts returns the planned paths that already exist on disk, in
// plan order.
func (p *InstallPlan) Conflicts() []string {
	var paths []string
	for _, e := range p.Entries {
		if e.Action == ActionOverwrite {
			paths = append(paths, e.Path)
		}
	}
	return paths
}
