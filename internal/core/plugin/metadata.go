package plugin

// GeneratedFile is a single (path, content) pair produced by a
// ContentGenerator. Path is relative to the target directory the
// generator was invoked with.
type GeneratedFile struct {
	Path    string
	Content string
}

// ContentGenerator computes the complete, ordered set of files a plugin
// would write under targetDir. Generators compute strings only; they
// must never touch the filesystem themselves.
type ContentGenerator func(targetDir string) []GeneratedFile

// Metadata is the immutable descriptor of one installable plugin.
// Instances are validated before entering the registry, so code reading
// from the registry can rely on every field being well-formed.
type Metadata struct {
	// Name is the plugin identifier (letters, digits, underscore; must
	// not start with a digit). Unique within the registry.
	Name string

	// Description is a short human-readable summary shown in listings.
	Description string

	// Version is a strict MAJOR.MINOR.PATCH string. No pre-release or
	// build suffixes.
	Version string

	// Dependencies names the modules that must already be present in
	// the target project before this plugin can be installed. Checked
	// shallowly; no transitive resolution.
	Dependencies []string

	// FilesGenerated lists the project-relative paths the plugin
	// declares it will create. Informational: the Generator is the
	// authoritative source at plan time.
	FilesGenerated []string

	// ConfigRequired signals that the plugin needs manual configuration
	// after installation.
	ConfigRequired bool

	// PostInstallNotes is free text shown to the user after a real
	// install.
	PostInstallNotes string

	// Generator produces the plugin's files. Invoked only at plan time,
	// never at registration time.
	Generator ContentGenerator
}
