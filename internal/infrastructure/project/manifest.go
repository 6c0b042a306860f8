package project

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// DefaultAppDir is the conventional application directory inside a
// generated project.
const DefaultAppDir = "app"

// Manifest is the optional .fcube.yaml file at the project root. It
// lets a project relocate its app directory without every command
// needing a --dir flag.
type Manifest struct {
	Project string `yaml:"project"`
	AppDir  string `yaml:"app_dir"`
}

// DetectManifest reads .fcube.yaml under root if present. A missing
// manifest is not an error; the returned manifest falls back to
// DefaultAppDir for any field the file leaves unset.
func DetectManifest(root string) (*Manifest, error) {
	manifest := &Manifest{}

	path := filepath.Join(root, ".fcube.yaml")
	if data, err := os.ReadFile(path); err == nil {
		if err := yaml.Unmarshal(data, manifest); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", path, err)
		}
	}

	if manifest.AppDir == "" {
		manifest.AppDir = DefaultAppDir
	}
	return manifest, nil
}
