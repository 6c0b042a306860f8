package services

import (
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"fcube.dev/cli/internal/core/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

// testMetadata builds a valid metadata record around the given generator.
func testMetadata(name string, gen plugin.ContentGenerator) plugin.Metadata {
	return plugin.Metadata{
		Name:             name,
		Description:      "A test plugin",
		Version:          "1.0.0",
		FilesGenerated:   []string{name + "/__init__.py"},
		PostInstallNotes: "Nothing else to do.",
		Generator:        gen,
	}
}

func pairGenerator(files ...plugin.GeneratedFile) plugin.ContentGenerator {
	return func(targetDir string) []plugin.GeneratedFile {
		return files
	}
}

func TestPlanner_PreservesGeneratorOrderAndSizes(t *testing.T) {
	dir := t.TempDir()
	m := testMetadata("referral", pairGenerator(
		plugin.GeneratedFile{Path: "referral/__init__.py", Content: "# init\n"},
		plugin.GeneratedFile{Path: "referral/models.py", Content: "# models\nclass Referral: pass\n"},
		plugin.GeneratedFile{Path: "referral/routes.py", Content: "# routes\n"},
	))

	plan, err := NewInstallPlanner().Plan(m, dir)
	require.NoError(t, err)

	require.Len(t, plan.Entries, 3)
	assert.Equal(t, filepath.Join(dir, "referral", "__init__.py"), plan.Entries[0].Path)
	assert.Equal(t, filepath.Join(dir, "referral", "models.py"), plan.Entries[1].Path)
	assert.Equal(t, filepath.Join(dir, "referral", "routes.py"), plan.Entries[2].Path)

	assert.Equal(t, len("# init\n"), plan.Entries[0].SizeBytes)
	assert.Equal(t, len("# models\nclass Referral: pass\n"), plan.Entries[1].SizeBytes)

	assert.Equal(t, "referral", plan.PluginName)
	assert.Equal(t, "1.0.0", plan.Version)
	assert.Equal(t, "Nothing else to do.", plan.PostInstallNotes)
}

func TestPlanner_AnnotatesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "referral", "__init__.py")
	require.NoError(t, os.MkdirAll(filepath.Dir(existing), 0755))
	require.NoError(t, os.WriteFile(existing, []byte("old"), 0644))

	m := testMetadata("referral", pairGenerator(
		plugin.GeneratedFile{Path: "referral/__init__.py", Content: "new"},
		plugin.GeneratedFile{Path: "referral/models.py", Content: "new"},
	))

	plan, err := NewInstallPlanner().Plan(m, dir)
	require.NoError(t, err)

	assert.True(t, plan.Entries[0].ExistsAlready)
	assert.Equal(t, plugin.ActionOverwrite, plan.Entries[0].Action)
	assert.False(t, plan.Entries[1].ExistsAlready)
	assert.Equal(t, plugin.ActionCreate, plan.Entries[1].Action)

	assert.Equal(t, []string{existing}, plan.Conflicts())
}

func TestPlanner_DoesNotTouchTheFilesystem(t *testing.T) {
	dir := t.TempDir()
	m := testMetadata("referral", pairGenerator(
		plugin.GeneratedFile{Path: "referral/__init__.py", Content: "content"},
	))

	_, err := NewInstallPlanner().Plan(m, dir)
	require.NoError(t, err)

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries, "planning must not create any files")
}

func TestPlanner_IsDeterministicWithoutFilesystemChanges(t *testing.T) {
	dir := t.TempDir()
	m := testMetadata("referral", pairGenerator(
		plugin.GeneratedFile{Path: "referral/__init__.py", Content: "# init\n"},
		plugin.GeneratedFile{Path: "referral/models.py", Content: "# models\n"},
	))

	planner := NewInstallPlanner()
	first, err := planner.Plan(m, dir)
	require.NoError(t, err)
	second, err := planner.Plan(m, dir)
	require.NoError(t, err)

	assert.Equal(t, first, second, "back-to-back plans over an unchanged filesystem must be identical")
}

func TestPlanner_NilGenerator_Fails(t *testing.T) {
	m := testMetadata("referral", nil)

	_, err := NewInstallPlanner().Plan(m, t.TempDir())

	var notCallable *plugin.InstallerNotCallableError
	require.ErrorAs(t, err, &notCallable)
}

func TestPlanner_EmptyGeneratorOutput_Fails(t *testing.T) {
	m := testMetadata("referral", pairGenerator())

	_, err := NewInstallPlanner().Plan(m, t.TempDir())
	assert.Error(t, err)
}

// Property: plan totals equal the sum of the generated content lengths,
// and order always matches generator order.
func TestPlanner_Properties(t *testing.T) {
	dir := t.TempDir()
	planner := NewInstallPlanner()

	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(1, 10).Draw(t, "n")
		files := make([]plugin.GeneratedFile, n)
		total := 0
		for i := range files {
			content := rapid.StringN(0, 200, -1).Draw(t, fmt.Sprintf("content%d", i))
			files[i] = plugin.GeneratedFile{
				Path:    fmt.Sprintf("mod/file_%d.py", i),
				Content: content,
			}
			total += len(content)
		}

		m := testMetadata("mod", pairGenerator(files...))
		plan, err := planner.Plan(m, dir)
		if err != nil {
			t.Fatalf("plan failed: %v", err)
		}

		if plan.TotalSize() != total {
			t.Fatalf("total size %d, want %d", plan.TotalSize(), total)
		}
		for i, e := range plan.Entries {
			if e.Path != filepath.Join(dir, files[i].Path) {
				t.Fatalf("entry %d out of order: %s", i, e.Path)
			}
		}
	})
}
