package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"fcube.dev/cli/internal/core/plugin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriter_CreatesParentDirectories(t *testing.T) {
	dir := t.TempDir()
	entries := []plugin.FilePlanEntry{
		{Path: filepath.Join(dir, "referral", "schemas", "__init__.py"), Content: "# schemas\n"},
		{Path: filepath.Join(dir, "referral", "__init__.py"), Content: "# init\n"},
	}

	written, err := NewWriter().WriteAll(entries)
	require.NoError(t, err)
	assert.Equal(t, []string{entries[0].Path, entries[1].Path}, written, "written order matches plan order")

	data, err := os.ReadFile(entries[0].Path)
	require.NoError(t, err)
	assert.Equal(t, "# schemas\n", string(data))
}

func TestWriter_OverwritesExistingFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.py")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0644))

	_, err := NewWriter().WriteAll([]plugin.FilePlanEntry{{Path: path, Content: "new"}})
	require.NoError(t, err)

	data, _ := os.ReadFile(path)
	assert.Equal(t, "new", string(data), "the writer itself does not guard overwrites; that is the installer's job")
}

func TestWriter_FailureReturnsFilesWrittenSoFar(t *testing.T) {
	dir := t.TempDir()
	good := filepath.Join(dir, "a.py")
	// A directory at the target path makes the write fail.
	bad := filepath.Join(dir, "blocked")
	require.NoError(t, os.MkdirAll(bad, 0755))

	written, err := NewWriter().WriteAll([]plugin.FilePlanEntry{
		{Path: good, Content: "a"},
		{Path: bad, Content: "b"},
		{Path: filepath.Join(dir, "never.py"), Content: "c"},
	})

	require.Error(t, err)
	assert.Equal(t, []string{good}, written, "only files written before the failure are reported")

	_, statErr := os.Stat(filepath.Join(dir, "never.py"))
	assert.True(t, os.IsNotExist(statErr), "writing stops at the first failure")
}
