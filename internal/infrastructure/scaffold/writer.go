package scaffold

import (
	"fmt"
	"os"
	"path/filepath"

	"fcube.dev/cli/internal/core/plugin"
)

// Writer materializes plan entries to disk sequentially. There is no
// rollback: on failure the files written so far stay on disk and are
// returned to the caller for reporting.
type Writer struct{}

// NewWriter creates a disk writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteAll writes every entry's content to its path in plan order,
// creating parent directories as needed. It returns the paths written
// before any failure.
func (w *Writer) WriteAll(entries []plugin.FilePlanEntry) ([]string, error) {
	written := make([]string, 0, len(entries))
	for _, e := range entries {
		if err := os.MkdirAll(filepath.Dir(e.Path), 0755); err != nil {
			return written, fmt.Errorf("failed to create directory for %s: %w", e.Path, err)
		}
		if err := os.WriteFile(e.Path, []byte(e.Content), 0644); err != nil {
			return written, fmt.Errorf("failed to write %s: %w", e.Path, err)
		}
		written = append(written, e.Path)
	}
	return written, nil
}
