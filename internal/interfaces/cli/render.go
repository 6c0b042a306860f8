package cli

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"text/tabwriter"

	"fcube.dev/cli/internal/application/services"
	"fcube.dev/cli/internal/core/plugin"
	"github.com/charmbracelet/lipgloss"
)

// Renderer formats plans and install outcomes for the terminal.
type Renderer struct {
	plain bool

	titleStyle     lipgloss.Style
	createStyle    lipgloss.Style
	overwriteStyle lipgloss.Style
	dimStyle       lipgloss.Style
	panelStyle     lipgloss.Style
}

// NewRenderer creates a renderer. plain disables all styling, which
// also keeps test assertions free of escape codes.
func NewRenderer(plain bool) *Renderer {
	r := &Renderer{plain: plain}
	if !plain {
		r.titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
		r.createStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
		r.overwriteStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("214"))
		r.dimStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
		r.panelStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("46")).
			Padding(1, 2)
	}
	return r
}

func (r *Renderer) styled(s lipgloss.Style, text string) string {
	if r.plain {
		return text
	}
	return s.Render(text)
}

// RenderPreview formats a dry-run plan: the file table in plan order, a
// count/size summary, the post-install notes, and an explicit statement
// that nothing was written.
func (r *Renderer) RenderPreview(p *plugin.InstallPlan) string {
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n\n", r.styled(r.titleStyle, fmt.Sprintf("Plan for plugin %s %s (dry run)", p.PluginName, p.Version)))

	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintln(w, "PATH\tSIZE\tACTION")
	fmt.Fprintln(w, "----\t----\t------")
	for _, e := range p.Entries {
		action := string(e.Action)
		if e.Action == plugin.ActionOverwrite {
			action = r.styled(r.overwriteStyle, action)
		} else {
			action = r.styled(r.createStyle, action)
		}
		fmt.Fprintf(w, "%s\t%d B\t%s\n", e.Path, e.SizeBytes, action)
	}
	w.Flush()

	fmt.Fprintf(&b, "\n%d file(s), %d bytes total\n", len(p.Entries), p.TotalSize())

	b.WriteString("\n" + r.notesPanel(p.PostInstallNotes) + "\n")
	b.WriteString("\n" + r.styled(r.dimStyle, "Dry run: no files were created.") + "\n")

	return b.String()
}

// RenderApplied formats a successful real install: the written files,
// a directory tree, a summary table, and the post-install notes.
func (r *Renderer) RenderApplied(outcome *services.InstallOutcome, m plugin.Metadata, targetDir string) string {
	var b strings.Builder

	for _, path := range outcome.WrittenPaths {
		fmt.Fprintf(&b, "  %s Created: %s\n", r.styled(r.createStyle, "+"), path)
	}

	b.WriteString("\n" + r.renderTree(m.Name, outcome.WrittenPaths, targetDir) + "\n")

	deps := "None"
	if len(m.Dependencies) > 0 {
		deps = strings.Join(m.Dependencies, ", ")
	}
	w := tabwriter.NewWriter(&b, 0, 8, 2, ' ', 0)
	fmt.Fprintf(w, "Plugin:\t%s\n", m.Name)
	fmt.Fprintf(w, "Version:\t%s\n", m.Version)
	fmt.Fprintf(w, "Location:\t%s\n", filepath.Join(targetDir, m.Name))
	fmt.Fprintf(w, "Files created:\t%d\n", len(outcome.WrittenPaths))
	fmt.Fprintf(w, "Dependencies:\t%s\n", deps)
	w.Flush()

	b.WriteString("\n" + r.notesPanel(outcome.PostInstallNotes) + "\n")
	fmt.Fprintf(&b, "\nPlugin %q added successfully.\n", m.Name)

	return b.String()
}

// notesPanel wraps the post-install notes in a bordered panel.
func (r *Renderer) notesPanel(notes string) string {
	body := "Next steps:\n\n" + strings.TrimSpace(notes)
	if r.plain {
		return body
	}
	return r.panelStyle.Render(body)
}

// renderTree builds a directory tree of the written paths, relative to
// the target directory.
func (r *Renderer) renderTree(root string, paths []string, targetDir string) string {
	// Group files by their relative directory.
	byDir := make(map[string][]string)
	var dirs []string
	for _, p := range paths {
		rel, err := filepath.Rel(targetDir, p)
		if err != nil {
			rel = p
		}
		dir := filepath.Dir(rel)
		if _, seen := byDir[dir]; !seen {
			dirs = append(dirs, dir)
		}
		byDir[dir] = append(byDir[dir], filepath.Base(rel))
	}
	sort.Strings(dirs)

	var b strings.Builder
	b.WriteString(r.styled(r.titleStyle, root+"/") + "\n")
	for _, dir := range dirs {
		indent := "  "
		if dir != "." {
			fmt.Fprintf(&b, "  %s\n", r.styled(r.dimStyle, dir+"/"))
			indent = "    "
		}
		for _, f := range byDir[dir] {
			fmt.Fprintf(&b, "%s%s\n", indent, f)
		}
	}
	return b.String()
}
