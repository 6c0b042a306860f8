package cli

import (
	"fmt"
	"strings"

	"fcube.dev/cli/internal/application/services"
	"fcube.dev/cli/internal/core/plugin"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

// NewBrowseCommand creates the interactive plugin browser.
func NewBrowseCommand(container *CLIContainer) *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "browse",
		Short: "Browse available plugins interactively",
		Long: `Open an interactive browser over the plugin registry.

Navigate with the arrow keys, press enter to compute a dry-run plan for
the selected plugin against the target directory, and q to quit. The
browser never writes files.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			targetDir := resolveTargetDir(container, dir)

			model := newBrowseModel(container, targetDir)
			program := tea.NewProgram(model, tea.WithAltScreen())
			if _, err := program.Run(); err != nil {
				return fmt.Errorf("browser failed: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&dir, "dir", "d", "", "Target app directory for dry-run previews")

	return cmd
}

// browseModel holds the state for the Bubble Tea plugin browser.
type browseModel struct {
	container *CLIContainer
	targetDir string
	plugins   []plugin.Metadata
	selected  int
	preview   string
	err       error
	width     int
	height    int

	titleStyle    lipgloss.Style
	selectedStyle lipgloss.Style
	dimStyle      lipgloss.Style
}

func newBrowseModel(container *CLIContainer, targetDir string) browseModel {
	return browseModel{
		container:     container,
		targetDir:     targetDir,
		plugins:       container.Registry.List(),
		titleStyle:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86")),
		selectedStyle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")),
		dimStyle:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
}

// previewMsg carries a computed dry-run preview back into the model.
type previewMsg struct {
	text string
	err  error
}

// Init implements the Bubble Tea init method.
func (m browseModel) Init() tea.Cmd {
	return nil
}

// Update implements the Bubble Tea update method.
func (m browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit

		case "up", "k":
			if m.selected > 0 {
				m.selected--
				m.preview = ""
				m.err = nil
			}
			return m, nil

		case "down", "j":
			if m.selected < len(m.plugins)-1 {
				m.selected++
				m.preview = ""
				m.err = nil
			}
			return m, nil

		case "enter":
			if len(m.plugins) == 0 {
				return m, nil
			}
			return m, m.previewCmd(m.plugins[m.selected].Name)
		}

	case previewMsg:
		m.preview = msg.text
		m.err = msg.err
		return m, nil
	}

	return m, nil
}

// previewCmd computes a dry-run plan for the named plugin. Dry runs are
// guaranteed non-mutating, so this is safe to trigger from the browser.
func (m browseModel) previewCmd(name string) tea.Cmd {
	return func() tea.Msg {
		outcome, err := m.container.Installer.Install(name, m.targetDir, services.InstallOptions{DryRun: true})
		if err != nil {
			return previewMsg{err: err}
		}
		renderer := NewRenderer(true)
		return previewMsg{text: renderer.RenderPreview(outcome.Plan)}
	}
}

// View implements the Bubble Tea view method.
func (m browseModel) View() string {
	if len(m.plugins) == 0 {
		return "No plugins registered.\n\nPress 'q' to quit"
	}

	var list strings.Builder
	list.WriteString(m.titleStyle.Render("FCube Plugins") + "\n\n")
	for i, p := range m.plugins {
		line := fmt.Sprintf("%s %s  %s", p.Name, p.Version, m.dimStyle.Render(p.Description))
		if i == m.selected {
			line = m.selectedStyle.Render("> ") + line
		} else {
			line = "  " + line
		}
		list.WriteString(line + "\n")
	}

	detail := m.renderDetail()
	footer := m.dimStyle.Render("up/down: select  enter: dry-run preview  q: quit")

	return lipgloss.JoinVertical(lipgloss.Left, list.String(), detail, footer)
}

// renderDetail shows the selected plugin's metadata and, once computed,
// its dry-run preview.
func (m browseModel) renderDetail() string {
	p := m.plugins[m.selected]

	var b strings.Builder
	deps := "none"
	if len(p.Dependencies) > 0 {
		deps = strings.Join(p.Dependencies, ", ")
	}
	fmt.Fprintf(&b, "Dependencies: %s\n", deps)
	fmt.Fprintf(&b, "Declared files: %d\n", len(p.FilesGenerated))
	if p.ConfigRequired {
		b.WriteString("Requires configuration after install.\n")
	}

	switch {
	case m.err != nil:
		fmt.Fprintf(&b, "\nPreview failed: %v\n", m.err)
	case m.preview != "":
		b.WriteString("\n" + m.preview)
	}

	return b.String()
}
