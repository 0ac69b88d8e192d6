package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jozzs/svgcast/pkg/errors"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// =============================================================================
// SceneListModel - Interactive scene file selection
// =============================================================================

// sceneEntry is one selectable scene file with its size for display.
type sceneEntry struct {
	Name string
	Size int64
}

// SceneListModel is the bubbletea model for interactive scene selection.
type SceneListModel struct {
	Scenes   []sceneEntry
	Cursor   int
	Selected *sceneEntry
}

// NewSceneListModel creates a new scene list model.
func NewSceneListModel(scenes []sceneEntry) SceneListModel {
	return SceneListModel{Scenes: scenes}
}

func (m SceneListModel) Init() tea.Cmd {
	return nil
}

func (m SceneListModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.Cursor > 0 {
				m.Cursor--
			}
		case "down", "j":
			if m.Cursor < len(m.Scenes)-1 {
				m.Cursor++
			}
		case "enter":
			m.Selected = &m.Scenes[m.Cursor]
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SceneListModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Scene"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  ⏎ select  q quit"))
	b.WriteString("\n\n")

	for i, s := range m.Scenes {
		cursor := "  "
		if i == m.Cursor {
			cursor = "▸ "
		}

		line := fmt.Sprintf("%s%-30s  %s", cursor, s.Name, listDimStyle.Render(formatSize(s.Size)))
		if i == m.Cursor {
			b.WriteString(listSelectedStyle.Render(line))
		} else {
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d]", m.Cursor+1, len(m.Scenes))))

	return b.String()
}

// =============================================================================
// Helpers
// =============================================================================

// pickScene lists JSON scene files in dir and runs the interactive picker.
func pickScene(dir string) (string, error) {
	scenes, err := listScenes(dir)
	if err != nil {
		return "", err
	}
	if len(scenes) == 0 {
		return "", errors.New(errors.ErrCodeFileNotFound, "no scene files (*.json) in %s", dir)
	}

	final, err := tea.NewProgram(NewSceneListModel(scenes)).Run()
	if err != nil {
		return "", err
	}
	model := final.(SceneListModel)
	if model.Selected == nil {
		return "", errors.New(errors.ErrCodeNotFound, "no scene selected")
	}
	return filepath.Join(dir, model.Selected.Name), nil
}

// listScenes returns the JSON files in dir sorted by name.
func listScenes(dir string) ([]sceneEntry, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var scenes []sceneEntry
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ".json") {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		scenes = append(scenes, sceneEntry{Name: e.Name(), Size: info.Size()})
	}
	sort.Slice(scenes, func(i, j int) bool { return scenes[i].Name < scenes[j].Name })
	return scenes, nil
}

// formatSize renders a byte count compactly for the picker.
func formatSize(n int64) string {
	switch {
	case n >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(n)/(1<<20))
	case n >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(n)/(1<<10))
	default:
		return fmt.Sprintf("%d B", n)
	}
}
