package cli

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/khemadeva/lighttable/pkg/media"
)

// List styles
var (
	listSelectedStyle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)
	listNormalStyle   = lipgloss.NewStyle().Foreground(colorWhite)
	listDimStyle      = lipgloss.NewStyle().Foreground(colorDim)
)

// pickModel is the bubbletea model for interactive media selection. Space
// toggles the entry under the cursor; enter confirms and launches.
type pickModel struct {
	assets    []media.Asset
	checked   map[int]bool
	cursor    int
	height    int
	offset    int
	confirmed bool
}

// newPickModel creates a pick model over the discovered assets.
func newPickModel(assets []media.Asset) pickModel {
	return pickModel{
		assets:  assets,
		checked: make(map[int]bool),
		height:  15,
	}
}

func (m pickModel) Init() tea.Cmd {
	return nil
}

func (m pickModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c", "esc":
			return m, tea.Quit
		case "up", "k":
			if m.cursor > 0 {
				m.cursor--
				if m.cursor < m.offset {
					m.offset = m.cursor
				}
			}
		case "down", "j":
			if m.cursor < len(m.assets)-1 {
				m.cursor++
				if m.cursor >= m.offset+m.height {
					m.offset = m.cursor - m.height + 1
				}
			}
		case " ":
			m.checked[m.cursor] = !m.checked[m.cursor]
		case "enter":
			m.confirmed = true
			return m, tea.Quit
		}
	case tea.WindowSizeMsg:
		m.height = msg.Height - 6
		if m.height < 5 {
			m.height = 5
		}
	}
	return m, nil
}

func (m pickModel) View() string {
	var b strings.Builder

	b.WriteString(StyleTitle.Render("Select Media"))
	b.WriteString("\n")
	b.WriteString(listDimStyle.Render("↑/↓ navigate  space toggle  ⏎ launch  q quit"))
	b.WriteString("\n\n")

	end := m.offset + m.height
	if end > len(m.assets) {
		end = len(m.assets)
	}

	for i := m.offset; i < end; i++ {
		a := m.assets[i]

		cursor := "  "
		if i == m.cursor {
			cursor = "▸ "
		}
		mark := "[ ]"
		if m.checked[i] {
			mark = "[x]"
		}

		line := fmt.Sprintf("%s%s %-40s %s", cursor, mark, a.Name(), listDimStyle.Render(string(a.Kind)))
		switch {
		case i == m.cursor:
			b.WriteString(listSelectedStyle.Render(line))
		case m.checked[i]:
			b.WriteString(StyleSuccess.Render(line))
		default:
			b.WriteString(listNormalStyle.Render(line))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(listDimStyle.Render(fmt.Sprintf("  [%d/%d] %d selected", m.cursor+1, len(m.assets), m.checkedCount())))

	return b.String()
}

func (m pickModel) checkedCount() int {
	n := 0
	for _, v := range m.checked {
		if v {
			n++
		}
	}
	return n
}

// Selection returns the checked asset paths, falling back to the entry under
// the cursor when nothing is checked.
func (m pickModel) Selection() []string {
	var paths []string
	for i, a := range m.assets {
		if m.checked[i] {
			paths = append(paths, a.Path)
		}
	}
	if len(paths) == 0 && len(m.assets) > 0 {
		return []string{m.assets[m.cursor].Path}
	}
	return paths
}
