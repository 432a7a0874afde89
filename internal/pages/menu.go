// Package pages holds the routes of the appshell demo program.
package pages

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/appshell/internal/platform"
)

var (
	headStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#89b4fa")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6e3a1")).Bold(true)
	mutedStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#a6adc8"))
)

// MenuEntry is a selectable route.
type MenuEntry struct {
	Label string
	Route string
}

// Menu lists routes and pushes the selected one.
type Menu struct {
	route   string
	title   string
	entries []MenuEntry
	cursor  int
}

func NewMenu(route, title string, entries []MenuEntry) Menu {
	return Menu{route: route, title: title, entries: entries}
}

func (m Menu) Route() string { return m.route }
func (m Menu) Title() string { return m.title }

func (m Menu) Update(msg tea.Msg) (Page, tea.Cmd) {
	km, ok := msg.(tea.KeyMsg)
	if !ok || len(m.entries) == 0 {
		return m, nil
	}
	switch km.String() {
	case "up", "k":
		m.cursor = (m.cursor - 1 + len(m.entries)) % len(m.entries)
	case "down", "j":
		m.cursor = (m.cursor + 1) % len(m.entries)
	case "enter":
		route := m.entries[m.cursor].Route
		return m, func() tea.Msg { return platform.PushRoute{Route: route} }
	}
	return m, nil
}

func (m Menu) View(width, height int) string {
	lines := []string{headStyle.Render(m.title), ""}
	for i, e := range m.entries {
		label := "  " + e.Label + "  " + mutedStyle.Render(e.Route)
		if i == m.cursor {
			label = selectedStyle.Render("▶ "+e.Label) + "  " + mutedStyle.Render(e.Route)
		}
		lines = append(lines, label)
	}
	lines = append(lines, "", mutedStyle.Render("enter: open  esc: back  ctrl+c: quit"))
	return strings.Join(lines, "\n")
}
