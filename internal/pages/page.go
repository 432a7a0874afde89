package pages

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/appshell/internal/navigation"
)

type Page = navigation.Page

// Text is a static page.
type Text struct {
	route string
	title string
	body  string
}

func NewText(route, title, body string) Text {
	return Text{route: route, title: title, body: body}
}

func (t Text) Route() string                  { return t.route }
func (t Text) Title() string                  { return t.title }
func (t Text) Update(tea.Msg) (Page, tea.Cmd) { return t, nil }

func (t Text) View(width, height int) string {
	return strings.Join([]string{headStyle.Render(t.title), "", t.body}, "\n")
}
