package pages

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type EditorField struct {
	Key   string
	Label string
	Value string
}

// Editor is a form page. While it has unsaved edits it refuses to be popped.
type Editor struct {
	route    string
	title    string
	fields   []EditorField
	inputs   []textinput.Model
	focus    int
	dirty    atomic.Bool
	saved    map[string]string
	onSubmit func(values map[string]string) tea.Msg
}

func NewEditor(route, title string, fields []EditorField, onSubmit func(values map[string]string) tea.Msg) *Editor {
	inputs := make([]textinput.Model, 0, len(fields))
	for i, f := range fields {
		inp := textinput.New()
		inp.Prompt = f.Label + ": "
		inp.SetValue(f.Value)
		if i == 0 {
			inp.Focus()
		}
		inputs = append(inputs, inp)
	}
	return &Editor{route: route, title: title, fields: fields, inputs: inputs, onSubmit: onSubmit}
}

func (e *Editor) Route() string { return e.route }
func (e *Editor) Title() string { return e.title }

func (e *Editor) InitPage() tea.Cmd { return textinput.Blink }

// Dirty reports whether there are unsaved edits.
func (e *Editor) Dirty() bool { return e.dirty.Load() }

// Saved returns the values of the last save.
func (e *Editor) Saved() map[string]string { return e.saved }

// WillPop is called off the update loop, hence the atomic flag.
func (e *Editor) WillPop(context.Context) (bool, error) {
	return !e.dirty.Load(), nil
}

func (e *Editor) Update(msg tea.Msg) (Page, tea.Cmd) {
	if len(e.inputs) == 0 {
		return e, nil
	}
	if km, ok := msg.(tea.KeyMsg); ok {
		switch km.String() {
		case "tab", "shift+tab":
			dir := 1
			if km.String() == "shift+tab" {
				dir = -1
			}
			e.inputs[e.focus].Blur()
			e.focus = (e.focus + dir + len(e.inputs)) % len(e.inputs)
			e.inputs[e.focus].Focus()
			return e, nil
		case "enter":
			vals := map[string]string{}
			for i, f := range e.fields {
				vals[f.Key] = e.inputs[i].Value()
			}
			e.saved = vals
			e.dirty.Store(false)
			if e.onSubmit != nil {
				return e, func() tea.Msg { return e.onSubmit(vals) }
			}
			return e, nil
		}
	}
	before := e.inputs[e.focus].Value()
	var cmd tea.Cmd
	e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
	if e.inputs[e.focus].Value() != before {
		e.dirty.Store(true)
	}
	return e, cmd
}

func (e *Editor) View(width, height int) string {
	lines := []string{headStyle.Render(e.title)}
	for _, in := range e.inputs {
		lines = append(lines, in.View())
	}
	hint := "enter: save  esc: back  tab: next field"
	if e.Dirty() {
		hint = "unsaved changes, enter to save before leaving"
	}
	lines = append(lines, "", mutedStyle.Render(hint))
	return strings.Join(lines, "\n")
}
