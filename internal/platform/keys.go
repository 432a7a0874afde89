package platform

import (
	"slices"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

const (
	ActionBack = "back"
	ActionQuit = "quit"

	ActionTogglePerformanceOverlay = "toggle-performance-overlay"
	ActionToggleInspector          = "toggle-inspector"
	ActionToggleBanner             = "toggle-banner"
)

// KeyBinding maps keys to an action. Scopes are route names; an empty list or "*"
// matches every route.
type KeyBinding struct {
	Keys        []string
	Action      string
	Description string
	Scopes      []string
}

type KeyRegistry struct {
	bindings []KeyBinding
}

func NewKeyRegistry(bindings []KeyBinding) *KeyRegistry {
	return &KeyRegistry{bindings: slices.Clone(bindings)}
}

// DefaultBindings are the platform keys of a terminal shell.
func DefaultBindings() []KeyBinding {
	return []KeyBinding{
		{Keys: []string{"esc"}, Action: ActionBack, Description: "back", Scopes: []string{"*"}},
		{Keys: []string{"ctrl+c"}, Action: ActionQuit, Description: "quit", Scopes: []string{"*"}},
		{Keys: []string{"f2"}, Action: ActionTogglePerformanceOverlay, Description: "performance overlay", Scopes: []string{"*"}},
		{Keys: []string{"f3"}, Action: ActionToggleInspector, Description: "inspector", Scopes: []string{"*"}},
		{Keys: []string{"f4"}, Action: ActionToggleBanner, Description: "banner", Scopes: []string{"*"}},
	}
}

func (r *KeyRegistry) Register(binding KeyBinding) {
	r.bindings = append(r.bindings, binding)
}

func (r *KeyRegistry) BindingsForScope(scope string) []KeyBinding {
	out := make([]KeyBinding, 0, len(r.bindings))
	for _, b := range r.bindings {
		if scopeMatch(scope, b.Scopes) {
			out = append(out, b)
		}
	}
	return out
}

func (r *KeyRegistry) IsAction(msg tea.KeyMsg, action, scope string) bool {
	pressed := normalizeKey(msg.String())
	for _, b := range r.bindings {
		if b.Action != action || !scopeMatch(scope, b.Scopes) {
			continue
		}
		for _, k := range b.Keys {
			if normalizeKey(k) == pressed {
				return true
			}
		}
	}
	return false
}

func normalizeKey(k string) string {
	return strings.ToLower(strings.TrimSpace(k))
}

func scopeMatch(scope string, scopes []string) bool {
	if len(scopes) == 0 {
		return true
	}
	for _, s := range scopes {
		if s == "*" || s == scope {
			return true
		}
	}
	return false
}
