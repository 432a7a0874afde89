package platform

import tea "github.com/charmbracelet/bubbletea"

// Terminal translates Bubble Tea messages into platform events.
type Terminal struct {
	Keys *KeyRegistry
}

func NewTerminal(keys *KeyRegistry) Terminal {
	if keys == nil {
		keys = NewKeyRegistry(DefaultBindings())
	}
	return Terminal{Keys: keys}
}

// Translate returns the platform event for msg. scope is the current route, used to
// match key bindings.
func (t Terminal) Translate(msg tea.Msg, scope string) (any, bool) {
	switch msg := msg.(type) {
	case BackRequest, PushRoute, LocaleChange, MetricsChange, MemoryPressure, LifecycleChange:
		return msg, true
	case tea.WindowSizeMsg:
		return MetricsChange{Width: msg.Width, Height: msg.Height}, true
	case tea.FocusMsg:
		return LifecycleChange{State: Resumed}, true
	case tea.BlurMsg:
		return LifecycleChange{State: Inactive}, true
	case tea.KeyMsg:
		if t.Keys.IsAction(msg, ActionBack, scope) {
			return BackRequest{}, true
		}
	}
	return nil, false
}

// IsQuit reports whether msg is bound to the quit action.
func (t Terminal) IsQuit(msg tea.Msg, scope string) bool {
	km, ok := msg.(tea.KeyMsg)
	return ok && t.Keys.IsAction(km, ActionQuit, scope)
}

// Toggle returns the debug toggle action bound to msg, if any.
func (t Terminal) Toggle(msg tea.Msg, scope string) (string, bool) {
	km, ok := msg.(tea.KeyMsg)
	if !ok {
		return "", false
	}
	for _, action := range []string{ActionTogglePerformanceOverlay, ActionToggleInspector, ActionToggleBanner} {
		if t.Keys.IsAction(km, action, scope) {
			return action, true
		}
	}
	return "", false
}
