package pages

import (
	"github.com/jask/appshell/internal/navigation"
	"github.com/jask/appshell/internal/platform"
)

// Demo route names.
const (
	RouteHome     = "/"
	RouteAbout    = "/about"
	RouteProfile  = "/profile"
	RouteSettings = "/settings"
	RouteDisplay  = "/settings/display"
)

// Known lists the demo routes, used for unknown-route suggestions.
func Known() []string {
	return []string{RouteHome, RouteAbout, RouteProfile, RouteSettings, RouteDisplay}
}

// Generate is the demo route factory.
func Generate(s navigation.RouteSettings) (navigation.Page, bool) {
	switch s.Name {
	case RouteHome:
		return NewMenu(RouteHome, "Home", []MenuEntry{
			{Label: "Profile", Route: RouteProfile},
			{Label: "Settings", Route: RouteSettings},
			{Label: "About", Route: RouteAbout},
		}), true
	case RouteSettings:
		return NewMenu(RouteSettings, "Settings", []MenuEntry{
			{Label: "Display", Route: RouteDisplay},
		}), true
	case RouteDisplay:
		return NewText(RouteDisplay, "Display",
			"Toggle layers in config.toml under [display].\nSend SIGHUP after changing LANG to switch locale."), true
	case RouteAbout:
		return NewText(RouteAbout, "About",
			"appshell binds terminal lifecycle events to navigation and locale state."), true
	case RouteProfile:
		return NewEditor(RouteProfile, "Profile", []EditorField{
			{Key: "name", Label: "Name"},
			{Key: "email", Label: "Email"},
		}, nil), true
	}
	return nil, false
}

// Bindings lists the page keys for the inspector.
func Bindings() []platform.KeyBinding {
	menus := []string{RouteHome, RouteSettings}
	return []platform.KeyBinding{
		{Keys: []string{"up", "down"}, Action: "select", Description: "move", Scopes: menus},
		{Keys: []string{"enter"}, Action: "open", Description: "open", Scopes: menus},
		{Keys: []string{"tab"}, Action: "next-field", Description: "next field", Scopes: []string{RouteProfile}},
		{Keys: []string{"enter"}, Action: "save", Description: "save", Scopes: []string{RouteProfile}},
	}
}
