package shell

import "github.com/jask/appshell/internal/locale"

// Delegate provides localized resources for the locales it supports.
type Delegate interface {
	Name() string
	IsSupported(l locale.Locale) bool
}

// DefaultDelegate is the built-in delegate. It supports every locale and supplies the
// text direction.
type DefaultDelegate struct{}

func (DefaultDelegate) Name() string                   { return "default" }
func (DefaultDelegate) IsSupported(locale.Locale) bool { return true }

func (DefaultDelegate) Direction(l locale.Locale) locale.TextDirection {
	return locale.Direction(l)
}

// Delegates returns app in order followed by exactly one DefaultDelegate, so an app
// delegate always takes precedence over the default.
func Delegates(app []Delegate) []Delegate {
	out := make([]Delegate, 0, len(app)+1)
	for _, d := range app {
		switch d.(type) {
		case nil, DefaultDelegate, *DefaultDelegate:
			continue
		}
		out = append(out, d)
	}
	return append(out, DefaultDelegate{})
}
