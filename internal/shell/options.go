package shell

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/jask/appshell/internal/locale"
	"github.com/jask/appshell/internal/navigation"
	"github.com/jask/appshell/internal/platform"
)

var ErrMissingColor = errors.New("shell: color is required")

// BuildMode selects which debug-only layers may be shown.
type BuildMode int

const (
	Debug BuildMode = iota
	Profile
	Release
)

func (m BuildMode) String() string {
	switch m {
	case Debug:
		return "debug"
	case Profile:
		return "profile"
	case Release:
		return "release"
	}
	return "unknown"
}

// ParseBuildMode accepts "debug", "profile" and "release".
func ParseBuildMode(s string) (BuildMode, error) {
	switch s {
	case "debug", "":
		return Debug, nil
	case "profile":
		return Profile, nil
	case "release":
		return Release, nil
	}
	return Debug, fmt.Errorf("shell: unknown build mode %q", s)
}

// Options configures a shell. Start from DefaultOptions; the zero value hides the
// non-production banner and has no supported locales.
type Options struct {
	Title string
	// OnGenerateTitle overrides Title. It must not return an empty string.
	OnGenerateTitle func(l locale.Locale) string
	Color           lipgloss.Color

	OnGenerateRoute navigation.RouteFactory
	OnUnknownRoute  navigation.RouteFactory
	InitialRoute    string
	KnownRoutes     []string

	// Locale is shown instead of the resolved locale. Resolution still runs.
	Locale                *locale.Locale
	LocalizationDelegates []Delegate
	LocaleResolution      locale.ResolutionFunc
	SupportedLocales      locale.SupportedList

	TextStyle *lipgloss.Style
	BuildMode BuildMode
	// KeyBindings are app keys added to the platform bindings and listed by the inspector.
	KeyBindings []platform.KeyBinding

	ShowPerformanceOverlay        bool
	CheckerboardRasterCacheImages bool
	CheckerboardOffscreenLayers   bool
	ShowDebugOverlay              bool
	ShowInspector                 bool
	ShowNonProductionBanner       bool
}

func DefaultOptions() Options {
	return Options{
		InitialRoute:            navigation.DefaultRoute,
		SupportedLocales:        locale.SupportedList{locale.EnglishUS},
		ShowNonProductionBanner: true,
	}
}

// Validate reports every configuration violation.
func (o Options) Validate() error {
	var errs []error
	if o.Color == "" {
		errs = append(errs, ErrMissingColor)
	}
	if o.OnGenerateRoute == nil {
		errs = append(errs, navigation.ErrMissingRouteFactory)
	}
	if err := o.SupportedLocales.Validate(); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// TitleFor returns the window title for l. It panics when OnGenerateTitle returns an
// empty title.
func (o Options) TitleFor(l locale.Locale) string {
	if o.OnGenerateTitle == nil {
		return o.Title
	}
	title := o.OnGenerateTitle(l)
	if title == "" {
		panic("shell: OnGenerateTitle returned an empty title")
	}
	return title
}
