package shell

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/jask/appshell/internal/locale"
	"github.com/jask/appshell/internal/platform"
)

// Layer is one wrapper of a composed frame.
type Layer int

const (
	LayerContent Layer = iota
	LayerTextStyle
	LayerPerformanceOverlay
	LayerDebugOverlay
	LayerInspector
	LayerBanner
	LayerLocalizations
	LayerTitle
)

var layerNames = [...]string{
	LayerContent:            "content",
	LayerTextStyle:          "text-style",
	LayerPerformanceOverlay: "performance-overlay",
	LayerDebugOverlay:       "debug-overlay",
	LayerInspector:          "inspector",
	LayerBanner:             "banner",
	LayerLocalizations:      "localizations",
	LayerTitle:              "title",
}

func (l Layer) String() string {
	if l < 0 || int(l) >= len(layerNames) {
		return "unknown"
	}
	return layerNames[l]
}

// Description is everything a frame is composed from.
type Description struct {
	Locale    locale.Locale
	Direction locale.TextDirection
	Delegates []Delegate
	Title     string
	Color     lipgloss.Color
	TextStyle *lipgloss.Style
	Mode      BuildMode

	PerformanceOverlay    bool
	CheckerboardRaster    bool
	CheckerboardOffscreen bool
	DebugOverlay          bool
	Inspector             bool
	Banner                bool

	Route      string
	Routes     []string
	Generation uint64
	// Events are recent platform events, newest last, shown by the inspector.
	Events []string
	// Keys are the bindings active on Route.
	Keys []platform.KeyBinding
}

// Describe builds the description for the current bridge state.
func Describe(o Options, b *Bridge, overrides *DebugOverrides) Description {
	shown := b.Locale()
	if o.Locale != nil {
		shown = *o.Locale
	}
	nonRelease := o.BuildMode != Release
	d := Description{
		Locale:    shown,
		Direction: locale.Direction(shown),
		Delegates: Delegates(o.LocalizationDelegates),
		Title:     o.TitleFor(shown),
		Color:     o.Color,
		TextStyle: o.TextStyle,
		Mode:      o.BuildMode,

		CheckerboardRaster:    o.CheckerboardRasterCacheImages,
		CheckerboardOffscreen: o.CheckerboardOffscreenLayers,
		DebugOverlay:          nonRelease && o.ShowDebugOverlay,
		Inspector:             nonRelease && (o.ShowInspector || overrides.Inspector()),
		Banner:                nonRelease && (o.ShowNonProductionBanner || overrides.Banner()),
		Generation:            b.Generation(),
	}
	d.PerformanceOverlay = o.ShowPerformanceOverlay || overrides.PerformanceOverlay() ||
		d.CheckerboardRaster || d.CheckerboardOffscreen
	return d
}

// Layers returns the enabled layers from innermost to outermost.
func (d Description) Layers() []Layer {
	layers := []Layer{LayerContent}
	if d.TextStyle != nil {
		layers = append(layers, LayerTextStyle)
	}
	if d.PerformanceOverlay {
		layers = append(layers, LayerPerformanceOverlay)
	}
	if d.DebugOverlay {
		layers = append(layers, LayerDebugOverlay)
	}
	if d.Inspector {
		layers = append(layers, LayerInspector)
	}
	if d.Banner {
		layers = append(layers, LayerBanner)
	}
	return append(layers, LayerLocalizations, LayerTitle)
}

// SupportedDelegates returns the delegates that support the described locale.
func (d Description) SupportedDelegates() []Delegate {
	out := make([]Delegate, 0, len(d.Delegates))
	for _, del := range d.Delegates {
		if del.IsSupported(d.Locale) {
			out = append(out, del)
		}
	}
	return out
}
