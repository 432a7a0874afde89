package shell

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
	"github.com/stretchr/testify/require"

	"github.com/jask/appshell/internal/locale"
	"github.com/jask/appshell/internal/platform"
)

func describeWith(t *testing.T, mutate func(*Options), overrides *DebugOverrides) Description {
	t.Helper()
	o := DefaultOptions()
	o.Color = "#89b4fa"
	o.Title = "Shell"
	if mutate != nil {
		mutate(&o)
	}
	b := NewBridge(o.SupportedLocales, nil, Hooks{}, nil)
	require.NoError(t, b.Mount(&fakeRouter{depth: 1}, platform.NewDispatcher(), locale.EnglishUS))
	if overrides == nil {
		overrides = &DebugOverrides{}
	}
	return Describe(o, b, overrides)
}

func TestLayersFixedOrder(t *testing.T) {
	style := lipgloss.NewStyle()
	d := describeWith(t, func(o *Options) {
		o.TextStyle = &style
		o.ShowPerformanceOverlay = true
		o.ShowDebugOverlay = true
		o.ShowInspector = true
	}, nil)
	require.Equal(t, []Layer{
		LayerContent,
		LayerTextStyle,
		LayerPerformanceOverlay,
		LayerDebugOverlay,
		LayerInspector,
		LayerBanner,
		LayerLocalizations,
		LayerTitle,
	}, d.Layers())
}

func TestLayersMinimal(t *testing.T) {
	d := describeWith(t, func(o *Options) { o.ShowNonProductionBanner = false }, nil)
	require.Equal(t, []Layer{LayerContent, LayerLocalizations, LayerTitle}, d.Layers())
}

func TestReleaseModeDropsDebugLayers(t *testing.T) {
	overrides := &DebugOverrides{}
	overrides.SetInspector(true)
	overrides.SetBanner(true)
	d := describeWith(t, func(o *Options) {
		o.BuildMode = Release
		o.ShowDebugOverlay = true
		o.ShowInspector = true
		o.ShowPerformanceOverlay = true
	}, overrides)
	require.Equal(t, []Layer{LayerContent, LayerPerformanceOverlay, LayerLocalizations, LayerTitle}, d.Layers())
}

func TestOverridesForceLayers(t *testing.T) {
	overrides := &DebugOverrides{}
	overrides.SetPerformanceOverlay(true)
	overrides.SetInspector(true)
	overrides.SetBanner(true)
	d := describeWith(t, func(o *Options) { o.ShowNonProductionBanner = false }, overrides)
	require.True(t, d.PerformanceOverlay)
	require.True(t, d.Inspector)
	require.True(t, d.Banner)

	overrides.SetInspector(false)
	d = describeWith(t, nil, overrides)
	require.False(t, d.Inspector)
}

func TestCheckerboardImpliesPerformanceOverlay(t *testing.T) {
	d := describeWith(t, func(o *Options) { o.CheckerboardOffscreenLayers = true }, nil)
	require.True(t, d.PerformanceOverlay)
}

func TestExplicitLocaleWinsForDisplay(t *testing.T) {
	he := locale.New("he", "IL")
	d := describeWith(t, func(o *Options) { o.Locale = &he }, nil)
	require.Equal(t, he, d.Locale)
	require.Equal(t, locale.RTL, d.Direction)
}

func lines(s string) []string { return strings.Split(s, "\n") }

func TestRenderFrameSizeAndTitle(t *testing.T) {
	d := describeWith(t, nil, nil)
	out := Render(d, func(w, h int) string { return "hello" }, 40, 6)

	ls := lines(out)
	require.Len(t, ls, 6)
	for _, l := range ls {
		require.Equal(t, 40, ansi.StringWidth(l))
	}
	require.True(t, strings.HasPrefix(ls[0], "Shell"))
	require.True(t, strings.HasPrefix(ls[1], "hello"))
	require.True(t, strings.HasSuffix(ls[1], " DEBUG "), "banner sits inside the title: %q", ls[1])
}

func TestRenderEachLayerEnclosesPrevious(t *testing.T) {
	d := describeWith(t, func(o *Options) {
		o.ShowDebugOverlay = true
		o.ShowInspector = true
	}, nil)
	var contentW, contentH int
	out := Render(d, func(w, h int) string {
		contentW, contentH = w, h
		return "body"
	}, 60, 12)

	// title takes a row, inspector a third of the width plus a separator,
	// the debug overlay a border on every side.
	require.Equal(t, 60-20-1-2, contentW)
	require.Equal(t, 12-1-2, contentH)

	ls := lines(out)
	require.True(t, strings.HasPrefix(ls[0], "Shell"))
	require.True(t, strings.HasPrefix(ls[1], "┌"), "debug border inside title: %q", ls[1])
	require.Contains(t, ls[2], "│body")
	require.Contains(t, out, "inspector")
	require.Contains(t, ls[1], "DEBUG")
}

func TestRenderRTLAlignsRight(t *testing.T) {
	he := locale.New("he", "IL")
	d := describeWith(t, func(o *Options) {
		o.Locale = &he
		o.ShowNonProductionBanner = false
	}, nil)
	out := Render(d, func(int, int) string { return "shalom" }, 20, 3)
	ls := lines(out)
	require.Equal(t, strings.Repeat(" ", 14)+"shalom", ls[1])
}

func TestRenderPerformanceOverlay(t *testing.T) {
	d := describeWith(t, func(o *Options) {
		o.ShowPerformanceOverlay = true
		o.CheckerboardRasterCacheImages = true
		o.ShowNonProductionBanner = false
	}, nil)
	out := Render(d, func(int, int) string { return "x" }, 40, 6)
	require.Contains(t, out, "build #1")
	require.Contains(t, out, "raster cache")
}

func TestRenderZeroSize(t *testing.T) {
	d := describeWith(t, nil, nil)
	require.Empty(t, Render(d, func(int, int) string { return "x" }, 0, 10))
}
