package shell

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/jask/appshell/internal/locale"
)

const (
	inspectorMaxWidth = 32
	inspectorEvents   = 6
)

type wrapper struct {
	layer Layer
	// inset maps this layer's outer size to the size left for what it encloses.
	inset func(w, h int) (int, int)
	wrap  func(inner string, w, h int) string
}

func same(w, h int) (int, int) { return w, h }

// Render composes a frame of width x height. content renders the current page at the
// size left inside all enabled layers.
func Render(d Description, content func(w, h int) string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	wrappers := d.wrappers()

	// sizes[i] is the size inside wrappers[i]; sizes[len] is the full frame.
	sizes := make([][2]int, len(wrappers)+1)
	sizes[len(wrappers)] = [2]int{width, height}
	for i := len(wrappers) - 1; i >= 0; i-- {
		w, h := wrappers[i].inset(sizes[i+1][0], sizes[i+1][1])
		sizes[i] = [2]int{max(0, w), max(0, h)}
	}

	out := fitCanvas(content(sizes[0][0], sizes[0][1]), sizes[0][0], sizes[0][1])
	for i, wr := range wrappers {
		outer := sizes[i+1]
		out = wr.wrap(out, outer[0], outer[1])
	}
	return out
}

func (d Description) wrappers() []wrapper {
	layers := d.Layers()
	out := make([]wrapper, 0, len(layers))
	for _, l := range layers {
		switch l {
		case LayerTextStyle:
			out = append(out, wrapper{l, same, d.wrapTextStyle})
		case LayerPerformanceOverlay:
			out = append(out, wrapper{l, same, d.wrapPerformance})
		case LayerDebugOverlay:
			out = append(out, wrapper{l, insetBorder, d.wrapDebug})
		case LayerInspector:
			out = append(out, wrapper{l, insetInspector, d.wrapInspector})
		case LayerBanner:
			out = append(out, wrapper{l, same, d.wrapBanner})
		case LayerLocalizations:
			out = append(out, wrapper{l, same, d.wrapLocalizations})
		case LayerTitle:
			out = append(out, wrapper{l, insetTitle, d.wrapTitle})
		}
	}
	return out
}

func (d Description) wrapTextStyle(inner string, w, h int) string {
	return fitCanvas(d.TextStyle.Render(inner), w, h)
}

func (d Description) wrapPerformance(inner string, w, h int) string {
	stats := []string{fmt.Sprintf(" build #%d ", d.Generation)}
	if d.CheckerboardRaster {
		stats = append(stats, " ▚ raster cache ")
	}
	if d.CheckerboardOffscreen {
		stats = append(stats, " ▚ offscreen ")
	}
	box := perfStyle.Render(strings.Join(stats, "\n"))
	x := max(0, w-lipgloss.Width(box))
	return overlayAt(fitCanvas(inner, w, h), box, x, h-lipgloss.Height(box), w, h)
}

func insetBorder(w, h int) (int, int) {
	if w < 3 || h < 3 {
		return w, h
	}
	return w - 2, h - 2
}

func (d Description) wrapDebug(inner string, w, h int) string {
	if w < 3 || h < 3 {
		return fitCanvas(inner, w, h)
	}
	return debugBorderStyle.Render(fitCanvas(inner, w-2, h-2))
}

func inspectorWidth(w int) int {
	return min(inspectorMaxWidth, w/3)
}

func insetInspector(w, h int) (int, int) {
	pw := inspectorWidth(w)
	if pw < 8 {
		return w, h
	}
	return w - pw - 1, h
}

func (d Description) wrapInspector(inner string, w, h int) string {
	pw := inspectorWidth(w)
	if pw < 8 {
		return fitCanvas(inner, w, h)
	}
	lines := []string{
		inspectorHeadStyle.Render("inspector"),
		"locale " + d.Locale.String() + " " + d.Direction.String(),
		"delegates " + delegateNames(d.SupportedDelegates()),
		"",
		inspectorHeadStyle.Render("routes"),
	}
	for i := len(d.Routes) - 1; i >= 0; i-- {
		lines = append(lines, "  "+d.Routes[i])
	}
	if len(d.Keys) > 0 {
		lines = append(lines, "", inspectorHeadStyle.Render("keys"))
		for _, k := range d.Keys {
			lines = append(lines, inspectorMutedStyle.Render("  "+strings.Join(k.Keys, "/")+" "+k.Description))
		}
	}
	lines = append(lines, "", inspectorHeadStyle.Render("events"))
	events := d.Events
	if len(events) > inspectorEvents {
		events = events[len(events)-inspectorEvents:]
	}
	for i := len(events) - 1; i >= 0; i-- {
		lines = append(lines, inspectorMutedStyle.Render("  "+events[i]))
	}
	panel := fitCanvas(strings.Join(lines, "\n"), pw, h)
	sep := inspectorSepStyle.Render(strings.TrimSuffix(strings.Repeat("│\n", h), "\n"))
	return lipgloss.JoinHorizontal(lipgloss.Top, fitCanvas(inner, w-pw-1, h), sep, panel)
}

func delegateNames(ds []Delegate) string {
	names := make([]string, 0, len(ds))
	for _, d := range ds {
		names = append(names, d.Name())
	}
	return strings.Join(names, ",")
}

func (d Description) wrapBanner(inner string, w, h int) string {
	label := bannerStyle.Render(" " + strings.ToUpper(d.Mode.String()) + " ")
	x := max(0, w-lipgloss.Width(label))
	return overlayAt(fitCanvas(inner, w, h), label, x, 0, w, h)
}

func (d Description) wrapLocalizations(inner string, w, h int) string {
	if d.Direction == locale.RTL {
		return alignRight(inner, w)
	}
	return inner
}

func insetTitle(w, h int) (int, int) {
	return w, h - 1
}

func (d Description) wrapTitle(inner string, w, h int) string {
	title := ansi.Truncate(strings.ReplaceAll(d.Title, "\n", " "), w, "…")
	bar := titleBarStyle.Foreground(d.Color).Render(padRightANSI(title, w))
	if h <= 1 {
		return bar
	}
	return bar + "\n" + fitCanvas(inner, w, h-1)
}
