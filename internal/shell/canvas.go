package shell

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// overlayAt draws overlay over base with its top-left corner at column x, row y.
func overlayAt(base, overlay string, x, y, width, height int) string {
	baseLines := splitToLines(base, height)
	overlayLines := splitToLines(overlay, 0)
	overlayWidth := maxLineWidth(overlayLines)
	for i, line := range overlayLines {
		row := y + i
		if row < 0 || row >= len(baseLines) || row >= height {
			continue
		}
		target := padRightANSI(baseLines[row], width)
		left := ansi.Truncate(target, x, "")
		if w := ansi.StringWidth(left); w < x {
			left += strings.Repeat(" ", x-w)
		}
		overlayLine := padRightANSI(line, overlayWidth)
		right := dropColumns(target, x+overlayWidth)
		baseLines[row] = ansi.Truncate(left+overlayLine+right, width, "")
	}
	return strings.Join(baseLines, "\n")
}

// fitCanvas pads or cuts s to exactly width x height cells.
func fitCanvas(s string, width, height int) string {
	if width <= 0 || height <= 0 {
		return ""
	}
	lines := splitToLines(s, height)
	for i := range lines {
		lines[i] = padRightANSI(lines[i], width)
	}
	return strings.Join(lines, "\n")
}

// alignRight moves every line of s to the right edge of width.
func alignRight(s string, width int) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		trimmed := strings.TrimRight(line, " ")
		if w := ansi.StringWidth(trimmed); w < width {
			trimmed = strings.Repeat(" ", width-w) + trimmed
		}
		lines[i] = trimmed
	}
	return strings.Join(lines, "\n")
}

func splitToLines(s string, height int) []string {
	lines := strings.Split(s, "\n")
	if height > 0 && len(lines) > height {
		lines = lines[:height]
	}
	for height > 0 && len(lines) < height {
		lines = append(lines, "")
	}
	return lines
}

func maxLineWidth(lines []string) int {
	maxWidth := 0
	for _, line := range lines {
		if w := ansi.StringWidth(line); w > maxWidth {
			maxWidth = w
		}
	}
	return maxWidth
}

func dropColumns(s string, cols int) string {
	if cols <= 0 {
		return s
	}
	truncated := ansi.Truncate(s, cols, "")
	return strings.TrimPrefix(s, truncated)
}

func padRightANSI(s string, width int) string {
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
