package shell

import "github.com/charmbracelet/lipgloss"

var (
	colorText    lipgloss.Color = "#cdd6f4"
	colorMuted   lipgloss.Color = "#a6adc8"
	colorBorder  lipgloss.Color = "#585b70"
	colorMantle  lipgloss.Color = "#181825"
	colorWarn    lipgloss.Color = "#fab387"
	colorError   lipgloss.Color = "#f38ba8"
	colorSurface lipgloss.Color = "#313244"
)

var (
	titleBarStyle       = lipgloss.NewStyle().Background(colorMantle).Bold(true)
	perfStyle           = lipgloss.NewStyle().Foreground(colorText).Background(colorSurface)
	debugBorderStyle    = lipgloss.NewStyle().Border(lipgloss.NormalBorder()).BorderForeground(colorWarn)
	inspectorSepStyle   = lipgloss.NewStyle().Foreground(colorBorder)
	inspectorHeadStyle  = lipgloss.NewStyle().Foreground(colorWarn).Bold(true)
	inspectorMutedStyle = lipgloss.NewStyle().Foreground(colorMuted)
	bannerStyle         = lipgloss.NewStyle().Foreground(lipgloss.Color("#ffffff")).Background(colorError).Bold(true)
)
